package attendance

import "context"

// Service is the attendance event processor.
type Service interface {
	CheckIn(ctx context.Context, req CheckInRequest) (Record, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (Record, error)

	// CreateManual and UpdateManual are admin corrections. They skip the
	// half-shift gate and the geofence.
	CreateManual(ctx context.Context, req CreateRecordRequest) (Record, error)
	UpdateManual(ctx context.Context, id string, req UpdateRecordRequest) (Record, error)

	GetRecord(ctx context.Context, id string) (Record, error)
}
