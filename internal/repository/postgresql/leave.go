package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepository{db: db}
}

const leaveColumns = `
	id, employee_id, leave_type, start_date, end_date, leave_duration, reason,
	status, approved_by, approved_at, rejection_reason, created_at, updated_at`

// Create implements leave.Repository.
func (r *leaveRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date, leave_duration, reason, status
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7
		) RETURNING ` + leaveColumns

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		request.EmployeeID,
		request.LeaveType,
		dateParam(request.StartDate),
		dateParam(request.EndDate),
		request.LeaveDuration,
		request.Reason,
		string(request.Status),
	))
	if err != nil {
		if isExclusionViolation(err) {
			return leave.LeaveRequest{}, leave.ErrLeaveOverlap
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// GetByID implements leave.Repository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// Inside a transaction the row stays locked until commit.
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id = $1`
	if _, ok := database.TxFromContext(ctx); ok {
		query += ` FOR UPDATE`
	}

	request, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by id %s: %w", id, err)
	}
	return request, nil
}

// Update implements leave.Repository.
func (r *leaveRepository) Update(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests SET
			status = $2,
			approved_by = $3,
			approved_at = $4,
			rejection_reason = $5,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + leaveColumns

	updated, err := scanLeaveRequest(q.QueryRow(ctx, query,
		request.ID,
		string(request.Status),
		request.ApprovedBy,
		request.ApprovedAt,
		request.RejectionReason,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	return updated, nil
}

// ListByEmployee implements leave.Repository.
func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY start_date DESC, created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return collectLeaveRequests(rows)
}

// HasOverlap implements leave.Repository.
func (r *leaveRepository) HasOverlap(ctx context.Context, employeeID string, start, end calendar.Day) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status IN ('pending', 'approved')
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, dateParam(start), dateParam(end)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check leave overlap: %w", err)
	}
	return exists, nil
}

// ListApprovedBetween implements leave.Repository.
func (r *leaveRepository) ListApprovedBetween(ctx context.Context, employeeID string, start, end calendar.Day) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE status = 'approved'
		  AND start_date <= $2
		  AND end_date >= $1`
	args := []interface{}{dateParam(start), dateParam(end)}
	if employeeID != "" {
		query += ` AND employee_id = $3`
		args = append(args, employeeID)
	}
	query += ` ORDER BY start_date`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave: %w", err)
	}
	return collectLeaveRequests(rows)
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		request, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}
	return requests, nil
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var (
		request    leave.LeaveRequest
		start, end time.Time
		status     string
	)
	err := row.Scan(
		&request.ID, &request.EmployeeID, &request.LeaveType, &start, &end, &request.LeaveDuration, &request.Reason,
		&status, &request.ApprovedBy, &request.ApprovedAt, &request.RejectionReason, &request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	request.StartDate = calendar.FromTime(start)
	request.EndDate = calendar.FromTime(end)
	request.Status = leave.RequestStatus(status)
	return request, nil
}
