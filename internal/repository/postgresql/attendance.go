package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, date, check_in, check_out,
	check_in_latitude, check_in_longitude, check_out_latitude, check_out_longitude,
	working_hours, overtime_hours, status, leave_type, leave_duration,
	created_at, updated_at`

// Create implements attendance.Repository.
func (r *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	inLat, inLng := locationParams(record.CheckInLocation)
	outLat, outLng := locationParams(record.CheckOutLocation)

	query := `
		INSERT INTO attendances (
			id, employee_id, date, check_in, check_out,
			check_in_latitude, check_in_longitude, check_out_latitude, check_out_longitude,
			working_hours, overtime_hours, status, leave_type, leave_duration
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING ` + attendanceColumns

	created, err := scanRecord(q.QueryRow(ctx, query,
		record.EmployeeID,
		dateParam(record.Date),
		record.CheckIn,
		record.CheckOut,
		inLat, inLng, outLat, outLng,
		record.WorkingHours,
		record.OvertimeHours,
		string(record.Status),
		record.LeaveType,
		record.LeaveDuration,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Record{}, attendance.ErrRecordConflict
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return created, nil
}

// GetByID implements attendance.Repository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`

	record, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance by id %s: %w", id, err)
	}
	return record, nil
}

// GetByEmployeeAndDate implements attendance.Repository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, day calendar.Day) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE employee_id = $1 AND date = $2`

	record, err := scanRecord(q.QueryRow(ctx, query, employeeID, dateParam(day)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance for %s: %w", day, err)
	}
	return record, nil
}

// Update implements attendance.Repository.
func (r *attendanceRepository) Update(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	inLat, inLng := locationParams(record.CheckInLocation)
	outLat, outLng := locationParams(record.CheckOutLocation)

	query := `
		UPDATE attendances SET
			date = $2,
			check_in = $3,
			check_out = $4,
			check_in_latitude = $5,
			check_in_longitude = $6,
			check_out_latitude = $7,
			check_out_longitude = $8,
			working_hours = $9,
			overtime_hours = $10,
			status = $11,
			leave_type = $12,
			leave_duration = $13,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + attendanceColumns

	updated, err := scanRecord(q.QueryRow(ctx, query,
		record.ID,
		dateParam(record.Date),
		record.CheckIn,
		record.CheckOut,
		inLat, inLng, outLat, outLng,
		record.WorkingHours,
		record.OvertimeHours,
		string(record.Status),
		record.LeaveType,
		record.LeaveDuration,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		if isUniqueViolation(err) {
			return attendance.Record{}, attendance.ErrRecordConflict
		}
		return attendance.Record{}, fmt.Errorf("failed to update attendance: %w", err)
	}
	return updated, nil
}

// Upsert implements attendance.Repository.
func (r *attendanceRepository) Upsert(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, employee_id, date, status, leave_type, leave_duration)
		VALUES (uuidv7(), $1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			leave_type = EXCLUDED.leave_type,
			leave_duration = EXCLUDED.leave_duration,
			updated_at = NOW()
		RETURNING ` + attendanceColumns

	upserted, err := scanRecord(q.QueryRow(ctx, query,
		record.EmployeeID,
		dateParam(record.Date),
		string(record.Status),
		record.LeaveType,
		record.LeaveDuration,
	))
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance for %s: %w", record.Date, err)
	}
	return upserted, nil
}

// ListByEmployeeRange implements attendance.Repository.
func (r *attendanceRepository) ListByEmployeeRange(ctx context.Context, employeeID string, start, end calendar.Day) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date`

	rows, err := q.Query(ctx, query, employeeID, dateParam(start), dateParam(end))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return collectRecords(rows)
}

// ListByDate implements attendance.Repository.
func (r *attendanceRepository) ListByDate(ctx context.Context, day calendar.Day) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE date = $1
		ORDER BY employee_id`

	rows, err := q.Query(ctx, query, dateParam(day))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for %s: %w", day, err)
	}
	return collectRecords(rows)
}

// SumLeaveDuration implements attendance.Repository.
func (r *attendanceRepository) SumLeaveDuration(ctx context.Context, employeeID string, year int, excludeStart, excludeEnd calendar.Day) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(leave_duration), 0)::float8
		FROM attendances
		WHERE employee_id = $1
		  AND status IN ('leave', 'unpaid_leave')
		  AND date >= make_date($2, 1, 1)
		  AND date < make_date($2 + 1, 1, 1)
		  AND NOT ($3::date IS NOT NULL AND date BETWEEN $3::date AND $4::date)
	`

	var start, end *time.Time
	if !excludeStart.IsZero() && !excludeEnd.IsZero() {
		s, e := dateParam(excludeStart), dateParam(excludeEnd)
		start, end = &s, &e
	}

	var total float64
	if err := q.QueryRow(ctx, query, employeeID, year, start, end).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum leave duration: %w", err)
	}
	return total, nil
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}
	return records, nil
}

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var (
		record         attendance.Record
		date           time.Time
		inLat, inLng   *float64
		outLat, outLng *float64
		status         string
	)
	err := row.Scan(
		&record.ID, &record.EmployeeID, &date, &record.CheckIn, &record.CheckOut,
		&inLat, &inLng, &outLat, &outLng,
		&record.WorkingHours, &record.OvertimeHours, &status, &record.LeaveType, &record.LeaveDuration,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, err
	}
	record.Date = calendar.FromTime(date)
	record.Status = attendance.Status(status)
	record.CheckInLocation = locationFrom(inLat, inLng)
	record.CheckOutLocation = locationFrom(outLat, outLng)
	return record, nil
}

func locationParams(l *policy.Location) (*float64, *float64) {
	if l == nil {
		return nil, nil
	}
	lat, lng := l.Latitude, l.Longitude
	return &lat, &lng
}

func locationFrom(lat, lng *float64) *policy.Location {
	if lat == nil || lng == nil {
		return nil
	}
	return &policy.Location{Latitude: *lat, Longitude: *lng}
}
