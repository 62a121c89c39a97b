package activitylog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/DevRamona/Course-Management-Platform/internal/model"
)

var (
	ErrActivityLogNotFound = errors.New("activity log not found")
	ErrDuplicateLog        = errors.New("activity log already exists for this week and allocation")
)

// Repository provides queries over the activity_logs table and the joins the
// notification composer and scheduler need.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new activity log repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new activity log and returns its ID. The unique index on
// (allocation_id, week_number, year) surfaces as ErrDuplicateLog.
func (r *Repository) Create(ctx context.Context, log model.ActivityLog) (int64, error) {
	attendance, err := json.Marshal(log.Attendance)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal attendance: %w", err)
	}

	query := `
		INSERT INTO activity_logs (
		    allocation_id, facilitator_id, week_number, year, attendance,
		    formative_one_grading, formative_two_grading, summative_grading,
		    course_moderation, intranet_sync, grade_book_status,
		    notes, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id;
    `

	var id int64
	err = r.db.Master.QueryRowContext(
		ctx, query,
		log.AllocationID, log.FacilitatorID, log.WeekNumber, log.Year, attendance,
		log.FormativeOneGrading, log.FormativeTwoGrading, log.SummativeGrading,
		log.CourseModeration, log.IntranetSync, log.GradeBookStatus,
		log.Notes, log.SubmittedAt,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return 0, ErrDuplicateLog
		}

		return 0, fmt.Errorf("failed to create activity log: %w", err)
	}

	return id, nil
}

// GetByID retrieves a single active activity log.
func (r *Repository) GetByID(ctx context.Context, id int64) (model.ActivityLog, error) {
	query := `
		SELECT id, allocation_id, facilitator_id, week_number, year, attendance,
		       formative_one_grading, formative_two_grading, summative_grading,
		       course_moderation, intranet_sync, grade_book_status,
		       notes, submitted_at, is_active, created_at, updated_at
		FROM activity_logs
		WHERE id = $1 AND is_active = TRUE;
    `

	log, err := scanLog(r.db.Master.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ActivityLog{}, ErrActivityLogNotFound
		}

		return model.ActivityLog{}, fmt.Errorf("failed to get activity log: %w", err)
	}

	return log, nil
}

// GetDetail retrieves an activity log joined with its facilitator and module,
// which is everything the submission notice needs.
func (r *Repository) GetDetail(ctx context.Context, id int64) (model.ActivityLogDetail, error) {
	query := `
		SELECT a.id, a.allocation_id, a.facilitator_id, a.week_number, a.year, a.attendance,
		       a.formative_one_grading, a.formative_two_grading, a.summative_grading,
		       a.course_moderation, a.intranet_sync, a.grade_book_status,
		       a.notes, a.submitted_at, a.is_active, a.created_at, a.updated_at,
		       u.id, u.email, u.first_name, u.last_name, u.role, u.is_active,
		       m.id, m.name, m.code
		FROM activity_logs a
		JOIN course_assignments ca ON ca.id = a.allocation_id
		JOIN users u ON u.id = a.facilitator_id
		JOIN modules m ON m.id = ca.module_id
		WHERE a.id = $1 AND a.is_active = TRUE;
    `

	var (
		d          model.ActivityLogDetail
		attendance []byte
		notes      sql.NullString
		submitted  sql.NullTime
	)

	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.AllocationID, &d.FacilitatorID, &d.WeekNumber, &d.Year, &attendance,
		&d.FormativeOneGrading, &d.FormativeTwoGrading, &d.SummativeGrading,
		&d.CourseModeration, &d.IntranetSync, &d.GradeBookStatus,
		&notes, &submitted, &d.IsActive, &d.CreatedAt, &d.UpdatedAt,
		&d.Facilitator.ID, &d.Facilitator.Email, &d.Facilitator.FirstName,
		&d.Facilitator.LastName, &d.Facilitator.Role, &d.Facilitator.IsActive,
		&d.Module.ID, &d.Module.Name, &d.Module.Code,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ActivityLogDetail{}, ErrActivityLogNotFound
		}

		return model.ActivityLogDetail{}, fmt.Errorf("failed to get activity log detail: %w", err)
	}

	if err := json.Unmarshal(attendance, &d.Attendance); err != nil {
		return model.ActivityLogDetail{}, fmt.Errorf("failed to unmarshal attendance: %w", err)
	}
	d.Notes = notes.String
	if submitted.Valid {
		t := submitted.Time
		d.SubmittedAt = &t
	}

	return d, nil
}

// ListByFacilitator retrieves all active logs of one facilitator, newest week first.
func (r *Repository) ListByFacilitator(ctx context.Context, facilitatorID int64) ([]model.ActivityLog, error) {
	query := `
		SELECT id, allocation_id, facilitator_id, week_number, year, attendance,
		       formative_one_grading, formative_two_grading, summative_grading,
		       course_moderation, intranet_sync, grade_book_status,
		       notes, submitted_at, is_active, created_at, updated_at
		FROM activity_logs
		WHERE facilitator_id = $1 AND is_active = TRUE
		ORDER BY year DESC, week_number DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, facilitatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	defer rows.Close()

	var logs []model.ActivityLog
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, err
		}

		logs = append(logs, log)
	}

	return logs, rows.Err()
}

// ListPendingByFacilitator retrieves the facilitator's unsubmitted active logs
// denormalized with module display data for reminder content.
func (r *Repository) ListPendingByFacilitator(ctx context.Context, facilitatorID int64) ([]model.PendingLog, error) {
	query := `
		SELECT a.id, m.name, m.code, a.week_number, a.year
		FROM activity_logs a
		JOIN course_assignments ca ON ca.id = a.allocation_id
		JOIN modules m ON m.id = ca.module_id
		WHERE a.facilitator_id = $1 AND a.is_active = TRUE AND a.submitted_at IS NULL
		ORDER BY a.year, a.week_number;
    `

	rows, err := r.db.QueryContext(ctx, query, facilitatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending logs: %w", err)
	}
	defer rows.Close()

	var pending []model.PendingLog
	for rows.Next() {
		var p model.PendingLog
		if err := rows.Scan(&p.ActivityLogID, &p.ModuleName, &p.ModuleCode, &p.WeekNumber, &p.Year); err != nil {
			return nil, err
		}

		pending = append(pending, p)
	}

	return pending, rows.Err()
}

// HasUnsubmitted reports whether the facilitator has an active, unsubmitted
// log for the given week and year.
func (r *Repository) HasUnsubmitted(ctx context.Context, facilitatorID int64, week, year int) (bool, error) {
	query := `
		SELECT EXISTS (
		    SELECT 1 FROM activity_logs
		    WHERE facilitator_id = $1 AND week_number = $2 AND year = $3
		      AND is_active = TRUE AND submitted_at IS NULL
		);
    `

	var exists bool
	if err := r.db.Master.QueryRowContext(ctx, query, facilitatorID, week, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check pending log: %w", err)
	}

	return exists, nil
}

// ListMissed retrieves every active, unsubmitted log for the given week and
// year joined with facilitator display data. Used by the missed-deadline pass.
func (r *Repository) ListMissed(ctx context.Context, week, year int) ([]model.MissedLog, error) {
	query := `
		SELECT a.id, u.id, u.first_name || ' ' || u.last_name, u.email, m.name, a.week_number, a.year
		FROM activity_logs a
		JOIN users u ON u.id = a.facilitator_id
		JOIN course_assignments ca ON ca.id = a.allocation_id
		JOIN modules m ON m.id = ca.module_id
		WHERE a.week_number = $1 AND a.year = $2
		  AND a.is_active = TRUE AND a.submitted_at IS NULL;
    `

	rows, err := r.db.QueryContext(ctx, query, week, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list missed logs: %w", err)
	}
	defer rows.Close()

	var missed []model.MissedLog
	for rows.Next() {
		var m model.MissedLog
		err := rows.Scan(
			&m.ActivityLogID, &m.FacilitatorID, &m.FacilitatorName,
			&m.FacilitatorEmail, &m.ModuleName, &m.WeekNumber, &m.Year,
		)
		if err != nil {
			return nil, err
		}

		missed = append(missed, m)
	}

	return missed, rows.Err()
}

// Update rewrites the mutable fields of a log and stamps submitted_at when
// submitting for the first time.
func (r *Repository) Update(ctx context.Context, log model.ActivityLog) error {
	attendance, err := json.Marshal(log.Attendance)
	if err != nil {
		return fmt.Errorf("failed to marshal attendance: %w", err)
	}

	query := `
		UPDATE activity_logs
		SET attendance = $1,
		    formative_one_grading = $2, formative_two_grading = $3, summative_grading = $4,
		    course_moderation = $5, intranet_sync = $6, grade_book_status = $7,
		    notes = $8, submitted_at = $9, updated_at = NOW()
		WHERE id = $10 AND is_active = TRUE;
    `

	res, err := r.db.ExecContext(
		ctx, query, attendance,
		log.FormativeOneGrading, log.FormativeTwoGrading, log.SummativeGrading,
		log.CourseModeration, log.IntranetSync, log.GradeBookStatus,
		log.Notes, log.SubmittedAt, log.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update activity log: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrActivityLogNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLog(row rowScanner) (model.ActivityLog, error) {
	var (
		log        model.ActivityLog
		attendance []byte
		notes      sql.NullString
		submitted  sql.NullTime
	)

	err := row.Scan(
		&log.ID, &log.AllocationID, &log.FacilitatorID, &log.WeekNumber, &log.Year, &attendance,
		&log.FormativeOneGrading, &log.FormativeTwoGrading, &log.SummativeGrading,
		&log.CourseModeration, &log.IntranetSync, &log.GradeBookStatus,
		&notes, &submitted, &log.IsActive, &log.CreatedAt, &log.UpdatedAt,
	)
	if err != nil {
		return model.ActivityLog{}, err
	}

	if err := json.Unmarshal(attendance, &log.Attendance); err != nil {
		return model.ActivityLog{}, fmt.Errorf("failed to unmarshal attendance: %w", err)
	}
	log.Notes = notes.String
	if submitted.Valid {
		t := submitted.Time
		log.SubmittedAt = &t
	}

	return log, nil
}
