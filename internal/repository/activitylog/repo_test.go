package activitylog

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/DevRamona/Course-Management-Platform/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestCreate(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	log := model.ActivityLog{
		AllocationID:        1,
		FacilitatorID:       7,
		WeekNumber:          5,
		Year:                2024,
		Attendance:          []bool{true, true, false},
		FormativeOneGrading: model.TaskDone,
		FormativeTwoGrading: model.TaskPending,
		SummativeGrading:    model.TaskNotStarted,
		CourseModeration:    model.TaskDone,
		IntranetSync:        model.TaskDone,
		GradeBookStatus:     model.TaskPending,
		Notes:               "all good",
		SubmittedAt:         &now,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO activity_logs (
		    allocation_id, facilitator_id, week_number, year, attendance,
		    formative_one_grading, formative_two_grading, summative_grading,
		    course_moderation, intranet_sync, grade_book_status,
		    notes, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id;
    `)).
		WithArgs(
			log.AllocationID, log.FacilitatorID, log.WeekNumber, log.Year, []byte(`[true,true,false]`),
			log.FormativeOneGrading, log.FormativeTwoGrading, log.SummativeGrading,
			log.CourseModeration, log.IntranetSync, log.GradeBookStatus,
			log.Notes, now,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := repo.Create(context.Background(), log)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Duplicate(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("INSERT INTO activity_logs").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), model.ActivityLog{Attendance: []bool{}})
	assert.ErrorIs(t, err, ErrDuplicateLog)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	columns := []string{
		"id", "allocation_id", "facilitator_id", "week_number", "year", "attendance",
		"formative_one_grading", "formative_two_grading", "summative_grading",
		"course_moderation", "intranet_sync", "grade_book_status",
		"notes", "submitted_at", "is_active", "created_at", "updated_at",
	}

	mock.ExpectQuery("SELECT (.+) FROM activity_logs").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			int64(42), int64(1), int64(7), 5, 2024, []byte(`[true,false]`),
			"Done", "Pending", "Not Started",
			"Done", "Done", "Pending",
			"all good", now, true, now, now,
		))

	log, err := repo.GetByID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), log.ID)
	assert.Equal(t, 5, log.WeekNumber)
	assert.Equal(t, []bool{true, false}, log.Attendance)
	assert.Equal(t, model.TaskDone, log.FormativeOneGrading)
	assert.Equal(t, "all good", log.Notes)
	assert.True(t, log.Submitted())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT (.+) FROM activity_logs").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrActivityLogNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDetail(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	columns := []string{
		"id", "allocation_id", "facilitator_id", "week_number", "year", "attendance",
		"formative_one_grading", "formative_two_grading", "summative_grading",
		"course_moderation", "intranet_sync", "grade_book_status",
		"notes", "submitted_at", "is_active", "created_at", "updated_at",
		"u_id", "u_email", "u_first_name", "u_last_name", "u_role", "u_is_active",
		"m_id", "m_name", "m_code",
	}

	mock.ExpectQuery("SELECT (.+) FROM activity_logs a").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			int64(42), int64(1), int64(7), 5, 2024, []byte(`[]`),
			"Done", "Done", "Done",
			"Done", "Done", "Done",
			nil, now, true, now, now,
			int64(7), "jane@example.com", "Jane", "Doe", "facilitator", true,
			int64(3), "Backend Development", "BD101",
		))

	detail, err := repo.GetDetail(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), detail.ID)
	assert.Equal(t, "Jane Doe", detail.Facilitator.FullName())
	assert.Equal(t, model.RoleFacilitator, detail.Facilitator.Role)
	assert.Equal(t, "Backend Development", detail.Module.Name)
	assert.Empty(t, detail.Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPendingByFacilitator(t *testing.T) {
	repo, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "name", "code", "week_number", "year"}).
		AddRow(int64(1), "Backend Development", "BD101", 5, 2024).
		AddRow(int64(2), "Databases", "DB201", 5, 2024)

	mock.ExpectQuery("SELECT a.id, m.name, m.code, a.week_number, a.year").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	pending, err := repo.ListPendingByFacilitator(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, pending, 2)
	assert.Equal(t, "Backend Development", pending[0].ModuleName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasUnsubmitted(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(7), 5, 2024).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	pending, err := repo.HasUnsubmitted(context.Background(), 7, 5, 2024)
	assert.NoError(t, err)
	assert.True(t, pending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMissed(t *testing.T) {
	repo, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "facilitator_id", "facilitator_name", "email", "module", "week_number", "year"}).
		AddRow(int64(10), int64(7), "Jane Doe", "jane@example.com", "Backend Development", 5, 2024)

	mock.ExpectQuery("SELECT a.id, u.id").
		WithArgs(5, 2024).
		WillReturnRows(rows)

	missed, err := repo.ListMissed(context.Background(), 5, 2024)
	assert.NoError(t, err)
	assert.Len(t, missed, 1)
	assert.Equal(t, "Jane Doe", missed[0].FacilitatorName)
	assert.Equal(t, int64(10), missed[0].ActivityLogID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	log := model.ActivityLog{
		ID:                  42,
		Attendance:          []bool{true},
		FormativeOneGrading: model.TaskDone,
		FormativeTwoGrading: model.TaskDone,
		SummativeGrading:    model.TaskDone,
		CourseModeration:    model.TaskDone,
		IntranetSync:        model.TaskDone,
		GradeBookStatus:     model.TaskDone,
		Notes:               "updated",
		SubmittedAt:         &now,
	}

	mock.ExpectExec("UPDATE activity_logs").
		WithArgs(
			[]byte(`[true]`),
			log.FormativeOneGrading, log.FormativeTwoGrading, log.SummativeGrading,
			log.CourseModeration, log.IntranetSync, log.GradeBookStatus,
			log.Notes, now, log.ID,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), log)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec("UPDATE activity_logs").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), log)
	assert.ErrorIs(t, err, ErrActivityLogNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
