package activitylog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/DevRamona/Course-Management-Platform/internal/api/dto"
	"github.com/DevRamona/Course-Management-Platform/internal/api/respond"
	"github.com/DevRamona/Course-Management-Platform/internal/config"
	"github.com/DevRamona/Course-Management-Platform/internal/model"
	"github.com/DevRamona/Course-Management-Platform/internal/rabbitmq/queue"
	"github.com/DevRamona/Course-Management-Platform/internal/repository/activitylog"
	"github.com/DevRamona/Course-Management-Platform/pkg/week"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/activitylog/mock.go -package=mocks

type activityLogRepository interface {
	Create(ctx context.Context, log model.ActivityLog) (int64, error)
	GetByID(ctx context.Context, id int64) (model.ActivityLog, error)
	GetDetail(ctx context.Context, id int64) (model.ActivityLogDetail, error)
	Update(ctx context.Context, log model.ActivityLog) error
	ListByFacilitator(ctx context.Context, facilitatorID int64) ([]model.ActivityLog, error)
}

type userRepository interface {
	ListActiveByRole(ctx context.Context, role model.Role) ([]model.User, error)
}

type notificationService interface {
	CreateNotification(ctx context.Context, strategy retry.Strategy, activityLogID int64) error
	CreateAlert(ctx context.Context, strategy retry.Strategy, managerID int64, alertType string, data queue.AlertData) error
}

type Handler struct {
	logs      activityLogRepository
	users     userRepository
	service   notificationService
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(
	logs activityLogRepository,
	users userRepository,
	service notificationService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{logs: logs, users: users, service: service, validator: v, cfg: cfg}
}

// Create submits a new weekly activity log. Submission enqueues the
// facilitator's notice and fans out one alert per active manager; a log
// handed in for a past ISO week is flagged as a late submission.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateActivityLogRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	now := time.Now()
	log := model.ActivityLog{
		AllocationID:        req.AllocationID,
		FacilitatorID:       req.FacilitatorID,
		WeekNumber:          req.WeekNumber,
		Year:                req.Year,
		Attendance:          attendanceOrEmpty(req.Attendance),
		FormativeOneGrading: statusOrDefault(req.FormativeOneGrading),
		FormativeTwoGrading: statusOrDefault(req.FormativeTwoGrading),
		SummativeGrading:    statusOrDefault(req.SummativeGrading),
		CourseModeration:    statusOrDefault(req.CourseModeration),
		IntranetSync:        statusOrDefault(req.IntranetSync),
		GradeBookStatus:     statusOrDefault(req.GradeBookStatus),
		Notes:               req.Notes,
		SubmittedAt:         &now,
		IsActive:            true,
	}

	id, err := h.logs.Create(c.Request.Context(), log)
	if err != nil {
		if errors.Is(err, activitylog.ErrDuplicateLog) {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to create activity log")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}
	log.ID = id

	if err := h.service.CreateNotification(c.Request.Context(), h.cfg.Retry, id); err != nil {
		// Notification delivery is best-effort from the API's point of view;
		// the submission itself already succeeded.
		zlog.Logger.Error().Err(err).Int64("activity_log_id", id).Msg("failed to queue notification")
	}

	h.alertManagers(c.Request.Context(), log, now)

	respond.Created(c.Writer, log)
}

// Update mutates a log's statuses and notes. The first update that stamps a
// submission time triggers the facilitator's notice.
func (h *Handler) Update(c *ginext.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	var req dto.UpdateActivityLogRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	existing, err := h.logs.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, activitylog.ErrActivityLogNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, err)
			return
		}

		zlog.Logger.Error().Err(err).Int64("id", id).Msg("failed to get activity log")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	wasSubmitted := existing.Submitted()

	// Only fields present in the body overwrite stored state.
	now := time.Now()
	if req.Attendance != nil {
		existing.Attendance = req.Attendance
	}
	applyStatus(&existing.FormativeOneGrading, req.FormativeOneGrading)
	applyStatus(&existing.FormativeTwoGrading, req.FormativeTwoGrading)
	applyStatus(&existing.SummativeGrading, req.SummativeGrading)
	applyStatus(&existing.CourseModeration, req.CourseModeration)
	applyStatus(&existing.IntranetSync, req.IntranetSync)
	applyStatus(&existing.GradeBookStatus, req.GradeBookStatus)
	if req.Notes != nil {
		existing.Notes = *req.Notes
	}
	existing.SubmittedAt = &now

	if err := h.logs.Update(c.Request.Context(), existing); err != nil {
		if errors.Is(err, activitylog.ErrActivityLogNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, err)
			return
		}

		zlog.Logger.Error().Err(err).Int64("id", id).Msg("failed to update activity log")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if !wasSubmitted {
		if err := h.service.CreateNotification(c.Request.Context(), h.cfg.Retry, id); err != nil {
			zlog.Logger.Error().Err(err).Int64("activity_log_id", id).Msg("failed to queue notification")
		}
	}

	respond.OK(c.Writer, existing)
}

// Get returns one activity log by id.
func (h *Handler) Get(c *ginext.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	log, err := h.logs.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, activitylog.ErrActivityLogNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, err)
			return
		}

		zlog.Logger.Error().Err(err).Int64("id", id).Msg("failed to get activity log")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, log)
}

// List returns the active logs of one facilitator.
func (h *Handler) List(c *ginext.Context) {
	facilitatorID, err := strconv.ParseInt(c.Query("facilitator_id"), 10, 64)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid facilitator_id"))
		return
	}

	logs, err := h.logs.ListByFacilitator(c.Request.Context(), facilitatorID)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("facilitator_id", facilitatorID).Msg("failed to list activity logs")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, logs)
}

// alertManagers fans out one submission alert per active manager. Submitting
// for a week before the current ISO week counts as late.
func (h *Handler) alertManagers(ctx context.Context, log model.ActivityLog, submittedAt time.Time) {
	detail, err := h.logs.GetDetail(ctx, log.ID)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("activity_log_id", log.ID).Msg("failed to load log detail for alerts")
		return
	}

	managers, err := h.users.ListActiveByRole(ctx, model.RoleManager)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list managers for alerts")
		return
	}

	alertType := queue.TypeActivityLogSubmitted
	curYear, curWeek := week.Current(submittedAt)
	if log.Year < curYear || (log.Year == curYear && log.WeekNumber < curWeek) {
		alertType = "late_submission"
	}

	data := queue.AlertData{
		FacilitatorName: detail.Facilitator.FullName(),
		FacilitatorID:   detail.FacilitatorID,
		ModuleName:      detail.Module.Name,
		WeekNumber:      log.WeekNumber,
		Year:            log.Year,
		SubmittedAt:     submittedAt.Format(time.RFC3339),
		Deadline:        week.Deadline(submittedAt).Format(time.RFC3339),
	}

	for _, manager := range managers {
		if err := h.service.CreateAlert(ctx, h.cfg.Retry, manager.ID, alertType, data); err != nil {
			zlog.Logger.Error().Err(err).Int64("manager_id", manager.ID).Msg("failed to queue submission alert")
		}
	}
}

func applyStatus(dst *model.TaskStatus, src *string) {
	if src != nil {
		*dst = model.TaskStatus(*src)
	}
}

func statusOrDefault(s string) model.TaskStatus {
	if s == "" {
		return model.TaskNotStarted
	}
	return model.TaskStatus(s)
}

func attendanceOrEmpty(a []bool) []bool {
	if a == nil {
		return []bool{}
	}
	return a
}
