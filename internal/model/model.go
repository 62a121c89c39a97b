package model

import (
	"fmt"
	"time"
)

// Role of a platform user. Only managers and facilitators take part in the
// notification pipeline; students are inert here.
type Role string

const (
	RoleManager     Role = "manager"
	RoleFacilitator Role = "facilitator"
	RoleStudent     Role = "student"
)

// TaskStatus is the state of one tracked activity inside a weekly log.
type TaskStatus string

const (
	TaskDone       TaskStatus = "Done"
	TaskPending    TaskStatus = "Pending"
	TaskNotStarted TaskStatus = "Not Started"
)

// User represents a platform account.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	LastLogin time.Time `json:"last_login"`
}

// FullName returns the display name used in email content.
func (u User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// Module is a taught course unit.
type Module struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// CourseAssignment allocates a facilitator to teach one
// module/class/cohort/mode combination for a trimester.
type CourseAssignment struct {
	ID            int64  `json:"id"`
	ModuleID      int64  `json:"module_id"`
	ClassID       int64  `json:"class_id"`
	CohortID      int64  `json:"cohort_id"`
	ModeID        int64  `json:"mode_id"`
	FacilitatorID int64  `json:"facilitator_id"`
	Trimester     string `json:"trimester"`
	IntakePeriod  string `json:"intake_period"`
	IsActive      bool   `json:"is_active"`
}

// ActivityLog is one facilitator's weekly compliance record for one course
// assignment. At most one active log exists per (allocation, week, year);
// logs are never hard-deleted, IsActive=false is the tombstone.
type ActivityLog struct {
	ID            int64  `json:"id"`
	AllocationID  int64  `json:"allocation_id"`
	FacilitatorID int64  `json:"facilitator_id"`
	WeekNumber    int    `json:"week_number"` // ISO-8601 week, 1..53
	Year          int    `json:"year"`
	Attendance    []bool `json:"attendance"` // daily attendance marks

	FormativeOneGrading TaskStatus `json:"formative_one_grading"`
	FormativeTwoGrading TaskStatus `json:"formative_two_grading"`
	SummativeGrading    TaskStatus `json:"summative_grading"`
	CourseModeration    TaskStatus `json:"course_moderation"`
	IntranetSync        TaskStatus `json:"intranet_sync"`
	GradeBookStatus     TaskStatus `json:"grade_book_status"`

	Notes       string     `json:"notes,omitempty"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Submitted reports whether the log has been handed in.
func (l ActivityLog) Submitted() bool {
	return l.SubmittedAt != nil
}

// ActivityLogDetail is an ActivityLog joined with the people and module the
// composer needs to render a submission notice.
type ActivityLogDetail struct {
	ActivityLog
	Facilitator User   `json:"facilitator"`
	Module      Module `json:"module"`
}

// PendingLog is an unsubmitted log row denormalized for reminder content.
type PendingLog struct {
	ActivityLogID int64  `json:"activity_log_id"`
	ModuleName    string `json:"module_name"`
	ModuleCode    string `json:"module_code"`
	WeekNumber    int    `json:"week_number"`
	Year          int    `json:"year"`
}

// MissedLog is an unsubmitted log whose deadline has passed, denormalized with
// the facilitator's display data for manager alerts.
type MissedLog struct {
	ActivityLogID    int64  `json:"activity_log_id"`
	FacilitatorID    int64  `json:"facilitator_id"`
	FacilitatorName  string `json:"facilitator_name"`
	FacilitatorEmail string `json:"facilitator_email"`
	ModuleName       string `json:"module_name"`
	WeekNumber       int    `json:"week_number"`
	Year             int    `json:"year"`
}
