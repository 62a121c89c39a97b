package dto

// CreateActivityLogRequest is the submission payload for one weekly log.
type CreateActivityLogRequest struct {
	AllocationID  int64  `json:"allocation_id" validate:"required"`
	FacilitatorID int64  `json:"facilitator_id" validate:"required"`
	WeekNumber    int    `json:"week_number" validate:"required,min=1,max=53"`
	Year          int    `json:"year" validate:"required,min=2020,max=2030"`
	Attendance    []bool `json:"attendance"`

	FormativeOneGrading string `json:"formative_one_grading" validate:"omitempty,oneof=Done Pending 'Not Started'"`
	FormativeTwoGrading string `json:"formative_two_grading" validate:"omitempty,oneof=Done Pending 'Not Started'"`
	SummativeGrading    string `json:"summative_grading" validate:"omitempty,oneof=Done Pending 'Not Started'"`
	CourseModeration    string `json:"course_moderation" validate:"omitempty,oneof=Done Pending 'Not Started'"`
	IntranetSync        string `json:"intranet_sync" validate:"omitempty,oneof=Done Pending 'Not Started'"`
	GradeBookStatus     string `json:"grade_book_status" validate:"omitempty,oneof=Done Pending 'Not Started'"`

	Notes string `json:"notes"`
}

// UpdateActivityLogRequest mutates an existing log. Fields absent from the
// body keep their stored values, so a partial update never wipes earlier
// progress. Updating always stamps the submission time, first submission
// triggers the notification.
type UpdateActivityLogRequest struct {
	Attendance []bool `json:"attendance"`

	FormativeOneGrading *string `json:"formative_one_grading" validate:"omitempty,oneof=Done Pending 'Not Started'"`
	FormativeTwoGrading *string `json:"formative_two_grading" validate:"omitempty,oneof=Done Pending 'Not Started'"`
	SummativeGrading    *string `json:"summative_grading" validate:"omitempty,oneof=Done Pending 'Not Started'"`
	CourseModeration    *string `json:"course_moderation" validate:"omitempty,oneof=Done Pending 'Not Started'"`
	IntranetSync        *string `json:"intranet_sync" validate:"omitempty,oneof=Done Pending 'Not Started'"`
	GradeBookStatus     *string `json:"grade_book_status" validate:"omitempty,oneof=Done Pending 'Not Started'"`

	Notes *string `json:"notes"`
}
