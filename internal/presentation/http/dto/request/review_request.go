package request

// SubmitReviewRequest represents a course review submission
type SubmitReviewRequest struct {
	CourseID string `json:"course_id" binding:"required,uuid"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Body     string `json:"body" binding:"max=2000"`
}
