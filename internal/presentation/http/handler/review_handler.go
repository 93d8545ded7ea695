package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/speakwise/speakwise-api/internal/application/service"
	"github.com/speakwise/speakwise-api/internal/domain/repository"
	"github.com/speakwise/speakwise-api/internal/presentation/http/dto/request"
	"github.com/speakwise/speakwise-api/internal/presentation/http/dto/response"
	"github.com/speakwise/speakwise-api/pkg/pagination"
)

// ReviewHandler handles course review HTTP requests
type ReviewHandler struct {
	reviewService *service.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// List handles listing reviews
// @Summary List Reviews
// @Description List reviews; public callers only see approved ones
// @Tags reviews
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Per page"
// @Param course_id query string false "Filter by course"
// @Success 200 {object} response.APIResponse
// @Router /reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.ReviewFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		ApprovedOnly: !IsAdmin(c),
	}

	if courseIDStr := c.Query("course_id"); courseIDStr != "" {
		if courseID, err := uuid.Parse(courseIDStr); err == nil {
			params.CourseID = &courseID
		}
	}

	result, err := h.reviewService.ListReviews(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Reviews retrieved successfully", result)
}

// Submit handles review submission by an enrolled user
// @Summary Submit Review
// @Description Submit or replace a review for an enrolled course
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.SubmitReviewRequest true "Review data"
// @Success 201 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Router /reviews [post]
func (h *ReviewHandler) Submit(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		response.BadRequest(c, "Invalid course ID")
		return
	}

	review, err := h.reviewService.SubmitReview(c.Request.Context(), &service.SubmitReviewInput{
		UserID:   *userID,
		CourseID: courseID,
		Rating:   req.Rating,
		Body:     req.Body,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Review submitted successfully", review)
}

// Approve handles review approval
// @Summary Approve Review
// @Description Approve a pending review so it appears publicly
// @Tags reviews
// @Security BearerAuth
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/reviews/{id}/approve [put]
func (h *ReviewHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	review, err := h.reviewService.ApproveReview(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Review approved successfully", review)
}

// Delete handles review deletion
// @Summary Delete Review
// @Description Delete a review
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} response.APIResponse
// @Router /admin/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Review deleted successfully", nil)
}
