package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/speakwise/speakwise-api/internal/application/service"
	"github.com/speakwise/speakwise-api/internal/domain/enum"
	"github.com/speakwise/speakwise-api/internal/domain/repository"
	"github.com/speakwise/speakwise-api/internal/presentation/http/dto/request"
	"github.com/speakwise/speakwise-api/internal/presentation/http/dto/response"
	"github.com/speakwise/speakwise-api/pkg/pagination"
)

// CallHandler handles call request HTTP requests
type CallHandler struct {
	callService *service.CallService
}

// NewCallHandler creates a new call handler
func NewCallHandler(callService *service.CallService) *CallHandler {
	return &CallHandler{callService: callService}
}

func parseCallStatus(s string) (enum.CallStatus, bool) {
	switch s {
	case "Requested":
		return enum.CallStatusRequested, true
	case "Scheduled":
		return enum.CallStatusScheduled, true
	case "Completed":
		return enum.CallStatusCompleted, true
	case "Cancelled":
		return enum.CallStatusCancelled, true
	}
	return enum.CallStatusRequested, false
}

// Request handles a callback request from a visitor or logged-in user
// @Summary Request Call
// @Description Request a callback from a counsellor
// @Tags calls
// @Accept json
// @Produce json
// @Param request body request.RequestCallRequest true "Call request data"
// @Success 201 {object} response.APIResponse
// @Router /calls [post]
func (h *CallHandler) Request(c *gin.Context) {
	var req request.RequestCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	call, err := h.callService.RequestCall(c.Request.Context(), &service.RequestCallInput{
		UserID:        GetUserID(c),
		Name:          req.Name,
		Phone:         req.Phone,
		PreferredSlot: req.PreferredSlot,
		Topic:         req.Topic,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Call request submitted successfully", call)
}

// My handles listing the current user's call requests
// @Summary My Calls
// @Description List the current user's call requests
// @Tags calls
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /calls/my [get]
func (h *CallHandler) My(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	calls, err := h.callService.MyCalls(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Call requests retrieved successfully", gin.H{
		"calls": calls,
	})
}

// List handles the admin call request listing
// @Summary List Calls
// @Description List call requests with filters
// @Tags calls
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Per page"
// @Param status query string false "Call status"
// @Param search query string false "Search by name or phone"
// @Success 200 {object} response.APIResponse
// @Router /admin/calls [get]
func (h *CallHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.CallFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		if status, ok := parseCallStatus(statusStr); ok {
			params.Status = &status
		}
	}

	result, err := h.callService.ListCalls(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Call requests retrieved successfully", result)
}

// Update handles scheduling or resolving a call request
// @Summary Update Call
// @Description Schedule, complete or cancel a call request
// @Tags calls
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Call request ID"
// @Param request body request.UpdateCallRequest true "Call update data"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/calls/{id} [put]
func (h *CallHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid call request ID")
		return
	}

	var req request.UpdateCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateCallInput{
		ScheduledAt: req.ScheduledAt,
		Notes:       req.Notes,
	}

	if req.Status != nil {
		status, ok := parseCallStatus(*req.Status)
		if !ok {
			response.BadRequest(c, "Invalid call status")
			return
		}
		input.Status = &status
	}

	call, err := h.callService.UpdateCall(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Call request updated successfully", call)
}

// Delete handles call request deletion
// @Summary Delete Call
// @Description Delete a call request
// @Tags calls
// @Security BearerAuth
// @Param id path string true "Call request ID"
// @Success 200 {object} response.APIResponse
// @Router /admin/calls/{id} [delete]
func (h *CallHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid call request ID")
		return
	}

	if err := h.callService.DeleteCall(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Call request deleted successfully", nil)
}
