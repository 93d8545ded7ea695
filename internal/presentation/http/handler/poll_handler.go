package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/speakwise/speakwise-api/internal/application/service"
	"github.com/speakwise/speakwise-api/internal/domain/enum"
	"github.com/speakwise/speakwise-api/internal/presentation/http/dto/request"
	"github.com/speakwise/speakwise-api/internal/presentation/http/dto/response"
)

// PollHandler handles poll-related HTTP requests
type PollHandler struct {
	pollService *service.PollService
}

// NewPollHandler creates a new poll handler
func NewPollHandler(pollService *service.PollService) *PollHandler {
	return &PollHandler{pollService: pollService}
}

func parsePollStatus(s string) (enum.PollStatus, bool) {
	switch s {
	case "Draft":
		return enum.PollStatusDraft, true
	case "Open":
		return enum.PollStatusOpen, true
	case "Closed":
		return enum.PollStatusClosed, true
	}
	return enum.PollStatusDraft, false
}

// List handles listing polls
// @Summary List Polls
// @Description List polls, optionally filtered by status
// @Tags polls
// @Produce json
// @Param status query string false "Poll status"
// @Success 200 {object} response.APIResponse
// @Router /polls [get]
func (h *PollHandler) List(c *gin.Context) {
	var status *enum.PollStatus
	if statusStr := c.Query("status"); statusStr != "" {
		if s, ok := parsePollStatus(statusStr); ok {
			status = &s
		}
	} else if !IsAdmin(c) {
		// The public listing only shows open polls
		open := enum.PollStatusOpen
		status = &open
	}

	polls, err := h.pollService.ListPolls(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Polls retrieved successfully", gin.H{
		"polls": polls,
	})
}

// Get handles fetching a poll with its options and tallies
// @Summary Get Poll
// @Description Get a poll with options and vote counts
// @Tags polls
// @Produce json
// @Param id path string true "Poll ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /polls/{id} [get]
func (h *PollHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid poll ID")
		return
	}

	poll, err := h.pollService.GetPoll(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Poll retrieved successfully", poll)
}

// Create handles poll creation
// @Summary Create Poll
// @Description Create a new poll in draft state
// @Tags polls
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreatePollRequest true "Poll data"
// @Success 201 {object} response.APIResponse
// @Router /admin/polls [post]
func (h *PollHandler) Create(c *gin.Context) {
	var req request.CreatePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	poll, err := h.pollService.CreatePoll(c.Request.Context(), &service.CreatePollInput{
		Question: req.Question,
		Options:  req.Options,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Poll created successfully", poll)
}

// SetStatus moves a poll between draft, open and closed
// @Summary Set Poll Status
// @Description Open or close a poll
// @Tags polls
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Poll ID"
// @Param request body request.UpdatePollStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /admin/polls/{id}/status [put]
func (h *PollHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid poll ID")
		return
	}

	var req request.UpdatePollStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, ok := parsePollStatus(req.Status)
	if !ok {
		response.BadRequest(c, "Invalid poll status")
		return
	}

	poll, err := h.pollService.SetPollStatus(c.Request.Context(), id, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Poll status updated successfully", poll)
}

// Delete handles poll deletion
// @Summary Delete Poll
// @Description Delete a poll
// @Tags polls
// @Security BearerAuth
// @Param id path string true "Poll ID"
// @Success 200 {object} response.APIResponse
// @Router /admin/polls/{id} [delete]
func (h *PollHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid poll ID")
		return
	}

	if err := h.pollService.DeletePoll(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Poll deleted successfully", nil)
}

// Vote records the current user's vote on a poll
// @Summary Vote
// @Description Vote on an open poll
// @Tags polls
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Poll ID"
// @Param request body request.VoteRequest true "Selected option"
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /polls/{id}/vote [post]
func (h *PollHandler) Vote(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	pollID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid poll ID")
		return
	}

	var req request.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	optionID, err := uuid.Parse(req.OptionID)
	if err != nil {
		response.BadRequest(c, "Invalid option ID")
		return
	}

	poll, err := h.pollService.Vote(c.Request.Context(), &service.VoteInput{
		PollID:   pollID,
		OptionID: optionID,
		UserID:   *userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vote recorded successfully", poll)
}
