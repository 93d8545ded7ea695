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

// QuestionHandler handles quiz question HTTP requests
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

func questionInputFromRequest(req *request.QuestionRequest) *service.QuestionInput {
	options := make([]service.QuestionOptionInput, 0, len(req.Options))
	for _, opt := range req.Options {
		options = append(options, service.QuestionOptionInput{
			Text:    opt.Text,
			Correct: opt.Correct,
		})
	}

	return &service.QuestionInput{
		Prompt:      req.Prompt,
		Type:        enum.QuestionType(req.Type),
		Difficulty:  req.Difficulty,
		Explanation: req.Explanation,
		Published:   req.Published,
		Options:     options,
	}
}

// List handles listing quiz questions
// @Summary List Questions
// @Description List quiz questions with pagination
// @Tags questions
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Per page"
// @Param difficulty query string false "Difficulty"
// @Success 200 {object} response.APIResponse
// @Router /questions [get]
func (h *QuestionHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.questionService.ListQuestions(c.Request.Context(), &repository.QuestionFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Difficulty:    c.Query("difficulty"),
		PublishedOnly: !IsAdmin(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Questions retrieved successfully", result)
}

// Get handles fetching a single question with its options
// @Summary Get Question
// @Description Get a quiz question by ID
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /questions/{id} [get]
func (h *QuestionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid question ID")
		return
	}

	question, err := h.questionService.GetQuestion(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Question retrieved successfully", question)
}

// Create handles question creation
// @Summary Create Question
// @Description Create a new quiz question with options
// @Tags questions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.QuestionRequest true "Question data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /admin/questions [post]
func (h *QuestionHandler) Create(c *gin.Context) {
	var req request.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	question, err := h.questionService.CreateQuestion(c.Request.Context(), questionInputFromRequest(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Question created successfully", question)
}

// Update handles question updates, replacing its options
// @Summary Update Question
// @Description Update a quiz question and replace its options
// @Tags questions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param request body request.QuestionRequest true "Question data"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/questions/{id} [put]
func (h *QuestionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid question ID")
		return
	}

	var req request.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	question, err := h.questionService.UpdateQuestion(c.Request.Context(), id, questionInputFromRequest(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Question updated successfully", question)
}

// Delete handles question deletion
// @Summary Delete Question
// @Description Delete a quiz question
// @Tags questions
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Success 200 {object} response.APIResponse
// @Router /admin/questions/{id} [delete]
func (h *QuestionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid question ID")
		return
	}

	if err := h.questionService.DeleteQuestion(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Question deleted successfully", nil)
}
