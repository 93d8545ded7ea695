package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/speakwise/speakwise-api/internal/application/service"
	"github.com/speakwise/speakwise-api/internal/presentation/http/dto/request"
	"github.com/speakwise/speakwise-api/internal/presentation/http/dto/response"
)

// ContentHandler handles FAQ, policy and quest HTTP requests
type ContentHandler struct {
	contentService *service.ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// ListFAQs handles the public FAQ listing
// @Summary List FAQs
// @Description List published FAQs ordered by position
// @Tags content
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /faqs [get]
func (h *ContentHandler) ListFAQs(c *gin.Context) {
	publishedOnly := !IsAdmin(c) || c.Query("all") != "true"

	faqs, err := h.contentService.ListFAQs(c.Request.Context(), publishedOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "FAQs retrieved successfully", gin.H{
		"faqs": faqs,
	})
}

// CreateFAQ handles FAQ creation
// @Summary Create FAQ
// @Description Create a new FAQ entry
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.FAQRequest true "FAQ data"
// @Success 201 {object} response.APIResponse
// @Router /admin/faqs [post]
func (h *ContentHandler) CreateFAQ(c *gin.Context) {
	var req request.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	faq, err := h.contentService.CreateFAQ(c.Request.Context(), &service.FAQInput{
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  req.Category,
		Position:  req.Position,
		Published: req.Published,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "FAQ created successfully", faq)
}

// UpdateFAQ handles FAQ updates
// @Summary Update FAQ
// @Description Update an existing FAQ entry
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "FAQ ID"
// @Param request body request.FAQRequest true "FAQ data"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/faqs/{id} [put]
func (h *ContentHandler) UpdateFAQ(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid FAQ ID")
		return
	}

	var req request.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	faq, err := h.contentService.UpdateFAQ(c.Request.Context(), id, &service.FAQInput{
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  req.Category,
		Position:  req.Position,
		Published: req.Published,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "FAQ updated successfully", faq)
}

// DeleteFAQ handles FAQ deletion
// @Summary Delete FAQ
// @Description Delete an FAQ entry
// @Tags content
// @Security BearerAuth
// @Param id path string true "FAQ ID"
// @Success 200 {object} response.APIResponse
// @Router /admin/faqs/{id} [delete]
func (h *ContentHandler) DeleteFAQ(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid FAQ ID")
		return
	}

	if err := h.contentService.DeleteFAQ(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "FAQ deleted successfully", nil)
}

// ListPolicies handles listing policy pages
// @Summary List Policies
// @Description List published policy pages
// @Tags content
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /policies [get]
func (h *ContentHandler) ListPolicies(c *gin.Context) {
	publishedOnly := !IsAdmin(c) || c.Query("all") != "true"

	policies, err := h.contentService.ListPolicies(c.Request.Context(), publishedOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Policies retrieved successfully", gin.H{
		"policies": policies,
	})
}

// GetPolicy handles fetching a policy page by slug
// @Summary Get Policy
// @Description Get a policy page by slug
// @Tags content
// @Produce json
// @Param slug path string true "Policy slug"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /policies/{slug} [get]
func (h *ContentHandler) GetPolicy(c *gin.Context) {
	policy, err := h.contentService.GetPolicy(c.Request.Context(), c.Param("slug"), IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Policy retrieved successfully", policy)
}

// CreatePolicy handles policy page creation
// @Summary Create Policy
// @Description Create a new policy page
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreatePolicyRequest true "Policy data"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /admin/policies [post]
func (h *ContentHandler) CreatePolicy(c *gin.Context) {
	var req request.CreatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	policy, err := h.contentService.CreatePolicy(c.Request.Context(), &service.CreatePolicyInput{
		Title:   req.Title,
		Content: req.Content,
		Publish: req.Publish,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Policy created successfully", policy)
}

// UpdatePolicy handles policy page updates
// @Summary Update Policy
// @Description Update a policy page with optimistic version checking
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Policy ID"
// @Param request body request.UpdatePolicyRequest true "Policy data"
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /admin/policies/{id} [put]
func (h *ContentHandler) UpdatePolicy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid policy ID")
		return
	}

	var req request.UpdatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	policy, err := h.contentService.UpdatePolicy(c.Request.Context(), id, &service.UpdatePolicyInput{
		Title:   req.Title,
		Content: req.Content,
		Version: req.Version,
		Publish: req.Publish,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Policy updated successfully", policy)
}

// DeletePolicy handles policy page deletion
// @Summary Delete Policy
// @Description Delete a policy page
// @Tags content
// @Security BearerAuth
// @Param id path string true "Policy ID"
// @Success 200 {object} response.APIResponse
// @Router /admin/policies/{id} [delete]
func (h *ContentHandler) DeletePolicy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid policy ID")
		return
	}

	if err := h.contentService.DeletePolicy(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Policy deleted successfully", nil)
}

// ListQuests handles listing quests
// @Summary List Quests
// @Description List quests; pass active=true for currently running ones
// @Tags content
// @Produce json
// @Param active query bool false "Only active quests"
// @Success 200 {object} response.APIResponse
// @Router /quests [get]
func (h *ContentHandler) ListQuests(c *gin.Context) {
	quests, err := h.contentService.ListQuests(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quests retrieved successfully", gin.H{
		"quests": quests,
	})
}

// CreateQuest handles quest creation
// @Summary Create Quest
// @Description Create a new quest
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.QuestRequest true "Quest data"
// @Success 201 {object} response.APIResponse
// @Router /admin/quests [post]
func (h *ContentHandler) CreateQuest(c *gin.Context) {
	var req request.QuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quest, err := h.contentService.CreateQuest(c.Request.Context(), &service.QuestInput{
		Title:        req.Title,
		Description:  req.Description,
		RewardPoints: req.RewardPoints,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
		Active:       req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quest created successfully", quest)
}

// UpdateQuest handles quest updates
// @Summary Update Quest
// @Description Update an existing quest
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quest ID"
// @Param request body request.QuestRequest true "Quest data"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/quests/{id} [put]
func (h *ContentHandler) UpdateQuest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quest ID")
		return
	}

	var req request.QuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quest, err := h.contentService.UpdateQuest(c.Request.Context(), id, &service.QuestInput{
		Title:        req.Title,
		Description:  req.Description,
		RewardPoints: req.RewardPoints,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
		Active:       req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quest updated successfully", quest)
}

// DeleteQuest handles quest deletion
// @Summary Delete Quest
// @Description Delete a quest
// @Tags content
// @Security BearerAuth
// @Param id path string true "Quest ID"
// @Success 200 {object} response.APIResponse
// @Router /admin/quests/{id} [delete]
func (h *ContentHandler) DeleteQuest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quest ID")
		return
	}

	if err := h.contentService.DeleteQuest(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quest deleted successfully", nil)
}
