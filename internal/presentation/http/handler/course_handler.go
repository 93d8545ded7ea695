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

// CourseHandler handles course-related HTTP requests
type CourseHandler struct {
	courseService *service.CourseService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// Browse handles the public course catalog with cursor pagination
// @Summary Browse Courses
// @Description List published courses with cursor pagination
// @Tags courses
// @Produce json
// @Param cursor query string false "Cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} response.APIResponse
// @Router /courses [get]
func (h *CourseHandler) Browse(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))

	params := &pagination.CursorParams{
		Cursor:    c.Query("cursor"),
		Direction: pagination.CursorDirection(c.DefaultQuery("direction", "next")),
		Limit:     limit,
	}

	result, err := h.courseService.BrowseCourses(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Courses retrieved successfully", result)
}

// Get handles fetching a single course by slug
// @Summary Get Course
// @Description Get a course with its modules, rating and enrollment state
// @Tags courses
// @Produce json
// @Param slug path string true "Course slug"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /courses/{slug} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	userID := uuid.Nil
	if id := GetUserID(c); id != nil {
		userID = *id
	}

	detail, err := h.courseService.GetCourse(c.Request.Context(), c.Param("slug"), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Course retrieved successfully", detail)
}

// ModuleVideoURL returns a signed playback URL for an enrolled user
// @Summary Module Video URL
// @Description Get a time-limited signed video URL for a course module
// @Tags courses
// @Security BearerAuth
// @Produce json
// @Param id path string true "Module ID"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Router /modules/{id}/video-url [get]
func (h *CourseHandler) ModuleVideoURL(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	moduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid module ID")
		return
	}

	url, err := h.courseService.ModuleVideoURL(c.Request.Context(), moduleID, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Video URL generated successfully", gin.H{
		"url": url,
	})
}

// SignedAssetURL mints a signed URL for a public course asset
// @Summary Signed Asset URL
// @Description Get a time-limited signed URL for a course asset
// @Tags courses
// @Produce json
// @Param type query string true "Asset type"
// @Param key query string true "Asset key"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /courses/signed-url [get]
func (h *CourseHandler) SignedAssetURL(c *gin.Context) {
	url, err := h.courseService.AssetURL(c.Query("type"), c.Query("key"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Signed URL generated successfully", gin.H{
		"url": url,
	})
}

// List handles the admin course listing with page pagination
// @Summary List Courses
// @Description List all courses including unpublished ones
// @Tags courses
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Per page"
// @Param search query string false "Search term"
// @Success 200 {object} response.APIResponse
// @Router /admin/courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.courseService.ListCourses(c.Request.Context(), &repository.CourseFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Courses retrieved successfully", result)
}

// Create handles course creation
// @Summary Create Course
// @Description Create a new course
// @Tags courses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateCourseRequest true "Course data"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /admin/courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req request.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	course, err := h.courseService.CreateCourse(c.Request.Context(), &service.CreateCourseInput{
		Title:         req.Title,
		Description:   req.Description,
		Level:         req.Level,
		Language:      req.Language,
		ThumbnailKey:  req.ThumbnailKey,
		MRP:           req.MRP,
		Price:         req.Price,
		DurationWeeks: req.DurationWeeks,
		Published:     req.Published,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Course created successfully", course)
}

// Update handles course updates
// @Summary Update Course
// @Description Update an existing course
// @Tags courses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param request body request.UpdateCourseRequest true "Course data"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid course ID")
		return
	}

	var req request.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	course, err := h.courseService.UpdateCourse(c.Request.Context(), id, &service.UpdateCourseInput{
		Title:         req.Title,
		Description:   req.Description,
		Level:         req.Level,
		ThumbnailKey:  req.ThumbnailKey,
		MRP:           req.MRP,
		Price:         req.Price,
		DurationWeeks: req.DurationWeeks,
		Published:     req.Published,
		ClearMRP:      req.ClearMRP,
		ClearPrice:    req.ClearPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Course updated successfully", course)
}

// Delete handles course deletion
// @Summary Delete Course
// @Description Delete a course
// @Tags courses
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid course ID")
		return
	}

	if err := h.courseService.DeleteCourse(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Course deleted successfully", nil)
}

// CreateModule handles adding a module to a course
// @Summary Create Module
// @Description Add a content module to a course
// @Tags courses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param request body request.CreateModuleRequest true "Module data"
// @Success 201 {object} response.APIResponse
// @Router /admin/courses/{id}/modules [post]
func (h *CourseHandler) CreateModule(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid course ID")
		return
	}

	var req request.CreateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	module, err := h.courseService.CreateModule(c.Request.Context(), &service.CreateModuleInput{
		CourseID:        courseID,
		Title:           req.Title,
		Position:        req.Position,
		VideoKey:        req.VideoKey,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Module created successfully", module)
}

// UpdateModule handles module updates
// @Summary Update Module
// @Description Update a course module
// @Tags courses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Module ID"
// @Param request body request.UpdateModuleRequest true "Module data"
// @Success 200 {object} response.APIResponse
// @Router /admin/modules/{id} [put]
func (h *CourseHandler) UpdateModule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid module ID")
		return
	}

	var req request.UpdateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	module, err := h.courseService.UpdateModule(c.Request.Context(), id, &service.UpdateModuleInput{
		Title:           req.Title,
		Position:        req.Position,
		VideoKey:        req.VideoKey,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Module updated successfully", module)
}

// DeleteModule handles module deletion
// @Summary Delete Module
// @Description Remove a module from a course
// @Tags courses
// @Security BearerAuth
// @Param id path string true "Module ID"
// @Success 200 {object} response.APIResponse
// @Router /admin/modules/{id} [delete]
func (h *CourseHandler) DeleteModule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid module ID")
		return
	}

	if err := h.courseService.DeleteModule(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Module deleted successfully", nil)
}
