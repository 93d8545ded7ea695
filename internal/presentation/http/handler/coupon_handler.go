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
	"github.com/speakwise/speakwise-api/pkg/apperror"
	"github.com/speakwise/speakwise-api/pkg/pagination"
)

// CouponHandler handles coupon-related HTTP requests
type CouponHandler struct {
	couponService *service.CouponService
}

// NewCouponHandler creates a new coupon handler
func NewCouponHandler(couponService *service.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

// Apply validates a coupon against a course for the current user
// @Summary Apply Coupon
// @Description Validate a coupon code and return the recomputed pricing
// @Tags coupons
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.ApplyCouponRequest true "Coupon and course"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /coupons/apply [post]
func (h *CouponHandler) Apply(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		response.BadRequest(c, "Invalid course ID")
		return
	}

	output, err := h.couponService.ApplyCoupon(c.Request.Context(), &service.ApplyCouponInput{
		UserID:   *userID,
		Code:     req.Code,
		CourseID: courseID,
	})
	if err != nil {
		// Business rejections come back as a 200 envelope with is_valid false
		// so the checkout screen can show the reason inline
		if appErr := apperror.GetAppError(err); appErr.Code == 400 {
			response.OK(c, "Coupon validated", gin.H{
				"is_valid": false,
				"error":    appErr.Message,
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Coupon applied successfully", gin.H{
		"is_valid": true,
		"coupon": gin.H{
			"code":           output.Coupon.Code,
			"discount_type":  output.Coupon.DiscountType,
			"discount_value": output.Coupon.DiscountValue,
		},
		"discount_amount": output.Discount,
		"final_amount":    output.Pricing.Total,
		"pricing":         output.Pricing,
	})
}

// List handles the admin coupon listing
// @Summary List Coupons
// @Description List coupons with pagination
// @Tags coupons
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Per page"
// @Param search query string false "Search term"
// @Success 200 {object} response.APIResponse
// @Router /admin/coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.couponService.ListCoupons(c.Request.Context(), &repository.CouponFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:     c.Query("search"),
		ActiveOnly: c.Query("active") == "true",
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Coupons retrieved successfully", result)
}

// Get handles fetching a single coupon
// @Summary Get Coupon
// @Description Get a coupon by ID
// @Tags coupons
// @Security BearerAuth
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid coupon ID")
		return
	}

	coupon, err := h.couponService.GetCoupon(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Coupon retrieved successfully", coupon)
}

// Create handles coupon creation
// @Summary Create Coupon
// @Description Create a new coupon
// @Tags coupons
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateCouponRequest true "Coupon data"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /admin/coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req request.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateCouponInput{
		Code:              req.Code,
		DiscountType:      enum.DiscountType(req.DiscountType),
		DiscountValue:     req.DiscountValue,
		MinOrderAmount:    req.MinOrderAmount,
		MaxDiscountAmount: req.MaxDiscountAmount,
		ValidFrom:         req.ValidFrom,
		ValidUntil:        req.ValidUntil,
		UsageLimit:        req.UsageLimit,
		PerUserLimit:      req.PerUserLimit,
		Active:            req.Active,
	}

	if req.CourseID != nil {
		courseID, err := uuid.Parse(*req.CourseID)
		if err != nil {
			response.BadRequest(c, "Invalid course ID")
			return
		}
		input.CourseID = &courseID
	}

	coupon, err := h.couponService.CreateCoupon(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Coupon created successfully", coupon)
}

// Update handles coupon updates
// @Summary Update Coupon
// @Description Update an existing coupon
// @Tags coupons
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Coupon ID"
// @Param request body request.UpdateCouponRequest true "Coupon data"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/coupons/{id} [put]
func (h *CouponHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid coupon ID")
		return
	}

	var req request.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	coupon, err := h.couponService.UpdateCoupon(c.Request.Context(), id, &service.UpdateCouponInput{
		DiscountValue:     req.DiscountValue,
		MinOrderAmount:    req.MinOrderAmount,
		MaxDiscountAmount: req.MaxDiscountAmount,
		ValidFrom:         req.ValidFrom,
		ValidUntil:        req.ValidUntil,
		UsageLimit:        req.UsageLimit,
		PerUserLimit:      req.PerUserLimit,
		Active:            req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Coupon updated successfully", coupon)
}

// Delete handles coupon deletion
// @Summary Delete Coupon
// @Description Delete a coupon
// @Tags coupons
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid coupon ID")
		return
	}

	if err := h.couponService.DeleteCoupon(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Coupon deleted successfully", nil)
}
