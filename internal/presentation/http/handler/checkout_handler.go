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
	"github.com/speakwise/speakwise-api/internal/presentation/http/middleware"
	"github.com/speakwise/speakwise-api/pkg/pagination"
)

// CheckoutHandler handles order and payment HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// CreateOrder handles order submission
// @Summary Create Order
// @Description Create an order for a course and open a gateway checkout
// @Tags checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Idempotency key"
// @Param request body request.CreateOrderRequest true "Order data"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /orders [post]
func (h *CheckoutHandler) CreateOrder(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		response.BadRequest(c, "Invalid course ID")
		return
	}

	output, err := h.checkoutService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		UserID:         *userID,
		CourseID:       courseID,
		CouponCode:     req.CouponCode,
		ClientTotal:    req.Total,
		IdempotencyKey: c.GetHeader(middleware.IdempotencyKeyHeader),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", gin.H{
		"order":             output.Order,
		"pricing":           output.Pricing,
		"razorpay_order_id": output.RazorpayOrderID,
		"free":              output.Free,
	})
}

// VerifyPayment handles the gateway payment callback
// @Summary Verify Payment
// @Description Verify a Razorpay payment signature and fulfill the order
// @Tags checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.VerifyPaymentRequest true "Payment verification data"
// @Success 200 {object} response.APIResponse
// @Failure 402 {object} response.APIResponse
// @Router /orders/verify-payment [post]
func (h *CheckoutHandler) VerifyPayment(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.checkoutService.VerifyPayment(c.Request.Context(), &service.VerifyPaymentInput{
		UserID:            *userID,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpaySignature: req.RazorpaySignature,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment verified successfully", gin.H{
		"order": order,
	})
}

// GetOrder handles fetching a single order
// @Summary Get Order
// @Description Get an order by ID
// @Tags checkout
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /orders/{id} [get]
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.checkoutService.GetOrder(c.Request.Context(), orderID, *userID, IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// MyOrders handles listing the current user's orders
// @Summary My Orders
// @Description List the current user's orders
// @Tags checkout
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Per page"
// @Success 200 {object} response.APIResponse
// @Router /orders [get]
func (h *CheckoutHandler) MyOrders(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.checkoutService.ListOrders(c.Request.Context(), &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		UserID: userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// MyEnrollments handles listing the current user's enrollments
// @Summary My Enrollments
// @Description List the courses the current user is enrolled in
// @Tags checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /enrollments [get]
func (h *CheckoutHandler) MyEnrollments(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	enrollments, err := h.checkoutService.MyEnrollments(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Enrollments retrieved successfully", gin.H{
		"enrollments": enrollments,
	})
}

// ListOrders handles the admin order listing
// @Summary List Orders
// @Description List all orders with filters
// @Tags checkout
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Per page"
// @Param status query string false "Order status"
// @Param search query string false "Search by order number"
// @Success 200 {object} response.APIResponse
// @Router /admin/orders [get]
func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		if statusInt, err := strconv.Atoi(statusStr); err == nil {
			status := enum.OrderStatus(statusInt)
			params.Status = &status
		}
	}

	if userIDStr := c.Query("user_id"); userIDStr != "" {
		if userID, err := uuid.Parse(userIDStr); err == nil {
			params.UserID = &userID
		}
	}

	result, err := h.checkoutService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}
