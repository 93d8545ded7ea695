package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/internal/domain/enum"
	"github.com/speakwise/speakwise-api/internal/domain/repository"
	"github.com/speakwise/speakwise-api/pkg/apperror"
	"github.com/speakwise/speakwise-api/pkg/pagination"
)

// CallService handles counselling call requests
type CallService struct {
	callRepo repository.CallRepository
}

// NewCallService creates a new call service
func NewCallService(callRepo repository.CallRepository) *CallService {
	return &CallService{callRepo: callRepo}
}

// RequestCallInput represents a call request. UserID is nil for anonymous
// requests from the marketing site.
type RequestCallInput struct {
	UserID        *uuid.UUID
	Name          string
	Phone         string
	PreferredSlot string
	Topic         string
}

// RequestCall creates a new call request
func (s *CallService) RequestCall(ctx context.Context, input *RequestCallInput) (*entity.CallRequest, error) {
	call := &entity.CallRequest{
		UserID:        input.UserID,
		Name:          input.Name,
		Phone:         input.Phone,
		PreferredSlot: input.PreferredSlot,
		Topic:         input.Topic,
		Status:        enum.CallStatusRequested,
	}
	if err := s.callRepo.Create(ctx, call); err != nil {
		return nil, err
	}
	return call, nil
}

// ListCalls returns a page of call requests for the dashboard
func (s *CallService) ListCalls(ctx context.Context, params *repository.CallFilterParams) (*pagination.PaginatedResult[entity.CallRequest], error) {
	calls, total, err := s.callRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return &pagination.PaginatedResult[entity.CallRequest]{
		Items:      calls,
		Pagination: pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total),
	}, nil
}

// MyCalls returns the user's own call requests
func (s *CallService) MyCalls(ctx context.Context, userID uuid.UUID) ([]entity.CallRequest, error) {
	return s.callRepo.ListByUser(ctx, userID)
}

// UpdateCallInput represents the admin-side call update
type UpdateCallInput struct {
	Status      *enum.CallStatus
	ScheduledAt *time.Time
	Notes       *string
}

// UpdateCall schedules or resolves a call request
func (s *CallService) UpdateCall(ctx context.Context, id uuid.UUID, input *UpdateCallInput) (*entity.CallRequest, error) {
	call, err := s.callRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if call == nil {
		return nil, apperror.NewNotFoundError("Call request")
	}

	if input.Status != nil {
		if *input.Status == enum.CallStatusScheduled && input.ScheduledAt == nil && call.ScheduledAt == nil {
			return nil, apperror.NewBadRequestError("Scheduling a call requires a time")
		}
		call.Status = *input.Status
	}
	if input.ScheduledAt != nil {
		call.ScheduledAt = input.ScheduledAt
	}
	if input.Notes != nil {
		call.Notes = *input.Notes
	}

	if err := s.callRepo.Update(ctx, call); err != nil {
		return nil, err
	}
	return call, nil
}

// DeleteCall removes a call request
func (s *CallService) DeleteCall(ctx context.Context, id uuid.UUID) error {
	call, err := s.callRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if call == nil {
		return apperror.NewNotFoundError("Call request")
	}
	return s.callRepo.Delete(ctx, id)
}
