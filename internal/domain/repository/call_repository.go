package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/internal/domain/enum"
	"github.com/speakwise/speakwise-api/pkg/pagination"
)

// CallFilterParams holds filtering options for listing call requests
type CallFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.CallStatus
	Search     string
}

// CallRepository defines the interface for call request persistence
type CallRepository interface {
	Create(ctx context.Context, call *entity.CallRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CallRequest, error)
	Update(ctx context.Context, call *entity.CallRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *CallFilterParams) ([]entity.CallRequest, int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.CallRequest, error)
}
