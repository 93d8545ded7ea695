package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
)

// PolicyRepository defines the interface for policy page persistence
type PolicyRepository interface {
	Create(ctx context.Context, policy *entity.Policy) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Policy, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Policy, error)
	Update(ctx context.Context, policy *entity.Policy) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, publishedOnly bool) ([]entity.Policy, error)
}
