package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
)

// FAQRepository defines the interface for FAQ persistence
type FAQRepository interface {
	Create(ctx context.Context, faq *entity.FAQ) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FAQ, error)
	Update(ctx context.Context, faq *entity.FAQ) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, publishedOnly bool) ([]entity.FAQ, error)
}
