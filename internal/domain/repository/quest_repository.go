package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
)

// QuestRepository defines the interface for quest persistence
type QuestRepository interface {
	Create(ctx context.Context, quest *entity.Quest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quest, error)
	Update(ctx context.Context, quest *entity.Quest) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, activeOnly bool) ([]entity.Quest, error)
}
