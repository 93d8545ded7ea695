package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/internal/domain/enum"
	domainRepo "github.com/speakwise/speakwise-api/internal/domain/repository"
)

type pollRepository struct {
	db *gorm.DB
}

// NewPollRepository creates a new poll repository
func NewPollRepository(db *gorm.DB) domainRepo.PollRepository {
	return &pollRepository{db: db}
}

func (r *pollRepository) Create(ctx context.Context, poll *entity.Poll) error {
	return r.db.WithContext(ctx).Create(poll).Error
}

func (r *pollRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Poll, error) {
	var poll entity.Poll
	err := r.db.WithContext(ctx).First(&poll, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &poll, err
}

func (r *pollRepository) GetWithOptions(ctx context.Context, id uuid.UUID) (*entity.Poll, error) {
	var poll entity.Poll
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&poll, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &poll, err
}

func (r *pollRepository) Update(ctx context.Context, poll *entity.Poll) error {
	return r.db.WithContext(ctx).Save(poll).Error
}

func (r *pollRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Poll{}, "id = ?", id).Error
}

func (r *pollRepository) List(ctx context.Context, status *enum.PollStatus) ([]entity.Poll, error) {
	var polls []entity.Poll
	query := r.db.WithContext(ctx).Model(&entity.Poll{}).Preload("Options")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("created_at DESC").Find(&polls).Error
	return polls, err
}

func (r *pollRepository) CreateOption(ctx context.Context, option *entity.PollOption) error {
	return r.db.WithContext(ctx).Create(option).Error
}

func (r *pollRepository) DeleteOption(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.PollOption{}, "id = ?", id).Error
}

func (r *pollRepository) CreateVote(ctx context.Context, vote *entity.PollVote) error {
	return r.db.WithContext(ctx).Create(vote).Error
}

func (r *pollRepository) GetVote(ctx context.Context, pollID, userID uuid.UUID) (*entity.PollVote, error) {
	var vote entity.PollVote
	err := r.db.WithContext(ctx).
		First(&vote, "poll_id = ? AND user_id = ?", pollID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vote, err
}

// IncrementVoteCount bumps vote_count atomically
func (r *pollRepository) IncrementVoteCount(ctx context.Context, optionID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entity.PollOption{}).
		Where("id = ?", optionID).
		UpdateColumn("vote_count", gorm.Expr("vote_count + 1")).Error
}
