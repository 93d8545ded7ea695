package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	domainRepo "github.com/speakwise/speakwise-api/internal/domain/repository"
)

type faqRepository struct {
	db *gorm.DB
}

// NewFAQRepository creates a new FAQ repository
func NewFAQRepository(db *gorm.DB) domainRepo.FAQRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) Create(ctx context.Context, faq *entity.FAQ) error {
	return r.db.WithContext(ctx).Create(faq).Error
}

func (r *faqRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FAQ, error) {
	var faq entity.FAQ
	err := r.db.WithContext(ctx).First(&faq, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &faq, err
}

func (r *faqRepository) Update(ctx context.Context, faq *entity.FAQ) error {
	return r.db.WithContext(ctx).Save(faq).Error
}

func (r *faqRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.FAQ{}, "id = ?", id).Error
}

func (r *faqRepository) List(ctx context.Context, publishedOnly bool) ([]entity.FAQ, error) {
	var faqs []entity.FAQ
	query := r.db.WithContext(ctx).Model(&entity.FAQ{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	err := query.Order("position ASC, created_at ASC").Find(&faqs).Error
	return faqs, err
}

type policyRepository struct {
	db *gorm.DB
}

// NewPolicyRepository creates a new policy repository
func NewPolicyRepository(db *gorm.DB) domainRepo.PolicyRepository {
	return &policyRepository{db: db}
}

func (r *policyRepository) Create(ctx context.Context, policy *entity.Policy) error {
	return r.db.WithContext(ctx).Create(policy).Error
}

func (r *policyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Policy, error) {
	var policy entity.Policy
	err := r.db.WithContext(ctx).First(&policy, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &policy, err
}

func (r *policyRepository) GetBySlug(ctx context.Context, slug string) (*entity.Policy, error) {
	var policy entity.Policy
	err := r.db.WithContext(ctx).First(&policy, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &policy, err
}

func (r *policyRepository) Update(ctx context.Context, policy *entity.Policy) error {
	return r.db.WithContext(ctx).Save(policy).Error
}

func (r *policyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Policy{}, "id = ?", id).Error
}

func (r *policyRepository) List(ctx context.Context, publishedOnly bool) ([]entity.Policy, error) {
	var policies []entity.Policy
	query := r.db.WithContext(ctx).Model(&entity.Policy{})
	if publishedOnly {
		query = query.Where("published_at IS NOT NULL AND published_at <= ?", time.Now())
	}
	err := query.Order("title ASC").Find(&policies).Error
	return policies, err
}

type questRepository struct {
	db *gorm.DB
}

// NewQuestRepository creates a new quest repository
func NewQuestRepository(db *gorm.DB) domainRepo.QuestRepository {
	return &questRepository{db: db}
}

func (r *questRepository) Create(ctx context.Context, quest *entity.Quest) error {
	return r.db.WithContext(ctx).Create(quest).Error
}

func (r *questRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quest, error) {
	var quest entity.Quest
	err := r.db.WithContext(ctx).First(&quest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quest, err
}

func (r *questRepository) Update(ctx context.Context, quest *entity.Quest) error {
	return r.db.WithContext(ctx).Save(quest).Error
}

func (r *questRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Quest{}, "id = ?", id).Error
}

func (r *questRepository) List(ctx context.Context, activeOnly bool) ([]entity.Quest, error) {
	var quests []entity.Quest
	query := r.db.WithContext(ctx).Model(&entity.Quest{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Order("created_at DESC").Find(&quests).Error
	return quests, err
}
