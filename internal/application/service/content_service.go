package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/internal/domain/repository"
	"github.com/speakwise/speakwise-api/pkg/apperror"
	"github.com/speakwise/speakwise-api/pkg/utils"
)

// ContentService handles FAQs, policy pages, and quests for both the public
// site and the admin dashboard
type ContentService struct {
	faqRepo    repository.FAQRepository
	policyRepo repository.PolicyRepository
	questRepo  repository.QuestRepository
}

// NewContentService creates a new content service
func NewContentService(
	faqRepo repository.FAQRepository,
	policyRepo repository.PolicyRepository,
	questRepo repository.QuestRepository,
) *ContentService {
	return &ContentService{
		faqRepo:    faqRepo,
		policyRepo: policyRepo,
		questRepo:  questRepo,
	}
}

// ListFAQs returns FAQs, optionally restricted to published ones
func (s *ContentService) ListFAQs(ctx context.Context, publishedOnly bool) ([]entity.FAQ, error) {
	return s.faqRepo.List(ctx, publishedOnly)
}

// FAQInput represents an FAQ create/update payload
type FAQInput struct {
	Question  string
	Answer    string
	Category  string
	Position  int
	Published bool
}

// CreateFAQ creates a new FAQ entry
func (s *ContentService) CreateFAQ(ctx context.Context, input *FAQInput) (*entity.FAQ, error) {
	faq := &entity.FAQ{
		Question:  input.Question,
		Answer:    input.Answer,
		Category:  input.Category,
		Position:  input.Position,
		Published: input.Published,
	}
	if err := s.faqRepo.Create(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

// UpdateFAQ updates an FAQ entry
func (s *ContentService) UpdateFAQ(ctx context.Context, id uuid.UUID, input *FAQInput) (*entity.FAQ, error) {
	faq, err := s.faqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if faq == nil {
		return nil, apperror.NewNotFoundError("FAQ")
	}

	faq.Question = input.Question
	faq.Answer = input.Answer
	faq.Category = input.Category
	faq.Position = input.Position
	faq.Published = input.Published

	if err := s.faqRepo.Update(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

// DeleteFAQ removes an FAQ entry
func (s *ContentService) DeleteFAQ(ctx context.Context, id uuid.UUID) error {
	faq, err := s.faqRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if faq == nil {
		return apperror.NewNotFoundError("FAQ")
	}
	return s.faqRepo.Delete(ctx, id)
}

// ListPolicies returns policy pages, optionally published only
func (s *ContentService) ListPolicies(ctx context.Context, publishedOnly bool) ([]entity.Policy, error) {
	return s.policyRepo.List(ctx, publishedOnly)
}

// GetPolicy returns a policy page by slug. Unpublished pages are only
// visible to admins.
func (s *ContentService) GetPolicy(ctx context.Context, slug string, includeUnpublished bool) (*entity.Policy, error) {
	policy, err := s.policyRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, apperror.NewNotFoundError("Policy")
	}
	if !includeUnpublished && !policy.IsPublished() {
		return nil, apperror.NewNotFoundError("Policy")
	}
	return policy, nil
}

// CreatePolicyInput represents the policy creation input
type CreatePolicyInput struct {
	Title   string
	Content string
	Publish bool
}

// CreatePolicy creates a new policy page
func (s *ContentService) CreatePolicy(ctx context.Context, input *CreatePolicyInput) (*entity.Policy, error) {
	slug := utils.Slugify(input.Title)

	existing, err := s.policyRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A policy with this title already exists")
	}

	policy := &entity.Policy{
		Title:   input.Title,
		Slug:    slug,
		Content: input.Content,
		Version: 1,
	}
	if input.Publish {
		now := time.Now()
		policy.PublishedAt = &now
	}

	if err := s.policyRepo.Create(ctx, policy); err != nil {
		return nil, err
	}
	return policy, nil
}

// UpdatePolicyInput represents the policy update input. Version is the
// version the editor loaded; a stale version is rejected so concurrent
// editors cannot silently overwrite each other.
type UpdatePolicyInput struct {
	Title   *string
	Content *string
	Version int
	Publish *bool
}

// UpdatePolicy updates a policy page and bumps its version
func (s *ContentService) UpdatePolicy(ctx context.Context, id uuid.UUID, input *UpdatePolicyInput) (*entity.Policy, error) {
	policy, err := s.policyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, apperror.NewNotFoundError("Policy")
	}

	if input.Version != policy.Version {
		return nil, apperror.NewConflictError("Policy was modified by another editor")
	}

	if input.Title != nil {
		policy.Title = *input.Title
	}
	if input.Content != nil {
		policy.Content = *input.Content
		policy.Version++
	}
	if input.Publish != nil {
		if *input.Publish && policy.PublishedAt == nil {
			now := time.Now()
			policy.PublishedAt = &now
		} else if !*input.Publish {
			policy.PublishedAt = nil
		}
	}

	if err := s.policyRepo.Update(ctx, policy); err != nil {
		return nil, err
	}
	return policy, nil
}

// DeletePolicy removes a policy page
func (s *ContentService) DeletePolicy(ctx context.Context, id uuid.UUID) error {
	policy, err := s.policyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if policy == nil {
		return apperror.NewNotFoundError("Policy")
	}
	return s.policyRepo.Delete(ctx, id)
}

// ListQuests returns quests; activeOnly restricts to quests currently
// visible in the portal
func (s *ContentService) ListQuests(ctx context.Context, activeOnly bool) ([]entity.Quest, error) {
	quests, err := s.questRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	if activeOnly {
		now := time.Now()
		running := quests[:0]
		for _, q := range quests {
			if q.IsRunning(now) {
				running = append(running, q)
			}
		}
		quests = running
	}
	return quests, nil
}

// QuestInput represents a quest create/update payload
type QuestInput struct {
	Title        string
	Description  string
	RewardPoints int
	StartsAt     *time.Time
	EndsAt       *time.Time
	Active       bool
}

// CreateQuest creates a new quest
func (s *ContentService) CreateQuest(ctx context.Context, input *QuestInput) (*entity.Quest, error) {
	if input.StartsAt != nil && input.EndsAt != nil && input.EndsAt.Before(*input.StartsAt) {
		return nil, apperror.NewBadRequestError("Quest cannot end before it starts")
	}

	quest := &entity.Quest{
		Title:        input.Title,
		Description:  input.Description,
		RewardPoints: input.RewardPoints,
		StartsAt:     input.StartsAt,
		EndsAt:       input.EndsAt,
		Active:       input.Active,
	}
	if err := s.questRepo.Create(ctx, quest); err != nil {
		return nil, err
	}
	return quest, nil
}

// UpdateQuest updates a quest
func (s *ContentService) UpdateQuest(ctx context.Context, id uuid.UUID, input *QuestInput) (*entity.Quest, error) {
	quest, err := s.questRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quest == nil {
		return nil, apperror.NewNotFoundError("Quest")
	}

	if input.StartsAt != nil && input.EndsAt != nil && input.EndsAt.Before(*input.StartsAt) {
		return nil, apperror.NewBadRequestError("Quest cannot end before it starts")
	}

	quest.Title = input.Title
	quest.Description = input.Description
	quest.RewardPoints = input.RewardPoints
	quest.StartsAt = input.StartsAt
	quest.EndsAt = input.EndsAt
	quest.Active = input.Active

	if err := s.questRepo.Update(ctx, quest); err != nil {
		return nil, err
	}
	return quest, nil
}

// DeleteQuest removes a quest
func (s *ContentService) DeleteQuest(ctx context.Context, id uuid.UUID) error {
	quest, err := s.questRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quest == nil {
		return apperror.NewNotFoundError("Quest")
	}
	return s.questRepo.Delete(ctx, id)
}
