package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/internal/domain/enum"
	"github.com/speakwise/speakwise-api/internal/domain/repository"
	"github.com/speakwise/speakwise-api/pkg/apperror"
)

// PollService handles community polls and voting
type PollService struct {
	pollRepo repository.PollRepository
}

// NewPollService creates a new poll service
func NewPollService(pollRepo repository.PollRepository) *PollService {
	return &PollService{pollRepo: pollRepo}
}

// ListPolls returns polls filtered by status; pass nil for all
func (s *PollService) ListPolls(ctx context.Context, status *enum.PollStatus) ([]entity.Poll, error) {
	return s.pollRepo.List(ctx, status)
}

// GetPoll returns a poll with options
func (s *PollService) GetPoll(ctx context.Context, id uuid.UUID) (*entity.Poll, error) {
	poll, err := s.pollRepo.GetWithOptions(ctx, id)
	if err != nil {
		return nil, err
	}
	if poll == nil {
		return nil, apperror.NewNotFoundError("Poll")
	}
	return poll, nil
}

// CreatePollInput represents the poll creation input
type CreatePollInput struct {
	Question string
	Options  []string
}

// CreatePoll creates a new poll in draft state
func (s *PollService) CreatePoll(ctx context.Context, input *CreatePollInput) (*entity.Poll, error) {
	if len(input.Options) < 2 {
		return nil, apperror.NewBadRequestError("A poll needs at least two options")
	}

	poll := &entity.Poll{
		Question: input.Question,
		Status:   enum.PollStatusDraft,
	}
	if err := s.pollRepo.Create(ctx, poll); err != nil {
		return nil, err
	}

	for i, label := range input.Options {
		option := &entity.PollOption{
			PollID:   poll.ID,
			Label:    label,
			Position: i,
		}
		if err := s.pollRepo.CreateOption(ctx, option); err != nil {
			return nil, err
		}
		poll.Options = append(poll.Options, *option)
	}

	return poll, nil
}

// SetPollStatus transitions a poll between draft, open, and closed
func (s *PollService) SetPollStatus(ctx context.Context, id uuid.UUID, status enum.PollStatus) (*entity.Poll, error) {
	poll, err := s.pollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if poll == nil {
		return nil, apperror.NewNotFoundError("Poll")
	}

	// Closed polls stay closed
	if poll.Status == enum.PollStatusClosed && status != enum.PollStatusClosed {
		return nil, apperror.NewBadRequestError("Closed polls cannot be reopened")
	}

	poll.Status = status
	if err := s.pollRepo.Update(ctx, poll); err != nil {
		return nil, err
	}
	return poll, nil
}

// DeletePoll removes a poll
func (s *PollService) DeletePoll(ctx context.Context, id uuid.UUID) error {
	poll, err := s.pollRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if poll == nil {
		return apperror.NewNotFoundError("Poll")
	}
	return s.pollRepo.Delete(ctx, id)
}

// VoteInput represents a poll vote
type VoteInput struct {
	PollID   uuid.UUID
	OptionID uuid.UUID
	UserID   uuid.UUID
}

// Vote records a user's vote. One vote per user per poll; votes only count
// while the poll is open.
func (s *PollService) Vote(ctx context.Context, input *VoteInput) (*entity.Poll, error) {
	poll, err := s.pollRepo.GetWithOptions(ctx, input.PollID)
	if err != nil {
		return nil, err
	}
	if poll == nil {
		return nil, apperror.NewNotFoundError("Poll")
	}
	if poll.Status != enum.PollStatusOpen {
		return nil, apperror.NewBadRequestError("Poll is not open for voting")
	}

	validOption := false
	for _, opt := range poll.Options {
		if opt.ID == input.OptionID {
			validOption = true
			break
		}
	}
	if !validOption {
		return nil, apperror.NewBadRequestError("Option does not belong to this poll")
	}

	existing, err := s.pollRepo.GetVote(ctx, input.PollID, input.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("You have already voted in this poll")
	}

	if err := s.pollRepo.CreateVote(ctx, &entity.PollVote{
		PollID:   input.PollID,
		UserID:   input.UserID,
		OptionID: input.OptionID,
	}); err != nil {
		return nil, err
	}

	if err := s.pollRepo.IncrementVoteCount(ctx, input.OptionID); err != nil {
		return nil, err
	}

	return s.pollRepo.GetWithOptions(ctx, input.PollID)
}
