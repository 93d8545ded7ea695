package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/internal/domain/enum"
	"github.com/speakwise/speakwise-api/internal/domain/repository"
	"github.com/speakwise/speakwise-api/pkg/apperror"
	"github.com/speakwise/speakwise-api/pkg/pagination"
)

// QuestionService handles quiz question management
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService creates a new question service
func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// ListQuestions returns a page of questions
func (s *QuestionService) ListQuestions(ctx context.Context, params *repository.QuestionFilterParams) (*pagination.PaginatedResult[entity.Question], error) {
	questions, total, err := s.questionRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return &pagination.PaginatedResult[entity.Question]{
		Items:      questions,
		Pagination: pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total),
	}, nil
}

// GetQuestion returns a question with its options
func (s *QuestionService) GetQuestion(ctx context.Context, id uuid.UUID) (*entity.Question, error) {
	question, err := s.questionRepo.GetWithOptions(ctx, id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperror.NewNotFoundError("Question")
	}
	return question, nil
}

// QuestionOptionInput represents one answer choice
type QuestionOptionInput struct {
	Text    string
	Correct bool
}

// QuestionInput represents a question create/update payload
type QuestionInput struct {
	Prompt      string
	Type        enum.QuestionType
	Difficulty  string
	Explanation string
	Published   bool
	Options     []QuestionOptionInput
}

func validateOptions(qType enum.QuestionType, options []QuestionOptionInput) error {
	if len(options) < 2 {
		return apperror.NewBadRequestError("A question needs at least two options")
	}

	correct := 0
	for _, opt := range options {
		if opt.Correct {
			correct++
		}
	}
	if correct == 0 {
		return apperror.NewBadRequestError("At least one option must be correct")
	}
	if qType == enum.QuestionTypeSingleChoice && correct > 1 {
		return apperror.NewBadRequestError("Single-answer questions allow only one correct option")
	}
	return nil
}

// CreateQuestion creates a new quiz question with options
func (s *QuestionService) CreateQuestion(ctx context.Context, input *QuestionInput) (*entity.Question, error) {
	if err := validateOptions(input.Type, input.Options); err != nil {
		return nil, err
	}

	question := &entity.Question{
		Prompt:      input.Prompt,
		Type:        input.Type,
		Difficulty:  input.Difficulty,
		Explanation: input.Explanation,
		Published:   input.Published,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}

	for i, opt := range input.Options {
		option := &entity.QuestionOption{
			QuestionID: question.ID,
			Text:       opt.Text,
			Correct:    opt.Correct,
			Position:   i,
		}
		if err := s.questionRepo.CreateOption(ctx, option); err != nil {
			return nil, err
		}
		question.Options = append(question.Options, *option)
	}

	return question, nil
}

// UpdateQuestion updates a question and replaces its options
func (s *QuestionService) UpdateQuestion(ctx context.Context, id uuid.UUID, input *QuestionInput) (*entity.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperror.NewNotFoundError("Question")
	}

	if err := validateOptions(input.Type, input.Options); err != nil {
		return nil, err
	}

	question.Prompt = input.Prompt
	question.Type = input.Type
	question.Difficulty = input.Difficulty
	question.Explanation = input.Explanation
	question.Published = input.Published

	if err := s.questionRepo.Update(ctx, question); err != nil {
		return nil, err
	}

	options := make([]entity.QuestionOption, 0, len(input.Options))
	for i, opt := range input.Options {
		options = append(options, entity.QuestionOption{
			Text:     opt.Text,
			Correct:  opt.Correct,
			Position: i,
		})
	}
	if err := s.questionRepo.ReplaceOptions(ctx, question.ID, options); err != nil {
		return nil, err
	}

	return s.questionRepo.GetWithOptions(ctx, question.ID)
}

// DeleteQuestion removes a question
func (s *QuestionService) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if question == nil {
		return apperror.NewNotFoundError("Question")
	}
	return s.questionRepo.Delete(ctx, id)
}
