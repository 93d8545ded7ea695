package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/internal/domain/repository"
	"github.com/speakwise/speakwise-api/pkg/apperror"
	"github.com/speakwise/speakwise-api/pkg/pagination"
)

// ReviewService handles course reviews
type ReviewService struct {
	reviewRepo     repository.ReviewRepository
	enrollmentRepo repository.EnrollmentRepository
	courseRepo     repository.CourseRepository
}

// NewReviewService creates a new review service
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	enrollmentRepo repository.EnrollmentRepository,
	courseRepo repository.CourseRepository,
) *ReviewService {
	return &ReviewService{
		reviewRepo:     reviewRepo,
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
	}
}

// ListReviews returns a page of reviews
func (s *ReviewService) ListReviews(ctx context.Context, params *repository.ReviewFilterParams) (*pagination.PaginatedResult[entity.Review], error) {
	reviews, total, err := s.reviewRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return &pagination.PaginatedResult[entity.Review]{
		Items:      reviews,
		Pagination: pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total),
	}, nil
}

// SubmitReviewInput represents the review submission input
type SubmitReviewInput struct {
	UserID   uuid.UUID
	CourseID uuid.UUID
	Rating   int
	Body     string
}

// SubmitReview creates or replaces the user's review of a course. Only
// enrolled users can review, and reviews await admin approval.
func (s *ReviewService) SubmitReview(ctx context.Context, input *SubmitReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperror.NewBadRequestError("Rating must be between 1 and 5")
	}

	course, err := s.courseRepo.GetByID(ctx, input.CourseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperror.NewNotFoundError("Course")
	}

	enrollment, err := s.enrollmentRepo.GetByUserAndCourse(ctx, input.UserID, input.CourseID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, apperror.NewBadRequestError("Only enrolled learners can review a course")
	}

	existing, err := s.reviewRepo.GetByUserAndCourse(ctx, input.UserID, input.CourseID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Rating = input.Rating
		existing.Body = input.Body
		existing.Approved = false
		if err := s.reviewRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	review := &entity.Review{
		UserID:   input.UserID,
		CourseID: input.CourseID,
		Rating:   input.Rating,
		Body:     input.Body,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ApproveReview marks a review visible on the course page
func (s *ReviewService) ApproveReview(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, apperror.NewNotFoundError("Review")
	}

	review.Approved = true
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes a review
func (s *ReviewService) DeleteReview(ctx context.Context, id uuid.UUID) error {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if review == nil {
		return apperror.NewNotFoundError("Review")
	}
	return s.reviewRepo.Delete(ctx, id)
}
