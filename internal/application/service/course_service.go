package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/internal/domain/repository"
	"github.com/speakwise/speakwise-api/pkg/apperror"
	"github.com/speakwise/speakwise-api/pkg/pagination"
	"github.com/speakwise/speakwise-api/pkg/storage"
	"github.com/speakwise/speakwise-api/pkg/utils"
)

// CourseService handles course catalog operations
type CourseService struct {
	courseRepo     repository.CourseRepository
	reviewRepo     repository.ReviewRepository
	enrollmentRepo repository.EnrollmentRepository
	signer         *storage.URLSigner
}

// NewCourseService creates a new course service
func NewCourseService(
	courseRepo repository.CourseRepository,
	reviewRepo repository.ReviewRepository,
	enrollmentRepo repository.EnrollmentRepository,
	signer *storage.URLSigner,
) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		reviewRepo:     reviewRepo,
		enrollmentRepo: enrollmentRepo,
		signer:         signer,
	}
}

// CourseDetail is a course together with its derived catalog data
type CourseDetail struct {
	Course       *entity.Course
	ThumbnailURL string
	Rating       float64
	RatingCount  int64
	Enrolled     bool
}

// ListCourses returns a page of courses. Non-admin callers only see
// published ones.
func (s *CourseService) ListCourses(ctx context.Context, params *repository.CourseFilterParams) (*pagination.PaginatedResult[entity.Course], error) {
	courses, total, err := s.courseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	for i := range courses {
		s.signThumbnail(&courses[i])
	}

	return &pagination.PaginatedResult[entity.Course]{
		Items:      courses,
		Pagination: pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total),
	}, nil
}

// BrowseCourses returns published courses with cursor pagination for the
// storefront's infinite scroll
func (s *CourseService) BrowseCourses(ctx context.Context, params *pagination.CursorParams) (*pagination.CursorPaginatedResult[entity.Course], error) {
	params.Validate()
	courses, err := s.courseRepo.ListWithCursor(ctx, params, true)
	if err != nil {
		return nil, err
	}

	cursorInfo, courses := pagination.NewCursorPagination(courses, params.Limit,
		func(c entity.Course) string { return c.ID.String() },
		func(c entity.Course) time.Time { return c.CreatedAt },
	)

	for i := range courses {
		s.signThumbnail(&courses[i])
	}

	return pagination.NewCursorPaginatedResult(courses, cursorInfo), nil
}

// GetCourse returns the course detail page payload. userID may be uuid.Nil
// for anonymous visitors.
func (s *CourseService) GetCourse(ctx context.Context, slug string, userID uuid.UUID) (*CourseDetail, error) {
	course, err := s.courseRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperror.NewNotFoundError("Course")
	}

	full, err := s.courseRepo.GetWithModules(ctx, course.ID)
	if err != nil {
		return nil, err
	}

	detail := &CourseDetail{Course: full}

	if full.ThumbnailKey != nil {
		detail.ThumbnailURL = s.signer.SignedURL("thumbnails", *full.ThumbnailKey)
	}

	detail.Rating, detail.RatingCount, err = s.reviewRepo.AverageRating(ctx, full.ID)
	if err != nil {
		return nil, err
	}

	if userID != uuid.Nil {
		enrollment, err := s.enrollmentRepo.GetByUserAndCourse(ctx, userID, full.ID)
		if err != nil {
			return nil, err
		}
		detail.Enrolled = enrollment != nil && enrollment.IsActive()
	}

	return detail, nil
}

// ModuleVideoURL returns a signed playback URL for a module. Only enrolled
// users can fetch it.
func (s *CourseService) ModuleVideoURL(ctx context.Context, moduleID, userID uuid.UUID) (string, error) {
	module, err := s.courseRepo.GetModuleByID(ctx, moduleID)
	if err != nil {
		return "", err
	}
	if module == nil || module.VideoKey == nil {
		return "", apperror.NewNotFoundError("Video")
	}

	enrollment, err := s.enrollmentRepo.GetByUserAndCourse(ctx, userID, module.CourseID)
	if err != nil {
		return "", err
	}
	if enrollment == nil || !enrollment.IsActive() {
		return "", apperror.ErrForbidden
	}

	return s.signer.SignedURL("videos", *module.VideoKey), nil
}

// signableAssetTypes lists the asset kinds the public signed-url endpoint
// may mint. Videos are excluded; playback URLs go through ModuleVideoURL so
// enrollment is checked.
var signableAssetTypes = map[string]bool{
	"thumbnails":  true,
	"images":      true,
	"attachments": true,
}

// AssetURL mints a time-limited URL for a public course asset
func (s *CourseService) AssetURL(assetType, key string) (string, error) {
	if key == "" {
		return "", apperror.NewBadRequestError("Asset key is required")
	}
	if !signableAssetTypes[assetType] {
		return "", apperror.NewBadRequestError("Unsupported asset type")
	}
	return s.signer.SignedURL(assetType, key), nil
}

// CreateCourseInput represents the course creation input
type CreateCourseInput struct {
	Title         string
	Description   string
	Level         string
	Language      string
	ThumbnailKey  *string
	MRP           *float64
	Price         *float64
	DurationWeeks int
	Published     bool
}

// CreateCourse creates a new course
func (s *CourseService) CreateCourse(ctx context.Context, input *CreateCourseInput) (*entity.Course, error) {
	slug := utils.Slugify(input.Title)

	existing, err := s.courseRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A course with this title already exists")
	}

	course := &entity.Course{
		Title:         input.Title,
		Slug:          slug,
		Description:   input.Description,
		Level:         input.Level,
		Language:      input.Language,
		ThumbnailKey:  input.ThumbnailKey,
		MRP:           input.MRP,
		Price:         input.Price,
		DurationWeeks: input.DurationWeeks,
		Published:     input.Published,
	}
	if course.Language == "" {
		course.Language = "en"
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// UpdateCourseInput represents the course update input
type UpdateCourseInput struct {
	Title         *string
	Description   *string
	Level         *string
	ThumbnailKey  *string
	MRP           *float64
	Price         *float64
	DurationWeeks *int
	Published     *bool
	ClearMRP      bool
	ClearPrice    bool
}

// UpdateCourse updates an existing course
func (s *CourseService) UpdateCourse(ctx context.Context, id uuid.UUID, input *UpdateCourseInput) (*entity.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperror.NewNotFoundError("Course")
	}

	if input.Title != nil && *input.Title != course.Title {
		slug := utils.Slugify(*input.Title)
		existing, err := s.courseRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != course.ID {
			return nil, apperror.NewConflictError("A course with this title already exists")
		}
		course.Title = *input.Title
		course.Slug = slug
	}
	if input.Description != nil {
		course.Description = *input.Description
	}
	if input.Level != nil {
		course.Level = *input.Level
	}
	if input.ThumbnailKey != nil {
		course.ThumbnailKey = input.ThumbnailKey
	}
	if input.MRP != nil {
		course.MRP = input.MRP
	}
	if input.ClearMRP {
		course.MRP = nil
	}
	if input.Price != nil {
		course.Price = input.Price
	}
	if input.ClearPrice {
		course.Price = nil
	}
	if input.DurationWeeks != nil {
		course.DurationWeeks = *input.DurationWeeks
	}
	if input.Published != nil {
		course.Published = *input.Published
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse removes a course
func (s *CourseService) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if course == nil {
		return apperror.NewNotFoundError("Course")
	}
	return s.courseRepo.Delete(ctx, id)
}

// CreateModuleInput represents the module creation input
type CreateModuleInput struct {
	CourseID        uuid.UUID
	Title           string
	Position        int
	VideoKey        *string
	DurationMinutes int
}

// CreateModule adds a content module to a course
func (s *CourseService) CreateModule(ctx context.Context, input *CreateModuleInput) (*entity.CourseModule, error) {
	course, err := s.courseRepo.GetByID(ctx, input.CourseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperror.NewNotFoundError("Course")
	}

	module := &entity.CourseModule{
		CourseID:        input.CourseID,
		Title:           input.Title,
		Position:        input.Position,
		VideoKey:        input.VideoKey,
		DurationMinutes: input.DurationMinutes,
	}

	if err := s.courseRepo.CreateModule(ctx, module); err != nil {
		return nil, err
	}

	return module, nil
}

// UpdateModuleInput represents the module update input
type UpdateModuleInput struct {
	Title           *string
	Position        *int
	VideoKey        *string
	DurationMinutes *int
}

// UpdateModule updates a course module
func (s *CourseService) UpdateModule(ctx context.Context, id uuid.UUID, input *UpdateModuleInput) (*entity.CourseModule, error) {
	module, err := s.courseRepo.GetModuleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, apperror.NewNotFoundError("Module")
	}

	if input.Title != nil {
		module.Title = *input.Title
	}
	if input.Position != nil {
		module.Position = *input.Position
	}
	if input.VideoKey != nil {
		module.VideoKey = input.VideoKey
	}
	if input.DurationMinutes != nil {
		module.DurationMinutes = *input.DurationMinutes
	}

	if err := s.courseRepo.UpdateModule(ctx, module); err != nil {
		return nil, err
	}

	return module, nil
}

// DeleteModule removes a course module
func (s *CourseService) DeleteModule(ctx context.Context, id uuid.UUID) error {
	module, err := s.courseRepo.GetModuleByID(ctx, id)
	if err != nil {
		return err
	}
	if module == nil {
		return apperror.NewNotFoundError("Module")
	}
	return s.courseRepo.DeleteModule(ctx, id)
}

// signThumbnail swaps the stored key for a signed URL on list payloads
func (s *CourseService) signThumbnail(course *entity.Course) {
	if course.ThumbnailKey != nil {
		url := s.signer.SignedURL("thumbnails", *course.ThumbnailKey)
		course.ThumbnailKey = &url
	}
}
