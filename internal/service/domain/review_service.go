package domain

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/kyodai-travel/tourbook/internal/model"
	"github.com/kyodai-travel/tourbook/internal/repository"
	"github.com/kyodai-travel/tourbook/internal/service"
)

type ReviewInput struct {
	TourPackageID uint
	ClientID      *uint
	CustomerName  string
	Rating        int
	Comment       string
}

type ReviewService interface {
	Create(input ReviewInput) (*model.Review, error)
	ListByPackageID(packageID uint) ([]model.Review, error)
}

type reviewService struct {
	reviews  repository.ReviewRepo
	packages repository.PackageRepo
}

var _ ReviewService = (*reviewService)(nil)

func NewReviewService(reviewRepo repository.ReviewRepo, packageRepo repository.PackageRepo) *reviewService {
	return &reviewService{
		reviews:  reviewRepo,
		packages: packageRepo,
	}
}

func (s *reviewService) Create(input ReviewInput) (*model.Review, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, service.ErrInvalidInput
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, service.ErrInvalidInput
	}
	if _, err := s.packages.GetByID(input.TourPackageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}

	review := &model.Review{
		TourPackageID: input.TourPackageID,
		ClientID:      input.ClientID,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		Rating:        input.Rating,
		Comment:       input.Comment,
	}
	if err := s.reviews.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListByPackageID(packageID uint) ([]model.Review, error) {
	return s.reviews.ListByPackageID(packageID)
}
