package domain

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/kyodai-travel/tourbook/internal/cache"
	"github.com/kyodai-travel/tourbook/internal/model"
	"github.com/kyodai-travel/tourbook/internal/repository"
	"github.com/kyodai-travel/tourbook/internal/service"
)

type PackageInput struct {
	Title           string
	Description     string
	Price           float64
	DurationDays    int
	MaxParticipants int
	CategoryID      uint
	DestinationID   uint
	ImageURL        string
	Itinerary       string
	Includes        string
	Excludes        string
	IsActive        bool
}

type PackageService interface {
	Create(input PackageInput) (*model.TourPackage, error)
	Update(id uint, input PackageInput) (*model.TourPackage, error)
	Delete(id uint) error
	GetByID(id uint) (*model.TourPackage, error)
	GetActiveByID(id uint) (*model.TourPackage, error)
	ListAll() ([]model.TourPackage, error)
	ListActive(filter repository.PackageFilter) ([]model.TourPackage, error)
}

type packageService struct {
	repo  repository.PackageRepo
	cache Cache
}

var _ PackageService = (*packageService)(nil)

const catalogCacheTTL = 5 * time.Minute

func NewPackageService(packageRepo repository.PackageRepo, cache Cache) *packageService {
	return &packageService{
		repo:  packageRepo,
		cache: cache,
	}
}

func validatePackageInput(input PackageInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return service.ErrInvalidInput
	}
	if input.Price <= 0 || input.DurationDays <= 0 || input.MaxParticipants <= 0 {
		return service.ErrInvalidInput
	}
	return nil
}

func (s *packageService) Create(input PackageInput) (*model.TourPackage, error) {
	if err := validatePackageInput(input); err != nil {
		return nil, err
	}
	pkg := &model.TourPackage{
		Title:           strings.TrimSpace(input.Title),
		Description:     input.Description,
		Price:           input.Price,
		DurationDays:    input.DurationDays,
		MaxParticipants: input.MaxParticipants,
		CategoryID:      input.CategoryID,
		DestinationID:   input.DestinationID,
		ImageURL:        input.ImageURL,
		Itinerary:       input.Itinerary,
		Includes:        input.Includes,
		Excludes:        input.Excludes,
		IsActive:        input.IsActive,
	}
	if err := s.repo.Create(pkg); err != nil {
		return nil, err
	}
	s.invalidateCatalog(pkg.ID)
	return pkg, nil
}

// Update overwrites the package fields. Existing bookings keep their locked
// total even when the price changes here.
func (s *packageService) Update(id uint, input PackageInput) (*model.TourPackage, error) {
	if err := validatePackageInput(input); err != nil {
		return nil, err
	}
	pkg, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}

	pkg.Title = strings.TrimSpace(input.Title)
	pkg.Description = input.Description
	pkg.Price = input.Price
	pkg.DurationDays = input.DurationDays
	pkg.MaxParticipants = input.MaxParticipants
	pkg.CategoryID = input.CategoryID
	pkg.DestinationID = input.DestinationID
	pkg.ImageURL = input.ImageURL
	pkg.Itinerary = input.Itinerary
	pkg.Includes = input.Includes
	pkg.Excludes = input.Excludes
	pkg.IsActive = input.IsActive

	if err := s.repo.Update(pkg); err != nil {
		return nil, err
	}
	s.invalidateCatalog(id)
	return pkg, nil
}

func (s *packageService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidateCatalog(id)
	return nil
}

func (s *packageService) GetByID(id uint) (*model.TourPackage, error) {
	pkg, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return pkg, nil
}

// GetActiveByID is the storefront lookup: deactivated packages read as gone.
func (s *packageService) GetActiveByID(id uint) (*model.TourPackage, error) {
	if s.cache != nil {
		var cached model.TourPackage
		if err := s.cache.Get(cache.MakePackageKey(id), &cached); err == nil && cached.IsActive {
			return &cached, nil
		}
	}
	pkg, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !pkg.IsActive {
		return nil, service.ErrNotFound
	}
	if s.cache != nil {
		_ = s.cache.Set(cache.MakePackageKey(id), pkg, catalogCacheTTL)
	}
	return pkg, nil
}

func (s *packageService) ListAll() ([]model.TourPackage, error) {
	return s.repo.ListAll()
}

func (s *packageService) ListActive(filter repository.PackageFilter) ([]model.TourPackage, error) {
	// only the unfiltered catalog is cached; filtered views go to the store
	cacheable := filter == repository.PackageFilter{}
	if cacheable && s.cache != nil {
		var cached []model.TourPackage
		if err := s.cache.Get(cache.PackagesActiveKey, &cached); err == nil {
			return cached, nil
		}
	}

	pkgs, err := s.repo.ListActive(filter)
	if err != nil {
		return nil, err
	}
	if cacheable && s.cache != nil {
		_ = s.cache.Set(cache.PackagesActiveKey, pkgs, catalogCacheTTL)
	}
	return pkgs, nil
}

func (s *packageService) invalidateCatalog(packageID uint) {
	if s.cache != nil {
		_ = s.cache.Delete(cache.PackagesActiveKey, cache.MakePackageKey(packageID))
	}
}
