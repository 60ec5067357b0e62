package domain

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/kyodai-travel/tourbook/internal/model"
	"github.com/kyodai-travel/tourbook/internal/repository"
	"github.com/kyodai-travel/tourbook/internal/service"
)

type DestinationInput struct {
	Name        string
	Country     string
	Description string
	ImageURL    string
}

type DestinationService interface {
	Create(input DestinationInput) (*model.Destination, error)
	Update(id uint, input DestinationInput) (*model.Destination, error)
	Delete(id uint) error
	GetByID(id uint) (*model.Destination, error)
	ListAll() ([]model.Destination, error)
}

type destinationService struct {
	repo repository.DestinationRepo
}

var _ DestinationService = (*destinationService)(nil)

func NewDestinationService(destinationRepo repository.DestinationRepo) *destinationService {
	return &destinationService{
		repo: destinationRepo,
	}
}

func (s *destinationService) Create(input DestinationInput) (*model.Destination, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Country) == "" {
		return nil, service.ErrInvalidInput
	}
	dest := &model.Destination{
		Name:        strings.TrimSpace(input.Name),
		Country:     strings.TrimSpace(input.Country),
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	if err := s.repo.Create(dest); err != nil {
		return nil, err
	}
	return dest, nil
}

func (s *destinationService) Update(id uint, input DestinationInput) (*model.Destination, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Country) == "" {
		return nil, service.ErrInvalidInput
	}
	dest, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	dest.Name = strings.TrimSpace(input.Name)
	dest.Country = strings.TrimSpace(input.Country)
	dest.Description = input.Description
	dest.ImageURL = input.ImageURL
	if err := s.repo.Update(dest); err != nil {
		return nil, err
	}
	return dest, nil
}

func (s *destinationService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *destinationService) GetByID(id uint) (*model.Destination, error) {
	dest, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return dest, nil
}

func (s *destinationService) ListAll() ([]model.Destination, error) {
	return s.repo.ListAll()
}
