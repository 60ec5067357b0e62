package domain

import (
	"strings"

	"github.com/kyodai-travel/tourbook/internal/model"
	"github.com/kyodai-travel/tourbook/internal/repository"
	"github.com/kyodai-travel/tourbook/internal/service"
)

type CategoryService interface {
	Create(name, description string) (*model.Category, error)
	ListAll() ([]model.Category, error)
}

type categoryService struct {
	repo repository.CategoryRepo
}

var _ CategoryService = (*categoryService)(nil)

func NewCategoryService(categoryRepo repository.CategoryRepo) *categoryService {
	return &categoryService{
		repo: categoryRepo,
	}
}

func (s *categoryService) Create(name, description string) (*model.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, service.ErrInvalidInput
	}
	category := &model.Category{
		Name:        strings.TrimSpace(name),
		Description: description,
	}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) ListAll() ([]model.Category, error) {
	return s.repo.ListAll()
}
