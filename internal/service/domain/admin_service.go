package domain

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/kyodai-travel/tourbook/internal/crypto"
	"github.com/kyodai-travel/tourbook/internal/model"
	"github.com/kyodai-travel/tourbook/internal/repository"
	"github.com/kyodai-travel/tourbook/internal/service"
)

type AdminService interface {
	Authenticate(email, password string) (*model.Admin, error)
}

type adminService struct {
	repo repository.AdminRepo
}

var _ AdminService = (*adminService)(nil)

func NewAdminService(adminRepo repository.AdminRepo) *adminService {
	return &adminService{
		repo: adminRepo,
	}
}

func (s *adminService) Authenticate(email, password string) (*model.Admin, error) {
	admin, err := s.repo.GetByEmail(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrUnauthenticated
		}
		return nil, err
	}
	if err := crypto.CheckPassword(admin.HashedPassword, password); err != nil {
		return nil, service.ErrUnauthenticated
	}
	return admin, nil
}
