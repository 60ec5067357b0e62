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

type ClientService interface {
	Register(name, email, phone, password string) (*model.Client, error)
	Authenticate(email, password string) (*model.Client, error)
	GetByID(id uint) (*model.Client, error)
	UpdateProfile(id uint, name, phone, address string) error
}

type clientService struct {
	repo repository.ClientRepo
}

var _ ClientService = (*clientService)(nil)

func NewClientService(clientRepo repository.ClientRepo) *clientService {
	return &clientService{
		repo: clientRepo,
	}
}

func (s *clientService) Register(name, email, phone, password string) (*model.Client, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" || password == "" {
		return nil, service.ErrInvalidInput
	}

	if _, err := s.repo.GetByEmail(email); err == nil {
		return nil, service.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	client := &model.Client{
		Name:           name,
		Email:          email,
		Phone:          phone,
		HashedPassword: hash,
	}
	if err := s.repo.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

// Authenticate returns ErrUnauthenticated for both unknown emails and wrong
// passwords, so responses cannot be used to probe registered accounts.
func (s *clientService) Authenticate(email, password string) (*model.Client, error) {
	client, err := s.repo.GetByEmail(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrUnauthenticated
		}
		return nil, err
	}
	if err := crypto.CheckPassword(client.HashedPassword, password); err != nil {
		return nil, service.ErrUnauthenticated
	}
	return client, nil
}

func (s *clientService) GetByID(id uint) (*model.Client, error) {
	client, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) UpdateProfile(id uint, name, phone, address string) error {
	if strings.TrimSpace(name) == "" {
		return service.ErrInvalidInput
	}
	return s.repo.UpdateProfile(id, name, phone, address)
}
