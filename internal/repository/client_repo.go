package repository

import (
	"context"

	"github.com/kyodai-travel/tourbook/internal/model"
	"gorm.io/gorm"
)

type ClientRepo interface {
	WithTx(tx *gorm.DB) ClientRepo
	Create(client *model.Client) error
	GetByID(id uint) (*model.Client, error)
	GetByEmail(email string) (*model.Client, error)
	UpdateProfile(id uint, name, phone, address string) error
}

type clientRepoGorm struct {
	db *gorm.DB
}

var _ ClientRepo = (*clientRepoGorm)(nil)

func NewClientRepoGorm(db *gorm.DB) *clientRepoGorm {
	return &clientRepoGorm{
		db: db,
	}
}

func (r *clientRepoGorm) WithTx(tx *gorm.DB) ClientRepo {
	return &clientRepoGorm{
		db: tx,
	}
}

func (r *clientRepoGorm) Create(client *model.Client) error {
	ctx := context.Background()
	if err := gorm.G[model.Client](r.db).Create(ctx, client); err != nil {
		return err
	}
	return nil
}

func (r *clientRepoGorm) GetByID(id uint) (*model.Client, error) {
	ctx := context.Background()
	client, err := gorm.G[model.Client](r.db).Where(&model.Client{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepoGorm) GetByEmail(email string) (*model.Client, error) {
	ctx := context.Background()
	client, err := gorm.G[model.Client](r.db).Where(&model.Client{Email: email}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepoGorm) UpdateProfile(id uint, name, phone, address string) error {
	ctx := context.Background()
	_, err := gorm.G[model.Client](r.db).Where(&model.Client{ID: id}).Updates(ctx, model.Client{
		Name:    name,
		Phone:   phone,
		Address: address,
	})
	return err
}
