package repository

import (
	"context"

	"github.com/kyodai-travel/tourbook/internal/model"
	"gorm.io/gorm"
)

type AdminRepo interface {
	WithTx(tx *gorm.DB) AdminRepo
	Create(admin *model.Admin) error
	GetByID(id uint) (*model.Admin, error)
	GetByEmail(email string) (*model.Admin, error)
}

type adminRepoGorm struct {
	db *gorm.DB
}

var _ AdminRepo = (*adminRepoGorm)(nil)

func NewAdminRepoGorm(db *gorm.DB) *adminRepoGorm {
	return &adminRepoGorm{
		db: db,
	}
}

func (r *adminRepoGorm) WithTx(tx *gorm.DB) AdminRepo {
	return &adminRepoGorm{
		db: tx,
	}
}

func (r *adminRepoGorm) Create(admin *model.Admin) error {
	ctx := context.Background()
	if err := gorm.G[model.Admin](r.db).Create(ctx, admin); err != nil {
		return err
	}
	return nil
}

func (r *adminRepoGorm) GetByID(id uint) (*model.Admin, error) {
	ctx := context.Background()
	admin, err := gorm.G[model.Admin](r.db).Where(&model.Admin{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepoGorm) GetByEmail(email string) (*model.Admin, error) {
	ctx := context.Background()
	admin, err := gorm.G[model.Admin](r.db).Where(&model.Admin{Email: email}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
