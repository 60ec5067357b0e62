package repository

import (
	"context"

	"github.com/kyodai-travel/tourbook/internal/model"
	"gorm.io/gorm"
)

type CategoryRepo interface {
	WithTx(tx *gorm.DB) CategoryRepo
	Create(category *model.Category) error
	ListAll() ([]model.Category, error)
	Count() (int64, error)
}

type categoryRepoGorm struct {
	db *gorm.DB
}

var _ CategoryRepo = (*categoryRepoGorm)(nil)

func NewCategoryRepoGorm(db *gorm.DB) *categoryRepoGorm {
	return &categoryRepoGorm{
		db: db,
	}
}

func (r *categoryRepoGorm) WithTx(tx *gorm.DB) CategoryRepo {
	return &categoryRepoGorm{
		db: tx,
	}
}

func (r *categoryRepoGorm) Create(category *model.Category) error {
	ctx := context.Background()
	if err := gorm.G[model.Category](r.db).Create(ctx, category); err != nil {
		return err
	}
	return nil
}

func (r *categoryRepoGorm) ListAll() ([]model.Category, error) {
	ctx := context.Background()
	categories, err := gorm.G[model.Category](r.db).Order("name ASC").Find(ctx)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepoGorm) Count() (int64, error) {
	ctx := context.Background()
	count, err := gorm.G[model.Category](r.db).Count(ctx, "*")
	if err != nil {
		return 0, err
	}
	return count, nil
}
