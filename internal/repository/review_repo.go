package repository

import (
	"context"

	"github.com/kyodai-travel/tourbook/internal/model"
	"gorm.io/gorm"
)

type ReviewRepo interface {
	WithTx(tx *gorm.DB) ReviewRepo
	Create(review *model.Review) error
	ListByPackageID(packageID uint) ([]model.Review, error)
}

type reviewRepoGorm struct {
	db *gorm.DB
}

var _ ReviewRepo = (*reviewRepoGorm)(nil)

func NewReviewRepoGorm(db *gorm.DB) *reviewRepoGorm {
	return &reviewRepoGorm{
		db: db,
	}
}

func (r *reviewRepoGorm) WithTx(tx *gorm.DB) ReviewRepo {
	return &reviewRepoGorm{
		db: tx,
	}
}

func (r *reviewRepoGorm) Create(review *model.Review) error {
	ctx := context.Background()
	if err := gorm.G[model.Review](r.db).Create(ctx, review); err != nil {
		return err
	}
	return nil
}

func (r *reviewRepoGorm) ListByPackageID(packageID uint) ([]model.Review, error) {
	ctx := context.Background()
	reviews, err := gorm.G[model.Review](r.db).Where(&model.Review{TourPackageID: packageID}).Order("created_at DESC").Find(ctx)
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
