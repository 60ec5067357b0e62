package repository

import (
	"context"

	"github.com/kyodai-travel/tourbook/internal/model"
	"gorm.io/gorm"
)

type DestinationRepo interface {
	WithTx(tx *gorm.DB) DestinationRepo
	Create(dest *model.Destination) error
	Update(dest *model.Destination) error
	Delete(id uint) error
	GetByID(id uint) (*model.Destination, error)
	ListAll() ([]model.Destination, error)
	Count() (int64, error)
}

type destinationRepoGorm struct {
	db *gorm.DB
}

var _ DestinationRepo = (*destinationRepoGorm)(nil)

func NewDestinationRepoGorm(db *gorm.DB) *destinationRepoGorm {
	return &destinationRepoGorm{
		db: db,
	}
}

func (r *destinationRepoGorm) WithTx(tx *gorm.DB) DestinationRepo {
	return &destinationRepoGorm{
		db: tx,
	}
}

func (r *destinationRepoGorm) Create(dest *model.Destination) error {
	ctx := context.Background()
	if err := gorm.G[model.Destination](r.db).Create(ctx, dest); err != nil {
		return err
	}
	return nil
}

func (r *destinationRepoGorm) Update(dest *model.Destination) error {
	return r.db.Save(dest).Error
}

func (r *destinationRepoGorm) Delete(id uint) error {
	ctx := context.Background()
	_, err := gorm.G[model.Destination](r.db).Where(&model.Destination{ID: id}).Delete(ctx)
	return err
}

func (r *destinationRepoGorm) GetByID(id uint) (*model.Destination, error) {
	ctx := context.Background()
	dest, err := gorm.G[model.Destination](r.db).Where(&model.Destination{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &dest, nil
}

func (r *destinationRepoGorm) ListAll() ([]model.Destination, error) {
	ctx := context.Background()
	dests, err := gorm.G[model.Destination](r.db).Order("name ASC").Find(ctx)
	if err != nil {
		return nil, err
	}
	return dests, nil
}

func (r *destinationRepoGorm) Count() (int64, error) {
	ctx := context.Background()
	count, err := gorm.G[model.Destination](r.db).Count(ctx, "*")
	if err != nil {
		return 0, err
	}
	return count, nil
}
