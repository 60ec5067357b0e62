package repository

import (
	"context"

	"github.com/kyodai-travel/tourbook/internal/model"
	"gorm.io/gorm"
)

// PackageFilter narrows the public catalog listing. Zero values mean "any".
type PackageFilter struct {
	CategoryID    uint
	DestinationID uint
}

type PackageRepo interface {
	WithTx(tx *gorm.DB) PackageRepo
	Create(pkg *model.TourPackage) error
	Update(pkg *model.TourPackage) error
	Delete(id uint) error
	GetByID(id uint) (*model.TourPackage, error)
	ListAll() ([]model.TourPackage, error)
	ListActive(filter PackageFilter) ([]model.TourPackage, error)
	CountActive() (int64, error)
}

type packageRepoGorm struct {
	db *gorm.DB
}

var _ PackageRepo = (*packageRepoGorm)(nil)

func NewPackageRepoGorm(db *gorm.DB) *packageRepoGorm {
	return &packageRepoGorm{
		db: db,
	}
}

func (r *packageRepoGorm) WithTx(tx *gorm.DB) PackageRepo {
	return &packageRepoGorm{
		db: tx,
	}
}

func (r *packageRepoGorm) Create(pkg *model.TourPackage) error {
	ctx := context.Background()
	if err := gorm.G[model.TourPackage](r.db).Create(ctx, pkg); err != nil {
		return err
	}
	return nil
}

func (r *packageRepoGorm) Update(pkg *model.TourPackage) error {
	return r.db.Save(pkg).Error
}

func (r *packageRepoGorm) Delete(id uint) error {
	ctx := context.Background()
	_, err := gorm.G[model.TourPackage](r.db).Where(&model.TourPackage{ID: id}).Delete(ctx)
	return err
}

func (r *packageRepoGorm) GetByID(id uint) (*model.TourPackage, error) {
	ctx := context.Background()
	pkg, err := gorm.G[model.TourPackage](r.db).Where(&model.TourPackage{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepoGorm) ListAll() ([]model.TourPackage, error) {
	ctx := context.Background()
	pkgs, err := gorm.G[model.TourPackage](r.db).Order("created_at DESC").Find(ctx)
	if err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (r *packageRepoGorm) ListActive(filter PackageFilter) ([]model.TourPackage, error) {
	ctx := context.Background()
	query := gorm.G[model.TourPackage](r.db).Where("is_active = ?", true)
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.DestinationID != 0 {
		query = query.Where("destination_id = ?", filter.DestinationID)
	}
	pkgs, err := query.Order("created_at DESC").Find(ctx)
	if err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (r *packageRepoGorm) CountActive() (int64, error) {
	ctx := context.Background()
	count, err := gorm.G[model.TourPackage](r.db).Where("is_active = ?", true).Count(ctx, "*")
	if err != nil {
		return 0, err
	}
	return count, nil
}
