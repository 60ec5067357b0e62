package repository

import (
	"context"
	"time"

	"github.com/kyodai-travel/tourbook/internal/model"
	"gorm.io/gorm"
)

type SessionRepo interface {
	WithTx(tx *gorm.DB) SessionRepo
	Create(session *model.Session) error
	GetByTokenAndKind(token string, kind model.SessionKind) (*model.Session, error)
	DeleteByTokenAndKind(token string, kind model.SessionKind) error
	DeleteExpiredBefore(deadline time.Time) (int64, error)
}

type sessionRepoGorm struct {
	db *gorm.DB
}

var _ SessionRepo = (*sessionRepoGorm)(nil)

func NewSessionRepoGorm(db *gorm.DB) *sessionRepoGorm {
	return &sessionRepoGorm{
		db: db,
	}
}

func (r *sessionRepoGorm) WithTx(tx *gorm.DB) SessionRepo {
	return &sessionRepoGorm{
		db: tx,
	}
}

func (r *sessionRepoGorm) Create(session *model.Session) error {
	ctx := context.Background()
	if err := gorm.G[model.Session](r.db).Create(ctx, session); err != nil {
		return err
	}
	return nil
}

func (r *sessionRepoGorm) GetByTokenAndKind(token string, kind model.SessionKind) (*model.Session, error) {
	ctx := context.Background()
	session, err := gorm.G[model.Session](r.db).Where(&model.Session{Token: token, Kind: kind}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepoGorm) DeleteByTokenAndKind(token string, kind model.SessionKind) error {
	ctx := context.Background()
	// deleting a token that is already gone is not an error
	if _, err := gorm.G[model.Session](r.db).Where(&model.Session{Token: token, Kind: kind}).Delete(ctx); err != nil {
		return err
	}
	return nil
}

func (r *sessionRepoGorm) DeleteExpiredBefore(deadline time.Time) (int64, error) {
	ctx := context.Background()
	deleted, err := gorm.G[model.Session](r.db).Where("expires_at <= ?", deadline).Delete(ctx)
	if err != nil {
		return 0, err
	}
	return int64(deleted), nil
}
