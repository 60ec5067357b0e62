package domain

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kyodai-travel/tourbook/internal/crypto"
	"github.com/kyodai-travel/tourbook/internal/model"
	"github.com/kyodai-travel/tourbook/internal/repository"
	"github.com/kyodai-travel/tourbook/internal/service"
)

// SessionService issues, validates and revokes the opaque tokens stored in
// the session cookies. Client and admin tokens live in the same table but
// are namespaced by kind, so one can never authenticate the other.
type SessionService interface {
	CreateSession(kind model.SessionKind, principalID uint) (token string, expiresAt time.Time, err error)
	ValidateClient(token string) (*model.Client, error)
	ValidateAdmin(token string) (*model.Admin, error)
	DestroySession(kind model.SessionKind, token string)
	PurgeExpired() (int64, error)
}

type sessionService struct {
	sessions repository.SessionRepo
	clients  repository.ClientRepo
	admins   repository.AdminRepo
	logger   *zap.Logger

	clientTTL time.Duration
	adminTTL  time.Duration
	now       func() time.Time
}

var _ SessionService = (*sessionService)(nil)

func NewSessionService(sessionRepo repository.SessionRepo, clientRepo repository.ClientRepo, adminRepo repository.AdminRepo, logger *zap.Logger, clientTTL, adminTTL time.Duration) *sessionService {
	return &sessionService{
		sessions:  sessionRepo,
		clients:   clientRepo,
		admins:    adminRepo,
		logger:    logger,
		clientTTL: clientTTL,
		adminTTL:  adminTTL,
		now:       time.Now,
	}
}

func (s *sessionService) CreateSession(kind model.SessionKind, principalID uint) (string, time.Time, error) {
	token, err := crypto.NewSessionToken()
	if err != nil {
		return "", time.Time{}, err
	}

	ttl := s.clientTTL
	if kind == model.SessionKindAdmin {
		ttl = s.adminTTL
	}
	expiresAt := s.now().Add(ttl)

	if err := s.sessions.Create(&model.Session{
		Token:       token,
		Kind:        kind,
		PrincipalID: principalID,
		ExpiresAt:   expiresAt,
	}); err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

func (s *sessionService) ValidateClient(token string) (*model.Client, error) {
	sess, err := s.lookup(token, model.SessionKindClient)
	if err != nil {
		return nil, err
	}
	client, err := s.clients.GetByID(sess.PrincipalID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("session principal lookup failed", zap.Error(err))
		}
		return nil, service.ErrUnauthenticated
	}
	return client, nil
}

func (s *sessionService) ValidateAdmin(token string) (*model.Admin, error) {
	sess, err := s.lookup(token, model.SessionKindAdmin)
	if err != nil {
		return nil, err
	}
	admin, err := s.admins.GetByID(sess.PrincipalID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("session principal lookup failed", zap.Error(err))
		}
		return nil, service.ErrUnauthenticated
	}
	return admin, nil
}

// lookup fails closed: a storage error reads the same as no session at all.
func (s *sessionService) lookup(token string, kind model.SessionKind) (*model.Session, error) {
	if token == "" {
		return nil, service.ErrUnauthenticated
	}
	sess, err := s.sessions.GetByTokenAndKind(token, kind)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("session lookup failed", zap.Error(err))
		}
		return nil, service.ErrUnauthenticated
	}
	if sess.Expired(s.now()) {
		// expired rows stay behind for the purge job; they are inert either way
		return nil, service.ErrUnauthenticated
	}
	return sess, nil
}

// DestroySession is best-effort: the cookie is cleared by the caller no
// matter what happens to the row, so storage errors are only logged.
func (s *sessionService) DestroySession(kind model.SessionKind, token string) {
	if token == "" {
		return
	}
	if err := s.sessions.DeleteByTokenAndKind(token, kind); err != nil {
		s.logger.Warn("session delete failed", zap.String("kind", string(kind)), zap.Error(err))
	}
}

func (s *sessionService) PurgeExpired() (int64, error) {
	return s.sessions.DeleteExpiredBefore(s.now())
}
