package service

import (
	"context"
	"errors"
	"fmt"
	"thriftstore/internal/client"
	"thriftstore/internal/model"
	"thriftstore/internal/repository"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService interface {
	LoginURL(state string) string
	HandleCallback(ctx context.Context, code string) (*model.Session, error)
	Logout(ctx context.Context, token string) error
	UserFromSession(ctx context.Context, token string) (*model.User, error)
}

type authServiceImpl struct {
	google      client.GoogleClient
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	sessionTTL  time.Duration
}

func NewAuthService(
	google client.GoogleClient,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	sessionTTL time.Duration,
) AuthService {
	return &authServiceImpl{
		google:      google,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
	}
}

func (s *authServiceImpl) LoginURL(state string) string {
	return s.google.AuthCodeURL(state)
}

// HandleCallback finishes the provider redirect dance: exchange the code,
// create the user on first login, and mint a server-side session.
func (s *authServiceImpl) HandleCallback(ctx context.Context, code string) (*model.Session, error) {
	accessToken, err := s.google.ExchangeCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange auth code: %w", err)
	}

	info, err := s.google.FetchUserInfo(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}

	err = s.userRepo.Upsert(ctx, &model.User{
		GoogleID: info.ID,
		Name:     info.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	session := &model.Session{
		Token:     uuid.NewString(),
		UserID:    info.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return session, nil
}

func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	return s.sessionRepo.Delete(ctx, token)
}

// UserFromSession resolves a cookie token to its user. Unknown and expired
// tokens both come back as (nil, nil) so callers treat them as anonymous.
func (s *authServiceImpl) UserFromSession(ctx context.Context, token string) (*model.User, error) {
	session, err := s.sessionRepo.Find(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	user, err := s.userRepo.FindByGoogleID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session user: %w", err)
	}

	return user, nil
}
