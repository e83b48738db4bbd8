package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shashankrushiya/bookstore-api/internal/domain/entity"
	repo "github.com/shashankrushiya/bookstore-api/internal/domain/repository"
	"github.com/shashankrushiya/bookstore-api/pkg/helpers"
	"github.com/shashankrushiya/bookstore-api/pkg/mailer"
	tpl "github.com/shashankrushiya/bookstore-api/pkg/mailer/templates"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is deliberately generic: login failures never
	// reveal whether the email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService owns the credential lifecycle: signup hashes and persists,
// login verifies and issues a bearer token. No session state is kept.
type AuthService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
	Pub    *helpers.RabbitPublisher
	MailOn bool
}

func NewAuthService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, pub *helpers.RabbitPublisher, mailOn bool) *AuthService {
	return &AuthService{Repo: r, JWT: jwt, Logger: logger, Pub: pub, MailOn: mailOn}
}

// Signup creates a credential record. Uniqueness is enforced by the store;
// a duplicate email surfaces as ErrEmailTaken and leaves the existing
// record untouched.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, PasswordHash: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.enqueueWelcome(ctx, u.Email)
	return u, nil
}

// Login verifies the credentials and issues a signed token bound to the
// user's email. Lookup and hash failures collapse into the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.GenerateToken(u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// enqueueWelcome is best effort: a broken broker must not fail signup.
func (s *AuthService) enqueueWelcome(ctx context.Context, email string) {
	if s.Pub == nil || !s.MailOn {
		return
	}
	job := mailer.EmailJob{
		To:       email,
		Template: tpl.Welcome,
		Data:     map[string]any{"Email": email},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("to", email).Warn("enqueue welcome email failed")
	}
}
