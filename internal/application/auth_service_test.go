package application

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashankrushiya/bookstore-api/internal/domain/entity"
	"github.com/shashankrushiya/bookstore-api/internal/domain/repository"
	"github.com/shashankrushiya/bookstore-api/pkg/helpers"
)

type memUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*entity.User
	seq     int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[u.Email]; ok {
		return repository.ErrDuplicate
	}
	r.seq++
	u.ID = fmt.Sprintf("u-%d", r.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func newTestAuthService(repo repository.UserRepository) *AuthService {
	jwt := helpers.NewJWTManager("test-secret", 30*time.Minute)
	return NewAuthService(repo, jwt, nil, nil, false)
}

func TestSignupStoresHashedCredential(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo)

	u, err := svc.Signup(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	assert.Equal(t, "a@x.com", u.Email)
	assert.NotEqual(t, "pw", u.PasswordHash)
	assert.True(t, helpers.CompareHashAndPassword(u.PasswordHash, "pw"))
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Signup(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), "a@x.com", "other")
	require.ErrorIs(t, err, ErrEmailTaken)

	// the store still holds exactly the first record
	stored, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.True(t, helpers.CompareHashAndPassword(stored.PasswordHash, "pw"))
	assert.Len(t, repo.byEmail, 1)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Signup(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)

	token, exp, err := svc.Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	claims, err := svc.JWT.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)
}

func TestLoginFailures(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Signup(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)

	// unknown email and wrong password collapse into the same failure
	_, _, err = svc.Login(context.Background(), "nobody@x.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
