package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/config"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/dto"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/model"
)

// stubUserRepo is an in-memory UserRepository for service tests.
type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) add(u *model.User) *model.User {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return u
}

func (r *stubUserRepo) Create(ctx context.Context, u *model.User) error {
	for _, existing := range r.users {
		if existing.NIK == u.NIK {
			return errors.New("duplicate nik")
		}
	}
	r.add(u)
	return nil
}

func (r *stubUserRepo) FindByNIK(ctx context.Context, nik string) (*model.User, error) {
	for _, u := range r.users {
		if u.NIK == nik && u.Active {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUserRepo) List(ctx context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if u.Active {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) ListAll(ctx context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(ctx context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.Active = false
	return nil
}

func (r *stubUserRepo) Reactivate(ctx context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.Active = true
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
}

func seedUser(t *testing.T, repo *stubUserRepo, nik, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return repo.add(&model.User{
		NIK:          nik,
		Name:         "Budi Santoso",
		PasswordHash: string(hash),
		Role:         model.RoleField,
		Position:     model.PositionDriver,
		Active:       true,
	})
}

func TestLoginSuccess(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "3201010101010001", "rahasia123")
	svc := NewAuthService(repo, testConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{NIK: "3201010101010001", Password: "rahasia123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, "3201010101010001", resp.User.NIK)

	// The access token must carry the identity claims the middleware reads.
	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, model.RoleField, claims["role"])
	assert.Equal(t, model.PositionDriver, claims["position"])
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "3201010101010001", "rahasia123")
	svc := NewAuthService(repo, testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{NIK: "3201010101010001", Password: "salah"})
	require.EqualError(t, err, "invalid credentials")
}

func TestLoginUnknownNIK(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{NIK: "9999", Password: "x"})
	require.EqualError(t, err, "invalid credentials")
}

func TestLoginDeactivatedUser(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "3201010101010001", "rahasia123")
	u.Active = false
	svc := NewAuthService(repo, testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{NIK: "3201010101010001", Password: "rahasia123"})
	require.EqualError(t, err, "invalid credentials")
}

func TestRefreshRoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "3201010101010001", "rahasia123")
	svc := NewAuthService(repo, testConfig())

	login, err := svc.Login(context.Background(), dto.LoginRequest{NIK: "3201010101010001", Password: "rahasia123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), testConfig())

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	require.EqualError(t, err, "refresh token invalid or expired")
}

func TestRefreshRejectsDeactivatedUser(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "3201010101010001", "rahasia123")
	svc := NewAuthService(repo, testConfig())

	login, err := svc.Login(context.Background(), dto.LoginRequest{NIK: "3201010101010001", Password: "rahasia123"})
	require.NoError(t, err)

	u.Active = false
	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	require.EqualError(t, err, "user not found or inactive")
}

func TestCreateUserNormalizesRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testConfig())

	resp, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		NIK:      "3201010101010002",
		Name:     "Siti",
		Password: "password123",
		Role:     "field",
		Position: "cashier",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleField, resp.Role)
	assert.Equal(t, model.PositionCashier, resp.Position)
	assert.True(t, resp.Active)

	// The stored hash must verify against the original password.
	stored, err := repo.FindByNIK(context.Background(), "3201010101010002")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestDeactivateThenReactivate(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "3201010101010001", "rahasia123")
	svc := NewAuthService(repo, testConfig())

	require.NoError(t, svc.DeactivateUser(context.Background(), u.ID))
	_, err := svc.Login(context.Background(), dto.LoginRequest{NIK: u.NIK, Password: "rahasia123"})
	require.Error(t, err)

	require.NoError(t, svc.ReactivateUser(context.Background(), u.ID))
	_, err = svc.Login(context.Background(), dto.LoginRequest{NIK: u.NIK, Password: "rahasia123"})
	require.NoError(t, err)
}
