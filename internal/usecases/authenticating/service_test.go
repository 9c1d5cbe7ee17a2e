package authenticating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/customer360-api/infrastructure/repository/mocks"
	"github.com/vfg2006/customer360-api/internal/config"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/pkg/apiErrors"
	"github.com/vfg2006/customer360-api/pkg/log"
	"github.com/vfg2006/customer360-api/pkg/middleware"
)

const strongPassword = "Sup3r!secret"

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	t.Helper()
	log.SetupTestLogger()

	repo := mocks.NewMockUserRepository(gomock.NewController(t))
	cfg := &config.Config{Auth: config.Auth{Secret: "test-secret", TokenTTL: time.Hour}}
	return NewService(repo, cfg).(*Service), repo
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestCreateUser_DefaultsByRole(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(nil, nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
		assert.NotEqual(t, strongPassword, u.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(strongPassword)))
		u.ID = 7
		return u, nil
	})

	created, err := svc.CreateUser(ctx, &domain.User{Name: "Ana", Email: " Ana@Example.com ", PasswordHash: strongPassword})
	require.NoError(t, err)

	assert.Equal(t, 7, created.ID)
	assert.Equal(t, middleware.RoleAnalyst, created.RoleID)
	assert.Equal(t, "account", created.DefaultPersona)
	assert.False(t, created.Active)
	assert.Empty(t, created.PasswordHash)
}

func TestCreateUser_AnalystCannotDefaultToBoard(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(nil, nil)

	_, err := svc.CreateUser(context.Background(), &domain.User{
		Name: "Ana", Email: "ana@example.com", PasswordHash: strongPassword,
		RoleID: middleware.RoleAnalyst, DefaultPersona: "board",
	})
	assert.ErrorIs(t, err, ErrInsufficientPrivilege)
}

func TestCreateUser_Duplicate(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(&domain.User{ID: 1}, nil)

	_, err := svc.CreateUser(context.Background(), &domain.User{Name: "Ana", Email: "ana@example.com", PasswordHash: strongPassword})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Equal(t, apiErrors.ErrUserAlreadyExists, CodeOf(err, ""))
}

func TestLoginUser_IssuesTokenWithPersona(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().GetUserByEmail(gomock.Any(), "ceo@example.com").Return(&domain.User{
		ID: 3, Name: "Chi", Email: "ceo@example.com", Active: true,
		RoleID: middleware.RoleExecutive, DefaultPersona: "board",
		PasswordHash: hash(t, strongPassword),
	}, nil)

	token, err := svc.LoginUser(context.Background(), "CEO@example.com", strongPassword)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)
	assert.Equal(t, "board", claims.DefaultPersona)
	assert.Equal(t, middleware.RoleExecutive, claims.UserRoleID)
}

func TestLoginUser_Failures(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().GetUserByEmail(gomock.Any(), "off@example.com").
		Return(&domain.User{ID: 4, Active: false, PasswordHash: hash(t, strongPassword)}, nil)
	repo.EXPECT().GetUserByEmail(gomock.Any(), "on@example.com").
		Return(&domain.User{ID: 5, Active: true, PasswordHash: hash(t, strongPassword)}, nil)

	_, err := svc.LoginUser(ctx, "off@example.com", strongPassword)
	assert.ErrorIs(t, err, ErrUserDisabled)
	assert.True(t, IsCredentialsError(err))

	_, err = svc.LoginUser(ctx, "on@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.LoginUser(ctx, "", "")
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc, _ := newTestService(t)
	other := &Service{cfg: &config.Config{Auth: config.Auth{Secret: "other"}}, now: time.Now}

	token, err := other.generateJWT(&domain.User{ID: 1})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.True(t, IsAuthorizationError(err))
}

func TestUpdateUser_SoftDelete(t *testing.T) {
	svc, repo := newTestService(t)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	deleted := true
	persona := "billing"

	repo.EXPECT().GetUserByID(gomock.Any(), 9).
		Return(&domain.User{ID: 9, RoleID: middleware.RoleAnalyst, DefaultPersona: "account", PasswordHash: "hash"}, nil)
	repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) error {
		assert.True(t, u.Deleted)
		require.NotNil(t, u.DeletedAt)
		assert.Equal(t, fixed, *u.DeletedAt)
		assert.Equal(t, "billing", u.DefaultPersona)
		assert.Empty(t, u.PasswordHash)
		return nil
	})

	err := svc.UpdateUser(context.Background(), &domain.UpdateUserRequest{ID: 9, Deleted: &deleted, DefaultPersona: &persona})
	require.NoError(t, err)
}

func TestUpdateUser_UnknownPersona(t *testing.T) {
	svc, repo := newTestService(t)
	persona := "intern"

	repo.EXPECT().GetUserByID(gomock.Any(), 9).Return(&domain.User{ID: 9, RoleID: middleware.RoleAdmin}, nil)

	err := svc.UpdateUser(context.Background(), &domain.UpdateUserRequest{ID: 9, DefaultPersona: &persona})
	assert.ErrorIs(t, err, ErrUnknownPersona)
}

func TestGenerateStrongPassword_AdminOnly(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().GetUserByID(gomock.Any(), 2).Return(&domain.User{ID: 2, RoleID: middleware.RoleAnalyst}, nil)
	_, err := svc.GenerateStrongPassword(ctx, 2, 9)
	assert.ErrorIs(t, err, ErrNoAdminPrivileges)

	repo.EXPECT().GetUserByID(gomock.Any(), 1).Return(&domain.User{ID: 1, RoleID: middleware.RoleAdmin}, nil)
	repo.EXPECT().GetUserByID(gomock.Any(), 9).Return(&domain.User{ID: 9}, nil)
	repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)

	password, err := svc.GenerateStrongPassword(ctx, 1, 9)
	require.NoError(t, err)
	assert.NoError(t, svc.ValidatePasswordStrength(password))
}

func TestValidatePasswordStrength(t *testing.T) {
	svc, _ := newTestService(t)

	assert.NoError(t, svc.ValidatePasswordStrength(strongPassword))

	err := svc.ValidatePasswordStrength("short")
	assert.ErrorIs(t, err, ErrWeakPassword)

	err = svc.ValidatePasswordStrength("alllowercase1!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "an uppercase letter")
}

func TestDefaultPersona(t *testing.T) {
	assert.Equal(t, "ceo", string(DefaultPersona(middleware.RoleAdmin)))
	assert.Equal(t, "board", string(DefaultPersona(middleware.RoleExecutive)))
	assert.Equal(t, "account", string(DefaultPersona(middleware.RoleAnalyst)))
}
