package service

import (
	"testing"
	"time"

	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/repository"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (AuthService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	authService := NewAuthService(userRepo, "test-secret", 15*time.Minute, 7*24*time.Hour)

	return authService, testDB
}

func TestAuthService_Register_DefaultsToBuyer(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	user, tokens, err := authService.Register("ana@example.com", "password123", "Ana", "García", "")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, model.RoleBuyer, user.Role)
	assert.True(t, user.Active)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
}

func TestAuthService_Register_UserTypes(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	tests := []struct {
		email    string
		userType string
		want     model.UserRole
	}{
		{"admin@example.com", "ADMIN", model.RoleAdmin},
		{"dealer@example.com", "dealership", model.RoleDealership},
		{"buyer@example.com", "COMPRADOR", model.RoleBuyer},
	}

	for _, tt := range tests {
		user, _, err := authService.Register(tt.email, "password123", "Test", "User", tt.userType)
		require.NoError(t, err)
		assert.Equal(t, tt.want, user.Role, "user type %q", tt.userType)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	_, _, err := authService.Register("ana@example.com", "password123", "Ana", "García", "")
	require.NoError(t, err)

	user, tokens, err := authService.Register("ana@example.com", "otherpass", "Ana", "García", "")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Nil(t, user)
	assert.Nil(t, tokens)
}

func TestAuthService_Login_Success(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	_, _, err := authService.Register("ana@example.com", "password123", "Ana", "García", "")
	require.NoError(t, err)

	user, tokens, err := authService.Login("ana@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	_, _, err := authService.Register("ana@example.com", "password123", "Ana", "García", "")
	require.NoError(t, err)

	_, _, err = authService.Login("ana@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = authService.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_CurrentActor(t *testing.T) {
	authService, testDB := setupAuthServiceTest(t)

	registered, _, err := authService.Register("ana@example.com", "password123", "Ana", "García", "")
	require.NoError(t, err)

	actor, err := authService.CurrentActor("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, actor.ID)

	_, err = authService.CurrentActor("nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	// Deactivated accounts resolve as missing actors.
	testDB.Model(&model.User{}).Where("id = ?", registered.ID).Update("active", false)
	_, err = authService.CurrentActor("ana@example.com")
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestAuthService_Login_IgnoresActiveFlag(t *testing.T) {
	authService, testDB := setupAuthServiceTest(t)

	registered, _, err := authService.Register("ana@example.com", "password123", "Ana", "García", "")
	require.NoError(t, err)
	testDB.Model(&model.User{}).Where("id = ?", registered.ID).Update("active", false)

	_, tokens, err := authService.Login("ana@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestAuthService_ListUsers(t *testing.T) {
	authService, testDB := setupAuthServiceTest(t)

	_, _, err := authService.Register("admin@example.com", "password123", "Root", "Admin", "ADMIN")
	require.NoError(t, err)
	dealer, _, err := authService.Register("dealer@example.com", "password123", "Diego", "López", "DEALERSHIP")
	require.NoError(t, err)
	linked, _, err := authService.Register("linked@example.com", "password123", "Lucía", "Pérez", "DEALERSHIP")
	require.NoError(t, err)
	_, _, err = authService.Register("buyer@example.com", "password123", "Ana", "García", "")
	require.NoError(t, err)

	dealership := &model.Dealership{Name: "Autos del Sur", TaxID: "30-11111111-1", Active: true}
	require.NoError(t, testDB.Create(dealership).Error)
	require.NoError(t, testDB.Model(&model.User{}).
		Where("id = ?", linked.ID).
		Update("dealership_id", dealership.ID).Error)

	all, err := authService.ListUsers("", false)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	buyers, err := authService.ListUsers("COMPRADOR", false)
	require.NoError(t, err)
	assert.Len(t, buyers, 1)

	unlinked, err := authService.ListUsers("", true)
	require.NoError(t, err)
	require.Len(t, unlinked, 1)
	assert.Equal(t, dealer.ID, unlinked[0].ID)
}

func TestAuthService_MenuForUser(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	_, _, err := authService.Register("admin@example.com", "password123", "Root", "Admin", "ADMIN")
	require.NoError(t, err)

	menu, err := authService.MenuForUser("admin@example.com")
	require.NoError(t, err)
	assert.Len(t, menu, 7)
	assert.Equal(t, "Usuarios", menu[0].Label)

	_, err = authService.MenuForUser("nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
