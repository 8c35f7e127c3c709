package service

import (
	"context"
	"errors"
	"time"

	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/repository"
	"github.com/leadiaz/compra-tu-auto-app-backend/pkg/logger"
	redispkg "github.com/leadiaz/compra-tu-auto-app-backend/pkg/redis"
	"github.com/leadiaz/compra-tu-auto-app-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user is inactive")
)

type AuthService interface {
	Register(email, password, firstName, lastName, userType string) (*model.User, *util.TokenPair, error)
	Login(email, password string) (*model.User, *util.TokenPair, error)
	Logout(tokenString string) error
	// CurrentActor resolves the acting user for an authenticated request.
	// Inactive accounts resolve as if they did not exist.
	CurrentActor(email string) (*model.User, error)
	GetUserByID(id uint) (*model.User, error)
	ListUsers(userType string, unlinkedOnly bool) ([]model.User, error)
	MenuForUser(email string) ([]model.MenuItem, error)
}

type authService struct {
	userRepo      repository.UserRepository
	jwtSecret     string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	jwtSecret string,
	accessExpiry, refreshExpiry time.Duration,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

func (s *authService) Register(email, password, firstName, lastName, userType string) (*model.User, *util.TokenPair, error) {
	logger.Info("Attempting user registration", map[string]interface{}{
		"email":     email,
		"user_type": userType,
	})

	// Check if user already exists
	existingUser, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing user", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}
	if existingUser != nil {
		logger.Warn("Registration failed: email already exists", map[string]interface{}{
			"email": email,
		})
		return nil, nil, ErrEmailAlreadyExists
	}

	// Hash password
	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}

	// Unknown user types fall back to buyer inside the factory.
	user := model.NewUser(email, hashedPassword, firstName, lastName, userType)

	if err := s.userRepo.Create(user); err != nil {
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}

	// Generate tokens
	tokens, err := util.GenerateTokenPair(
		user.ID,
		user.Email,
		string(user.Role),
		s.jwtSecret,
		s.accessExpiry,
		s.refreshExpiry,
	)
	if err != nil {
		logger.Error("Failed to generate tokens", err, map[string]interface{}{
			"user_id": user.ID,
			"email":   email,
		})
		return nil, nil, err
	}

	logger.Info("User registered successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   email,
		"role":    user.Role,
	})

	return user, tokens, nil
}

func (s *authService) Login(email, password string) (*model.User, *util.TokenPair, error) {
	logger.Info("Login attempt", map[string]interface{}{
		"email": email,
	})

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login failed: user not found", map[string]interface{}{
				"email": email,
			})
			return nil, nil, ErrInvalidCredentials
		}
		logger.Error("Failed to find user", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}

	if !util.VerifyPassword(user.PasswordHash, password) {
		logger.Warn("Login failed: invalid password", map[string]interface{}{
			"email":   email,
			"user_id": user.ID,
		})
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := util.GenerateTokenPair(
		user.ID,
		user.Email,
		string(user.Role),
		s.jwtSecret,
		s.accessExpiry,
		s.refreshExpiry,
	)
	if err != nil {
		logger.Error("Failed to generate tokens", err, map[string]interface{}{
			"user_id": user.ID,
			"email":   email,
		})
		return nil, nil, err
	}

	logger.Info("User logged in successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   email,
		"role":    user.Role,
	})

	return user, tokens, nil
}

// Logout blacklists the presented access token until it would have expired
// on its own. Tokens that no longer validate have nothing to revoke.
func (s *authService) Logout(tokenString string) error {
	claims, err := util.ValidateToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	if err := redispkg.BlacklistToken(context.Background(), tokenString, ttl); err != nil {
		logger.Error("Failed to blacklist token", err, map[string]interface{}{
			"user_id": claims.UserID,
		})
		return err
	}

	logger.Info("User logged out", map[string]interface{}{
		"user_id": claims.UserID,
		"email":   claims.Email,
	})
	return nil
}

func (s *authService) CurrentActor(email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Actor resolution failed: user not found", map[string]interface{}{
				"email": email,
			})
			return nil, ErrUserNotFound
		}
		logger.Error("Failed to resolve actor", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}

	if !user.Active {
		logger.Warn("Actor resolution failed: user inactive", map[string]interface{}{
			"email":   email,
			"user_id": user.ID,
		})
		return nil, ErrUserInactive
	}

	return user, nil
}

func (s *authService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Error("Failed to fetch user", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, err
	}
	return user, nil
}

// ListUsers filters by user type when one is given. unlinkedOnly narrows the
// result to dealership users without a linked dealership.
func (s *authService) ListUsers(userType string, unlinkedOnly bool) ([]model.User, error) {
	var role *model.UserRole
	if userType != "" {
		parsed := model.ParseRole(userType)
		role = &parsed
	}
	if unlinkedOnly {
		dealershipRole := model.RoleDealership
		role = &dealershipRole
	}
	return s.userRepo.List(role, unlinkedOnly)
}

func (s *authService) MenuForUser(email string) ([]model.MenuItem, error) {
	user, err := s.CurrentActor(email)
	if err != nil {
		return nil, err
	}
	return user.Menu(), nil
}
