package service

import (
	"errors"

	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/repository"
	"github.com/leadiaz/compra-tu-auto-app-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrDealershipNotFound = errors.New("dealership not found")
	ErrTaxIDAlreadyExists = errors.New("tax id already registered")
	ErrUserAlreadyLinked  = errors.New("user already manages a dealership")
	ErrNotDealershipUser  = errors.New("user is not a dealership user")
)

type CreateDealershipInput struct {
	Name    string
	TaxID   string
	Phone   string
	Email   string
	Address string
	// ManagerUserID optionally links a dealership user on creation. The
	// link is exclusive: one user per dealership and one dealership per
	// user.
	ManagerUserID *uint
}

type DealershipService interface {
	CreateDealership(input CreateDealershipInput) (*model.Dealership, error)
	GetDealershipByID(id uint) (*model.Dealership, error)
	ListDealerships(activeOnly bool) ([]model.Dealership, error)
	LinkUser(dealershipID, userID uint) (*model.User, error)
}

type dealershipService struct {
	dealershipRepo repository.DealershipRepository
	userRepo       repository.UserRepository
}

func NewDealershipService(
	dealershipRepo repository.DealershipRepository,
	userRepo repository.UserRepository,
) DealershipService {
	return &dealershipService{
		dealershipRepo: dealershipRepo,
		userRepo:       userRepo,
	}
}

func (s *dealershipService) CreateDealership(input CreateDealershipInput) (*model.Dealership, error) {
	logger.Info("Creating dealership", map[string]interface{}{
		"name":   input.Name,
		"tax_id": input.TaxID,
	})

	existing, err := s.dealershipRepo.FindByTaxID(input.TaxID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing tax id", err, map[string]interface{}{
			"tax_id": input.TaxID,
		})
		return nil, err
	}
	if existing != nil {
		logger.Warn("Dealership creation failed: tax id already registered", map[string]interface{}{
			"tax_id": input.TaxID,
		})
		return nil, ErrTaxIDAlreadyExists
	}

	// Validate the manager before writing anything so a bad linkage does
	// not leave an orphaned dealership behind.
	var manager *model.User
	if input.ManagerUserID != nil {
		manager, err = s.linkableUser(*input.ManagerUserID)
		if err != nil {
			return nil, err
		}
	}

	dealership := &model.Dealership{
		Name:    input.Name,
		TaxID:   input.TaxID,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
		Active:  true,
	}
	if err := s.dealershipRepo.Create(dealership); err != nil {
		return nil, err
	}

	if manager != nil {
		manager.DealershipID = &dealership.ID
		if err := s.userRepo.Update(manager); err != nil {
			logger.Error("Failed to link manager to new dealership", err, map[string]interface{}{
				"user_id":       manager.ID,
				"dealership_id": dealership.ID,
			})
			return nil, err
		}
	}

	logger.Info("Dealership created successfully", map[string]interface{}{
		"dealership_id": dealership.ID,
		"name":          dealership.Name,
	})
	return dealership, nil
}

func (s *dealershipService) GetDealershipByID(id uint) (*model.Dealership, error) {
	dealership, err := s.dealershipRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDealershipNotFound
		}
		return nil, err
	}
	return dealership, nil
}

func (s *dealershipService) ListDealerships(activeOnly bool) ([]model.Dealership, error) {
	return s.dealershipRepo.List(activeOnly)
}

// linkableUser loads a user and checks it can take a dealership link: it
// must carry the dealership role and not be linked yet.
func (s *dealershipService) linkableUser(userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsDealershipUser() {
		logger.Warn("Link failed: user is not a dealership user", map[string]interface{}{
			"user_id": userID,
			"role":    user.Role,
		})
		return nil, ErrNotDealershipUser
	}
	if user.DealershipID != nil {
		logger.Warn("Link failed: user already manages a dealership", map[string]interface{}{
			"user_id":       userID,
			"dealership_id": *user.DealershipID,
		})
		return nil, ErrUserAlreadyLinked
	}
	return user, nil
}

// LinkUser attaches a dealership user to a dealership. Only dealership
// users can be linked, and neither side may already hold a link.
func (s *dealershipService) LinkUser(dealershipID, userID uint) (*model.User, error) {
	dealership, err := s.GetDealershipByID(dealershipID)
	if err != nil {
		return nil, err
	}

	user, err := s.linkableUser(userID)
	if err != nil {
		return nil, err
	}

	if existing, err := s.userRepo.FindByDealershipID(dealershipID); err == nil && existing != nil {
		logger.Warn("Link failed: dealership already has a manager", map[string]interface{}{
			"dealership_id":    dealershipID,
			"existing_user_id": existing.ID,
		})
		return nil, ErrUserAlreadyLinked
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user.DealershipID = &dealership.ID
	if err := s.userRepo.Update(user); err != nil {
		logger.Error("Failed to link user to dealership", err, map[string]interface{}{
			"user_id":       userID,
			"dealership_id": dealershipID,
		})
		return nil, err
	}

	logger.Info("User linked to dealership", map[string]interface{}{
		"user_id":       userID,
		"dealership_id": dealershipID,
	})
	return user, nil
}
