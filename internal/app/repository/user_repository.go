package repository

import (
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"github.com/leadiaz/compra-tu-auto-app-backend/pkg/logger"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByDealershipID(dealershipID uint) (*model.User, error)
	List(role *model.UserRole, unlinkedOnly bool) ([]model.User, error)
	Update(user *model.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"email": user.Email,
		})
		return err
	}

	logger.Debug("User created in database", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
	})
	return nil
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.Preload("Dealership").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Preload("Dealership").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByDealershipID resolves the back-reference from a dealership to its
// managing user without a stored reverse foreign key.
func (r *userRepository) FindByDealershipID(dealershipID uint) (*model.User, error) {
	var user model.User
	if err := r.db.Where("dealership_id = ?", dealershipID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns users filtered by role and, optionally, restricted to
// dealership users without a linked dealership.
func (r *userRepository) List(role *model.UserRole, unlinkedOnly bool) ([]model.User, error) {
	query := r.db.Model(&model.User{})
	if role != nil {
		query = query.Where("role = ?", *role)
	}
	if unlinkedOnly {
		query = query.Where("dealership_id IS NULL")
	}

	var users []model.User
	if err := query.Order("id").Find(&users).Error; err != nil {
		logger.Error("Failed to list users in database", err, map[string]interface{}{
			"unlinked_only": unlinkedOnly,
		})
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}
