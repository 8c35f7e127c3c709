package model

import (
	"strings"
	"time"
)

type UserRole string // capability role tag, fixed at construction

const (
	RoleAdmin      UserRole = "admin"      // platform administrator
	RoleDealership UserRole = "dealership" // dealership-affiliated user
	RoleBuyer      UserRole = "buyer"      // buyer (default variant)
)

// User is the single persisted shape behind the Admin / DealershipUser / Buyer
// variants. The role tag discriminates; no branching on it happens outside
// this file.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FirstName    string    `gorm:"not null" json:"first_name"`
	LastName     string    `gorm:"not null" json:"last_name"`
	Role         UserRole  `gorm:"type:varchar(20);not null;default:'buyer'" json:"role"`
	Active       bool      `gorm:"not null;default:true" json:"active"` // deactivation flips this, users are never hard-deleted
	DealershipID *uint     `gorm:"uniqueIndex" json:"dealership_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Dealership *Dealership `gorm:"foreignKey:DealershipID" json:"dealership,omitempty"` // exclusive linkage, dealership users only
}

func (User) TableName() string {
	return "users"
}

// ParseRole maps a registration type discriminator to a role tag.
// Unknown or empty discriminators fall back to the buyer variant.
func ParseRole(userType string) UserRole {
	switch strings.ToUpper(strings.TrimSpace(userType)) {
	case "ADMIN":
		return RoleAdmin
	case "DEALERSHIP", "CONCESIONARIA":
		return RoleDealership
	default:
		return RoleBuyer
	}
}

// NewUser constructs a user of the variant selected by the type
// discriminator. All variant-fixed fields (role tag, menu) are determined
// here once; callers never switch on the concrete variant again.
func NewUser(email, passwordHash, firstName, lastName, userType string) *User {
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         ParseRole(userType),
		Active:       true,
	}
}

// IsDealershipUser reports whether the user carries the dealership role.
func (u *User) IsDealershipUser() bool {
	return u.Role == RoleDealership
}

// IsBuyer reports whether the user carries the buyer role.
func (u *User) IsBuyer() bool {
	return u.Role == RoleBuyer
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
