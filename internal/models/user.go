// internal/models/user.go
package models

import (
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Username         string   `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email            string   `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash     string   `json:"-" gorm:"size:255;not null"`
	FullName         string   `json:"full_name" gorm:"size:255;not null"`
	Role             UserRole `json:"role" gorm:"type:varchar(10);not null;default:'buyer'"`
	StripeCustomerID string   `json:"stripe_customer_id,omitempty" gorm:"size:255"`

	// Relationships
	Projects  []Project  `json:"projects,omitempty" gorm:"foreignKey:SellerID"`
	Purchases []Purchase `json:"purchases,omitempty" gorm:"foreignKey:BuyerID"`
	Reviews   []Review   `json:"reviews,omitempty" gorm:"foreignKey:BuyerID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// Ref returns the public projection used in joined reads.
func (u *User) Ref() *UserRef {
	if u == nil || u.ID == 0 {
		return nil
	}
	return &UserRef{ID: u.ID, Username: u.Username, FullName: u.FullName}
}
