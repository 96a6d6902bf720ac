package model

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	BaseModel
	PhoneNumber string   `gorm:"type:varchar(32);uniqueIndex;not null" json:"phone_number" validate:"required"`
	FirstName   string   `gorm:"type:varchar(128)" json:"first_name"`
	Password    string   `gorm:"type:varchar(255);not null" json:"-"`
	Address     string   `json:"address"`
	Role        string   `gorm:"type:varchar(16);default:USER" json:"role"`
	Wishlist    []string `gorm:"serializer:json" json:"wishlist"`

	ShoppingCart *ShoppingCart `gorm:"foreignKey:CustomerID" json:"shopping_cart,omitempty"`
}

// SetPassword hashes and stores the given plaintext password
func (u *User) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword compares the stored hash against the given plaintext
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
