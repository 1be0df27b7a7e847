package models

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is the owner of a ledger.
//
// This is deliberately thin: the ledger only needs an opaque ID to
// partition data by. Everything beyond registration and a password
// check is out of scope.
type User struct {
	DefaultModel
	Name         string `json:"name" gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)

	if u.Name == "" {
		return ErrUsernameEmpty
	}

	return nil
}

// SetPassword hashes the password and stores the hash on the user.
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the password matches the stored hash.
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// RegisterUser creates a new user with a hashed password.
func RegisterUser(db *gorm.DB, name, password string) (User, error) {
	user := User{Name: name}

	if err := user.SetPassword(password); err != nil {
		return User{}, err
	}

	if err := db.Create(&user).Error; err != nil {
		return User{}, err
	}

	return user, nil
}

// AuthenticateUser verifies the credentials and returns the matching user.
//
// The same error is returned for an unknown name and a wrong password so
// that the response does not leak which usernames exist.
func AuthenticateUser(db *gorm.DB, name, password string) (User, error) {
	var user User
	err := db.Where(&User{Name: strings.TrimSpace(name)}).First(&user).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return User{}, ErrCredentialsInvalid
		}

		return User{}, err
	}

	if !user.CheckPassword(password) {
		return User{}, ErrCredentialsInvalid
	}

	return user, nil
}
