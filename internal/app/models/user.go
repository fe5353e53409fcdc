package models

import (
	"time"
)

// UserType distinguishes students from administrators
type UserType string

const (
	UserTypeStudent UserType = "student"
	UserTypeAdmin   UserType = "admin"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          int64     `json:"id" db:"id"`
	Username    string    `json:"username" db:"username"`
	Email       string    `json:"email" db:"email"`
	Password    string    `json:"-" db:"password"` // hashed, excluded from JSON
	FirstName   string    `json:"firstName" db:"first_name"`
	LastName    string    `json:"lastName" db:"last_name"`
	PhoneNumber string    `json:"phoneNumber,omitempty" db:"phone_number"` // normalized 11 digits
	UserType    UserType  `json:"userType" db:"user_type"`
	IsVerified  bool      `json:"isVerified" db:"is_verified"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	DateJoined  time.Time `json:"dateJoined" db:"date_joined"`
}

// FullName returns the first name plus the last name, with a space in between.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// CanAuthenticate reports whether the account is eligible to log in.
func (u *User) CanAuthenticate() bool {
	return u.IsActive
}
