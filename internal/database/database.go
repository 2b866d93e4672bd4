package database

import (
	"errors"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	IsActive     bool
	IsVerified   bool
	Avatar       string
	Role         string
	CreatedAt    time.Time
}

type Contact struct {
	ID             int64
	OwnerID        int64
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Birthday       time.Time
	AdditionalData string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ContactFilter narrows a contact listing. Search matches first name, last
// name or email case-insensitively.
type ContactFilter struct {
	Search string
	Skip   int
	Limit  int
}

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user exists")
	ErrContactNotFound = errors.New("contact not found")
	ErrContactExists   = errors.New("contact exists")
)
