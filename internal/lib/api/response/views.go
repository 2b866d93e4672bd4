package response

import (
	"time"

	"contacts/internal/database"
)

const DateLayout = "2006-01-02"

type User struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	Avatar     *string   `json:"avatar"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewUser(u database.User) User {
	user := User{
		ID:         u.ID,
		Email:      u.Email,
		IsActive:   u.IsActive,
		IsVerified: u.IsVerified,
		Role:       u.Role,
		CreatedAt:  u.CreatedAt,
	}

	if u.Avatar != "" {
		avatar := u.Avatar
		user.Avatar = &avatar
	}

	return user
}

type Contact struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Birthday       string    `json:"birthday"`
	AdditionalData *string   `json:"additional_data"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewContact(c database.Contact) Contact {
	contact := Contact{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Birthday:  c.Birthday.Format(DateLayout),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	if c.AdditionalData != "" {
		data := c.AdditionalData
		contact.AdditionalData = &data
	}

	return contact
}

func NewContacts(cs []database.Contact) []Contact {
	contacts := make([]Contact, 0, len(cs))
	for _, c := range cs {
		contacts = append(contacts, NewContact(c))
	}

	return contacts
}
