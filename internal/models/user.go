package models

import (
	"fmt"
	"strings"
	"time"
)

// User represents a registered account.
//
// The password hash is write-once at registration time and never serialized
// to clients; handlers convert a User to [UserDTO] for responses.
type User struct {
	id           string
	sequence     int
	email        string
	displayName  string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
	deletedAt    *time.Time
}

// UserDTO is the client-facing projection of a User.
type UserDTO struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// NewUser creates a User with the given sequence, email, and password hash.
//
// The display name defaults to the local part of the email address.
func NewUser(sequence int, email, passwordHash string) *User {
	displayName := email
	if at := strings.Index(email, "@"); at > 0 {
		displayName = email[:at]
	}

	now := time.Now()
	return &User{
		sequence:     sequence,
		email:        email,
		displayName:  displayName,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}
}

func (u *User) ID() string            { return u.id }
func (u *User) Sequence() int         { return u.sequence }
func (u *User) Email() string         { return u.email }
func (u *User) DisplayName() string   { return u.displayName }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
func (u *User) DeletedAt() *time.Time { return u.deletedAt }

func (u *User) SetID(id string)             { u.id = id }
func (u *User) SetDisplayName(name string)  { u.displayName = name }
func (u *User) SetCreatedAt(t time.Time)    { u.createdAt = t }
func (u *User) SetUpdatedAt(t time.Time)    { u.updatedAt = t }
func (u *User) SetDeletedAt(t *time.Time)   { u.deletedAt = t }
func (u *User) SetPasswordHash(hash string) { u.passwordHash = hash }

// Validate checks that the user has an email and a credential.
func (u *User) Validate() error {
	if u.email == "" {
		return fmt.Errorf("user email is required")
	}
	if u.passwordHash == "" {
		return fmt.Errorf("user password hash is required")
	}
	return nil
}

// DTO returns the client-facing projection of the user.
func (u *User) DTO() UserDTO {
	return UserDTO{ID: u.id, Email: u.email, DisplayName: u.displayName}
}
