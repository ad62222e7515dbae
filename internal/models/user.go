package models

import "time"

// User represents an account stored in the users table.
type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	IsAdmin      bool      `db:"is_admin" json:"isAdmin"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// UpdateProfileRequest is the self-service profile update. Only these fields are honoured.
type UpdateProfileRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=120"`
	Email           *string `json:"email" validate:"omitempty,email"`
	CurrentPassword string  `json:"currentPassword"`
	NewPassword     string  `json:"newPassword" validate:"omitempty,min=6"`
}

// AdminUpdateUserRequest is the admin edit of another account. Passwords are never touched here.
type AdminUpdateUserRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=120"`
	Email   *string `json:"email" validate:"omitempty,email"`
	IsAdmin *bool   `json:"isAdmin"`
}
