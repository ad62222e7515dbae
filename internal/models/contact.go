package models

import "time"

// ContactStatus tracks whether an admin has read a message.
type ContactStatus string

const (
	ContactStatusUnread ContactStatus = "Unread"
	ContactStatusRead   ContactStatus = "Read"
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        string        `db:"id" json:"id"`
	Name      string        `db:"name" json:"name"`
	Email     string        `db:"email" json:"email"`
	Phone     string        `db:"phone" json:"phone"`
	Subject   string        `db:"subject" json:"subject"`
	Message   string        `db:"message" json:"message"`
	Status    ContactStatus `db:"status" json:"status"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time     `db:"updated_at" json:"updatedAt"`
}

// SubmitContactRequest is the anonymous contact form payload.
type SubmitContactRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// UpdateContactStatusRequest changes the read state. An empty status keeps the current one.
type UpdateContactStatusRequest struct {
	Status ContactStatus `json:"status" validate:"omitempty,oneof=Read Unread"`
}

// ContactFilter narrows the admin message listing.
type ContactFilter struct {
	Status ContactStatus
}
