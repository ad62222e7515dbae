package models

import "time"

// Testimonial is a student review shown on the public site. Course is free text, not a reference.
type Testimonial struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name" validate:"required,max=120"`
	Image       string    `db:"image" json:"image" validate:"required"`
	Course      string    `db:"course" json:"course" validate:"required,max=200"`
	Rating      int       `db:"rating" json:"rating" validate:"min=1,max=5"`
	Testimonial string    `db:"testimonial" json:"testimonial" validate:"required"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// CreateTestimonialRequest carries a new testimonial. IsActive defaults to true.
type CreateTestimonialRequest struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Course      string `json:"course"`
	Rating      int    `json:"rating"`
	Testimonial string `json:"testimonial"`
	IsActive    *bool  `json:"isActive"`
}

// UpdateTestimonialRequest is a partial update.
type UpdateTestimonialRequest struct {
	Name        *string `json:"name"`
	Image       *string `json:"image"`
	Course      *string `json:"course"`
	Rating      *int    `json:"rating"`
	Testimonial *string `json:"testimonial"`
	IsActive    *bool   `json:"isActive"`
}
