package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// CourseCategories lists the accepted course categories.
var CourseCategories = []string{"CUET", "NEET", "FOUNDATION", "Pre-FOUNDATION", "COMPUTER", "MATHS", "SCIENCE", "SST", "ENGLISH"}

// CourseLevels lists the accepted difficulty levels.
var CourseLevels = []string{"Beginner", "Intermediate", "Advanced"}

// PopularCourseLimit caps the popular course listing.
const PopularCourseLimit = 6

// Instructor is embedded in a course and stored as JSONB.
type Instructor struct {
	Name  string `json:"name" validate:"required,max=120"`
	Bio   string `json:"bio,omitempty"`
	Image string `json:"image,omitempty"`
}

// Value implements driver.Valuer.
func (i Instructor) Value() (driver.Value, error) {
	return json.Marshal(i)
}

// Scan implements sql.Scanner.
func (i *Instructor) Scan(src interface{}) error {
	return scanJSON(src, i)
}

// SyllabusItem is one module of a course outline.
type SyllabusItem struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
}

// Syllabus is stored as a JSONB array. A nil syllabus is stored as [].
type Syllabus []SyllabusItem

// Value implements driver.Valuer.
func (s Syllabus) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]SyllabusItem(s))
}

// Scan implements sql.Scanner.
func (s *Syllabus) Scan(src interface{}) error {
	return scanJSON(src, s)
}

// Course is a catalog entry.
type Course struct {
	ID               string     `db:"id" json:"id"`
	Title            string     `db:"title" json:"title" validate:"required,max=200"`
	Description      string     `db:"description" json:"description" validate:"required"`
	Category         string     `db:"category" json:"category" validate:"required,oneof=CUET NEET FOUNDATION Pre-FOUNDATION COMPUTER MATHS SCIENCE SST ENGLISH"`
	Level            string     `db:"level" json:"level" validate:"required,oneof=Beginner Intermediate Advanced"`
	Duration         string     `db:"duration" json:"duration" validate:"required,max=64"`
	Price            float64    `db:"price" json:"price" validate:"gte=0"`
	Discount         float64    `db:"discount" json:"discount" validate:"gte=0"`
	Instructor       Instructor `db:"instructor" json:"instructor"`
	Image            string     `db:"image" json:"image" validate:"required"`
	EnrolledStudents int        `db:"enrolled_students" json:"enrolledStudents" validate:"gte=0"`
	Rating           float64    `db:"rating" json:"rating" validate:"gte=0,lte=5"`
	NumReviews       int        `db:"num_reviews" json:"numReviews" validate:"gte=0"`
	Syllabus         Syllabus   `db:"syllabus" json:"syllabus" validate:"dive"`
	IsPopular        bool       `db:"is_popular" json:"isPopular"`
	IsActive         bool       `db:"is_active" json:"isActive"`
	CreatedAt        time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updatedAt"`
}

// CourseFilter narrows the course listing.
type CourseFilter struct {
	Category        string
	Search          string
	IncludeInactive bool
}

// CreateCourseRequest carries a new course. Pointer fields fall back to defaults when omitted.
type CreateCourseRequest struct {
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Category         string         `json:"category"`
	Level            string         `json:"level"`
	Duration         string         `json:"duration"`
	Price            float64        `json:"price"`
	Discount         float64        `json:"discount"`
	Instructor       Instructor     `json:"instructor"`
	Image            string         `json:"image"`
	EnrolledStudents int            `json:"enrolledStudents"`
	Rating           float64        `json:"rating"`
	NumReviews       int            `json:"numReviews"`
	Syllabus         []SyllabusItem `json:"syllabus"`
	IsPopular        bool           `json:"isPopular"`
	IsActive         *bool          `json:"isActive"`
}

// UpdateCourseRequest is a partial update. Nil fields keep their stored value.
type UpdateCourseRequest struct {
	Title            *string         `json:"title"`
	Description      *string         `json:"description"`
	Category         *string         `json:"category"`
	Level            *string         `json:"level"`
	Duration         *string         `json:"duration"`
	Price            *float64        `json:"price"`
	Discount         *float64        `json:"discount"`
	Instructor       *Instructor     `json:"instructor"`
	Image            *string         `json:"image"`
	EnrolledStudents *int            `json:"enrolledStudents"`
	Rating           *float64        `json:"rating"`
	NumReviews       *int            `json:"numReviews"`
	Syllabus         *[]SyllabusItem `json:"syllabus"`
	IsPopular        *bool           `json:"isPopular"`
	IsActive         *bool           `json:"isActive"`
}

func scanJSON(src interface{}, dest interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported JSON column type %T", src)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dest)
}
