package models

import "time"

// DatabaseHealth reports store connectivity.
type DatabaseHealth struct {
	Connected bool   `json:"connected"`
	State     string `json:"state"`
}

// HealthStatus is returned by the health endpoint.
type HealthStatus struct {
	Status    string         `json:"status"`
	Uptime    float64        `json:"uptime"`
	Timestamp time.Time      `json:"timestamp"`
	Database  DatabaseHealth `json:"database"`
}

// Overview holds the admin dashboard counters.
type Overview struct {
	Users          int `db:"users" json:"users"`
	Courses        int `db:"courses" json:"courses"`
	ActiveCourses  int `db:"active_courses" json:"activeCourses"`
	Testimonials   int `db:"testimonials" json:"testimonials"`
	Messages       int `db:"messages" json:"messages"`
	UnreadMessages int `db:"unread_messages" json:"unreadMessages"`
}

// UploadResult describes a stored upload.
type UploadResult struct {
	Path     string `json:"path"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
}

// ExportFile is a rendered export ready to stream.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
