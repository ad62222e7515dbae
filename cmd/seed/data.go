package main

import "github.com/Jayantx07/Education-Point/internal/models"

type sampleUser struct {
	name     string
	email    string
	password string
	admin    bool
}

var sampleUsers = []sampleUser{
	{name: "Admin User", email: "admin@educationpoint.com", password: "admin123", admin: true},
	{name: "Rahul Sharma", email: "rahul@example.com", password: "user123"},
}

var sampleCourses = []models.Course{
	{
		Title:            "NEET Complete Preparation",
		Description:      "Full syllabus coverage for NEET with weekly mock tests and doubt sessions.",
		Category:         "NEET",
		Level:            "Advanced",
		Duration:         "12 months",
		Price:            45000,
		Discount:         10,
		Instructor:       models.Instructor{Name: "Dr. Meera Iyer", Bio: "MBBS, 12 years of NEET coaching"},
		Image:            "/uploads/sample-neet.jpg",
		EnrolledStudents: 320,
		Rating:           4.8,
		NumReviews:       96,
		Syllabus: models.Syllabus{
			{Title: "Physics", Description: "Mechanics, optics, modern physics"},
			{Title: "Chemistry", Description: "Physical, organic and inorganic"},
			{Title: "Biology", Description: "Botany and zoology"},
		},
		IsPopular: true,
		IsActive:  true,
	},
	{
		Title:            "CUET General Test Crash Course",
		Description:      "Quantitative aptitude, reasoning and general awareness for CUET.",
		Category:         "CUET",
		Level:            "Intermediate",
		Duration:         "3 months",
		Price:            12000,
		Instructor:       models.Instructor{Name: "Anil Verma"},
		Image:            "/uploads/sample-cuet.jpg",
		EnrolledStudents: 150,
		Rating:           4.5,
		NumReviews:       40,
		Syllabus:         models.Syllabus{{Title: "Quantitative aptitude"}, {Title: "Logical reasoning"}},
		IsPopular:        true,
		IsActive:         true,
	},
	{
		Title:       "Foundation Mathematics Class 9-10",
		Description: "Concept building in algebra, geometry and number systems.",
		Category:    "FOUNDATION",
		Level:       "Beginner",
		Duration:    "10 months",
		Price:       18000,
		Discount:    5,
		Instructor:  models.Instructor{Name: "Kavita Rao"},
		Image:       "/uploads/sample-foundation.jpg",
		Syllabus:    models.Syllabus{{Title: "Algebra"}, {Title: "Geometry"}},
		IsActive:    true,
	},
	{
		Title:       "Python Programming for Beginners",
		Description: "Programming fundamentals with hands-on projects.",
		Category:    "COMPUTER",
		Level:       "Beginner",
		Duration:    "8 weeks",
		Price:       6000,
		Instructor:  models.Instructor{Name: "Sameer Khan"},
		Image:       "/uploads/sample-python.jpg",
		Syllabus:    models.Syllabus{},
		IsActive:    false,
	},
}

var sampleTestimonials = []models.Testimonial{
	{
		Name:        "Priya Singh",
		Image:       "/uploads/sample-priya.jpg",
		Course:      "NEET Complete Preparation",
		Rating:      5,
		Testimonial: "The mock tests and doubt sessions made all the difference. Cleared NEET in my first attempt.",
		IsActive:    true,
	},
	{
		Name:        "Arjun Mehta",
		Image:       "/uploads/sample-arjun.jpg",
		Course:      "CUET General Test Crash Course",
		Rating:      4,
		Testimonial: "Short and focused. The reasoning shortcuts were very useful.",
		IsActive:    true,
	},
}

var sampleContacts = []models.Contact{
	{
		Name:    "Neha Gupta",
		Email:   "neha@example.com",
		Phone:   "9876543210",
		Subject: "Admission enquiry",
		Message: "I would like to know the batch timings for the NEET course.",
		Status:  models.ContactStatusUnread,
	},
	{
		Name:    "Vikram Patel",
		Email:   "vikram@example.com",
		Subject: "Fee structure",
		Message: "Are there any instalment options for the foundation course?",
		Status:  models.ContactStatusRead,
	},
}
