package models

import "time"

// StudentDashboard aggregates the signed-in student's overview.
type StudentDashboard struct {
	Student         PublicAccount    `json:"student"`
	EnrolledCourses []EnrolledCourse `json:"enrolledCourses"`
	Results         []Result         `json:"results"`
	LatestResult    *Result          `json:"latestResult"`
	Statistics      Statistics       `json:"statistics"`
}

// AdminDashboard summarises the admin console.
type AdminDashboard struct {
	TotalCourses    int           `json:"totalCourses"`
	TotalStudents   int           `json:"totalStudents"`
	TotalResults    int           `json:"totalResults"`
	OpenEnrollments int           `json:"openEnrollments"`
	RecentResults   []AdminResult `json:"recentResults"`
}

// StudentSummary is a student account row in the admin console.
type StudentSummary struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	EnrolledCourses int    `json:"enrolledCourses"`
	Results         int    `json:"results"`
}

// SystemMetrics is a point-in-time summary of process activity.
type SystemMetrics struct {
	RequestsTotal            uint64    `json:"requestsTotal"`
	AverageRequestDurationMs float64   `json:"averageRequestDurationMs"`
	Enrollments              uint64    `json:"enrollments"`
	StorageFallbacks         uint64    `json:"storageFallbacks"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generatedAt"`
}
