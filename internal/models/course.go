package models

// CourseLevel ranks course difficulty.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// EnrollmentStatus tells whether a course accepts new students.
type EnrollmentStatus string

const (
	EnrollmentOpen       EnrollmentStatus = "open"
	EnrollmentClosed     EnrollmentStatus = "closed"
	EnrollmentInProgress EnrollmentStatus = "in progress"
)

// Course is a catalog entry. Price is a whole amount in the catalog currency.
type Course struct {
	ID               string           `json:"id"`
	Title            string           `json:"title" validate:"required,max=200"`
	Description      string           `json:"description" validate:"required"`
	Instructor       string           `json:"instructor" validate:"required"`
	Duration         string           `json:"duration" validate:"required"`
	Level            CourseLevel      `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Price            int              `json:"price" validate:"gte=0"`
	Image            string           `json:"image" validate:"omitempty,url"`
	EnrollmentStatus EnrollmentStatus `json:"enrollmentStatus" validate:"required,oneof=open closed 'in progress'"`
}

// EnrolledCourse is a course as seen from a student's dashboard.
type EnrolledCourse struct {
	Course
	EnrollmentDate string `json:"enrollmentDate"`
}

// CourseStatusRequest changes only the enrollment status of a course.
type CourseStatusRequest struct {
	EnrollmentStatus EnrollmentStatus `json:"enrollmentStatus" validate:"required,oneof=open closed 'in progress'"`
}

// EnrollmentView answers whether the current session is enrolled in a course.
type EnrollmentView struct {
	CourseID string `json:"courseId"`
	Enrolled bool   `json:"enrolled"`
}
