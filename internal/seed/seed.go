// Package seed holds the sample catalog and roster the academy ships with. Every accessor
// returns a fresh copy so callers may mutate the result freely.
package seed

import "github.com/noah-isme/alpstech-academy-api/internal/models"

// DefaultCourseImage is used for admin-created courses without an image.
const DefaultCourseImage = "https://images.unsplash.com/photo-1587620962725-abab7fe55159?q=80&w=2831&auto=format&fit=crop"

var courses = []models.Course{
	{
		ID:               "1",
		Title:            "Web Development Fundamentals",
		Description:      "Learn the basics of web development including HTML, CSS, and JavaScript. Build responsive websites from scratch.",
		Instructor:       "John Smith",
		Duration:         "8 weeks",
		Level:            models.LevelBeginner,
		Price:            19999,
		Image:            DefaultCourseImage,
		EnrollmentStatus: models.EnrollmentOpen,
	},
	{
		ID:               "2",
		Title:            "Advanced JavaScript Programming",
		Description:      "Master advanced JavaScript concepts including closures, promises, async/await, and modern ES6+ features.",
		Instructor:       "Sarah Johnson",
		Duration:         "10 weeks",
		Level:            models.LevelIntermediate,
		Price:            24999,
		Image:            "https://images.unsplash.com/photo-1555066931-4365d14bab8c?q=80&w=2940&auto=format&fit=crop",
		EnrollmentStatus: models.EnrollmentOpen,
	},
	{
		ID:               "3",
		Title:            "Database Management Systems",
		Description:      "Learn about database design, SQL, NoSQL, and how to integrate databases with applications.",
		Instructor:       "Michael Chen",
		Duration:         "12 weeks",
		Level:            models.LevelIntermediate,
		Price:            29999,
		Image:            "https://images.unsplash.com/photo-1544383835-bda2bc66a55d?q=80&w=2021&auto=format&fit=crop",
		EnrollmentStatus: models.EnrollmentOpen,
	},
	{
		ID:               "4",
		Title:            "Mobile App Development with React Native",
		Description:      "Build cross-platform mobile applications using React Native framework for iOS and Android.",
		Instructor:       "Emily Rodriguez",
		Duration:         "14 weeks",
		Level:            models.LevelAdvanced,
		Price:            34999,
		Image:            "https://images.unsplash.com/photo-1551650975-87deedd944c3?q=80&w=2874&auto=format&fit=crop",
		EnrollmentStatus: models.EnrollmentInProgress,
	},
	{
		ID:               "5",
		Title:            "Cybersecurity Fundamentals",
		Description:      "Learn the basics of network security, encryption, and protecting systems from cyber threats.",
		Instructor:       "David Wilson",
		Duration:         "10 weeks",
		Level:            models.LevelBeginner,
		Price:            22999,
		Image:            "https://images.unsplash.com/photo-1563013544-824ae1b704d3?q=80&w=2940&auto=format&fit=crop",
		EnrollmentStatus: models.EnrollmentOpen,
	},
	{
		ID:               "6",
		Title:            "Data Science and Machine Learning",
		Description:      "Introduction to data analysis, statistical methods, and machine learning algorithms using Python.",
		Instructor:       "Lisa Wong",
		Duration:         "16 weeks",
		Level:            models.LevelAdvanced,
		Price:            39999,
		Image:            "https://images.unsplash.com/photo-1551288049-bebda4e38f71?q=80&w=2940&auto=format&fit=crop",
		EnrollmentStatus: models.EnrollmentClosed,
	},
}

var results = []models.Result{
	{
		ID:         "1",
		CourseID:   "1",
		CourseName: "Web Development Fundamentals",
		Score:      88,
		MaxScore:   100,
		Grade:      "B+",
		Date:       "2023-05-15",
		Feedback:   "Great work on the HTML and CSS portions. Need some improvement in JavaScript fundamentals.",
	},
	{
		ID:         "2",
		CourseID:   "2",
		CourseName: "Advanced JavaScript Programming",
		Score:      78,
		MaxScore:   100,
		Grade:      "C+",
		Date:       "2023-08-22",
		Feedback:   "Good understanding of ES6 features, but work needed on asynchronous programming concepts.",
	},
	{
		ID:         "3",
		CourseID:   "5",
		CourseName: "Cybersecurity Fundamentals",
		Score:      95,
		MaxScore:   100,
		Grade:      "A",
		Date:       "2023-11-10",
		Feedback:   "Excellent understanding of security principles and threat modeling.",
	},
}

var accounts = []models.Account{
	{
		ID:              "1",
		Name:            "Student User",
		Email:           "student@example.com",
		Password:        "password123",
		Role:            models.RoleStudent,
		EnrolledCourses: []string{"1", "2", "5"},
		Results:         []string{"1", "2", "3"},
	},
	{
		ID:              "2",
		Name:            "Admin User",
		Email:           "admin@example.com",
		Password:        "admin123",
		Role:            models.RoleAdmin,
		EnrolledCourses: []string{},
		Results:         []string{},
	},
}

var demoStudents = []models.DemoStudent{
	{ID: "STU001", Name: "John Doe"},
	{ID: "STU002", Name: "Jane Smith"},
	{ID: "STU003", Name: "Michael Johnson"},
	{ID: "STU004", Name: "Emily Williams"},
	{ID: "STU005", Name: "David Brown"},
}

// Courses returns the catalog.
func Courses() []models.Course {
	out := make([]models.Course, len(courses))
	copy(out, courses)
	return out
}

// Results returns every graded result.
func Results() []models.Result {
	out := make([]models.Result, len(results))
	copy(out, results)
	return out
}

// Accounts returns the initial roster with plaintext secrets.
func Accounts() []models.Account {
	out := make([]models.Account, len(accounts))
	for i, a := range accounts {
		out[i] = a.Clone()
	}
	return out
}

// DemoStudents returns the sample students the admin console attributes results to.
func DemoStudents() []models.DemoStudent {
	out := make([]models.DemoStudent, len(demoStudents))
	copy(out, demoStudents)
	return out
}

// AdminResults attributes every result to a demo student in round-robin order.
func AdminResults() []models.AdminResult {
	out := make([]models.AdminResult, len(results))
	for i, r := range results {
		student := demoStudents[i%len(demoStudents)]
		out[i] = models.AdminResult{Result: r, StudentID: student.ID, StudentName: student.Name}
	}
	return out
}
