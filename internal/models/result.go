package models

// Result is a graded assessment of one course.
type Result struct {
	ID         string `json:"id"`
	CourseID   string `json:"courseId"`
	CourseName string `json:"courseName"`
	Score      int    `json:"score"`
	MaxScore   int    `json:"maxScore"`
	Grade      string `json:"grade"`
	Date       string `json:"date"`
	Feedback   string `json:"feedback,omitempty"`
}

// AdminResult is a Result attributed to a student in the admin console.
type AdminResult struct {
	Result
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
}

// ResultDraft is the payload for recording a new admin result. Grade and course name are derived.
type ResultDraft struct {
	StudentID string `json:"studentId" validate:"required"`
	CourseID  string `json:"courseId" validate:"required"`
	Score     int    `json:"score" validate:"gte=0,ltefield=MaxScore"`
	MaxScore  int    `json:"maxScore" validate:"gt=0"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Feedback  string `json:"feedback" validate:"max=1000"`
}

// DemoStudent is an entry of the admin console's sample student list.
type DemoStudent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Statistics summarises a set of results.
type Statistics struct {
	Count        int     `json:"count"`
	AverageScore float64 `json:"averageScore"`
	TopGrade     string  `json:"topGrade"`
}
