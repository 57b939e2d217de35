package models

// Result is a graded outcome for one student in one course.
type Result struct {
	ID           string  `json:"_id"`
	StudentEmail string  `json:"studentEmail"`
	StudentName  string  `json:"studentName"`
	CourseID     string  `json:"courseId"`
	CourseName   string  `json:"courseName"`
	Score        float64 `json:"score"`
	MaxScore     float64 `json:"maxScore"`
	Grade        string  `json:"grade"`
	Date         string  `json:"date"`
	Feedback     string  `json:"feedback,omitempty"`
}
