package models

// CourseRef is the compact course reference embedded in admin listings.
type CourseRef struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

// ResultRef is the compact result reference embedded in admin listings.
type ResultRef struct {
	ID       string  `json:"_id"`
	Score    float64 `json:"score"`
	Grade    string  `json:"grade"`
	CourseID string  `json:"courseId"`
}

// Student is the admin-facing view of an account with its joined
// enrollments and results.
type Student struct {
	ID              string      `json:"_id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	EnrolledCourses []CourseRef `json:"enrolledCourses"`
	Results         []ResultRef `json:"results"`
}

// StudentEnrollment is one (student, course) membership row with its date.
type StudentEnrollment struct {
	ID             string `json:"_id"`
	EnrollmentDate string `json:"enrollmentDate"`
	Student        struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	} `json:"student"`
	Course struct {
		ID    string `json:"_id"`
		Title string `json:"title"`
	} `json:"course"`
}
