package models

// DashboardStats is the admin landing-page summary.
type DashboardStats struct {
	TotalCourses    int `json:"totalCourses"`
	TotalStudents   int `json:"totalStudents"`
	TotalResults    int `json:"totalResults"`
	OpenEnrollments int `json:"openEnrollments"`
}

// RecentEnrollment is a dashboard row joining an enrollment with the
// user and course names it references.
type RecentEnrollment struct {
	ID             string `json:"_id"`
	EnrollmentDate string `json:"enrollmentDate"`
	User           []struct {
		Name string `json:"name"`
	} `json:"user"`
	Course []struct {
		Title string `json:"title"`
	} `json:"course"`
}

// LatestResult is a dashboard row for a recently recorded result.
type LatestResult struct {
	ID       string  `json:"_id"`
	Score    float64 `json:"score"`
	MaxScore float64 `json:"maxScore"`
	Grade    string  `json:"grade"`
	Date     string  `json:"date"`
	User     []struct {
		Name string `json:"name"`
	} `json:"user"`
	Course []struct {
		Title string `json:"title"`
	} `json:"course"`
}
