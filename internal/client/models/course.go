package models

// Course is a catalog entry as served by the backend.
type Course struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Instructor       string  `json:"instructor"`
	Duration         string  `json:"duration"`
	Level            string  `json:"level"`
	Price            float64 `json:"price"`
	Image            string  `json:"image,omitempty"`
	EnrollmentStatus string  `json:"enrollmentStatus,omitempty"`
}

// Course levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Enrollment statuses.
const (
	EnrollmentOpen       = "open"
	EnrollmentClosed     = "closed"
	EnrollmentInProgress = "in progress"
)
