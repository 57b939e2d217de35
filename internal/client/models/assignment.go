package models

// Assignment is a course handout with an attached PDF.
type Assignment struct {
	ID          string `json:"_id"`
	CourseID    string `json:"courseId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PDFPath     string `json:"pdfPath"`
	CreatedAt   string `json:"createdAt"`
}
