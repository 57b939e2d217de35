// Package services contains the read/CRUD services the portal UI consumes.
// Each is a thin client of the backend gateway; failures come back as plain
// errors for the caller to present.
package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alpstech/portal/internal/client/api"
	"github.com/alpstech/portal/internal/client/models"
)

// CourseService serves the course catalog. Without a configured backend it
// falls back to the embedded demo catalog so the client stays browsable in
// local-fallback mode.
type CourseService struct {
	api *api.Client
}

// NewCourseService returns a CourseService. api may be nil (local-fallback
// mode), in which case only the demo catalog is served.
func NewCourseService(client *api.Client) *CourseService {
	return &CourseService{api: client}
}

// List returns all catalog entries.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	if s.api == nil {
		return demoCatalog(), nil
	}

	res := s.api.Call(ctx, http.MethodGet, "courses", nil)
	courses, err := api.Decode[[]models.Course](res)
	if err != nil {
		return nil, fmt.Errorf("unable to load courses: %w", err)
	}
	return courses, nil
}

// Get returns a single catalog entry by id.
func (s *CourseService) Get(ctx context.Context, id string) (*models.Course, error) {
	if s.api == nil {
		for _, c := range demoCatalog() {
			if c.ID == id {
				return &c, nil
			}
		}
		return nil, fmt.Errorf("unable to load course %s", id)
	}

	res := s.api.Call(ctx, http.MethodGet, "courses/"+id, nil)
	course, err := api.Decode[models.Course](res)
	if err != nil {
		return nil, fmt.Errorf("unable to load course %s: %w", id, err)
	}
	return &course, nil
}

// demoCatalog is the seeded course list used when no backend is configured.
func demoCatalog() []models.Course {
	return []models.Course{
		{
			ID:               "1",
			Title:            "Web Development Fundamentals",
			Description:      "Learn the basics of web development including HTML, CSS, and JavaScript. Build responsive websites from scratch.",
			Instructor:       "John Smith",
			Duration:         "8 weeks",
			Level:            models.LevelBeginner,
			Price:            19999,
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
			EnrollmentStatus: models.EnrollmentClosed,
		},
	}
}
