// Package models defines the document types exchanged with the course-portal
// backend and cached locally by the client.
package models

import "slices"

// Role classifies an account. The backend only ever assigns these two values.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// User is the published identity of an authenticated account. It never
// carries a secret; see Registration for the credential-bearing form.
//
// ID is assigned by the system of record (or synthesized locally in
// fallback mode) and never reassigned. Email is unique across accounts.
type User struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Role            Role     `json:"role"`
	EnrolledCourses []string `json:"enrolledCourses"`
	Results         []string `json:"results"`
}

// IsEnrolled reports whether courseID is a member of the enrolled set.
func (u *User) IsEnrolled(courseID string) bool {
	if u == nil {
		return false
	}
	return slices.Contains(u.EnrolledCourses, courseID)
}

// Clone returns a deep copy so callers can hand the value out without
// sharing the underlying slices.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.EnrolledCourses = slices.Clone(u.EnrolledCourses)
	c.Results = slices.Clone(u.Results)
	return &c
}

// Registration couples a User with its secret. It exists only transiently
// during login/signup and inside the local-fallback credential registry;
// the secret must never reach the session slot or the published identity.
type Registration struct {
	User
	Secret string `json:"password"`
}
