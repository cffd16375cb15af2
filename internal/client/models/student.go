// Package models holds the records exchanged with the resume backend.
package models

import "time"

// Resume status values. Students resubmit, staff mark a resume reviewed; the
// backend owns every other transition.
const (
	ResumeStatusEmpty     = "empty"
	ResumeStatusSubmitted = "submitted"
	ResumeStatusReviewed  = "reviewed"
)

// Profile describes what kind of resume the student wants.
type Profile struct {
	ID                  string `json:"_id,omitempty"`
	ResumeType          string `json:"resumeType,omitempty"`
	Experience          string `json:"experience,omitempty"`
	Education           string `json:"education,omitempty"`
	LocationHistory     string `json:"locationHistory,omitempty"`
	SpecificClient      string `json:"specificClient,omitempty"`
	SpecificClientAvoid string `json:"specificClientAvoid,omitempty"`
}

// Resume links the student-submitted and staff-submitted documents.
type Resume struct {
	ID              string `json:"_id,omitempty"`
	UserID          string `json:"userId,omitempty"`
	StudentResume   string `json:"student_resume,omitempty"`
	StaffResume     string `json:"cybertek_resume,omitempty"`
	Status          string `json:"status"`
	StudentComments string `json:"student_comments,omitempty"`
	AdminComments   string `json:"admin_coments,omitempty"`
	SubmittedDate   string `json:"submitted_date,omitempty"`
}

// NewResume returns the placeholder held before any resume is fetched.
func NewResume() *Resume {
	return &Resume{Status: ResumeStatusEmpty}
}

// Student is a user record as returned by the backend.
type Student struct {
	ID          string     `json:"_id,omitempty"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email" validate:"required"`
	Visa        string     `json:"visa"`
	BatchNumber string     `json:"batch_number"`
	StudyCourse string     `json:"study_course"`
	Role        string     `json:"role,omitempty"`
	Profile     *Profile   `json:"profile,omitempty"`
	Resume      *Resume    `json:"resume,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

// FullName joins first and last name.
func (s *Student) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
