package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type ApplicationStatus string

const (
	StatusDraft                  ApplicationStatus = "Draft"
	StatusPendingOfficerApproval ApplicationStatus = "Pending Officer Approval"
	StatusApproved               ApplicationStatus = "Approved"
)

// DeriveStatus is the only source of an application's status.
func DeriveStatus(applicantSigned, officerSigned *Date) ApplicationStatus {
	switch {
	case officerSigned != nil:
		return StatusApproved
	case applicantSigned != nil:
		return StatusPendingOfficerApproval
	default:
		return StatusDraft
	}
}

type Application struct {
	ApplicationID       int              `gorm:"primaryKey;autoIncrement" json:"applicationId"`
	ApplicantID         int              `gorm:"not null;index" json:"applicantId"`
	OfficerID           int              `gorm:"not null;index" json:"officerId"`
	ApplicationDate     Date             `gorm:"type:date;not null;index" json:"applicationDate"`
	ApplicantSignedDate *Date            `gorm:"type:date" json:"applicantSignedDate,omitempty"`
	OfficerSignedDate   *Date            `gorm:"type:date" json:"officerSignedDate,omitempty"`
	Version             int              `gorm:"not null;default:1" json:"version"`
	AppliedPrograms     []AppliedProgram `gorm:"foreignKey:ApplicationID" json:"appliedPrograms,omitempty"`
	CreatedAt           time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Application) TableName() string { return "applications" }

func (a Application) Status() ApplicationStatus {
	return DeriveStatus(a.ApplicantSignedDate, a.OfficerSignedDate)
}

type AppliedProgram struct {
	ApplicationID int `gorm:"primaryKey;autoIncrement:false" json:"applicationId"`
	ProgramID     int `gorm:"primaryKey;autoIncrement:false;index" json:"programId"`
}

func (AppliedProgram) TableName() string { return "applied_programs" }

// Enrollment is one program already held by an applicant through an application.
type Enrollment struct {
	ProgramID       int    `json:"programId"`
	ProgramName     string `json:"programName"`
	ApplicationID   int    `json:"applicationId"`
	ApplicationDate Date   `json:"applicationDate"`
}

// EnrollmentConflicts returns the existing enrollments that collide with the
// requested programs, ignoring the application being edited.
func EnrollmentConflicts(existing []Enrollment, programIDs []int, excludeApplicationID int) []Enrollment {
	requested := make(map[int]struct{}, len(programIDs))
	for _, id := range programIDs {
		requested[id] = struct{}{}
	}
	var conflicts []Enrollment
	for _, e := range existing {
		if e.ApplicationID == excludeApplicationID {
			continue
		}
		if _, ok := requested[e.ProgramID]; ok {
			conflicts = append(conflicts, e)
		}
	}
	return conflicts
}

func NewDuplicateEnrollmentError(conflicts []Enrollment) *Error {
	parts := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		parts = append(parts, fmt.Sprintf("%s (Application #%d - %s)", c.ProgramName, c.ApplicationID, c.ApplicationDate.Display()))
	}
	msg := "This applicant has already applied for the following programs: " + strings.Join(parts, ", ")
	return NewFieldError(KindDuplicate, "programIds", CodeDuplicateProgramEnrollment, msg)
}

type ApplicationInput struct {
	ApplicantID         int    `json:"applicantId" form:"applicantId" valid:"-"`
	ApplicantIDNumber   string `json:"applicantIdNumber" form:"applicantIdNumber" valid:"-"`
	OfficerID           int    `json:"officerId" form:"officerId" valid:"-"`
	ApplicationDate     string `json:"applicationDate" form:"applicationDate" valid:"-"`
	ApplicantSignedDate string `json:"applicantSignedDate" form:"applicantSignedDate" valid:"-"`
	OfficerSignedDate   string `json:"officerSignedDate" form:"officerSignedDate" valid:"-"`
	ProgramIDs          []int  `json:"programIds" form:"programIds" valid:"-"`
	Version             int    `json:"version" form:"version" valid:"-"`
}

type ApplicationListItem struct {
	ApplicationID       int               `json:"applicationId"`
	ApplicationDate     Date              `json:"applicationDate"`
	ApplicantID         int               `json:"applicantId"`
	ApplicantName       string            `json:"applicantName"`
	IDNumber            string            `gorm:"column:id_number" json:"idNumber"`
	OfficerID           int               `json:"officerId"`
	OfficerName         string            `json:"officerName"`
	ApplicantSignedDate *Date             `json:"applicantSignedDate,omitempty"`
	OfficerSignedDate   *Date             `json:"officerSignedDate,omitempty"`
	Programs            []string          `gorm:"-" json:"programs"`
	Status              ApplicationStatus `gorm:"-" json:"status"`
}

type ProgramRef struct {
	ApplicationID int    `json:"-"`
	ProgramID     int    `json:"programId"`
	Name          string `json:"name"`
}

type ApplicationDetails struct {
	ApplicationID       int               `json:"applicationId"`
	ApplicationDate     Date              `json:"applicationDate"`
	ApplicantSignedDate *Date             `json:"applicantSignedDate,omitempty"`
	OfficerSignedDate   *Date             `json:"officerSignedDate,omitempty"`
	Version             int               `json:"version"`
	ApplicantID         int               `json:"applicantId"`
	ApplicantName       string            `json:"applicantName"`
	IDNumber            string            `gorm:"column:id_number" json:"idNumber"`
	PostalAddress       string            `json:"postalAddress"`
	PhysicalAddress     string            `json:"physicalAddress"`
	OfficerID           int               `json:"officerId"`
	OfficerName         string            `json:"officerName"`
	OfficerDesignation  string            `json:"officerDesignation"`
	PhoneNumbers        []string          `gorm:"-" json:"phoneNumbers"`
	Programs            []ProgramRef      `gorm:"-" json:"programs"`
	Status              ApplicationStatus `gorm:"-" json:"status"`
}

type ApplicationFilter struct {
	SearchString  string
	OfficerFilter string
	ProgramFilter string
	StartDate     *Date
	EndDate       *Date
}

type ApplicationFormData struct {
	Applicants []ApplicantOption `json:"applicants"`
	Officers   []Option          `json:"officers"`
	Programs   []Option          `json:"programs"`
}

type ApplicationEditForm struct {
	Application ApplicationDetails  `json:"application"`
	ProgramIDs  []int               `json:"programIds"`
	Form        ApplicationFormData `json:"form"`
}

type ApplicationRepo interface {
	Create(ctx context.Context, app *Application, programIDs []int) error
	Update(ctx context.Context, app *Application, programIDs []int) error
	Delete(ctx context.Context, id int) error
	FindByID(ctx context.Context, id int) (*Application, error)
	Details(ctx context.Context, id int) (*ApplicationDetails, error)
	List(ctx context.Context, filter ApplicationFilter) ([]ApplicationListItem, error)
	Enrollments(ctx context.Context, applicantID int) ([]Enrollment, error)
	// LockApplicant serialises enrollment changes of one applicant for the rest of the transaction.
	LockApplicant(ctx context.Context, applicantID int) error
}

type ApplicationUseCase interface {
	FormData(ctx context.Context) (*ApplicationFormData, error)
	Create(ctx context.Context, in ApplicationInput) (int, error)
	CreateForIDNumber(ctx context.Context, idNumber string, in ApplicationInput) (int, error)
	Update(ctx context.Context, id int, in ApplicationInput) error
	Delete(ctx context.Context, id int) error
	Details(ctx context.Context, id int) (*ApplicationDetails, error)
	EditForm(ctx context.Context, id int) (*ApplicationEditForm, error)
	List(ctx context.Context, filter ApplicationFilter) ([]ApplicationListItem, error)
	SearchApplicants(ctx context.Context, term string) ([]ApplicantOption, error)
	ExistingApplications(ctx context.Context, applicantID int) ([]Enrollment, error)
}
