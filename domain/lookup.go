package domain

import (
	"context"
	"time"
)

type LookupKind string

const (
	LookupGender        LookupKind = "gender"
	LookupMaritalStatus LookupKind = "maritalStatus"
	LookupProgram       LookupKind = "program"
)

func (k LookupKind) Label() string {
	switch k {
	case LookupGender:
		return "Gender"
	case LookupMaritalStatus:
		return "Marital Status"
	case LookupProgram:
		return "Program"
	}
	return string(k)
}

func (k LookupKind) MaxNameLength() int {
	switch k {
	case LookupGender:
		return 20
	case LookupMaritalStatus:
		return 30
	}
	return 100
}

type GenderCategory struct {
	GenderID  int       `gorm:"primaryKey;autoIncrement" json:"genderId"`
	Name      string    `gorm:"type:varchar(20);not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (GenderCategory) TableName() string { return "gender_categories" }

type MaritalStatus struct {
	MaritalStatusID int       `gorm:"primaryKey;autoIncrement" json:"maritalStatusId"`
	Name            string    `gorm:"type:varchar(30);not null" json:"name"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (MaritalStatus) TableName() string { return "marital_statuses" }

type SocialAssistanceProgram struct {
	ProgramID int       `gorm:"primaryKey;autoIncrement" json:"programId"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (SocialAssistanceProgram) TableName() string { return "social_assistance_programs" }

type Officer struct {
	OfficerID   int       `gorm:"primaryKey;autoIncrement" json:"officerId"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Designation string    `gorm:"type:varchar(100);not null" json:"designation"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Officer) TableName() string { return "officers" }

// LookupItem is a gender, marital status or program with the number of rows using it.
type LookupItem struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	UsageCount int64  `json:"usageCount"`
}

type LookupInput struct {
	Name string `json:"name" form:"name" valid:"required~Name is required"`
}

type OfficerInput struct {
	Name        string `json:"name" form:"name" valid:"required~Name is required,stringlength(1|100)~Name cannot exceed 100 characters"`
	Designation string `json:"designation" form:"designation" valid:"required~Designation is required,stringlength(1|100)~Designation cannot exceed 100 characters"`
}

type OfficerSummary struct {
	OfficerID        int    `json:"officerId"`
	Name             string `json:"name"`
	Designation      string `json:"designation"`
	ApplicationCount int64  `json:"applicationCount"`
}

// OfficerApplication is one application signed off (or awaiting sign-off) by an officer.
type OfficerApplication struct {
	ApplicationID       int               `json:"applicationId"`
	ApplicationDate     Date              `json:"applicationDate"`
	ApplicantID         int               `json:"applicantId"`
	ApplicantName       string            `json:"applicantName"`
	IDNumber            string            `gorm:"column:id_number" json:"idNumber"`
	ApplicantSignedDate *Date             `json:"applicantSignedDate,omitempty"`
	OfficerSignedDate   *Date             `json:"officerSignedDate,omitempty"`
	Status              ApplicationStatus `gorm:"-" json:"status"`
}

type OfficerDetails struct {
	OfficerSummary
	Applications []OfficerApplication `json:"applications"`
}

type ProgramDetails struct {
	LookupItem
	Applications []OfficerApplication `json:"applications"`
}

type LookupRepo interface {
	CreateLookup(ctx context.Context, kind LookupKind, name string) (int, error)
	UpdateLookup(ctx context.Context, kind LookupKind, id int, name string) error
	DeleteLookup(ctx context.Context, kind LookupKind, id int) error
	GetLookup(ctx context.Context, kind LookupKind, id int) (*LookupItem, error)
	ListLookups(ctx context.Context, kind LookupKind) ([]LookupItem, error)
	CountLookups(ctx context.Context, kind LookupKind) (int64, error)
	LookupExists(ctx context.Context, kind LookupKind, id int) (bool, error)
	ProgramApplications(ctx context.Context, programID int) ([]OfficerApplication, error)

	CreateOfficer(ctx context.Context, officer *Officer) error
	UpdateOfficer(ctx context.Context, officer *Officer) error
	DeleteOfficer(ctx context.Context, id int) error
	GetOfficer(ctx context.Context, id int) (*OfficerSummary, error)
	ListOfficers(ctx context.Context) ([]OfficerSummary, error)
	OfficerExists(ctx context.Context, id int) (bool, error)
	OfficerApplications(ctx context.Context, officerID int) ([]OfficerApplication, error)
}

type LookupUseCase interface {
	Create(ctx context.Context, kind LookupKind, in LookupInput) (int, error)
	Update(ctx context.Context, kind LookupKind, id int, in LookupInput) error
	Delete(ctx context.Context, kind LookupKind, id int) error
	Get(ctx context.Context, kind LookupKind, id int) (*LookupItem, error)
	List(ctx context.Context, kind LookupKind) ([]LookupItem, error)
	Count(ctx context.Context, kind LookupKind) (int64, error)
	ProgramDetails(ctx context.Context, id int) (*ProgramDetails, error)

	CreateOfficer(ctx context.Context, in OfficerInput) (int, error)
	UpdateOfficer(ctx context.Context, id int, in OfficerInput) error
	DeleteOfficer(ctx context.Context, id int) error
	GetOfficer(ctx context.Context, id int) (*OfficerSummary, error)
	ListOfficers(ctx context.Context) ([]OfficerSummary, error)
	OfficerDetails(ctx context.Context, id int) (*OfficerDetails, error)
}
