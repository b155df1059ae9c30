package domain

import (
	"context"
	"strings"
	"time"
)

type Applicant struct {
	ApplicantID     int           `gorm:"primaryKey;autoIncrement" json:"applicantId"`
	FirstName       string        `gorm:"type:varchar(50);not null" json:"firstName"`
	MiddleName      string        `gorm:"type:varchar(50)" json:"middleName"`
	LastName        string        `gorm:"type:varchar(50);not null" json:"lastName"`
	IDNumber        string        `gorm:"column:id_number;type:varchar(20);not null;uniqueIndex:idx_applicants_id_number" json:"idNumber"`
	Age             int           `gorm:"not null" json:"age"`
	DateOfBirth     *Date         `gorm:"type:date" json:"dateOfBirth,omitempty"`
	GenderID        int           `gorm:"not null;index" json:"genderId"`
	MaritalStatusID int           `gorm:"not null;index" json:"maritalStatusId"`
	VillageID       int           `gorm:"not null;index" json:"villageId"`
	PostalAddress   string        `gorm:"type:varchar(200)" json:"postalAddress"`
	PhysicalAddress string        `gorm:"type:varchar(200)" json:"physicalAddress"`
	Version         int           `gorm:"not null;default:1" json:"version"`
	PhoneNumbers    []PhoneNumber `gorm:"foreignKey:ApplicantID" json:"phoneNumbers,omitempty"`
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Applicant) TableName() string { return "applicants" }

func (a Applicant) FullName() string {
	return JoinName(a.FirstName, a.MiddleName, a.LastName)
}

type PhoneNumber struct {
	PhoneNumberID int    `gorm:"primaryKey;autoIncrement" json:"phoneNumberId"`
	ApplicantID   int    `gorm:"not null;index" json:"applicantId"`
	Number        string `gorm:"type:varchar(20);not null" json:"number"`
}

func (PhoneNumber) TableName() string { return "phone_numbers" }

// JoinName joins name parts with single spaces, skipping blanks.
func JoinName(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

type ApplicantInput struct {
	FirstName       string   `json:"firstName" form:"firstName" valid:"required~First Name is required,stringlength(1|50)~First Name cannot exceed 50 characters"`
	MiddleName      string   `json:"middleName" form:"middleName" valid:"stringlength(0|50)~Middle Name cannot exceed 50 characters"`
	LastName        string   `json:"lastName" form:"lastName" valid:"required~Last Name is required,stringlength(1|50)~Last Name cannot exceed 50 characters"`
	IDNumber        string   `json:"idNumber" form:"idNumber" valid:"required~ID Number is required,stringlength(1|20)~ID Number cannot exceed 20 characters"`
	Age             *int     `json:"age" form:"age" valid:"-"`
	DateOfBirth     string   `json:"dateOfBirth" form:"dateOfBirth" valid:"-"`
	GenderID        int      `json:"genderId" form:"genderId" valid:"required~Gender is required"`
	MaritalStatusID int      `json:"maritalStatusId" form:"maritalStatusId" valid:"required~Marital Status is required"`
	VillageID       int      `json:"villageId" form:"villageId" valid:"-"`
	PostalAddress   string   `json:"postalAddress" form:"postalAddress" valid:"stringlength(0|200)~Postal Address cannot exceed 200 characters"`
	PhysicalAddress string   `json:"physicalAddress" form:"physicalAddress" valid:"stringlength(0|200)~Physical Address cannot exceed 200 characters"`
	PhoneNumbers    []string `json:"phoneNumbers" form:"phoneNumbers" valid:"-"`
	Version         int      `json:"version" form:"version" valid:"-"`
}

// RegisterAndApplyInput is the combined applicant and first-application form.
type RegisterAndApplyInput struct {
	ApplicantInput
	OfficerID           int    `json:"officerId" form:"officerId" valid:"-"`
	ApplicationDate     string `json:"applicationDate" form:"applicationDate" valid:"-"`
	ApplicantSignedDate string `json:"applicantSignedDate" form:"applicantSignedDate" valid:"-"`
	OfficerSignedDate   string `json:"officerSignedDate" form:"officerSignedDate" valid:"-"`
	ProgramIDs          []int  `json:"programIds" form:"programIds" valid:"-"`
}

type RegisterAndApplyResult struct {
	ApplicantID   int `json:"applicantId"`
	ApplicationID int `json:"applicationId"`
}

// ApplicantProfile is an applicant with every referenced name resolved.
type ApplicantProfile struct {
	ApplicantID       int                    `json:"applicantId"`
	FirstName         string                 `json:"firstName"`
	MiddleName        string                 `json:"middleName"`
	LastName          string                 `json:"lastName"`
	IDNumber          string                 `gorm:"column:id_number" json:"idNumber"`
	Age               int                    `json:"age"`
	DateOfBirth       *Date                  `json:"dateOfBirth,omitempty"`
	GenderID          int                    `json:"genderId"`
	GenderName        string                 `json:"genderName"`
	MaritalStatusID   int                    `json:"maritalStatusId"`
	MaritalStatusName string                 `json:"maritalStatusName"`
	VillageID         int                    `json:"villageId"`
	VillageName       string                 `json:"villageName"`
	SubLocationID     int                    `json:"subLocationId"`
	SubLocationName   string                 `json:"subLocationName"`
	LocationID        int                    `json:"locationId"`
	LocationName      string                 `json:"locationName"`
	SubCountyID       int                    `json:"subCountyId"`
	SubCountyName     string                 `json:"subCountyName"`
	CountyID          int                    `json:"countyId"`
	CountyName        string                 `json:"countyName"`
	PostalAddress     string                 `json:"postalAddress"`
	PhysicalAddress   string                 `json:"physicalAddress"`
	Version           int                    `json:"version"`
	PhoneNumbers      []string               `gorm:"-" json:"phoneNumbers"`
	Applications      []ApplicantApplication `gorm:"-" json:"applications,omitempty"`
}

func (p ApplicantProfile) FullName() string {
	return JoinName(p.FirstName, p.MiddleName, p.LastName)
}

type ApplicantApplication struct {
	ApplicationID       int               `json:"applicationId"`
	ApplicationDate     Date              `json:"applicationDate"`
	OfficerName         string            `json:"officerName"`
	ApplicantSignedDate *Date             `json:"applicantSignedDate,omitempty"`
	OfficerSignedDate   *Date             `json:"officerSignedDate,omitempty"`
	Status              ApplicationStatus `gorm:"-" json:"status"`
}

type ApplicantListItem struct {
	ApplicantID       int    `json:"applicantId"`
	FullName          string `json:"fullName"`
	IDNumber          string `gorm:"column:id_number" json:"idNumber"`
	Age               int    `json:"age"`
	DateOfBirth       *Date  `json:"dateOfBirth,omitempty"`
	GenderName        string `json:"genderName"`
	MaritalStatusName string `json:"maritalStatusName"`
	VillageName       string `json:"villageName"`
	CountyName        string `json:"countyName"`
	PhoneNumbers      string `gorm:"-" json:"phoneNumbers"`
	ApplicationCount  int64  `json:"applicationCount"`
}

type ApplicantFilter struct {
	SearchString string `query:"searchString"`
	CountyFilter string `query:"countyFilter"`
}

// ApplicantOption is a typeahead hit.
type ApplicantOption struct {
	Value    int    `json:"value"`
	Label    string `json:"label"`
	IDNumber string `json:"idNumber"`
}

type ApplicantFormData struct {
	Genders         []Option `json:"genders"`
	MaritalStatuses []Option `json:"maritalStatuses"`
	Counties        []Option `json:"counties"`
	SubCounties     []Option `json:"subCounties,omitempty"`
	Locations       []Option `json:"locations,omitempty"`
	SubLocations    []Option `json:"subLocations,omitempty"`
	Villages        []Option `json:"villages,omitempty"`
	Officers        []Option `json:"officers,omitempty"`
	Programs        []Option `json:"programs,omitempty"`
}

type ApplicantEditForm struct {
	Applicant ApplicantProfile  `json:"applicant"`
	Form      ApplicantFormData `json:"form"`
}

type ApplicantRepo interface {
	Create(ctx context.Context, applicant *Applicant) error
	Update(ctx context.Context, applicant *Applicant) error
	Delete(ctx context.Context, id int) error
	IDNumberTaken(ctx context.Context, idNumber string, excludeID int) (bool, error)
	Profile(ctx context.Context, id int) (*ApplicantProfile, error)
	ProfileByIDNumber(ctx context.Context, idNumber string) (*ApplicantProfile, error)
	Applications(ctx context.Context, applicantID int) ([]ApplicantApplication, error)
	List(ctx context.Context, filter ApplicantFilter) ([]ApplicantListItem, error)
	Search(ctx context.Context, term string, limit int) ([]ApplicantOption, error)
	Options(ctx context.Context) ([]ApplicantOption, error)
	Exists(ctx context.Context, id int) (bool, error)
}

type ApplicantUseCase interface {
	FormData(ctx context.Context, withApplication bool) (*ApplicantFormData, error)
	Register(ctx context.Context, in ApplicantInput) (int, error)
	Update(ctx context.Context, id int, in ApplicantInput) error
	Delete(ctx context.Context, id int) error
	Details(ctx context.Context, id int) (*ApplicantProfile, error)
	EditForm(ctx context.Context, id int) (*ApplicantEditForm, error)
	Lookup(ctx context.Context, idNumber string) (*ApplicantProfile, error)
	List(ctx context.Context, filter ApplicantFilter) ([]ApplicantListItem, error)
	RegisterAndApply(ctx context.Context, in RegisterAndApplyInput) (*RegisterAndApplyResult, error)
}
