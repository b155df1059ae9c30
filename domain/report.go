package domain

import (
	"context"
	"strings"
)

type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportHTML ExportFormat = "html"
	ExportXLSX ExportFormat = "xlsx"
)

func ParseExportFormat(s string) (ExportFormat, bool) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case ExportCSV, ExportHTML, ExportXLSX:
		return f, true
	}
	return "", false
}

type NamedCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type StatusCounts struct {
	Total                  int64 `json:"total"`
	Approved               int64 `json:"approved"`
	PendingOfficerApproval int64 `json:"pendingOfficerApproval"`
	Draft                  int64 `json:"draft"`
}

type ReportSummary struct {
	StatusCounts
	Pending   int64        `json:"pending"`
	ByProgram []NamedCount `json:"byProgram"`
	ByOfficer []NamedCount `json:"byOfficer"`
}

type ReportFilter struct {
	OfficerFilter string
	ProgramFilter string
	StartDate     *Date
	EndDate       *Date
}

// ReportRow is one application flattened for reports and exports.
type ReportRow struct {
	ApplicationID       int               `json:"applicationId"`
	ApplicationDate     Date              `json:"applicationDate"`
	ApplicantName       string            `json:"applicantName"`
	IDNumber            string            `gorm:"column:id_number" json:"idNumber"`
	GenderName          string            `json:"genderName"`
	MaritalStatusName   string            `json:"maritalStatusName"`
	CountyName          string            `json:"countyName"`
	OfficerName         string            `json:"officerName"`
	ApplicantSignedDate *Date             `json:"applicantSignedDate,omitempty"`
	OfficerSignedDate   *Date             `json:"officerSignedDate,omitempty"`
	Programs            []string          `gorm:"-" json:"programs"`
	Status              ApplicationStatus `gorm:"-" json:"status"`
}

type ExportFile struct {
	FileName    string
	ContentType string
	Body        []byte
}

type ReportRepo interface {
	StatusCounts(ctx context.Context) (*StatusCounts, error)
	CountByProgram(ctx context.Context) ([]NamedCount, error)
	CountByOfficer(ctx context.Context) ([]NamedCount, error)
	Rows(ctx context.Context, filter ReportFilter) ([]ReportRow, error)
}

type ReportUseCase interface {
	Summary(ctx context.Context) (*ReportSummary, error)
	Applications(ctx context.Context, filter ReportFilter) ([]ReportRow, error)
	Export(ctx context.Context, format ExportFormat, filter ReportFilter) (*ExportFile, error)
}
