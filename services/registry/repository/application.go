package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"sais/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(database *gorm.DB) domain.ApplicationRepo {
	return &applicationRepository{
		db: database,
	}
}

func insertAppliedPrograms(db *gorm.DB, applicationID int, programIDs []int) error {
	if len(programIDs) == 0 {
		return nil
	}
	rows := make([]domain.AppliedProgram, 0, len(programIDs))
	for _, id := range programIDs {
		rows = append(rows, domain.AppliedProgram{ApplicationID: applicationID, ProgramID: id})
	}
	if err := db.Create(&rows).Error; err != nil {
		return translateError(err, opWrite)
	}
	return nil
}

func (apr *applicationRepository) Create(ctx context.Context, app *domain.Application, programIDs []int) error {
	db := conn(ctx, apr.db)

	if err := db.Omit("AppliedPrograms").Create(app).Error; err != nil {
		return translateError(err, opWrite)
	}
	return insertAppliedPrograms(db, app.ApplicationID, programIDs)
}

func (apr *applicationRepository) Update(ctx context.Context, app *domain.Application, programIDs []int) error {
	db := conn(ctx, apr.db)

	res := db.Model(&domain.Application{}).
		Where("application_id = ?", app.ApplicationID).
		Where("version = ?", app.Version).
		Updates(map[string]interface{}{
			"officer_id":            app.OfficerID,
			"application_date":      app.ApplicationDate,
			"applicant_signed_date": dateValue(app.ApplicantSignedDate),
			"officer_signed_date":   dateValue(app.OfficerSignedDate),
			"version":               gorm.Expr("version + 1"),
			"updated_at":            time.Now(),
		})
	if res.Error != nil {
		return translateError(res.Error, opWrite)
	}
	if res.RowsAffected == 0 {
		return missingOrStale(db, "applications", "application_id", app.ApplicationID, "Application")
	}

	if err := db.Where("application_id = ?", app.ApplicationID).Delete(&domain.AppliedProgram{}).Error; err != nil {
		return translateError(err, opWrite)
	}
	return insertAppliedPrograms(db, app.ApplicationID, programIDs)
}

func (apr *applicationRepository) Delete(ctx context.Context, id int) error {
	res := conn(ctx, apr.db).Where("application_id = ?", id).Delete(&domain.Application{})
	if res.Error != nil {
		return translateError(res.Error, opDelete)
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("Application", id)
	}
	return nil
}

func (apr *applicationRepository) FindByID(ctx context.Context, id int) (*domain.Application, error) {
	var app domain.Application
	if err := conn(ctx, apr.db).Preload("AppliedPrograms").First(&app, "application_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Application", id)
		}
		return nil, translateError(err, opRead)
	}
	return &app, nil
}

// programsFor loads the programs of several applications in one query.
func programsFor(db *gorm.DB, applicationIDs []int) (map[int][]domain.ProgramRef, error) {
	out := make(map[int][]domain.ProgramRef, len(applicationIDs))
	if len(applicationIDs) == 0 {
		return out, nil
	}

	var refs []domain.ProgramRef
	err := db.Table("applied_programs AS x").
		Select("x.application_id, p.program_id, p.name").
		Joins("JOIN social_assistance_programs p ON p.program_id = x.program_id").
		Where("x.application_id IN ?", applicationIDs).
		Order("p.name, p.program_id").
		Scan(&refs).Error
	if err != nil {
		return nil, translateError(err, opRead)
	}
	for _, r := range refs {
		out[r.ApplicationID] = append(out[r.ApplicationID], r)
	}
	return out, nil
}

func programNames(refs []domain.ProgramRef) []string {
	names := make([]string, 0, len(refs))
	for _, r := range refs {
		names = append(names, r.Name)
	}
	return names
}

func (apr *applicationRepository) Details(ctx context.Context, id int) (*domain.ApplicationDetails, error) {
	db := conn(ctx, apr.db)

	var details domain.ApplicationDetails
	res := db.Table("applications AS a").
		Select(`a.application_id, a.application_date, a.applicant_signed_date, a.officer_signed_date, a.version,
			a.applicant_id, concat_ws(' ', ap.first_name, NULLIF(ap.middle_name, ''), ap.last_name) AS applicant_name,
			ap.id_number, ap.postal_address, ap.physical_address,
			a.officer_id, o.name AS officer_name, o.designation AS officer_designation`).
		Joins("JOIN applicants ap ON ap.applicant_id = a.applicant_id").
		Joins("JOIN officers o ON o.officer_id = a.officer_id").
		Where("a.application_id = ?", id).
		Scan(&details)
	if res.Error != nil {
		return nil, translateError(res.Error, opRead)
	}
	if res.RowsAffected == 0 {
		return nil, domain.NewNotFoundError("Application", id)
	}

	phones, err := phonesFor(db, []int{details.ApplicantID})
	if err != nil {
		return nil, err
	}
	programs, err := programsFor(db, []int{details.ApplicationID})
	if err != nil {
		return nil, err
	}

	details.PhoneNumbers = phones[details.ApplicantID]
	details.Programs = programs[details.ApplicationID]
	details.Status = domain.DeriveStatus(details.ApplicantSignedDate, details.OfficerSignedDate)
	return &details, nil
}

// applyApplicationFilters narrows a query over applications a, applicants ap and officers o.
func applyApplicationFilters(q *gorm.DB, search, officer, program string, start, end *domain.Date) *gorm.DB {
	if s := strings.TrimSpace(search); s != "" {
		p := likePattern(s)
		q = q.Where("(ap.first_name ILIKE ? OR ap.last_name ILIKE ? OR ap.id_number ILIKE ?)", p, p, p)
	}
	if s := strings.TrimSpace(officer); s != "" {
		q = q.Where("o.name ILIKE ?", likePattern(s))
	}
	if s := strings.TrimSpace(program); s != "" {
		q = q.Where(`EXISTS (SELECT 1 FROM applied_programs x
			JOIN social_assistance_programs p ON p.program_id = x.program_id
			WHERE x.application_id = a.application_id AND p.name ILIKE ?)`, likePattern(s))
	}
	if start != nil {
		q = q.Where("a.application_date >= ?", *start)
	}
	if end != nil {
		q = q.Where("a.application_date <= ?", *end)
	}
	return q
}

func (apr *applicationRepository) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.ApplicationListItem, error) {
	db := conn(ctx, apr.db)

	q := db.Table("applications AS a").
		Select(`a.application_id, a.application_date, a.applicant_id,
			concat_ws(' ', ap.first_name, NULLIF(ap.middle_name, ''), ap.last_name) AS applicant_name,
			ap.id_number, a.officer_id, o.name AS officer_name, a.applicant_signed_date, a.officer_signed_date`).
		Joins("JOIN applicants ap ON ap.applicant_id = a.applicant_id").
		Joins("JOIN officers o ON o.officer_id = a.officer_id")
	q = applyApplicationFilters(q, filter.SearchString, filter.OfficerFilter, filter.ProgramFilter, filter.StartDate, filter.EndDate)

	var items []domain.ApplicationListItem
	if err := q.Order("a.application_date DESC, a.application_id DESC").Scan(&items).Error; err != nil {
		return nil, translateError(err, opRead)
	}

	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.ApplicationID
	}
	programs, err := programsFor(db, ids)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Programs = programNames(programs[items[i].ApplicationID])
		items[i].Status = domain.DeriveStatus(items[i].ApplicantSignedDate, items[i].OfficerSignedDate)
	}
	return items, nil
}

func (apr *applicationRepository) Enrollments(ctx context.Context, applicantID int) ([]domain.Enrollment, error) {
	var enrollments []domain.Enrollment
	err := conn(ctx, apr.db).Table("applied_programs AS x").
		Select("x.program_id, p.name AS program_name, a.application_id, a.application_date").
		Joins("JOIN applications a ON a.application_id = x.application_id").
		Joins("JOIN social_assistance_programs p ON p.program_id = x.program_id").
		Where("a.applicant_id = ?", applicantID).
		Order("a.application_date, a.application_id, p.name").
		Scan(&enrollments).Error
	if err != nil {
		return nil, translateError(err, opRead)
	}
	return enrollments, nil
}

func (apr *applicationRepository) LockApplicant(ctx context.Context, applicantID int) error {
	var row struct{ ApplicantID int }
	err := conn(ctx, apr.db).Model(&domain.Applicant{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("applicant_id").
		Where("applicant_id = ?", applicantID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewFieldError(domain.KindNotFound, "applicantId", domain.CodeApplicantNotFound, "Applicant not found.")
		}
		return translateError(err, opRead)
	}
	return nil
}
