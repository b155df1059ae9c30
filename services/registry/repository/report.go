package repository

import (
	"context"

	"sais/domain"

	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(database *gorm.DB) domain.ReportRepo {
	return &reportRepository{
		db: database,
	}
}

func (rr *reportRepository) StatusCounts(ctx context.Context) (*domain.StatusCounts, error) {
	var counts domain.StatusCounts
	err := conn(ctx, rr.db).Table("applications").
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE officer_signed_date IS NOT NULL) AS approved,
			COUNT(*) FILTER (WHERE officer_signed_date IS NULL AND applicant_signed_date IS NOT NULL) AS pending_officer_approval,
			COUNT(*) FILTER (WHERE officer_signed_date IS NULL AND applicant_signed_date IS NULL) AS draft`).
		Scan(&counts).Error
	if err != nil {
		return nil, translateError(err, opRead)
	}
	return &counts, nil
}

func (rr *reportRepository) CountByProgram(ctx context.Context) ([]domain.NamedCount, error) {
	var counts []domain.NamedCount
	err := conn(ctx, rr.db).Table("social_assistance_programs AS p").
		Select("p.name AS name, COUNT(x.application_id) AS count").
		Joins("JOIN applied_programs x ON x.program_id = p.program_id").
		Group("p.program_id, p.name").
		Order("2 DESC, 1 ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, translateError(err, opRead)
	}
	return counts, nil
}

func (rr *reportRepository) CountByOfficer(ctx context.Context) ([]domain.NamedCount, error) {
	var counts []domain.NamedCount
	err := conn(ctx, rr.db).Table("officers AS o").
		Select("o.name AS name, COUNT(a.application_id) AS count").
		Joins("JOIN applications a ON a.officer_id = o.officer_id").
		Group("o.officer_id, o.name").
		Order("2 DESC, 1 ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, translateError(err, opRead)
	}
	return counts, nil
}

func (rr *reportRepository) Rows(ctx context.Context, filter domain.ReportFilter) ([]domain.ReportRow, error) {
	db := conn(ctx, rr.db)

	q := db.Table("applications AS a").
		Select(`a.application_id, a.application_date,
			concat_ws(' ', ap.first_name, NULLIF(ap.middle_name, ''), ap.last_name) AS applicant_name,
			ap.id_number, g.name AS gender_name, ms.name AS marital_status_name, c.name AS county_name,
			o.name AS officer_name, a.applicant_signed_date, a.officer_signed_date`).
		Joins("JOIN applicants ap ON ap.applicant_id = a.applicant_id").
		Joins("JOIN officers o ON o.officer_id = a.officer_id").
		Joins("JOIN gender_categories g ON g.gender_id = ap.gender_id").
		Joins("JOIN marital_statuses ms ON ms.marital_status_id = ap.marital_status_id").
		Joins("JOIN villages v ON v.village_id = ap.village_id").
		Joins("JOIN sub_locations sl ON sl.sub_location_id = v.sub_location_id").
		Joins("JOIN locations l ON l.location_id = sl.location_id").
		Joins("JOIN sub_counties sc ON sc.sub_county_id = l.sub_county_id").
		Joins("JOIN counties c ON c.county_id = sc.county_id")
	q = applyApplicationFilters(q, "", filter.OfficerFilter, filter.ProgramFilter, filter.StartDate, filter.EndDate)

	var rows []domain.ReportRow
	if err := q.Order("a.application_date DESC, a.application_id DESC").Scan(&rows).Error; err != nil {
		return nil, translateError(err, opRead)
	}

	ids := make([]int, len(rows))
	for i, r := range rows {
		ids[i] = r.ApplicationID
	}
	programs, err := programsFor(db, ids)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Programs = programNames(programs[rows[i].ApplicationID])
		rows[i].Status = domain.DeriveStatus(rows[i].ApplicantSignedDate, rows[i].OfficerSignedDate)
	}
	return rows, nil
}
