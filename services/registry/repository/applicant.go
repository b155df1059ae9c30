package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sais/domain"

	"gorm.io/gorm"
)

const (
	applicantFullName = "concat_ws(' ', a.first_name, NULLIF(a.middle_name, ''), a.last_name)"
	applicantSearch   = "(a.first_name ILIKE ? OR a.last_name ILIKE ? OR a.id_number ILIKE ?)"
)

type applicantRepository struct {
	db *gorm.DB
}

func NewApplicantRepository(database *gorm.DB) domain.ApplicantRepo {
	return &applicantRepository{
		db: database,
	}
}

// joinApplicantGeography joins the lookups and the full village ancestry of applicant alias a.
func joinApplicantGeography(q *gorm.DB) *gorm.DB {
	return q.
		Joins("JOIN gender_categories g ON g.gender_id = a.gender_id").
		Joins("JOIN marital_statuses ms ON ms.marital_status_id = a.marital_status_id").
		Joins("JOIN villages v ON v.village_id = a.village_id").
		Joins("JOIN sub_locations sl ON sl.sub_location_id = v.sub_location_id").
		Joins("JOIN locations l ON l.location_id = sl.location_id").
		Joins("JOIN sub_counties sc ON sc.sub_county_id = l.sub_county_id").
		Joins("JOIN counties c ON c.county_id = sc.county_id")
}

func dateValue(d *domain.Date) interface{} {
	if d == nil {
		return nil
	}
	return *d
}

func (ar *applicantRepository) Create(ctx context.Context, applicant *domain.Applicant) error {
	db := conn(ctx, ar.db)

	if err := db.Omit("PhoneNumbers").Create(applicant).Error; err != nil {
		return translateError(err, opWrite)
	}
	return insertPhones(db, applicant.ApplicantID, applicant.PhoneNumbers)
}

func insertPhones(db *gorm.DB, applicantID int, phones []domain.PhoneNumber) error {
	if len(phones) == 0 {
		return nil
	}
	for i := range phones {
		phones[i].ApplicantID = applicantID
	}
	if err := db.Create(&phones).Error; err != nil {
		return translateError(err, opWrite)
	}
	return nil
}

func (ar *applicantRepository) Update(ctx context.Context, applicant *domain.Applicant) error {
	db := conn(ctx, ar.db)

	res := db.Model(&domain.Applicant{}).
		Where("applicant_id = ?", applicant.ApplicantID).
		Where("version = ?", applicant.Version).
		Updates(map[string]interface{}{
			"first_name":        applicant.FirstName,
			"middle_name":       applicant.MiddleName,
			"last_name":         applicant.LastName,
			"id_number":         applicant.IDNumber,
			"age":               applicant.Age,
			"date_of_birth":     dateValue(applicant.DateOfBirth),
			"gender_id":         applicant.GenderID,
			"marital_status_id": applicant.MaritalStatusID,
			"village_id":        applicant.VillageID,
			"postal_address":    applicant.PostalAddress,
			"physical_address":  applicant.PhysicalAddress,
			"version":           gorm.Expr("version + 1"),
			"updated_at":        time.Now(),
		})
	if res.Error != nil {
		return translateError(res.Error, opWrite)
	}
	if res.RowsAffected == 0 {
		return missingOrStale(db, "applicants", "applicant_id", applicant.ApplicantID, "Applicant")
	}

	if err := db.Where("applicant_id = ?", applicant.ApplicantID).Delete(&domain.PhoneNumber{}).Error; err != nil {
		return translateError(err, opWrite)
	}
	return insertPhones(db, applicant.ApplicantID, applicant.PhoneNumbers)
}

// missingOrStale explains a versioned update that touched no row.
func missingOrStale(db *gorm.DB, table, key string, id int, entity string) error {
	var n int64
	if err := db.Table(table).Where(key+" = ?", id).Count(&n).Error; err != nil {
		return translateError(err, opRead)
	}
	if n == 0 {
		return domain.NewNotFoundError(entity, id)
	}
	return domain.NewConflictError(nil)
}

func (ar *applicantRepository) Delete(ctx context.Context, id int) error {
	res := conn(ctx, ar.db).Where("applicant_id = ?", id).Delete(&domain.Applicant{})
	if res.Error != nil {
		err := translateError(res.Error, opDelete)
		if domain.KindOf(err) == domain.KindHasDependents {
			return domain.NewHasDependentsError(
				"Cannot delete this applicant because they have associated applications. Please delete the applications first.",
				res.Error)
		}
		return err
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("Applicant", id)
	}
	return nil
}

func (ar *applicantRepository) IDNumberTaken(ctx context.Context, idNumber string, excludeID int) (bool, error) {
	var n int64
	err := conn(ctx, ar.db).Model(&domain.Applicant{}).
		Where("id_number = ? AND applicant_id <> ?", idNumber, excludeID).
		Count(&n).Error
	if err != nil {
		return false, translateError(err, opRead)
	}
	return n > 0, nil
}

func (ar *applicantRepository) profileQuery(ctx context.Context) *gorm.DB {
	q := conn(ctx, ar.db).Table("applicants AS a").
		Select(`a.applicant_id, a.first_name, a.middle_name, a.last_name, a.id_number, a.age, a.date_of_birth,
			a.gender_id, g.name AS gender_name, a.marital_status_id, ms.name AS marital_status_name,
			a.village_id, v.name AS village_name, sl.sub_location_id, sl.name AS sub_location_name,
			l.location_id, l.name AS location_name, sc.sub_county_id, sc.name AS sub_county_name,
			c.county_id, c.name AS county_name, a.postal_address, a.physical_address, a.version`)
	return joinApplicantGeography(q)
}

func (ar *applicantRepository) Profile(ctx context.Context, id int) (*domain.ApplicantProfile, error) {
	return ar.profileWhere(ctx, "a.applicant_id = ?", id)
}

func (ar *applicantRepository) ProfileByIDNumber(ctx context.Context, idNumber string) (*domain.ApplicantProfile, error) {
	return ar.profileWhere(ctx, "a.id_number = ?", idNumber)
}

func (ar *applicantRepository) profileWhere(ctx context.Context, cond string, arg interface{}) (*domain.ApplicantProfile, error) {
	var profile domain.ApplicantProfile
	res := ar.profileQuery(ctx).Where(cond, arg).Scan(&profile)
	if res.Error != nil {
		return nil, translateError(res.Error, opRead)
	}
	if res.RowsAffected == 0 {
		return nil, domain.NewNotFoundError("Applicant", arg)
	}

	phones, err := phonesFor(conn(ctx, ar.db), []int{profile.ApplicantID})
	if err != nil {
		return nil, err
	}
	profile.PhoneNumbers = phones[profile.ApplicantID]
	if profile.PhoneNumbers == nil {
		profile.PhoneNumbers = []string{}
	}
	return &profile, nil
}

// phonesFor loads the phone numbers of several applicants in one query.
func phonesFor(db *gorm.DB, applicantIDs []int) (map[int][]string, error) {
	out := make(map[int][]string, len(applicantIDs))
	if len(applicantIDs) == 0 {
		return out, nil
	}

	var phones []domain.PhoneNumber
	if err := db.Where("applicant_id IN ?", applicantIDs).Order("phone_number_id").Find(&phones).Error; err != nil {
		return nil, translateError(err, opRead)
	}
	for _, p := range phones {
		out[p.ApplicantID] = append(out[p.ApplicantID], p.Number)
	}
	return out, nil
}

func (ar *applicantRepository) Applications(ctx context.Context, applicantID int) ([]domain.ApplicantApplication, error) {
	var apps []domain.ApplicantApplication
	err := conn(ctx, ar.db).Table("applications AS a").
		Select("a.application_id, a.application_date, o.name AS officer_name, a.applicant_signed_date, a.officer_signed_date").
		Joins("JOIN officers o ON o.officer_id = a.officer_id").
		Where("a.applicant_id = ?", applicantID).
		Order("a.application_date DESC, a.application_id DESC").
		Scan(&apps).Error
	if err != nil {
		return nil, translateError(err, opRead)
	}
	for i := range apps {
		apps[i].Status = domain.DeriveStatus(apps[i].ApplicantSignedDate, apps[i].OfficerSignedDate)
	}
	return apps, nil
}

func (ar *applicantRepository) List(ctx context.Context, filter domain.ApplicantFilter) ([]domain.ApplicantListItem, error) {
	q := conn(ctx, ar.db).Table("applicants AS a").
		Select(fmt.Sprintf(`a.applicant_id, %s AS full_name, a.id_number, a.age, a.date_of_birth,
			g.name AS gender_name, ms.name AS marital_status_name, v.name AS village_name, c.name AS county_name,
			(SELECT COUNT(*) FROM applications x WHERE x.applicant_id = a.applicant_id) AS application_count`, applicantFullName))
	q = joinApplicantGeography(q)

	if s := strings.TrimSpace(filter.SearchString); s != "" {
		p := likePattern(s)
		q = q.Where(applicantSearch, p, p, p)
	}
	if county := strings.TrimSpace(filter.CountyFilter); county != "" {
		q = q.Where("c.name ILIKE ?", likePattern(county))
	}

	var items []domain.ApplicantListItem
	if err := q.Order("a.last_name, a.first_name, a.applicant_id").Scan(&items).Error; err != nil {
		return nil, translateError(err, opRead)
	}

	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.ApplicantID
	}
	phones, err := phonesFor(conn(ctx, ar.db), ids)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].PhoneNumbers = strings.Join(phones[items[i].ApplicantID], ", ")
	}
	return items, nil
}

type applicantOptionRow struct {
	ApplicantID int
	FirstName   string
	LastName    string
	IDNumber    string `gorm:"column:id_number"`
}

func toApplicantOptions(rows []applicantOptionRow) []domain.ApplicantOption {
	out := make([]domain.ApplicantOption, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ApplicantOption{
			Value:    r.ApplicantID,
			Label:    fmt.Sprintf("%s (%s)", domain.JoinName(r.FirstName, r.LastName), r.IDNumber),
			IDNumber: r.IDNumber,
		})
	}
	return out
}

func (ar *applicantRepository) Search(ctx context.Context, term string, limit int) ([]domain.ApplicantOption, error) {
	p := likePattern(term)

	var rows []applicantOptionRow
	err := conn(ctx, ar.db).Table("applicants AS a").
		Select("a.applicant_id, a.first_name, a.last_name, a.id_number").
		Where(applicantSearch, p, p, p).
		Order("a.last_name, a.first_name, a.applicant_id").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err, opRead)
	}
	return toApplicantOptions(rows), nil
}

func (ar *applicantRepository) Options(ctx context.Context) ([]domain.ApplicantOption, error) {
	var rows []applicantOptionRow
	err := conn(ctx, ar.db).Table("applicants AS a").
		Select("a.applicant_id, a.first_name, a.last_name, a.id_number").
		Order("a.last_name, a.first_name, a.applicant_id").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err, opRead)
	}
	return toApplicantOptions(rows), nil
}

func (ar *applicantRepository) Exists(ctx context.Context, id int) (bool, error) {
	var n int64
	if err := conn(ctx, ar.db).Model(&domain.Applicant{}).Where("applicant_id = ?", id).Count(&n).Error; err != nil {
		return false, translateError(err, opRead)
	}
	return n > 0, nil
}
