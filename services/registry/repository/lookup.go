package repository

import (
	"context"
	"fmt"
	"time"

	"sais/domain"

	"gorm.io/gorm"
)

type lookupTable struct {
	table string
	key   string
	usage string
}

var lookupTables = map[domain.LookupKind]lookupTable{
	domain.LookupGender:        {table: "gender_categories", key: "gender_id", usage: "applicants"},
	domain.LookupMaritalStatus: {table: "marital_statuses", key: "marital_status_id", usage: "applicants"},
	domain.LookupProgram:       {table: "social_assistance_programs", key: "program_id", usage: "applied_programs"},
}

type lookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(database *gorm.DB) domain.LookupRepo {
	return &lookupRepository{
		db: database,
	}
}

func lookupTableFor(kind domain.LookupKind) (lookupTable, error) {
	t, ok := lookupTables[kind]
	if !ok {
		return lookupTable{}, domain.NewInternalError(fmt.Sprintf("unknown lookup %q", kind), nil)
	}
	return t, nil
}

func (lr *lookupRepository) CreateLookup(ctx context.Context, kind domain.LookupKind, name string) (int, error) {
	db := conn(ctx, lr.db)

	switch kind {
	case domain.LookupGender:
		m := domain.GenderCategory{Name: name}
		if err := db.Create(&m).Error; err != nil {
			return 0, translateError(err, opWrite)
		}
		return m.GenderID, nil
	case domain.LookupMaritalStatus:
		m := domain.MaritalStatus{Name: name}
		if err := db.Create(&m).Error; err != nil {
			return 0, translateError(err, opWrite)
		}
		return m.MaritalStatusID, nil
	case domain.LookupProgram:
		m := domain.SocialAssistanceProgram{Name: name}
		if err := db.Create(&m).Error; err != nil {
			return 0, translateError(err, opWrite)
		}
		return m.ProgramID, nil
	}

	_, err := lookupTableFor(kind)
	return 0, err
}

func (lr *lookupRepository) UpdateLookup(ctx context.Context, kind domain.LookupKind, id int, name string) error {
	t, err := lookupTableFor(kind)
	if err != nil {
		return err
	}

	res := conn(ctx, lr.db).Table(t.table).Where(t.key+" = ?", id).Updates(map[string]interface{}{
		"name":       name,
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return translateError(res.Error, opWrite)
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError(kind.Label(), id)
	}
	return nil
}

func (lr *lookupRepository) DeleteLookup(ctx context.Context, kind domain.LookupKind, id int) error {
	t, err := lookupTableFor(kind)
	if err != nil {
		return err
	}

	res := conn(ctx, lr.db).Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", t.table, t.key), id)
	if res.Error != nil {
		err := translateError(res.Error, opDelete)
		if domain.KindOf(err) == domain.KindHasDependents {
			return domain.NewHasDependentsError(
				fmt.Sprintf("Cannot delete this %s because applicants still reference it.", kind.Label()), res.Error)
		}
		return err
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError(kind.Label(), id)
	}
	return nil
}

func (lr *lookupRepository) itemQuery(ctx context.Context, t lookupTable) *gorm.DB {
	return conn(ctx, lr.db).Table(t.table + " AS l").
		Select(fmt.Sprintf("l.%s AS id, l.name, (SELECT COUNT(*) FROM %s u WHERE u.%s = l.%s) AS usage_count",
			t.key, t.usage, t.key, t.key))
}

func (lr *lookupRepository) GetLookup(ctx context.Context, kind domain.LookupKind, id int) (*domain.LookupItem, error) {
	t, err := lookupTableFor(kind)
	if err != nil {
		return nil, err
	}

	var item domain.LookupItem
	res := lr.itemQuery(ctx, t).Where("l."+t.key+" = ?", id).Scan(&item)
	if res.Error != nil {
		return nil, translateError(res.Error, opRead)
	}
	if res.RowsAffected == 0 {
		return nil, domain.NewNotFoundError(kind.Label(), id)
	}
	return &item, nil
}

func (lr *lookupRepository) ListLookups(ctx context.Context, kind domain.LookupKind) ([]domain.LookupItem, error) {
	t, err := lookupTableFor(kind)
	if err != nil {
		return nil, err
	}

	var items []domain.LookupItem
	if err := lr.itemQuery(ctx, t).Order("l.name, l." + t.key).Scan(&items).Error; err != nil {
		return nil, translateError(err, opRead)
	}
	return items, nil
}

func (lr *lookupRepository) CountLookups(ctx context.Context, kind domain.LookupKind) (int64, error) {
	t, err := lookupTableFor(kind)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := conn(ctx, lr.db).Table(t.table).Count(&n).Error; err != nil {
		return 0, translateError(err, opRead)
	}
	return n, nil
}

func (lr *lookupRepository) LookupExists(ctx context.Context, kind domain.LookupKind, id int) (bool, error) {
	t, err := lookupTableFor(kind)
	if err != nil {
		return false, err
	}

	var n int64
	if err := conn(ctx, lr.db).Table(t.table).Where(t.key+" = ?", id).Count(&n).Error; err != nil {
		return false, translateError(err, opRead)
	}
	return n > 0, nil
}

// applicationSummaries lists applications with their applicant, newest first.
func applicationSummaries(db *gorm.DB) *gorm.DB {
	return db.Table("applications AS a").
		Select(`a.application_id, a.application_date, a.applicant_id,
			concat_ws(' ', ap.first_name, NULLIF(ap.middle_name, ''), ap.last_name) AS applicant_name,
			ap.id_number, a.applicant_signed_date, a.officer_signed_date`).
		Joins("JOIN applicants ap ON ap.applicant_id = a.applicant_id").
		Order("a.application_date DESC, a.application_id DESC")
}

func withStatus(apps []domain.OfficerApplication) []domain.OfficerApplication {
	for i := range apps {
		apps[i].Status = domain.DeriveStatus(apps[i].ApplicantSignedDate, apps[i].OfficerSignedDate)
	}
	return apps
}

func (lr *lookupRepository) ProgramApplications(ctx context.Context, programID int) ([]domain.OfficerApplication, error) {
	var apps []domain.OfficerApplication
	err := applicationSummaries(conn(ctx, lr.db)).
		Where("EXISTS (SELECT 1 FROM applied_programs x WHERE x.application_id = a.application_id AND x.program_id = ?)", programID).
		Scan(&apps).Error
	if err != nil {
		return nil, translateError(err, opRead)
	}
	return withStatus(apps), nil
}

func (lr *lookupRepository) CreateOfficer(ctx context.Context, officer *domain.Officer) error {
	if err := conn(ctx, lr.db).Create(officer).Error; err != nil {
		return translateError(err, opWrite)
	}
	return nil
}

func (lr *lookupRepository) UpdateOfficer(ctx context.Context, officer *domain.Officer) error {
	res := conn(ctx, lr.db).Model(&domain.Officer{}).
		Where("officer_id = ?", officer.OfficerID).
		Updates(map[string]interface{}{
			"name":        officer.Name,
			"designation": officer.Designation,
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return translateError(res.Error, opWrite)
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("Officer", officer.OfficerID)
	}
	return nil
}

func (lr *lookupRepository) DeleteOfficer(ctx context.Context, id int) error {
	res := conn(ctx, lr.db).Where("officer_id = ?", id).Delete(&domain.Officer{})
	if res.Error != nil {
		return translateError(res.Error, opDelete)
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("Officer", id)
	}
	return nil
}

func (lr *lookupRepository) officerQuery(ctx context.Context) *gorm.DB {
	return conn(ctx, lr.db).Table("officers AS o").
		Select(`o.officer_id, o.name, o.designation,
			(SELECT COUNT(*) FROM applications a WHERE a.officer_id = o.officer_id) AS application_count`)
}

func (lr *lookupRepository) GetOfficer(ctx context.Context, id int) (*domain.OfficerSummary, error) {
	var officer domain.OfficerSummary
	res := lr.officerQuery(ctx).Where("o.officer_id = ?", id).Scan(&officer)
	if res.Error != nil {
		return nil, translateError(res.Error, opRead)
	}
	if res.RowsAffected == 0 {
		return nil, domain.NewNotFoundError("Officer", id)
	}
	return &officer, nil
}

func (lr *lookupRepository) ListOfficers(ctx context.Context) ([]domain.OfficerSummary, error) {
	var officers []domain.OfficerSummary
	if err := lr.officerQuery(ctx).Order("o.name, o.officer_id").Scan(&officers).Error; err != nil {
		return nil, translateError(err, opRead)
	}
	return officers, nil
}

func (lr *lookupRepository) OfficerExists(ctx context.Context, id int) (bool, error) {
	var n int64
	if err := conn(ctx, lr.db).Model(&domain.Officer{}).Where("officer_id = ?", id).Count(&n).Error; err != nil {
		return false, translateError(err, opRead)
	}
	return n > 0, nil
}

func (lr *lookupRepository) OfficerApplications(ctx context.Context, officerID int) ([]domain.OfficerApplication, error) {
	var apps []domain.OfficerApplication
	if err := applicationSummaries(conn(ctx, lr.db)).Where("a.officer_id = ?", officerID).Scan(&apps).Error; err != nil {
		return nil, translateError(err, opRead)
	}
	return withStatus(apps), nil
}
