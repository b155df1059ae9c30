package usecase

import (
	"context"

	"sais/domain"

	"github.com/stretchr/testify/mock"
)

type fakeTx struct{ calls int }

func (f *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type mockApplicantRepo struct{ mock.Mock }

func (m *mockApplicantRepo) Create(ctx context.Context, a *domain.Applicant) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockApplicantRepo) Update(ctx context.Context, a *domain.Applicant) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockApplicantRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockApplicantRepo) IDNumberTaken(ctx context.Context, idNumber string, excludeID int) (bool, error) {
	args := m.Called(ctx, idNumber, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockApplicantRepo) Profile(ctx context.Context, id int) (*domain.ApplicantProfile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.ApplicantProfile)
	return p, args.Error(1)
}

func (m *mockApplicantRepo) ProfileByIDNumber(ctx context.Context, idNumber string) (*domain.ApplicantProfile, error) {
	args := m.Called(ctx, idNumber)
	p, _ := args.Get(0).(*domain.ApplicantProfile)
	return p, args.Error(1)
}

func (m *mockApplicantRepo) Applications(ctx context.Context, applicantID int) ([]domain.ApplicantApplication, error) {
	args := m.Called(ctx, applicantID)
	apps, _ := args.Get(0).([]domain.ApplicantApplication)
	return apps, args.Error(1)
}

func (m *mockApplicantRepo) List(ctx context.Context, filter domain.ApplicantFilter) ([]domain.ApplicantListItem, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]domain.ApplicantListItem)
	return items, args.Error(1)
}

func (m *mockApplicantRepo) Search(ctx context.Context, term string, limit int) ([]domain.ApplicantOption, error) {
	args := m.Called(ctx, term, limit)
	opts, _ := args.Get(0).([]domain.ApplicantOption)
	return opts, args.Error(1)
}

func (m *mockApplicantRepo) Options(ctx context.Context) ([]domain.ApplicantOption, error) {
	args := m.Called(ctx)
	opts, _ := args.Get(0).([]domain.ApplicantOption)
	return opts, args.Error(1)
}

func (m *mockApplicantRepo) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockApplicationRepo struct{ mock.Mock }

func (m *mockApplicationRepo) Create(ctx context.Context, app *domain.Application, programIDs []int) error {
	return m.Called(ctx, app, programIDs).Error(0)
}

func (m *mockApplicationRepo) Update(ctx context.Context, app *domain.Application, programIDs []int) error {
	return m.Called(ctx, app, programIDs).Error(0)
}

func (m *mockApplicationRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockApplicationRepo) FindByID(ctx context.Context, id int) (*domain.Application, error) {
	args := m.Called(ctx, id)
	app, _ := args.Get(0).(*domain.Application)
	return app, args.Error(1)
}

func (m *mockApplicationRepo) Details(ctx context.Context, id int) (*domain.ApplicationDetails, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*domain.ApplicationDetails)
	return d, args.Error(1)
}

func (m *mockApplicationRepo) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.ApplicationListItem, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]domain.ApplicationListItem)
	return items, args.Error(1)
}

func (m *mockApplicationRepo) Enrollments(ctx context.Context, applicantID int) ([]domain.Enrollment, error) {
	args := m.Called(ctx, applicantID)
	e, _ := args.Get(0).([]domain.Enrollment)
	return e, args.Error(1)
}

func (m *mockApplicationRepo) LockApplicant(ctx context.Context, applicantID int) error {
	return m.Called(ctx, applicantID).Error(0)
}

type mockLookupRepo struct{ mock.Mock }

func (m *mockLookupRepo) CreateLookup(ctx context.Context, kind domain.LookupKind, name string) (int, error) {
	args := m.Called(ctx, kind, name)
	return args.Int(0), args.Error(1)
}

func (m *mockLookupRepo) UpdateLookup(ctx context.Context, kind domain.LookupKind, id int, name string) error {
	return m.Called(ctx, kind, id, name).Error(0)
}

func (m *mockLookupRepo) DeleteLookup(ctx context.Context, kind domain.LookupKind, id int) error {
	return m.Called(ctx, kind, id).Error(0)
}

func (m *mockLookupRepo) GetLookup(ctx context.Context, kind domain.LookupKind, id int) (*domain.LookupItem, error) {
	args := m.Called(ctx, kind, id)
	it, _ := args.Get(0).(*domain.LookupItem)
	return it, args.Error(1)
}

func (m *mockLookupRepo) ListLookups(ctx context.Context, kind domain.LookupKind) ([]domain.LookupItem, error) {
	args := m.Called(ctx, kind)
	items, _ := args.Get(0).([]domain.LookupItem)
	return items, args.Error(1)
}

func (m *mockLookupRepo) CountLookups(ctx context.Context, kind domain.LookupKind) (int64, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLookupRepo) LookupExists(ctx context.Context, kind domain.LookupKind, id int) (bool, error) {
	args := m.Called(ctx, kind, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockLookupRepo) ProgramApplications(ctx context.Context, programID int) ([]domain.OfficerApplication, error) {
	args := m.Called(ctx, programID)
	apps, _ := args.Get(0).([]domain.OfficerApplication)
	return apps, args.Error(1)
}

func (m *mockLookupRepo) CreateOfficer(ctx context.Context, officer *domain.Officer) error {
	return m.Called(ctx, officer).Error(0)
}

func (m *mockLookupRepo) UpdateOfficer(ctx context.Context, officer *domain.Officer) error {
	return m.Called(ctx, officer).Error(0)
}

func (m *mockLookupRepo) DeleteOfficer(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockLookupRepo) GetOfficer(ctx context.Context, id int) (*domain.OfficerSummary, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*domain.OfficerSummary)
	return o, args.Error(1)
}

func (m *mockLookupRepo) ListOfficers(ctx context.Context) ([]domain.OfficerSummary, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).([]domain.OfficerSummary)
	return o, args.Error(1)
}

func (m *mockLookupRepo) OfficerExists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockLookupRepo) OfficerApplications(ctx context.Context, officerID int) ([]domain.OfficerApplication, error) {
	args := m.Called(ctx, officerID)
	apps, _ := args.Get(0).([]domain.OfficerApplication)
	return apps, args.Error(1)
}

type mockGeographyRepo struct{ mock.Mock }

func (m *mockGeographyRepo) Create(ctx context.Context, level domain.GeoLevel, name string, parentID int) (int, error) {
	args := m.Called(ctx, level, name, parentID)
	return args.Int(0), args.Error(1)
}

func (m *mockGeographyRepo) Update(ctx context.Context, level domain.GeoLevel, id int, name string, parentID int) error {
	return m.Called(ctx, level, id, name, parentID).Error(0)
}

func (m *mockGeographyRepo) Delete(ctx context.Context, level domain.GeoLevel, id int) error {
	return m.Called(ctx, level, id).Error(0)
}

func (m *mockGeographyRepo) Get(ctx context.Context, level domain.GeoLevel, id int) (*domain.GeoNode, error) {
	args := m.Called(ctx, level, id)
	n, _ := args.Get(0).(*domain.GeoNode)
	return n, args.Error(1)
}

func (m *mockGeographyRepo) List(ctx context.Context, level domain.GeoLevel) ([]domain.GeoNode, error) {
	args := m.Called(ctx, level)
	n, _ := args.Get(0).([]domain.GeoNode)
	return n, args.Error(1)
}

func (m *mockGeographyRepo) ListUnderCounty(ctx context.Context, level domain.GeoLevel, countyID int) ([]domain.GeoNode, error) {
	args := m.Called(ctx, level, countyID)
	n, _ := args.Get(0).([]domain.GeoNode)
	return n, args.Error(1)
}

func (m *mockGeographyRepo) Children(ctx context.Context, level domain.GeoLevel, parentID int) ([]domain.Option, error) {
	args := m.Called(ctx, level, parentID)
	o, _ := args.Get(0).([]domain.Option)
	return o, args.Error(1)
}

func (m *mockGeographyRepo) Count(ctx context.Context, level domain.GeoLevel) (int64, error) {
	args := m.Called(ctx, level)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockGeographyRepo) Exists(ctx context.Context, level domain.GeoLevel, id int) (bool, error) {
	args := m.Called(ctx, level, id)
	return args.Bool(0), args.Error(1)
}

type mockReportRepo struct{ mock.Mock }

func (m *mockReportRepo) StatusCounts(ctx context.Context) (*domain.StatusCounts, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).(*domain.StatusCounts)
	return c, args.Error(1)
}

func (m *mockReportRepo) CountByProgram(ctx context.Context) ([]domain.NamedCount, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]domain.NamedCount)
	return c, args.Error(1)
}

func (m *mockReportRepo) CountByOfficer(ctx context.Context) ([]domain.NamedCount, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]domain.NamedCount)
	return c, args.Error(1)
}

func (m *mockReportRepo) Rows(ctx context.Context, filter domain.ReportFilter) ([]domain.ReportRow, error) {
	args := m.Called(ctx, filter)
	r, _ := args.Get(0).([]domain.ReportRow)
	return r, args.Error(1)
}
