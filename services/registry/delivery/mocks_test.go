package delivery

import (
	"context"

	"sais/domain"

	"github.com/stretchr/testify/mock"
)

type mockApplicantUseCase struct{ mock.Mock }

func (m *mockApplicantUseCase) FormData(ctx context.Context, withApplication bool) (*domain.ApplicantFormData, error) {
	args := m.Called(ctx, withApplication)
	d, _ := args.Get(0).(*domain.ApplicantFormData)
	return d, args.Error(1)
}

func (m *mockApplicantUseCase) Register(ctx context.Context, in domain.ApplicantInput) (int, error) {
	args := m.Called(ctx, in)
	return args.Int(0), args.Error(1)
}

func (m *mockApplicantUseCase) Update(ctx context.Context, id int, in domain.ApplicantInput) error {
	return m.Called(ctx, id, in).Error(0)
}

func (m *mockApplicantUseCase) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockApplicantUseCase) Details(ctx context.Context, id int) (*domain.ApplicantProfile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.ApplicantProfile)
	return p, args.Error(1)
}

func (m *mockApplicantUseCase) EditForm(ctx context.Context, id int) (*domain.ApplicantEditForm, error) {
	args := m.Called(ctx, id)
	f, _ := args.Get(0).(*domain.ApplicantEditForm)
	return f, args.Error(1)
}

func (m *mockApplicantUseCase) Lookup(ctx context.Context, idNumber string) (*domain.ApplicantProfile, error) {
	args := m.Called(ctx, idNumber)
	p, _ := args.Get(0).(*domain.ApplicantProfile)
	return p, args.Error(1)
}

func (m *mockApplicantUseCase) List(ctx context.Context, filter domain.ApplicantFilter) ([]domain.ApplicantListItem, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]domain.ApplicantListItem)
	return items, args.Error(1)
}

func (m *mockApplicantUseCase) RegisterAndApply(ctx context.Context, in domain.RegisterAndApplyInput) (*domain.RegisterAndApplyResult, error) {
	args := m.Called(ctx, in)
	r, _ := args.Get(0).(*domain.RegisterAndApplyResult)
	return r, args.Error(1)
}

type mockGeographyUseCase struct{ mock.Mock }

func (m *mockGeographyUseCase) Create(ctx context.Context, level domain.GeoLevel, in domain.GeoInput) (int, error) {
	args := m.Called(ctx, level, in)
	return args.Int(0), args.Error(1)
}

func (m *mockGeographyUseCase) Update(ctx context.Context, level domain.GeoLevel, id int, in domain.GeoInput) error {
	return m.Called(ctx, level, id, in).Error(0)
}

func (m *mockGeographyUseCase) Delete(ctx context.Context, level domain.GeoLevel, id int) error {
	return m.Called(ctx, level, id).Error(0)
}

func (m *mockGeographyUseCase) Get(ctx context.Context, level domain.GeoLevel, id int) (*domain.GeoNode, error) {
	args := m.Called(ctx, level, id)
	n, _ := args.Get(0).(*domain.GeoNode)
	return n, args.Error(1)
}

func (m *mockGeographyUseCase) List(ctx context.Context, level domain.GeoLevel) ([]domain.GeoNode, error) {
	args := m.Called(ctx, level)
	n, _ := args.Get(0).([]domain.GeoNode)
	return n, args.Error(1)
}

func (m *mockGeographyUseCase) ListUnderCounty(ctx context.Context, level domain.GeoLevel, countyID int) ([]domain.GeoNode, error) {
	args := m.Called(ctx, level, countyID)
	n, _ := args.Get(0).([]domain.GeoNode)
	return n, args.Error(1)
}

func (m *mockGeographyUseCase) Options(ctx context.Context, level domain.GeoLevel, parentID int) ([]domain.Option, error) {
	args := m.Called(ctx, level, parentID)
	o, _ := args.Get(0).([]domain.Option)
	return o, args.Error(1)
}

func (m *mockGeographyUseCase) Count(ctx context.Context, level domain.GeoLevel) (int64, error) {
	args := m.Called(ctx, level)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockGeographyUseCase) ManageCounty(ctx context.Context, countyID int) (*domain.CountyOverview, error) {
	args := m.Called(ctx, countyID)
	o, _ := args.Get(0).(*domain.CountyOverview)
	return o, args.Error(1)
}

type mockReportUseCase struct{ mock.Mock }

func (m *mockReportUseCase) Summary(ctx context.Context) (*domain.ReportSummary, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*domain.ReportSummary)
	return s, args.Error(1)
}

func (m *mockReportUseCase) Applications(ctx context.Context, filter domain.ReportFilter) ([]domain.ReportRow, error) {
	args := m.Called(ctx, filter)
	r, _ := args.Get(0).([]domain.ReportRow)
	return r, args.Error(1)
}

func (m *mockReportUseCase) Export(ctx context.Context, format domain.ExportFormat, filter domain.ReportFilter) (*domain.ExportFile, error) {
	args := m.Called(ctx, format, filter)
	f, _ := args.Get(0).(*domain.ExportFile)
	return f, args.Error(1)
}
