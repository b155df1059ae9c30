package usecase

import (
	"context"
	"strings"
	"time"

	"sais/domain"
)

type lookupUseCase struct {
	repo    domain.LookupRepo
	TimeOut time.Duration
}

func NewLookupUseCase(repo domain.LookupRepo, to time.Duration) domain.LookupUseCase {
	return &lookupUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func validateLookup(kind domain.LookupKind, in *domain.LookupInput) error {
	in.Name = strings.TrimSpace(in.Name)
	var errs domain.ValidationErrors
	domain.CheckName(&errs, "name", "Name", in.Name, kind.MaxNameLength())
	if len(errs) > 0 {
		return domain.NewValidationError(errs)
	}
	return nil
}

func (lu *lookupUseCase) Create(ctx context.Context, kind domain.LookupKind, in domain.LookupInput) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, lu.TimeOut)
	defer cancel()

	if err := validateLookup(kind, &in); err != nil {
		return 0, err
	}
	return lu.repo.CreateLookup(ctx, kind, in.Name)
}

func (lu *lookupUseCase) Update(ctx context.Context, kind domain.LookupKind, id int, in domain.LookupInput) error {
	ctx, cancel := context.WithTimeout(ctx, lu.TimeOut)
	defer cancel()

	if err := validateLookup(kind, &in); err != nil {
		return err
	}
	return lu.repo.UpdateLookup(ctx, kind, id, in.Name)
}

func (lu *lookupUseCase) Delete(ctx context.Context, kind domain.LookupKind, id int) error {
	ctx, cancel := context.WithTimeout(ctx, lu.TimeOut)
	defer cancel()

	return lu.repo.DeleteLookup(ctx, kind, id)
}

func (lu *lookupUseCase) Get(ctx context.Context, kind domain.LookupKind, id int) (*domain.LookupItem, error) {
	ctx, cancel := context.WithTimeout(ctx, lu.TimeOut)
	defer cancel()

	return lu.repo.GetLookup(ctx, kind, id)
}

func (lu *lookupUseCase) List(ctx context.Context, kind domain.LookupKind) ([]domain.LookupItem, error) {
	ctx, cancel := context.WithTimeout(ctx, lu.TimeOut)
	defer cancel()

	return lu.repo.ListLookups(ctx, kind)
}

func (lu *lookupUseCase) Count(ctx context.Context, kind domain.LookupKind) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, lu.TimeOut)
	defer cancel()

	return lu.repo.CountLookups(ctx, kind)
}

func (lu *lookupUseCase) ProgramDetails(ctx context.Context, id int) (*domain.ProgramDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, lu.TimeOut)
	defer cancel()

	item, err := lu.repo.GetLookup(ctx, domain.LookupProgram, id)
	if err != nil {
		return nil, err
	}
	apps, err := lu.repo.ProgramApplications(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.ProgramDetails{LookupItem: *item, Applications: apps}, nil
}

func validateOfficer(in *domain.OfficerInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Designation = strings.TrimSpace(in.Designation)
	if errs := domain.ValidateStruct(in); len(errs) > 0 {
		return domain.NewValidationError(errs)
	}
	return nil
}

func (lu *lookupUseCase) CreateOfficer(ctx context.Context, in domain.OfficerInput) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, lu.TimeOut)
	defer cancel()

	if err := validateOfficer(&in); err != nil {
		return 0, err
	}
	officer := domain.Officer{Name: in.Name, Designation: in.Designation}
	if err := lu.repo.CreateOfficer(ctx, &officer); err != nil {
		return 0, err
	}
	return officer.OfficerID, nil
}

func (lu *lookupUseCase) UpdateOfficer(ctx context.Context, id int, in domain.OfficerInput) error {
	ctx, cancel := context.WithTimeout(ctx, lu.TimeOut)
	defer cancel()

	if err := validateOfficer(&in); err != nil {
		return err
	}
	return lu.repo.UpdateOfficer(ctx, &domain.Officer{OfficerID: id, Name: in.Name, Designation: in.Designation})
}

func (lu *lookupUseCase) DeleteOfficer(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, lu.TimeOut)
	defer cancel()

	return lu.repo.DeleteOfficer(ctx, id)
}

func (lu *lookupUseCase) GetOfficer(ctx context.Context, id int) (*domain.OfficerSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, lu.TimeOut)
	defer cancel()

	return lu.repo.GetOfficer(ctx, id)
}

func (lu *lookupUseCase) ListOfficers(ctx context.Context) ([]domain.OfficerSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, lu.TimeOut)
	defer cancel()

	return lu.repo.ListOfficers(ctx)
}

func (lu *lookupUseCase) OfficerDetails(ctx context.Context, id int) (*domain.OfficerDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, lu.TimeOut)
	defer cancel()

	officer, err := lu.repo.GetOfficer(ctx, id)
	if err != nil {
		return nil, err
	}
	apps, err := lu.repo.OfficerApplications(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.OfficerDetails{OfficerSummary: *officer, Applications: apps}, nil
}
