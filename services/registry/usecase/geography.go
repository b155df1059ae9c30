package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sais/domain"
)

type geographyUseCase struct {
	repo    domain.GeographyRepo
	TimeOut time.Duration
}

func NewGeographyUseCase(repo domain.GeographyRepo, to time.Duration) domain.GeographyUseCase {
	return &geographyUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (gu *geographyUseCase) validate(ctx context.Context, level domain.GeoLevel, in *domain.GeoInput) error {
	if !level.Valid() {
		return domain.NewNotFoundError("Level", level)
	}

	in.Name = strings.TrimSpace(in.Name)
	errs := domain.ValidateStruct(in)

	if parent, ok := level.Parent(); ok {
		field := parent.IDField()
		if in.ParentID <= 0 {
			errs.Add(field, domain.CodeInvalid, fmt.Sprintf("%s is required", parent.Label()))
		} else {
			exists, err := gu.repo.Exists(ctx, parent, in.ParentID)
			if err != nil {
				return err
			}
			if !exists {
				errs.Add(field, domain.CodeInvalidSelection, fmt.Sprintf("Please select a valid %s.", strings.ToLower(parent.Label())))
			}
		}
	} else {
		in.ParentID = 0
	}

	if len(errs) > 0 {
		return domain.NewValidationError(errs)
	}
	return nil
}

func (gu *geographyUseCase) Create(ctx context.Context, level domain.GeoLevel, in domain.GeoInput) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.TimeOut)
	defer cancel()

	if err := gu.validate(ctx, level, &in); err != nil {
		return 0, err
	}
	return gu.repo.Create(ctx, level, in.Name, in.ParentID)
}

func (gu *geographyUseCase) Update(ctx context.Context, level domain.GeoLevel, id int, in domain.GeoInput) error {
	ctx, cancel := context.WithTimeout(ctx, gu.TimeOut)
	defer cancel()

	if err := gu.validate(ctx, level, &in); err != nil {
		return err
	}
	return gu.repo.Update(ctx, level, id, in.Name, in.ParentID)
}

func (gu *geographyUseCase) Delete(ctx context.Context, level domain.GeoLevel, id int) error {
	ctx, cancel := context.WithTimeout(ctx, gu.TimeOut)
	defer cancel()

	return gu.repo.Delete(ctx, level, id)
}

func (gu *geographyUseCase) Get(ctx context.Context, level domain.GeoLevel, id int) (*domain.GeoNode, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.TimeOut)
	defer cancel()

	return gu.repo.Get(ctx, level, id)
}

func (gu *geographyUseCase) List(ctx context.Context, level domain.GeoLevel) ([]domain.GeoNode, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.TimeOut)
	defer cancel()

	return gu.repo.List(ctx, level)
}

func (gu *geographyUseCase) ListUnderCounty(ctx context.Context, level domain.GeoLevel, countyID int) ([]domain.GeoNode, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.TimeOut)
	defer cancel()

	return gu.repo.ListUnderCounty(ctx, level, countyID)
}

// Options lists the entries of level below parentID; counties ignore parentID.
func (gu *geographyUseCase) Options(ctx context.Context, level domain.GeoLevel, parentID int) ([]domain.Option, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.TimeOut)
	defer cancel()

	if _, ok := level.Parent(); ok && parentID <= 0 {
		return []domain.Option{}, nil
	}
	options, err := gu.repo.Children(ctx, level, parentID)
	if err != nil {
		return nil, err
	}
	if options == nil {
		options = []domain.Option{}
	}
	return options, nil
}

func (gu *geographyUseCase) Count(ctx context.Context, level domain.GeoLevel) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.TimeOut)
	defer cancel()

	return gu.repo.Count(ctx, level)
}

func (gu *geographyUseCase) ManageCounty(ctx context.Context, countyID int) (*domain.CountyOverview, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.TimeOut)
	defer cancel()

	county, err := gu.repo.Get(ctx, domain.LevelCounty, countyID)
	if err != nil {
		return nil, err
	}
	subCounties, err := gu.repo.ListUnderCounty(ctx, domain.LevelSubCounty, countyID)
	if err != nil {
		return nil, err
	}
	return &domain.CountyOverview{County: *county, SubCounties: subCounties}, nil
}
