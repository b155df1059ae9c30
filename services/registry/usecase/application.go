package usecase

import (
	"context"
	"strings"
	"time"

	"sais/domain"
	"sais/metrics"
)

const applicantSearchLimit = 10

type applicationUseCase struct {
	repos   Repos
	tx      domain.Transactor
	metrics *metrics.Metrics
	now     func() time.Time
	TimeOut time.Duration
}

func NewApplicationUseCase(repos Repos, tx domain.Transactor, m *metrics.Metrics, to time.Duration) domain.ApplicationUseCase {
	return &applicationUseCase{
		repos:   repos,
		tx:      tx,
		metrics: m,
		now:     time.Now,
		TimeOut: to,
	}
}

func fieldsOf(in domain.ApplicationInput) applicationFields {
	return applicationFields{
		officerID:           in.OfficerID,
		applicationDate:     in.ApplicationDate,
		applicantSignedDate: in.ApplicantSignedDate,
		officerSignedDate:   in.OfficerSignedDate,
		programIDs:          in.ProgramIDs,
	}
}

func (apu *applicationUseCase) FormData(ctx context.Context) (*domain.ApplicationFormData, error) {
	ctx, cancel := context.WithTimeout(ctx, apu.TimeOut)
	defer cancel()

	return apu.formData(ctx)
}

func (apu *applicationUseCase) formData(ctx context.Context) (*domain.ApplicationFormData, error) {
	var (
		data domain.ApplicationFormData
		err  error
	)
	if data.Applicants, err = apu.repos.Applicants.Options(ctx); err != nil {
		return nil, err
	}
	if data.Officers, err = officerOptions(ctx, apu.repos.Lookups); err != nil {
		return nil, err
	}
	if data.Programs, err = lookupOptions(ctx, apu.repos.Lookups, domain.LookupProgram); err != nil {
		return nil, err
	}
	return &data, nil
}

func (apu *applicationUseCase) Create(ctx context.Context, in domain.ApplicationInput) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, apu.TimeOut)
	defer cancel()

	var id int
	err := apu.tx.WithinTx(ctx, func(ctx context.Context) error {
		var errs domain.ValidationErrors
		if in.ApplicantID <= 0 {
			errs.Add("applicantId", domain.CodeApplicantRequired, "Please select an applicant.")
		} else {
			ok, err := apu.repos.Applicants.Exists(ctx, in.ApplicantID)
			if err != nil {
				return err
			}
			if !ok {
				errs.Add("applicantId", domain.CodeApplicantNotFound, "Applicant not found.")
			}
		}

		app, programIDs, err := buildApplication(ctx, apu.repos, todayFrom(apu.now), fieldsOf(in), &errs)
		if err != nil {
			return err
		}
		if len(errs) > 0 {
			return domain.NewValidationError(errs)
		}

		app.ApplicantID = in.ApplicantID
		if err := enroll(ctx, apu.repos.Applications, app, programIDs); err != nil {
			return err
		}
		id = app.ApplicationID
		return nil
	})
	if err != nil {
		return 0, err
	}

	apu.metrics.IncApplicationsCreated()
	return id, nil
}

func (apu *applicationUseCase) CreateForIDNumber(ctx context.Context, idNumber string, in domain.ApplicationInput) (int, error) {
	idNumber = strings.TrimSpace(idNumber)
	if idNumber == "" {
		return 0, domain.NewFieldError(domain.KindValidation, "applicantIdNumber", domain.CodeInvalid, "Please enter the applicant's ID Number.")
	}

	lookupCtx, cancel := context.WithTimeout(ctx, apu.TimeOut)
	profile, err := apu.repos.Applicants.ProfileByIDNumber(lookupCtx, idNumber)
	cancel()
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return 0, domain.NewFieldError(domain.KindNotFound, "applicantIdNumber", domain.CodeApplicantNotFound,
				"No applicant found with this ID Number. Please register the applicant first.")
		}
		return 0, err
	}

	in.ApplicantID = profile.ApplicantID
	return apu.Create(ctx, in)
}

func (apu *applicationUseCase) Update(ctx context.Context, id int, in domain.ApplicationInput) error {
	ctx, cancel := context.WithTimeout(ctx, apu.TimeOut)
	defer cancel()

	return apu.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := apu.repos.Applications.FindByID(ctx, id)
		if err != nil {
			return err
		}

		var errs domain.ValidationErrors
		requireVersion(&errs, in.Version)
		app, programIDs, err := buildApplication(ctx, apu.repos, todayFrom(apu.now), fieldsOf(in), &errs)
		if err != nil {
			return err
		}
		if len(errs) > 0 {
			return domain.NewValidationError(errs)
		}
		if strings.TrimSpace(in.ApplicationDate) == "" {
			app.ApplicationDate = current.ApplicationDate
		}

		if err := checkEnrollment(ctx, apu.repos.Applications, current.ApplicantID, programIDs, id); err != nil {
			return err
		}

		app.ApplicationID = id
		app.ApplicantID = current.ApplicantID
		app.Version = in.Version
		return apu.repos.Applications.Update(ctx, app, programIDs)
	})
}

func (apu *applicationUseCase) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, apu.TimeOut)
	defer cancel()

	return apu.repos.Applications.Delete(ctx, id)
}

func (apu *applicationUseCase) Details(ctx context.Context, id int) (*domain.ApplicationDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, apu.TimeOut)
	defer cancel()

	return apu.repos.Applications.Details(ctx, id)
}

func (apu *applicationUseCase) EditForm(ctx context.Context, id int) (*domain.ApplicationEditForm, error) {
	ctx, cancel := context.WithTimeout(ctx, apu.TimeOut)
	defer cancel()

	details, err := apu.repos.Applications.Details(ctx, id)
	if err != nil {
		return nil, err
	}
	form, err := apu.formData(ctx)
	if err != nil {
		return nil, err
	}

	programIDs := make([]int, 0, len(details.Programs))
	for _, p := range details.Programs {
		programIDs = append(programIDs, p.ProgramID)
	}
	return &domain.ApplicationEditForm{Application: *details, ProgramIDs: programIDs, Form: *form}, nil
}

func (apu *applicationUseCase) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.ApplicationListItem, error) {
	ctx, cancel := context.WithTimeout(ctx, apu.TimeOut)
	defer cancel()

	return apu.repos.Applications.List(ctx, filter)
}

func (apu *applicationUseCase) SearchApplicants(ctx context.Context, term string) ([]domain.ApplicantOption, error) {
	ctx, cancel := context.WithTimeout(ctx, apu.TimeOut)
	defer cancel()

	if strings.TrimSpace(term) == "" {
		return []domain.ApplicantOption{}, nil
	}
	return apu.repos.Applicants.Search(ctx, term, applicantSearchLimit)
}

func (apu *applicationUseCase) ExistingApplications(ctx context.Context, applicantID int) ([]domain.Enrollment, error) {
	ctx, cancel := context.WithTimeout(ctx, apu.TimeOut)
	defer cancel()

	if applicantID <= 0 {
		return []domain.Enrollment{}, nil
	}
	enrollments, err := apu.repos.Applications.Enrollments(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if enrollments == nil {
		enrollments = []domain.Enrollment{}
	}
	return enrollments, nil
}
