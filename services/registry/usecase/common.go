package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sais/domain"
)

// Repos bundles the stores the registry use cases read and write.
type Repos struct {
	Applicants   domain.ApplicantRepo
	Applications domain.ApplicationRepo
	Lookups      domain.LookupRepo
	Geography    domain.GeographyRepo
	Reports      domain.ReportRepo
}

func todayFrom(now func() time.Time) domain.Date {
	return domain.NewDate(now())
}

// parseDateField records an InvalidDate error for malformed input.
func parseDateField(errs *domain.ValidationErrors, field, label, value string) *domain.Date {
	d, err := domain.ParseDate(value)
	if err != nil {
		errs.Add(field, domain.CodeInvalidDate, fmt.Sprintf("%s must be a valid date (YYYY-MM-DD).", label))
		return nil
	}
	return d
}

func lookupOptions(ctx context.Context, repo domain.LookupRepo, kind domain.LookupKind) ([]domain.Option, error) {
	items, err := repo.ListLookups(ctx, kind)
	if err != nil {
		return nil, err
	}
	options := make([]domain.Option, 0, len(items))
	for _, it := range items {
		options = append(options, domain.Option{ID: it.ID, Name: it.Name})
	}
	return options, nil
}

func officerOptions(ctx context.Context, repo domain.LookupRepo) ([]domain.Option, error) {
	officers, err := repo.ListOfficers(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]domain.Option, 0, len(officers))
	for _, o := range officers {
		options = append(options, domain.Option{ID: o.OfficerID, Name: fmt.Sprintf("%s (%s)", o.Name, o.Designation)})
	}
	return options, nil
}

// checkLookup records an InvalidSelection error when id does not exist.
func checkLookup(ctx context.Context, repo domain.LookupRepo, errs *domain.ValidationErrors, kind domain.LookupKind, field string, id int) error {
	if id <= 0 {
		return nil
	}
	ok, err := repo.LookupExists(ctx, kind, id)
	if err != nil {
		return err
	}
	if !ok {
		errs.Add(field, domain.CodeInvalidSelection, fmt.Sprintf("Please select a valid %s.", strings.ToLower(kind.Label())))
	}
	return nil
}

// requireVersion records an error when an edit does not echo the version it was loaded at.
func requireVersion(errs *domain.ValidationErrors, version int) {
	if version <= 0 {
		errs.Add("version", domain.CodeInvalid, "Version is required. Reload the record and try again.")
	}
}

// applicationFields is the validated shape of an application form.
type applicationFields struct {
	officerID           int
	applicationDate     string
	applicantSignedDate string
	officerSignedDate   string
	programIDs          []int
}

// buildApplication validates officer, programs and dates, defaulting the
// application date to today.
func buildApplication(ctx context.Context, repos Repos, today domain.Date, in applicationFields, errs *domain.ValidationErrors) (*domain.Application, []int, error) {
	programIDs := domain.NormalizeIDs(in.programIDs)
	if len(programIDs) == 0 {
		errs.Add("programIds", domain.CodeNoProgramsSelected, "Please select at least one program.")
	}
	for _, id := range programIDs {
		ok, err := repos.Lookups.LookupExists(ctx, domain.LookupProgram, id)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			errs.Add("programIds", domain.CodeInvalidSelection, "Please select valid programs.")
			break
		}
	}

	if in.officerID <= 0 {
		errs.Add("officerId", domain.CodeOfficerRequired, "Please select an officer.")
	} else {
		ok, err := repos.Lookups.OfficerExists(ctx, in.officerID)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			errs.Add("officerId", domain.CodeInvalidSelection, "Please select a valid officer.")
		}
	}

	app := &domain.Application{
		OfficerID:           in.officerID,
		ApplicationDate:     today,
		ApplicantSignedDate: parseDateField(errs, "applicantSignedDate", "Applicant Signed Date", in.applicantSignedDate),
		OfficerSignedDate:   parseDateField(errs, "officerSignedDate", "Officer Signed Date", in.officerSignedDate),
		Version:             1,
	}
	if d := parseDateField(errs, "applicationDate", "Application Date", in.applicationDate); d != nil {
		app.ApplicationDate = *d
	}
	return app, programIDs, nil
}

// enroll writes a new application after checking the applicant holds none of its programs.
// It must run inside a transaction.
func enroll(ctx context.Context, repo domain.ApplicationRepo, app *domain.Application, programIDs []int) error {
	if err := checkEnrollment(ctx, repo, app.ApplicantID, programIDs, 0); err != nil {
		return err
	}
	return repo.Create(ctx, app, programIDs)
}

func checkEnrollment(ctx context.Context, repo domain.ApplicationRepo, applicantID int, programIDs []int, excludeApplicationID int) error {
	if err := repo.LockApplicant(ctx, applicantID); err != nil {
		return err
	}
	existing, err := repo.Enrollments(ctx, applicantID)
	if err != nil {
		return err
	}
	if conflicts := domain.EnrollmentConflicts(existing, programIDs, excludeApplicationID); len(conflicts) > 0 {
		return domain.NewDuplicateEnrollmentError(conflicts)
	}
	return nil
}
