package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sais/domain"
	"sais/metrics"
)

type applicantUseCase struct {
	repos   Repos
	tx      domain.Transactor
	metrics *metrics.Metrics
	now     func() time.Time
	TimeOut time.Duration
}

func NewApplicantUseCase(repos Repos, tx domain.Transactor, m *metrics.Metrics, to time.Duration) domain.ApplicantUseCase {
	return &applicantUseCase{
		repos:   repos,
		tx:      tx,
		metrics: m,
		now:     time.Now,
		TimeOut: to,
	}
}

func (au *applicantUseCase) FormData(ctx context.Context, withApplication bool) (*domain.ApplicantFormData, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	return au.formData(ctx, withApplication)
}

func (au *applicantUseCase) formData(ctx context.Context, withApplication bool) (*domain.ApplicantFormData, error) {
	var (
		data domain.ApplicantFormData
		err  error
	)
	if data.Genders, err = lookupOptions(ctx, au.repos.Lookups, domain.LookupGender); err != nil {
		return nil, err
	}
	if data.MaritalStatuses, err = lookupOptions(ctx, au.repos.Lookups, domain.LookupMaritalStatus); err != nil {
		return nil, err
	}
	if data.Counties, err = au.repos.Geography.Children(ctx, domain.LevelCounty, 0); err != nil {
		return nil, err
	}
	if withApplication {
		if data.Officers, err = officerOptions(ctx, au.repos.Lookups); err != nil {
			return nil, err
		}
		if data.Programs, err = lookupOptions(ctx, au.repos.Lookups, domain.LookupProgram); err != nil {
			return nil, err
		}
	}
	return &data, nil
}

// buildApplicant validates the form and resolves age and date of birth. When
// deriveDOB is set an age without a date of birth yields an estimated birth date.
func (au *applicantUseCase) buildApplicant(ctx context.Context, in domain.ApplicantInput, excludeID int, deriveDOB bool, errs *domain.ValidationErrors) (*domain.Applicant, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.MiddleName = strings.TrimSpace(in.MiddleName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.IDNumber = strings.TrimSpace(in.IDNumber)
	in.PostalAddress = strings.TrimSpace(in.PostalAddress)
	in.PhysicalAddress = strings.TrimSpace(in.PhysicalAddress)

	*errs = append(*errs, domain.ValidateStruct(in)...)
	today := todayFrom(au.now)

	phones := domain.NormalizePhoneNumbers(in.PhoneNumbers)
	if len(phones) == 0 {
		errs.Add("phoneNumbers", domain.CodeMissingPhoneNumber, "At least one phone number is required.")
	}
	for _, p := range phones {
		if !domain.IsPhoneNumber(p) {
			errs.Add("phoneNumbers", domain.CodeInvalidPhoneNumber, fmt.Sprintf("%s is not a valid phone number.", p))
		}
	}

	dob := parseDateField(errs, "dateOfBirth", "Date of Birth", in.DateOfBirth)
	if dob != nil && dob.After(today) {
		errs.Add("dateOfBirth", domain.CodeFutureDateOfBirth, "Date of Birth cannot be in the future.")
		dob = nil
	}

	age := 0
	switch {
	case dob != nil:
		age = domain.AgeOn(*dob, today)
		if age > domain.MaxAge {
			errs.Add("dateOfBirth", domain.CodeInvalid, fmt.Sprintf("Date of Birth gives an age above %d.", domain.MaxAge))
		}
	case in.Age != nil:
		if *in.Age < 0 || *in.Age > domain.MaxAge {
			errs.Add("age", domain.CodeInvalid, fmt.Sprintf("Age must be between 0 and %d", domain.MaxAge))
			break
		}
		age = *in.Age
		if deriveDOB {
			d := domain.DateOfBirthForAge(age, today)
			dob = &d
		}
	case strings.TrimSpace(in.DateOfBirth) == "":
		errs.Add("dateOfBirth", domain.CodeAgeOrDateOfBirthRequired, "Either Date of Birth or Age must be provided")
	}

	if in.VillageID <= 0 {
		errs.Add("villageId", domain.CodeVillageRequired, "Please select a village.")
	} else {
		ok, err := au.repos.Geography.Exists(ctx, domain.LevelVillage, in.VillageID)
		if err != nil {
			return nil, err
		}
		if !ok {
			errs.Add("villageId", domain.CodeInvalidSelection, "Please select a valid village.")
		}
	}

	if err := checkLookup(ctx, au.repos.Lookups, errs, domain.LookupGender, "genderId", in.GenderID); err != nil {
		return nil, err
	}
	if err := checkLookup(ctx, au.repos.Lookups, errs, domain.LookupMaritalStatus, "maritalStatusId", in.MaritalStatusID); err != nil {
		return nil, err
	}

	if in.IDNumber != "" {
		taken, err := au.repos.Applicants.IDNumberTaken(ctx, in.IDNumber, excludeID)
		if err != nil {
			return nil, err
		}
		if taken {
			errs.Add("idNumber", domain.CodeDuplicateIdNumber, "An applicant with this ID Number already exists.")
		}
	}

	applicant := &domain.Applicant{
		FirstName:       in.FirstName,
		MiddleName:      in.MiddleName,
		LastName:        in.LastName,
		IDNumber:        in.IDNumber,
		Age:             age,
		DateOfBirth:     dob,
		GenderID:        in.GenderID,
		MaritalStatusID: in.MaritalStatusID,
		VillageID:       in.VillageID,
		PostalAddress:   in.PostalAddress,
		PhysicalAddress: in.PhysicalAddress,
		Version:         1,
	}
	for _, p := range phones {
		applicant.PhoneNumbers = append(applicant.PhoneNumbers, domain.PhoneNumber{Number: p})
	}
	return applicant, nil
}

func (au *applicantUseCase) Register(ctx context.Context, in domain.ApplicantInput) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	var id int
	err := au.tx.WithinTx(ctx, func(ctx context.Context) error {
		var errs domain.ValidationErrors
		applicant, err := au.buildApplicant(ctx, in, 0, false, &errs)
		if err != nil {
			return err
		}
		if len(errs) > 0 {
			return domain.NewValidationError(errs)
		}
		if err := au.repos.Applicants.Create(ctx, applicant); err != nil {
			return err
		}
		id = applicant.ApplicantID
		return nil
	})
	if err != nil {
		return 0, err
	}

	au.metrics.IncApplicantsRegistered()
	return id, nil
}

func (au *applicantUseCase) Update(ctx context.Context, id int, in domain.ApplicantInput) error {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	return au.tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := au.repos.Applicants.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NewNotFoundError("Applicant", id)
		}

		var errs domain.ValidationErrors
		requireVersion(&errs, in.Version)
		applicant, err := au.buildApplicant(ctx, in, id, false, &errs)
		if err != nil {
			return err
		}
		if len(errs) > 0 {
			return domain.NewValidationError(errs)
		}

		applicant.ApplicantID = id
		applicant.Version = in.Version
		return au.repos.Applicants.Update(ctx, applicant)
	})
}

func (au *applicantUseCase) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	return au.repos.Applicants.Delete(ctx, id)
}

func (au *applicantUseCase) Details(ctx context.Context, id int) (*domain.ApplicantProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	profile, err := au.repos.Applicants.Profile(ctx, id)
	if err != nil {
		return nil, err
	}
	apps, err := au.repos.Applicants.Applications(ctx, id)
	if err != nil {
		return nil, err
	}
	profile.Applications = apps
	return profile, nil
}

func (au *applicantUseCase) EditForm(ctx context.Context, id int) (*domain.ApplicantEditForm, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	profile, err := au.repos.Applicants.Profile(ctx, id)
	if err != nil {
		return nil, err
	}
	form, err := au.formData(ctx, false)
	if err != nil {
		return nil, err
	}

	// Preselect the cascading dropdowns along the applicant's village ancestry.
	geo := au.repos.Geography
	if form.SubCounties, err = geo.Children(ctx, domain.LevelSubCounty, profile.CountyID); err != nil {
		return nil, err
	}
	if form.Locations, err = geo.Children(ctx, domain.LevelLocation, profile.SubCountyID); err != nil {
		return nil, err
	}
	if form.SubLocations, err = geo.Children(ctx, domain.LevelSubLocation, profile.LocationID); err != nil {
		return nil, err
	}
	if form.Villages, err = geo.Children(ctx, domain.LevelVillage, profile.SubLocationID); err != nil {
		return nil, err
	}

	return &domain.ApplicantEditForm{Applicant: *profile, Form: *form}, nil
}

func (au *applicantUseCase) Lookup(ctx context.Context, idNumber string) (*domain.ApplicantProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	idNumber = strings.TrimSpace(idNumber)
	if idNumber == "" {
		return nil, domain.NewFieldError(domain.KindValidation, "idNumber", domain.CodeInvalid, "ID Number is required")
	}
	return au.repos.Applicants.ProfileByIDNumber(ctx, idNumber)
}

func (au *applicantUseCase) List(ctx context.Context, filter domain.ApplicantFilter) ([]domain.ApplicantListItem, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	return au.repos.Applicants.List(ctx, filter)
}

// RegisterAndApply registers an applicant and files their first application in
// one transaction; nothing is written unless both succeed.
func (au *applicantUseCase) RegisterAndApply(ctx context.Context, in domain.RegisterAndApplyInput) (*domain.RegisterAndApplyResult, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	var result domain.RegisterAndApplyResult
	err := au.tx.WithinTx(ctx, func(ctx context.Context) error {
		var errs domain.ValidationErrors
		applicant, err := au.buildApplicant(ctx, in.ApplicantInput, 0, true, &errs)
		if err != nil {
			return err
		}
		app, programIDs, err := buildApplication(ctx, au.repos, todayFrom(au.now), applicationFields{
			officerID:           in.OfficerID,
			applicationDate:     in.ApplicationDate,
			applicantSignedDate: in.ApplicantSignedDate,
			officerSignedDate:   in.OfficerSignedDate,
			programIDs:          in.ProgramIDs,
		}, &errs)
		if err != nil {
			return err
		}
		if len(errs) > 0 {
			return domain.NewValidationError(errs)
		}

		if err := au.repos.Applicants.Create(ctx, applicant); err != nil {
			return err
		}
		app.ApplicantID = applicant.ApplicantID
		if err := enroll(ctx, au.repos.Applications, app, programIDs); err != nil {
			return err
		}

		result = domain.RegisterAndApplyResult{ApplicantID: applicant.ApplicantID, ApplicationID: app.ApplicationID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	au.metrics.IncApplicantsRegistered()
	au.metrics.IncApplicationsCreated()
	return &result, nil
}
