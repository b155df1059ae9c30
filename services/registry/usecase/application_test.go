package usecase

import (
	"context"
	"testing"
	"time"

	"sais/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func (f *fixture) applicationUC() *applicationUseCase {
	uc := NewApplicationUseCase(f.repos(), f.tx, nil, time.Second).(*applicationUseCase)
	uc.now = fixedNow
	return uc
}

func existingEnrollment() []domain.Enrollment {
	return []domain.Enrollment{{
		ProgramID:       1,
		ProgramName:     "Elderly Persons",
		ApplicationID:   7,
		ApplicationDate: domain.DateOf(2024, time.February, 3),
	}}
}

func TestCreateApplicationBlocksDuplicateEnrollment(t *testing.T) {
	f := newFixture()
	f.referencesExist()
	f.applicants.On("Exists", mock.Anything, 10).Return(true, nil)
	f.applications.On("LockApplicant", mock.Anything, 10).Return(nil)
	f.applications.On("Enrollments", mock.Anything, 10).Return(existingEnrollment(), nil)

	_, err := f.applicationUC().Create(context.Background(), domain.ApplicationInput{
		ApplicantID: 10,
		OfficerID:   3,
		ProgramIDs:  []int{1, 2},
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindDuplicate, domain.KindOf(err))
	assert.True(t, domain.HasCode(err, domain.CodeDuplicateProgramEnrollment))
	assert.Contains(t, err.Error(), "Elderly Persons (Application #7 - 03/02/2024)")
	f.applications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateApplicationAllowsOtherPrograms(t *testing.T) {
	f := newFixture()
	f.referencesExist()
	f.applicants.On("Exists", mock.Anything, 10).Return(true, nil)
	f.applications.On("LockApplicant", mock.Anything, 10).Return(nil)
	f.applications.On("Enrollments", mock.Anything, 10).Return(existingEnrollment(), nil)
	f.applications.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application"), []int{2, 3}).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Application).ApplicationID = 8
		}).Return(nil)

	id, err := f.applicationUC().Create(context.Background(), domain.ApplicationInput{
		ApplicantID:       10,
		OfficerID:         3,
		ApplicationDate:   "2024-06-01",
		OfficerSignedDate: "2024-06-02",
		ProgramIDs:        []int{2, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 8, id)

	app := f.applications.Calls[len(f.applications.Calls)-1].Arguments.Get(1).(*domain.Application)
	assert.Equal(t, "2024-06-01", app.ApplicationDate.String())
	assert.Equal(t, domain.StatusApproved, app.Status())
	assert.Equal(t, 1, app.Version)
}

func TestCreateApplicationRequiresApplicantAndOfficer(t *testing.T) {
	f := newFixture()
	f.referencesExist()

	_, err := f.applicationUC().Create(context.Background(), domain.ApplicationInput{ProgramIDs: []int{1}})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.True(t, domain.HasCode(err, domain.CodeApplicantRequired))
	assert.True(t, domain.HasCode(err, domain.CodeOfficerRequired))
}

func TestCreateApplicationRejectsUnknownProgram(t *testing.T) {
	f := newFixture()
	f.referencesExist()
	f.applicants.On("Exists", mock.Anything, 10).Return(true, nil)
	f.lookups.On("LookupExists", mock.Anything, domain.LookupProgram, 99).Return(false, nil)

	_, err := f.applicationUC().Create(context.Background(), domain.ApplicationInput{
		ApplicantID: 10,
		OfficerID:   3,
		ProgramIDs:  []int{99},
	})
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.CodeInvalidSelection))
}

func TestCreateForIDNumber(t *testing.T) {
	t.Run("blank id number", func(t *testing.T) {
		f := newFixture()
		_, err := f.applicationUC().CreateForIDNumber(context.Background(), " ", domain.ApplicationInput{})
		require.Error(t, err)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})

	t.Run("unknown applicant", func(t *testing.T) {
		f := newFixture()
		f.applicants.On("ProfileByIDNumber", mock.Anything, "999").
			Return(nil, domain.NewNotFoundError("Applicant", "999"))

		_, err := f.applicationUC().CreateForIDNumber(context.Background(), "999", domain.ApplicationInput{})
		require.Error(t, err)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
		assert.True(t, domain.HasCode(err, domain.CodeApplicantNotFound))
	})

	t.Run("known applicant", func(t *testing.T) {
		f := newFixture()
		f.referencesExist()
		f.applicants.On("ProfileByIDNumber", mock.Anything, "12345678").
			Return(&domain.ApplicantProfile{ApplicantID: 10}, nil)
		f.applicants.On("Exists", mock.Anything, 10).Return(true, nil)
		f.applications.On("LockApplicant", mock.Anything, 10).Return(nil)
		f.applications.On("Enrollments", mock.Anything, 10).Return(nil, nil)
		f.applications.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application"), []int{1}).Return(nil)

		_, err := f.applicationUC().CreateForIDNumber(context.Background(), "12345678", domain.ApplicationInput{
			OfficerID:  3,
			ProgramIDs: []int{1},
		})
		require.NoError(t, err)
		f.applications.AssertExpectations(t)
	})
}

func TestUpdateApplicationExcludesItself(t *testing.T) {
	f := newFixture()
	f.referencesExist()
	f.applications.On("FindByID", mock.Anything, 7).Return(&domain.Application{ApplicationID: 7, ApplicantID: 10}, nil)
	f.applications.On("LockApplicant", mock.Anything, 10).Return(nil)
	f.applications.On("Enrollments", mock.Anything, 10).Return(existingEnrollment(), nil)
	f.applications.On("Update", mock.Anything, mock.AnythingOfType("*domain.Application"), []int{1, 2}).Return(nil)

	err := f.applicationUC().Update(context.Background(), 7, domain.ApplicationInput{
		OfficerID:  3,
		ProgramIDs: []int{1, 2},
		Version:    2,
	})
	require.NoError(t, err)

	app := f.applications.Calls[len(f.applications.Calls)-1].Arguments.Get(1).(*domain.Application)
	assert.Equal(t, 7, app.ApplicationID)
	assert.Equal(t, 10, app.ApplicantID)
	assert.Equal(t, 2, app.Version)
}

func TestUpdateApplicationConflictsWithAnotherApplication(t *testing.T) {
	f := newFixture()
	f.referencesExist()
	f.applications.On("FindByID", mock.Anything, 9).Return(&domain.Application{ApplicationID: 9, ApplicantID: 10}, nil)
	f.applications.On("LockApplicant", mock.Anything, 10).Return(nil)
	f.applications.On("Enrollments", mock.Anything, 10).Return(existingEnrollment(), nil)

	err := f.applicationUC().Update(context.Background(), 9, domain.ApplicationInput{OfficerID: 3, ProgramIDs: []int{1}, Version: 1})
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.CodeDuplicateProgramEnrollment))
	f.applications.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateApplicationKeepsStoredDateWhenBlank(t *testing.T) {
	f := newFixture()
	f.referencesExist()
	stored := domain.DateOf(2024, time.January, 10)
	f.applications.On("FindByID", mock.Anything, 7).
		Return(&domain.Application{ApplicationID: 7, ApplicantID: 10, ApplicationDate: stored}, nil)
	f.applications.On("LockApplicant", mock.Anything, 10).Return(nil)
	f.applications.On("Enrollments", mock.Anything, 10).Return([]domain.Enrollment{}, nil)
	f.applications.On("Update", mock.Anything, mock.AnythingOfType("*domain.Application"), []int{2}).Return(nil)

	err := f.applicationUC().Update(context.Background(), 7, domain.ApplicationInput{
		OfficerID:  3,
		ProgramIDs: []int{2},
		Version:    1,
	})
	require.NoError(t, err)

	app := f.applications.Calls[len(f.applications.Calls)-1].Arguments.Get(1).(*domain.Application)
	assert.Equal(t, "2024-01-10", app.ApplicationDate.String())
}

func TestUpdateApplicationRequiresVersion(t *testing.T) {
	f := newFixture()
	f.referencesExist()
	f.applications.On("FindByID", mock.Anything, 7).Return(&domain.Application{ApplicationID: 7, ApplicantID: 10}, nil)

	err := f.applicationUC().Update(context.Background(), 7, domain.ApplicationInput{OfficerID: 3, ProgramIDs: []int{1}})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	f.applications.AssertNotCalled(t, "LockApplicant", mock.Anything, mock.Anything)
	f.applications.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchApplicants(t *testing.T) {
	f := newFixture()
	f.applicants.On("Search", mock.Anything, "jan", applicantSearchLimit).
		Return([]domain.ApplicantOption{{Value: 1, Label: "Jane Wanjiku (12345678)", IDNumber: "12345678"}}, nil)

	uc := f.applicationUC()

	empty, err := uc.SearchApplicants(context.Background(), "  ")
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)

	hits, err := uc.SearchApplicants(context.Background(), "jan")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Jane Wanjiku (12345678)", hits[0].Label)
}

func TestExistingApplications(t *testing.T) {
	f := newFixture()
	f.applications.On("Enrollments", mock.Anything, 10).Return(nil, nil)

	uc := f.applicationUC()

	got, err := uc.ExistingApplications(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []domain.Enrollment{}, got)

	got, err = uc.ExistingApplications(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.Enrollment{}, got)
}
