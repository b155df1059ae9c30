package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"sais/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLookupCreateEnforcesNameLength(t *testing.T) {
	repo := new(mockLookupRepo)
	repo.On("CreateLookup", mock.Anything, domain.LookupMaritalStatus, "Married").Return(4, nil)
	uc := NewLookupUseCase(repo, time.Second)

	id, err := uc.Create(context.Background(), domain.LookupMaritalStatus, domain.LookupInput{Name: " Married "})
	require.NoError(t, err)
	assert.Equal(t, 4, id)

	_, err = uc.Create(context.Background(), domain.LookupGender, domain.LookupInput{Name: strings.Repeat("x", 21)})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = uc.Create(context.Background(), domain.LookupProgram, domain.LookupInput{Name: ""})
	require.Error(t, err)
	repo.AssertNumberOfCalls(t, "CreateLookup", 1)
}

func TestLookupDeletePropagatesHasDependents(t *testing.T) {
	repo := new(mockLookupRepo)
	repo.On("DeleteLookup", mock.Anything, domain.LookupGender, 1).
		Return(domain.NewHasDependentsError("", nil))
	uc := NewLookupUseCase(repo, time.Second)

	err := uc.Delete(context.Background(), domain.LookupGender, 1)
	assert.Equal(t, domain.KindHasDependents, domain.KindOf(err))
}

func TestCreateOfficer(t *testing.T) {
	repo := new(mockLookupRepo)
	repo.On("CreateOfficer", mock.Anything, mock.AnythingOfType("*domain.Officer")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Officer).OfficerID = 3
		}).Return(nil)
	uc := NewLookupUseCase(repo, time.Second)

	id, err := uc.CreateOfficer(context.Background(), domain.OfficerInput{Name: "John Kamau", Designation: "Social Worker"})
	require.NoError(t, err)
	assert.Equal(t, 3, id)

	_, err = uc.CreateOfficer(context.Background(), domain.OfficerInput{Name: "John Kamau"})
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.CodeInvalid))
}

func TestOfficerDetails(t *testing.T) {
	repo := new(mockLookupRepo)
	repo.On("GetOfficer", mock.Anything, 3).Return(&domain.OfficerSummary{OfficerID: 3, Name: "John Kamau", ApplicationCount: 1}, nil)
	repo.On("OfficerApplications", mock.Anything, 3).Return([]domain.OfficerApplication{{ApplicationID: 7, ApplicantName: "Jane Wanjiku"}}, nil)
	uc := NewLookupUseCase(repo, time.Second)

	details, err := uc.OfficerDetails(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "John Kamau", details.Name)
	require.Len(t, details.Applications, 1)
	assert.Equal(t, "Jane Wanjiku", details.Applications[0].ApplicantName)
}
