package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(y int, m time.Month, d int) *Date {
	v := DateOf(y, m, d)
	return &v
}

func TestDeriveStatus(t *testing.T) {
	signed := datePtr(2024, time.March, 1)

	tests := []struct {
		name      string
		applicant *Date
		officer   *Date
		want      ApplicationStatus
	}{
		{"nothing signed", nil, nil, StatusDraft},
		{"applicant signed", signed, nil, StatusPendingOfficerApproval},
		{"officer signed", nil, signed, StatusApproved},
		{"both signed", signed, signed, StatusApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.applicant, tt.officer))
		})
	}
}

func TestDeriveStatusMovesForwardAsSignaturesArrive(t *testing.T) {
	app := Application{}
	assert.Equal(t, StatusDraft, app.Status())

	app.ApplicantSignedDate = datePtr(2024, time.March, 1)
	assert.Equal(t, StatusPendingOfficerApproval, app.Status())

	app.OfficerSignedDate = datePtr(2024, time.March, 2)
	assert.Equal(t, StatusApproved, app.Status())
}

func TestEnrollmentConflicts(t *testing.T) {
	existing := []Enrollment{
		{ProgramID: 1, ProgramName: "Elderly Persons", ApplicationID: 10, ApplicationDate: DateOf(2024, time.January, 5)},
		{ProgramID: 2, ProgramName: "Disability", ApplicationID: 10, ApplicationDate: DateOf(2024, time.January, 5)},
	}

	t.Run("blocks a program already held", func(t *testing.T) {
		conflicts := EnrollmentConflicts(existing, []int{1, 3}, 0)
		require.Len(t, conflicts, 1)
		assert.Equal(t, 1, conflicts[0].ProgramID)
	})

	t.Run("allows programs not held", func(t *testing.T) {
		assert.Empty(t, EnrollmentConflicts(existing, []int{3, 4}, 0))
	})

	t.Run("ignores the application being edited", func(t *testing.T) {
		assert.Empty(t, EnrollmentConflicts(existing, []int{1, 2}, 10))
	})
}

func TestNewDuplicateEnrollmentError(t *testing.T) {
	err := NewDuplicateEnrollmentError([]Enrollment{
		{ProgramID: 1, ProgramName: "Elderly Persons", ApplicationID: 7, ApplicationDate: DateOf(2024, time.February, 3)},
		{ProgramID: 2, ProgramName: "Disability", ApplicationID: 9, ApplicationDate: DateOf(2024, time.March, 14)},
	})

	assert.Equal(t, KindDuplicate, err.Kind)
	assert.Equal(t, "programIds", err.Field)
	assert.True(t, HasCode(err, CodeDuplicateProgramEnrollment))
	assert.Equal(t,
		"This applicant has already applied for the following programs: Elderly Persons (Application #7 - 03/02/2024), Disability (Application #9 - 14/03/2024)",
		err.Message)
}
