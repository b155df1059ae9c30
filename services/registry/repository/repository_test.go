package repository

import (
	"context"
	"errors"
	"testing"

	"sais/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		op       operation
		wantKind domain.ErrorKind
		wantCode string
	}{
		{"nil", nil, opRead, 0, ""},
		{"record not found", gorm.ErrRecordNotFound, opRead, domain.KindNotFound, domain.CodeNotFound},
		{
			"id number unique violation",
			&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: idNumberIndex},
			opWrite, domain.KindDuplicate, domain.CodeDuplicateIdNumber,
		},
		{
			"other unique violation",
			&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "applied_programs_pkey"},
			opWrite, domain.KindDuplicate, "Duplicate",
		},
		{
			"fk violation on write",
			&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation},
			opWrite, domain.KindInvalidSelection, domain.CodeInvalidSelection,
		},
		{
			"fk violation on delete",
			&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation},
			opDelete, domain.KindHasDependents, domain.CodeForeignKeyViolation,
		},
		{
			"serialization failure",
			&pgconn.PgError{Code: pgerrcode.SerializationFailure},
			opWrite, domain.KindConcurrencyConflict, domain.CodeConcurrencyConflict,
		},
		{
			"deadlock",
			&pgconn.PgError{Code: pgerrcode.DeadlockDetected},
			opWrite, domain.KindConcurrencyConflict, domain.CodeConcurrencyConflict,
		},
		{"unknown", errors.New("broken pipe"), opRead, domain.KindInternal, domain.CodeInternal},
		{
			"domain errors pass through",
			domain.NewNotFoundError("Applicant", 1),
			opWrite, domain.KindNotFound, domain.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err, tt.op)
			if tt.err == nil {
				assert.NoError(t, got)
				return
			}
			assert.Equal(t, tt.wantKind, domain.KindOf(got))
			assert.True(t, domain.HasCode(got, tt.wantCode), "code %s missing from %v", tt.wantCode, got)
		})
	}
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%jane%", likePattern(" jane "))
	assert.Equal(t, `%50\%\_off\\%`, likePattern(`50%_off\`))
}

func TestGeographyCount(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "villages"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := NewGeographyRepository(db).Count(context.Background(), domain.LevelVillage)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGeographyExists(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "sub_counties" WHERE sub_county_id = \$1`).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err := NewGeographyRepository(db).Exists(context.Background(), domain.LevelSubCounty, 9)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIDNumberTaken(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "applicants" WHERE id_number = \$1 AND applicant_id <> \$2`).
		WithArgs("12345678", 0).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	taken, err := NewApplicantRepository(db).IDNumberTaken(context.Background(), "12345678", 0)
	require.NoError(t, err)
	assert.True(t, taken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicantUpdateStaleVersion(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "applicants" SET .* WHERE applicant_id = \$\d+ AND version = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "applicants" WHERE applicant_id = \$1`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := NewApplicantRepository(db).Update(context.Background(), &domain.Applicant{ApplicantID: 7, Version: 2})
	require.Error(t, err)
	assert.Equal(t, domain.KindConcurrencyConflict, domain.KindOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicantUpdateMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "applicants" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "applicants"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	err := NewApplicantRepository(db).Update(context.Background(), &domain.Applicant{ApplicantID: 7, Version: 2})
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestApplicantDeleteWithDependents(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "applicants" WHERE applicant_id = \$1`).
		WithArgs(7).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
	mock.ExpectRollback()

	err := NewApplicantRepository(db).Delete(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, domain.KindHasDependents, domain.KindOf(err))
	assert.Contains(t, err.Error(), "associated applications")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicantDeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "applicants"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := NewApplicantRepository(db).Delete(context.Background(), 7)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestLockApplicantNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT "applicant_id" FROM "applicants" WHERE applicant_id = \$1 LIMIT .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"applicant_id"}))

	err := NewApplicationRepository(db).LockApplicant(context.Background(), 3)
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.True(t, domain.HasCode(err, domain.CodeApplicantNotFound))
}

func TestTransactorCommitsAndRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	tx := NewTransactor(db)

	mock.ExpectBegin()
	mock.ExpectCommit()
	require.NoError(t, tx.WithinTx(context.Background(), func(ctx context.Context) error {
		_, ok := txFrom(ctx)
		assert.True(t, ok)
		return nil
	}))

	mock.ExpectBegin()
	mock.ExpectRollback()
	err := tx.WithinTx(context.Background(), func(ctx context.Context) error {
		return domain.NewNotFoundError("Applicant", 1)
	})
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}
