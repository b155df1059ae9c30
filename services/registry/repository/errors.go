package repository

import (
	"context"
	"errors"
	"strings"

	"sais/domain"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type operation int

const (
	opRead operation = iota
	opWrite
	opDelete
)

const idNumberIndex = "idx_applicants_id_number"

// translateError maps store failures onto domain errors. Domain errors pass through.
func translateError(err error, op operation) error {
	if err == nil {
		return nil
	}

	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.Error{Kind: domain.KindNotFound, Code: domain.CodeNotFound, Message: "record not found", Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			if strings.Contains(pgErr.ConstraintName, idNumberIndex) {
				return domain.NewFieldError(domain.KindDuplicate, "idNumber", domain.CodeDuplicateIdNumber,
					"An applicant with this ID Number already exists.")
			}
			return &domain.Error{Kind: domain.KindDuplicate, Code: "Duplicate", Message: "This record already exists.", Err: err}
		case pgerrcode.ForeignKeyViolation:
			if op == opDelete {
				return domain.NewHasDependentsError("", err)
			}
			return domain.NewInvalidSelectionError(err)
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return domain.NewConflictError(err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.NewInternalError("the operation timed out", err)
	}

	return domain.NewInternalError("database error", err)
}

// likePattern wraps s for a case-insensitive substring match with LIKE metacharacters escaped.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(s)) + "%"
}
