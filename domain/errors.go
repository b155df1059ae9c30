package domain

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindInvalidSelection
	KindDuplicate
	KindNotFound
	KindHasDependents
	KindConcurrencyConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "Validation"
	case KindInvalidSelection:
		return "InvalidSelection"
	case KindDuplicate:
		return "Duplicate"
	case KindNotFound:
		return "NotFound"
	case KindHasDependents:
		return "HasDependents"
	case KindConcurrencyConflict:
		return "ConcurrencyConflict"
	default:
		return "Internal"
	}
}

// Error codes carried on Error.Code and FieldError.Code.
const (
	CodeInvalid                    = "Invalid"
	CodeInvalidDate                = "InvalidDate"
	CodeInvalidPhoneNumber         = "InvalidPhoneNumber"
	CodeAgeOrDateOfBirthRequired   = "AgeOrDateOfBirthRequired"
	CodeDuplicateIdNumber          = "DuplicateIdNumber"
	CodeFutureDateOfBirth          = "FutureDateOfBirth"
	CodeMissingPhoneNumber         = "MissingPhoneNumber"
	CodeNoProgramsSelected         = "NoProgramsSelected"
	CodeApplicantRequired          = "ApplicantRequired"
	CodeOfficerRequired            = "OfficerRequired"
	CodeVillageRequired            = "VillageRequired"
	CodeDuplicateProgramEnrollment = "DuplicateProgramEnrollment"
	CodeApplicantNotFound          = "ApplicantNotFound"
	CodeNotFound                   = "NotFound"
	CodeInvalidSelection           = "InvalidSelection"
	CodeForeignKeyViolation        = "ForeignKeyViolation"
	CodeConcurrencyConflict        = "ConcurrencyConflict"
	CodeInternal                   = "Internal"
)

const (
	MsgInvalidSelection    = "Invalid selection. Please ensure all dropdown values are valid."
	MsgConcurrencyConflict = "The record was modified by another user. Please refresh and try again."
	MsgInternal            = "An unexpected error occurred. Please try again."
	MsgHasDependents       = "Cannot delete this record because other records depend on it."
)

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// ValidationErrors collects every field problem of one request.
type ValidationErrors []FieldError

func (v *ValidationErrors) Add(field, code, message string) {
	*v = append(*v, FieldError{Field: field, Code: code, Message: message})
}

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		if fe.Field == "" {
			msgs = append(msgs, fe.Message)
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) HasCode(code string) bool {
	for _, fe := range v {
		if fe.Code == code {
			return true
		}
	}
	return false
}

// Error is the classified failure every use case returns.
type Error struct {
	Kind    ErrorKind
	Code    string
	Field   string
	Message string
	Fields  ValidationErrors
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if len(e.Fields) > 0 {
		return e.Fields.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NewValidationError wraps aggregated field errors. When every field error is a
// duplicate the whole error is classified as Duplicate.
func NewValidationError(fields ValidationErrors) *Error {
	kind := KindDuplicate
	for _, fe := range fields {
		if fe.Code != CodeDuplicateIdNumber && fe.Code != CodeDuplicateProgramEnrollment {
			kind = KindValidation
			break
		}
	}
	e := &Error{Kind: kind, Code: CodeInvalid, Message: "One or more fields are invalid", Fields: fields}
	if len(fields) == 1 {
		e.Code = fields[0].Code
		e.Field = fields[0].Field
		e.Message = fields[0].Message
	}
	return e
}

func NewFieldError(kind ErrorKind, field, code, message string) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Field:   field,
		Message: message,
		Fields:  ValidationErrors{{Field: field, Code: code, Message: message}},
	}
}

func NewNotFoundError(entity string, id any) *Error {
	return &Error{Kind: KindNotFound, Code: CodeNotFound, Message: fmt.Sprintf("%s %v not found", entity, id)}
}

func NewConflictError(err error) *Error {
	return &Error{Kind: KindConcurrencyConflict, Code: CodeConcurrencyConflict, Message: MsgConcurrencyConflict, Err: err}
}

func NewInvalidSelectionError(err error) *Error {
	return &Error{Kind: KindInvalidSelection, Code: CodeInvalidSelection, Message: MsgInvalidSelection, Err: err}
}

func NewHasDependentsError(message string, err error) *Error {
	if message == "" {
		message = MsgHasDependents
	}
	return &Error{Kind: KindHasDependents, Code: CodeForeignKeyViolation, Message: message, Err: err}
}

func NewInternalError(op string, err error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: op, Err: err}
}

// KindOf classifies any error; unclassified errors are Internal.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// HasCode reports whether err carries code either directly or on one of its fields.
func HasCode(err error, code string) bool {
	var de *Error
	if !errors.As(err, &de) {
		return false
	}
	return de.Code == code || de.Fields.HasCode(code)
}
