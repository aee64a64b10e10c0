package util

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError("CONFLICT", message, http.StatusConflict, details)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		if de, ok := NewNotFound("resource", nil).(*DomainError); ok {
			return de
		}
	}
	if de, ok := NewInternalError(err).(*DomainError); ok {
		return de
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}

// IsCode reports whether err is a DomainError carrying the given code.
func IsCode(err error, code string) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}

// Business-rule error codes. All are permanent, user-correctable rejections,
// never retried.
const (
	CodeProfileInactive   = "PROFILE_INACTIVE"
	CodePostingClosed     = "POSTING_CLOSED"
	CodeDeadlinePassed    = "DEADLINE_PASSED"
	CodeAlreadyApplied    = "ALREADY_APPLIED"
	CodeSalaryMismatch    = "SALARY_MISMATCH"
	CodeInvalidStatus     = "INVALID_STATUS"
	CodeIllegalTransition = "ILLEGAL_TRANSITION"
)

func NewProfileInactive() error {
	return NewDomainError(CodeProfileInactive,
		"you must complete your job seeker profile before applying",
		http.StatusBadRequest, nil)
}

func NewPostingClosed(status string) error {
	return NewDomainError(CodePostingClosed,
		fmt.Sprintf("cannot apply to a job that is %s", status),
		http.StatusBadRequest, map[string]any{"posting_status": status})
}

func NewDeadlinePassed(daysPastDue int) error {
	return NewDomainError(CodeDeadlinePassed,
		fmt.Sprintf("the application deadline for this job passed %d days ago", daysPastDue),
		http.StatusBadRequest, map[string]any{"days_past_due": daysPastDue})
}

func NewAlreadyApplied(currentStatus string) error {
	return NewDomainError(CodeAlreadyApplied,
		fmt.Sprintf("you have already applied for this job (status: %s)", currentStatus),
		http.StatusConflict, map[string]any{"current_status": currentStatus})
}

func NewSalaryMismatch(postingRange, profileRange string) error {
	return NewDomainError(CodeSalaryMismatch,
		"the posting's salary range is above your expected range",
		http.StatusBadRequest, map[string]any{
			"posting_range": postingRange,
			"profile_range": profileRange,
		})
}

func NewInvalidStatus(status string) error {
	return NewDomainError(CodeInvalidStatus,
		fmt.Sprintf("unrecognized status %q", status),
		http.StatusBadRequest, map[string]any{"status": status})
}

func NewIllegalTransition(from, to string) error {
	return NewDomainError(CodeIllegalTransition,
		fmt.Sprintf("cannot change status from %s to %s", from, to),
		http.StatusBadRequest, map[string]any{"from": from, "to": to})
}
