package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRowsAffected        = errors.New("no rows affected")
	ErrValidation            = errors.New("validation failed")
	ErrDataNotFound          = errors.New("data not found")
	ErrInternalServerError   = errors.New("internal server error")
	ErrIDEmpty               = errors.New("ID is empty")
	ErrUnableToCreate        = errors.New("unable to create data")
	ErrUnableToUpdate        = errors.New("unable to update data")
	ErrInvalidApproval       = errors.New("invalid approval password")
	ErrEmptyBatch            = errors.New("payment request list is empty")
	ErrAuthenticationFailed  = errors.New("authentication with payment provider failed")
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrMobileNumberTaken     = errors.New("mobile money number already registered")
	ErrRecordNotFound        = errors.New("payroll record not found")
	ErrInvalidFingerprint    = errors.New("idempotency key cannot be reused for different requests payload")
	ErrRequestBeingProcessed = errors.New("request with same idempotency key is being processed")
	ErrMissingIdempotencyKey = errors.New("missing idempotency key. this operation requires idempotency key")
	ErrNoRows                = sql.ErrNoRows
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}
