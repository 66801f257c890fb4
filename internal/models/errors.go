package models

import (
	"errors"
	"fmt"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}

// MapErrors maps "<field>_<tag>" keys produced by struct validation to
// stable error codes returned on the HTTP surface. Field is the json
// tag name, not the Go field name.
var MapErrors = MapErrs{
	"password_required":          {Code: "MISSING_FIELD", ErrorMessage: errors.New("password is required")},
	"payments_required":          {Code: "MISSING_FIELD", ErrorMessage: errors.New("payments is required")},
	"payments_min":               {Code: "INVALID_LENGTH", ErrorMessage: errors.New("payments must contain at least one item")},
	"userId_required":            {Code: "MISSING_FIELD", ErrorMessage: errors.New("userId is required")},
	"name_required":              {Code: "MISSING_FIELD", ErrorMessage: errors.New("name is required")},
	"mobileMoneyNumber_ghmsisdn": {Code: "INVALID_FORMAT", ErrorMessage: errors.New("mobileMoneyNumber is not a valid mobile money number")},
}
