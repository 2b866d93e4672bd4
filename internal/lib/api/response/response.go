package response

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

func OK() Response {
	return Response{
		Status: StatusOK,
	}
}

func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// ValidationError renders validator failures as one readable message.
// Errors that are not validator.ValidationErrors are reported as is.
func ValidationError(err error) Response {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return Error(err.Error())
	}

	var msgs []string

	for _, e := range errs {
		field := e.Field()

		switch e.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is a required field", field))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s is not a valid email", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("field %s must be at least %s characters", field, e.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("field %s must be at most %s characters", field, e.Param()))
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("field %s must be a date in %s format", field, e.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("field %s must be one of: %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", field))
		}
	}

	return Error(strings.Join(msgs, ", "))
}
