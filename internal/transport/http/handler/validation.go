package handler

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/moscow89er/mesto-api/internal/apperror"
)

// urlPattern is the canonical avatar/link rule: http or https, optional
// www., a domain, and an optional path/query.
var urlPattern = regexp.MustCompile(`^https?://(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_+.~#?&/=]*)$`)

// RegisterValidations installs the custom binding rules on gin's validator
// engine. Call once before routes are served.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("photourl", func(fl validator.FieldLevel) bool {
		return urlPattern.MatchString(fl.Field().String())
	})
}

// bindError converts a gin binding failure into a BadRequest listing the
// fields that failed, so malformed input is rejected before any store call.
func bindError(err error) *apperror.AppError {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		fields := make([]string, 0, len(vErrs))
		for _, fe := range vErrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		return apperror.NewBadRequest("Invalid request data: "+strings.Join(fields, ", "), err)
	}
	return apperror.NewBadRequest("Invalid request data", err)
}
