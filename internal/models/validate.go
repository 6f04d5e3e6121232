package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

// ValidationDetail flattens validator errors into field -> failed-rule pairs
// so 400 responses carry per-field detail.
func ValidationDetail(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag()
	}
	return details
}
