package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	tkerrors "github.com/alexisbeaulieu97/tokenkit/pkg/errors"
)

// convertValidationError normalizes validator errors into toolkit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return tkerrors.NewValidationError(field, msg, err)
	}

	return tkerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForControl(index int, field string) string {
	return fmt.Sprintf("controls[%d].%s", index, field)
}
