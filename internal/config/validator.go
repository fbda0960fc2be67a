package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tokenkit/internal/style"
	tkerrors "github.com/alexisbeaulieu97/tokenkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	controlIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("control_id", func(fl validator.FieldLevel) bool {
			return controlIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the document.
// Unknown tokens are not errors here; see Lint.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return tkerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Controls))
	for i, c := range cfg.Controls {
		if first, exists := seen[c.ID]; exists {
			return tkerrors.NewValidationError(fieldForControl(i, "id"),
				fmt.Sprintf("duplicate control id %q (first at controls[%d])", c.ID, first), nil)
		}
		seen[c.ID] = i

		if err := validateControl(c, i); err != nil {
			return err
		}
	}

	return nil
}

func validateControl(c Control, index int) error {
	family := style.Family(strings.ToLower(strings.TrimSpace(c.Family)))

	if family != style.FamilyInput && c.Label == "" && c.Icon == "" {
		return tkerrors.NewValidationError(fieldForControl(index, "label"), "a label or an icon is required", nil)
	}
	if family == style.FamilyInput && c.Confirm != nil {
		return tkerrors.NewValidationError(fieldForControl(index, "confirm"), "inputs cannot require confirmation", nil)
	}
	return nil
}
