package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"

	dserrors "github.com/alexisbeaulieu97/designsystem/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	aliasPattern  = regexp.MustCompile(`^@[a-z0-9][a-z0-9-]*/[a-z0-9][a-z0-9-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("package_alias", func(fl validator.FieldLevel) bool {
			return aliasPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("rel_path", func(fl validator.FieldLevel) bool {
			return isValidPackagePath(fl.Field().String())
		})

		_ = v.RegisterValidation("glob", func(fl validator.FieldLevel) bool {
			pattern := fl.Field().String()
			return pattern != "" && doublestar.ValidatePattern(pattern)
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator used for configuration.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// Validate performs schema validation on the configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return dserrors.NewValidationError("config", "configuration is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(cfg))
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return dserrors.NewValidationError(field, msg, err)
	}

	return dserrors.NewValidationError("config", err.Error(), err)
}

// fieldName strips the root struct name from the yaml-named namespace.
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

// isValidPackagePath accepts relative paths with an explicit ./ or ../
// prefix and absolute paths, without touching the filesystem.
func isValidPackagePath(path string) bool {
	if path == "" || strings.Contains(path, "\x00") {
		return false
	}
	if strings.HasPrefix(path, "/") {
		return !strings.Contains(path, "/../") && !strings.HasSuffix(path, "/..")
	}
	return strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../")
}
