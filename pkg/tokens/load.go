package tokens

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	dserrors "github.com/alexisbeaulieu97/designsystem/pkg/errors"
)

var (
	yamlLineRegex    = regexp.MustCompile(`line (\d+)`)
	tokenNamePattern = regexp.MustCompile(`^[a-z0-9]+(?:[.-][a-z0-9]+)*$`)
	// Characters that would end a declaration or block early.
	unsafeValueChars = ";{}\n\r"

	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func tokenValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("token_name", func(fl validator.FieldLevel) bool {
			return tokenNamePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("token_value", func(fl validator.FieldLevel) bool {
			return !strings.ContainsAny(fl.Field().String(), unsafeValueChars)
		})
		validateInst = v
	})
	return validateInst
}

// Load reads a YAML token file. Missing groups become empty maps.
func Load(path string) (Tokens, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tokens{}, dserrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates YAML token data. path is used for error
// reporting only.
func Parse(path string, data []byte) (Tokens, error) {
	var t Tokens
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tokens{}, dserrors.NewParseError(path, extractLine(err), err)
	}
	t = t.Normalize()

	if err := Validate(t); err != nil {
		return Tokens{}, err
	}
	return t, nil
}

// Validate checks token names and values.
func Validate(t Tokens) error {
	err := tokenValidator().Struct(t)
	if err == nil {
		return checkCollisions(t)
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg := fmt.Sprintf("failed %q check", fe.Tag())
		switch fe.Tag() {
		case "token_name":
			msg = fmt.Sprintf("invalid token name %q", fe.Value())
		case "token_value":
			msg = fmt.Sprintf("token value %q must not contain ';', '{', '}' or line breaks", fe.Value())
		}
		return dserrors.NewValidationError(fe.Namespace(), msg, err)
	}
	return dserrors.NewValidationError("", err.Error(), err)
}

// checkCollisions rejects names in one group that render to the same custom
// property, such as "brand.primary" and "brand-primary".
func checkCollisions(t Tokens) error {
	for _, g := range Groups() {
		values := t.Group(g)
		names := make([]string, 0, len(values))
		for name := range values {
			names = append(names, name)
		}
		sort.Strings(names)

		seen := make(map[string]string, len(names))
		for _, name := range names {
			prop := propertyName(name)
			if other, ok := seen[prop]; ok {
				return dserrors.NewValidationError(string(g),
					fmt.Sprintf("tokens %q and %q both render as --%s-%s", other, name, cssPrefix[g], prop), nil)
			}
			seen[prop] = name
		}
	}
	return nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
