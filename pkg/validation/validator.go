package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Node IDs follow the original topology naming (R1, P1, J1, Z1, V1, S_F_J1...)
	nodeIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

func init() {
	validate = validator.New()
}

// ValidateStruct validates any struct using its `validate` tags.
func ValidateStruct(s any) error {
	if s == nil {
		return errors.New("value cannot be nil")
	}
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateNodeID checks that an identifier is usable as a network node key.
func ValidateNodeID(id string) error {
	if id == "" {
		return errors.New("node ID cannot be empty")
	}
	if !nodeIDPattern.MatchString(id) {
		return fmt.Errorf("node ID %q contains invalid characters (must start with a letter, alphanumeric and underscore only)", id)
	}
	return nil
}

// formatValidationError converts validator errors into readable messages.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
