package command

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/younsl/awsls/pkg/formatter"
)

// EC2Options are the flags of the ec2 command
type EC2Options struct {
	States []string `validate:"required,dive,oneof=running stopped terminated"`
	Region string
	Output string `validate:"omitempty,csvpath"`
}

// S3Options are the flags of the s3 command
type S3Options struct {
	Bucket        string `validate:"omitempty,min=3,max=63"`
	HumanReadable bool
	SortBySize    bool
}

// ValidationError reports invalid command line input. It is returned
// before any AWS client is built.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid arguments: " + strings.Join(e.Problems, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("csvpath", func(fl validator.FieldLevel) bool {
		return formatter.IsCSVPath(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// validateOptions checks an options struct against its validate tags
func validateOptions(opts any) error {
	err := validate.Struct(opts)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describeFieldError(fe))
	}
	return &ValidationError{Problems: problems}
}

func describeFieldError(fe validator.FieldError) string {
	value := fmt.Sprint(fe.Value())

	switch fe.Tag() {
	case "csvpath":
		return fmt.Sprintf("only %s output is supported - got %q", formatter.CSVExtension, filepath.Ext(value))
	case "oneof":
		return fmt.Sprintf("invalid state %q (expected one of: %s)", value, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "required":
		return fmt.Sprintf("%s must not be empty", strings.ToLower(fe.Field()))
	case "min", "max":
		return fmt.Sprintf("%s %q must be between 3 and 63 characters", strings.ToLower(fe.Field()), value)
	default:
		return fmt.Sprintf("%s failed %s validation", strings.ToLower(fe.Field()), fe.Tag())
	}
}
