package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/shedledger/internal/domain"
)

const DateLayout = time.DateOnly

// MoneyPlaces is the scale of every amount column.
const MoneyPlaces = 2

var v = newValidator()

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// Struct validates a request DTO. The first failing field is returned as a
// ValidationError named by its json path, e.g. rows[2].vehicleId.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domain.NewValidationError("request", err.Error())
	}
	fe := fieldErrs[0]
	return domain.NewValidationError(fieldPath(fe.Namespace()), reason(fe))
}

func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must not be less than %s", fe.Param())
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	case "max":
		return fmt.Sprintf("must not be longer than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", fe.Param())
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}

// Date parses a YYYY-MM-DD value. An empty string yields the zero time.
func Date(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, fmt.Sprintf("must be a date in %s format", DateLayout))
	}
	return t, nil
}

// Money rejects amounts that the NUMERIC(14,2) columns would round.
// Trailing zeros are fine: 1.500 passes, 1.505 does not.
func Money(field string, amount decimal.Decimal) error {
	if !amount.Equal(amount.Round(MoneyPlaces)) {
		return domain.NewValidationError(field, fmt.Sprintf("must not have more than %d decimal places", MoneyPlaces))
	}
	return nil
}

// MoneyFields checks several amounts in order and reports the first bad one.
func MoneyFields(fields ...MoneyField) error {
	for _, f := range fields {
		if err := Money(f.Name, f.Amount); err != nil {
			return err
		}
	}
	return nil
}

type MoneyField struct {
	Name   string
	Amount decimal.Decimal
}
