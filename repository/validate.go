package repository

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/KidawR/MainProgect/errs"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("calendar_date", calendarDate); err != nil {
		panic(err)
	}
	return v
}

const (
	minYear = 1900
	maxYear = 2999
)

// calendarDate accepts times whose year fits a date column.
func calendarDate(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return t.Year() >= minYear && t.Year() <= maxYear
}

func validateStruct(op string, s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs.Wrap(errs.Validation, op, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email", fe.Field()))
		case "calendar_date":
			msgs = append(msgs, fmt.Sprintf("%s must fall between years %d and %d", fe.Field(), minYear, maxYear))
		default:
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		}
	}
	return errs.Validationf(op, "%s", strings.Join(msgs, "; "))
}

func nonNegative(op, field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return errs.Validationf(op, "%s must not be negative", field)
	}
	return nil
}

func positive(op, field string, n int) error {
	if n <= 0 {
		return errs.Validationf(op, "%s must be positive", field)
	}
	return nil
}
