// Package validator registers the custom validation rules used by request
// bindings on top of go-playground/validator.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var weekdays = map[string]bool{
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
	"Saturday":  true,
	"Sunday":    true,
}

// Register installs the custom rules on gin's binding validator. Call once at
// startup before routes are served.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("hhmm", validHHMM); err != nil {
		return err
	}
	return v.RegisterValidation("weekday", validWeekday)
}

// validHHMM accepts wall-clock "HH:MM" strings. No timezone, no seconds.
func validHHMM(fl validator.FieldLevel) bool {
	return hhmmPattern.MatchString(fl.Field().String())
}

func validWeekday(fl validator.FieldLevel) bool {
	return weekdays[fl.Field().String()]
}
