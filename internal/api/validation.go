package api

import (
	"fmt"
	"time"

	"digiboard/api/internal/constants"
)

// fieldErrors accumulates per-field validation failures for a 422 response.
type fieldErrors map[string][]string

func (e fieldErrors) add(field, message string) {
	e[field] = append(e[field], message)
}

func (e fieldErrors) empty() bool {
	return len(e) == 0
}

func requiredMsg(field string) string {
	return fmt.Sprintf("The %s field is required.", field)
}

func takenMsg(field string) string {
	return fmt.Sprintf("The %s has already been taken.", field)
}

func invalidRefMsg(field string) string {
	return fmt.Sprintf("The selected %s is invalid.", field)
}

func maxLenMsg(field string, max int) string {
	return fmt.Sprintf("The %s may not be greater than %d characters.", field, max)
}

// checkRequired flags a field that is absent or blank. Returns the value for
// chaining further checks, empty string when missing.
func checkRequired(errs fieldErrors, field string, value *string) string {
	if value == nil || *value == "" {
		errs.add(field, requiredMsg(field))
		return ""
	}
	return *value
}

func checkMaxLen(errs fieldErrors, field, value string, max int) {
	if len(value) > max {
		errs.add(field, maxLenMsg(field, max))
	}
}

func validDate(value string) bool {
	_, err := time.Parse(constants.DateLayout, value)
	return err == nil
}

func validTimeOfDay(value string) bool {
	_, err := time.Parse(constants.TimeLayout, value)
	return err == nil
}
