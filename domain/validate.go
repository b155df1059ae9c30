package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/asaskevich/govalidator"
)

const phonePattern = `^[0-9+\-() ]+$`

// ValidateStruct runs the `valid` tags of s and reports failures under their JSON field names.
func ValidateStruct(s any) ValidationErrors {
	var out ValidationErrors
	if _, err := govalidator.ValidateStruct(s); err != nil {
		names := map[string]string{}
		jsonFieldNames(reflect.TypeOf(s), names)
		appendValidatorError(&out, names, err)
	}
	return out
}

func appendValidatorError(out *ValidationErrors, names map[string]string, err error) {
	var errs govalidator.Errors
	if errors.As(err, &errs) {
		for _, e := range errs.Errors() {
			appendValidatorError(out, names, e)
		}
		return
	}

	var fe govalidator.Error
	if errors.As(err, &fe) {
		field, ok := names[fe.Name]
		if !ok {
			field = fe.Name
		}
		out.Add(field, CodeInvalid, fe.Err.Error())
		return
	}

	out.Add("", CodeInvalid, err.Error())
}

func jsonFieldNames(t reflect.Type, out map[string]string) {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			jsonFieldNames(f.Type, out)
			continue
		}
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			name = f.Name
		}
		out[f.Name] = name
		out[name] = name
	}
}

// CheckName validates a required display name bounded by max runes.
func CheckName(errs *ValidationErrors, field, label, value string, max int) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		errs.Add(field, CodeInvalid, fmt.Sprintf("%s is required", label))
	case len([]rune(value)) > max:
		errs.Add(field, CodeInvalid, fmt.Sprintf("%s cannot exceed %d characters", label, max))
	}
}

// IsPhoneNumber accepts digits, spaces, '+', '-', '(' and ')' with at least seven digits.
func IsPhoneNumber(s string) bool {
	if len(s) > 20 || !govalidator.Matches(s, phonePattern) {
		return false
	}
	digits := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= 7
}

// NormalizePhoneNumbers trims every entry and drops blanks.
func NormalizePhoneNumbers(numbers []string) []string {
	out := make([]string, 0, len(numbers))
	for _, n := range numbers {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// NormalizeIDs drops non-positive ids and collapses duplicates, keeping first-seen order.
func NormalizeIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
