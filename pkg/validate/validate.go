// Package validate provides struct-tag validation for form input.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required            field must not be zero/empty
//	nullable            if empty, skip all remaining rules for this field
//	email               valid email address
//	numeric             any number
//	min=N               string: min char length | number: min value
//	max=N               string: max char length | number: max value
//	gte=N               number >= N
//	in=a,b,c            value must be one of the listed items
//
// Example:
//
//	type ProductInput struct {
//	    Name  string `form:"name"  validate:"required,max=255"`
//	    Price string `form:"price" validate:"required,numeric,gte=0"`
//	}
package validate

import (
	"fmt"
	"net/mail"
	"reflect"
	"strconv"
	"strings"
)

// Struct validates all exported fields of v carrying a `validate` tag.
// Returns a map of fieldName → error message; empty map means valid.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := fieldName(field)
		rules := strings.Split(tag, ",")

		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			if rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func applyRule(rule, field string, v reflect.Value) string {
	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	switch strings.TrimSpace(key) {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}
	case "email":
		if _, err := mail.ParseAddress(raw); err != nil {
			return fmt.Sprintf("The %s field must be a valid email address.", field)
		}
	case "numeric":
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Sprintf("The %s field must be a number.", field)
		}
	case "min":
		if msg := checkBound(field, raw, v, param, false); msg != "" {
			return msg
		}
	case "max":
		if msg := checkBound(field, raw, v, param, true); msg != "" {
			return msg
		}
	case "gte":
		n, err := strconv.ParseFloat(raw, 64)
		limit, _ := strconv.ParseFloat(param, 64)
		if err != nil || n < limit {
			return fmt.Sprintf("The %s field must be at least %s.", field, param)
		}
	case "in":
		for _, allowed := range strings.Split(param, ",") {
			if raw == allowed {
				return ""
			}
		}
		return fmt.Sprintf("The %s field must be one of: %s.", field, param)
	}
	return ""
}

// checkBound applies min/max. Strings compare by length, numbers by value.
func checkBound(field, raw string, v reflect.Value, param string, upper bool) string {
	limit, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return ""
	}

	var n float64
	if v.Kind() == reflect.String {
		n = float64(len(v.String()))
	} else if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
		n = parsed
	} else {
		return fmt.Sprintf("The %s field must be a number.", field)
	}

	if upper && n > limit {
		return fmt.Sprintf("The %s field may not be greater than %s.", field, param)
	}
	if !upper && n < limit {
		return fmt.Sprintf("The %s field must be at least %s.", field, param)
	}
	return ""
}

func hasRule(rules []string, name string) bool {
	for _, r := range rules {
		if strings.TrimSpace(r) == name {
			return true
		}
	}
	return false
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

// fieldName prefers the form tag, then the json tag, then the Go name.
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		if name, _, _ := strings.Cut(field.Tag.Get(tag), ","); name != "" && name != "-" {
			return name
		}
	}
	return field.Name
}
