// Package bind decodes an HTML form submission into a struct and validates
// it. Fields are matched by `form` tags; validation rules come from
// `validate` tags (see pkg/validate).
package bind

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/bkormos/portico/pkg/validate"
)

// Form parses r's url-encoded body into dest and runs validation.
// Returns (errs, nil) when there are validation failures.
// Returns (nil, err) when the body cannot be parsed at all.
func Form(r *http.Request, dest interface{}) (errs map[string]string, err error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("invalid form body: %w", err)
	}

	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("bind: dest must be a pointer to struct, got %T", dest)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			continue
		}

		value := rv.Field(i)
		if !value.CanSet() || value.Kind() != reflect.String {
			continue
		}
		value.SetString(strings.TrimSpace(r.PostFormValue(name)))
	}

	errs = validate.Struct(dest)
	if validate.HasErrors(errs) {
		return errs, nil
	}

	return nil, nil
}

// First returns one message from a validation error map, for pages that
// show a single inline error line.
func First(errs map[string]string) string {
	for _, msg := range errs {
		return msg
	}
	return ""
}
