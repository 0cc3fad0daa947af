package bind

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactForm struct {
	Name  string `form:"name" validate:"required,max=255"`
	Email string `form:"email" validate:"required,email"`
	Body  string `form:"message" validate:"required"`
}

func formRequest(form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestFormBindsAndTrims(t *testing.T) {
	var in contactForm
	errs, err := Form(formRequest(url.Values{
		"name":    {"  Alice  "},
		"email":   {"alice@example.com"},
		"message": {"hello"},
	}), &in)

	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, "Alice", in.Name)
	assert.Equal(t, "hello", in.Body)
}

func TestFormReportsValidationErrors(t *testing.T) {
	var in contactForm
	errs, err := Form(formRequest(url.Values{"email": {"nope"}}), &in)

	require.NoError(t, err)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "message")
	assert.NotEmpty(t, First(errs))
}

func TestFormIgnoresUnknownFields(t *testing.T) {
	var in contactForm
	errs, err := Form(formRequest(url.Values{
		"name":    {"Alice"},
		"email":   {"alice@example.com"},
		"message": {"hello"},
		"extra":   {"ignored"},
	}), &in)

	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestFormRejectsNonStructDest(t *testing.T) {
	var s string
	_, err := Form(formRequest(url.Values{}), &s)
	assert.Error(t, err)
}

func TestFirstEmptyMap(t *testing.T) {
	assert.Empty(t, First(nil))
	assert.Empty(t, First(map[string]string{}))
}
