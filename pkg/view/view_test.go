package view

import (
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"layout.html": &fstest.MapFile{Data: []byte(
			`<html><body>{{template "content" .}}</body></html>`,
		)},
		"pages/hello.html": &fstest.MapFile{Data: []byte(
			`{{define "content"}}Hello {{.Name}}{{end}}`,
		)},
		"pages/price.html": &fstest.MapFile{Data: []byte(
			`{{define "content"}}{{money .Price}}{{end}}`,
		)},
	}
}

func TestRender(t *testing.T) {
	e, err := New(testFS())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	e.Render(rec, "hello", Data{"Name": "Alice"})

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hello Alice")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestRenderEscapesHTML(t *testing.T) {
	e, err := New(testFS())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	e.Render(rec, "hello", Data{"Name": "<script>alert(1)</script>"})

	assert.NotContains(t, rec.Body.String(), "<script>")
}

func TestMoneyFunc(t *testing.T) {
	e, err := New(testFS())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	e.Render(rec, "price", Data{"Price": 4.5})

	assert.Contains(t, rec.Body.String(), "4.50")
}

func TestUnknownTemplateIs500(t *testing.T) {
	e, err := New(testFS())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	e.Render(rec, "missing", nil)

	assert.Equal(t, 500, rec.Code)
}

func TestPagesDoNotCollide(t *testing.T) {
	// both pages define "content"; each must keep its own block
	e, err := New(testFS())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	e.Render(rec, "hello", Data{"Name": "A"})
	assert.Contains(t, rec.Body.String(), "Hello A")

	rec = httptest.NewRecorder()
	e.Render(rec, "price", Data{"Price": 1.0})
	assert.Contains(t, rec.Body.String(), "1.00")
}
