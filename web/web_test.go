package web

import (
	"bytes"
	"testing"
	"time"

	"github.com/FlorianRuen/portfolio-backend/model"
	"github.com/FlorianRuen/portfolio-backend/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	tmpl := Templates()
	require.NotNil(t, tmpl.Lookup("index.html"))
}

func TestDate(t *testing.T) {
	date := funcs["date"].(func(time.Time) string)

	assert.Equal(t, "", date(time.Time{}))
	assert.Equal(t, "Sep 20, 2024", date(time.Date(2024, 9, 20, 8, 0, 0, 0, time.UTC)))
}

func TestRenderEscapesContent(t *testing.T) {
	var out bytes.Buffer

	data := struct {
		Owner string
		Feed  shell.FeedView
		Form  shell.FormView
	}{
		Owner: "<script>",
		Feed: shell.FeedView{Projects: []model.DisplayProject{
			{ID: 1, Title: "<b>site</b>", URL: "javascript:alert(1)"},
		}},
		Form: shell.FormView{Busy: true, Fields: model.ContactFormState{Name: `"><script>`}},
	}

	require.NoError(t, Templates().ExecuteTemplate(&out, "index.html", data))
	assert.NotContains(t, out.String(), "<script>")
	assert.NotContains(t, out.String(), "<b>site</b>")
	assert.NotContains(t, out.String(), "javascript:")
	assert.Contains(t, out.String(), "Sending...")
	assert.Contains(t, out.String(), "disabled")
}
