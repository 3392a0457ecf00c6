package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-intel/internal/ingestion"
)

func serve(t *testing.T, contentType, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestURL_Success(t *testing.T) {
	server := serve(t, "text/html", "<html><body><h1>Test</h1></body></html>")

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.Body, "<h1>Test</h1>")
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.NotNil(t, result) // Result is returned even on error
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestDocument_HTMLPage(t *testing.T) {
	server := serve(t, "text/html; charset=utf-8", `<html><body>
		<nav>Home | Courses</nav>
		<main><h1>CS 101</h1><p>Introduction to Python and SQL.</p></main>
		<footer>Contact</footer>
	</body></html>`)

	doc, err := Document(context.Background(), server.URL+"/courses/cs101", nil)
	require.NoError(t, err)
	assert.Equal(t, ingestion.FormatHTML, doc.Format)
	assert.Contains(t, doc.Text, "Introduction to Python and SQL.")
	assert.NotContains(t, doc.Text, "Courses")
	assert.Equal(t, server.URL+"/courses/cs101", doc.Filename)
	assert.NotEmpty(t, doc.Hash)
}

func TestDocument_PlainTextByExtension(t *testing.T) {
	server := serve(t, "application/octet-stream", "Week 1: Docker\nWeek 2: Kubernetes\n")

	doc, err := Document(context.Background(), server.URL+"/syllabus.txt", nil)
	require.NoError(t, err)
	assert.Equal(t, ingestion.FormatText, doc.Format)
	assert.Equal(t, "Week 1: Docker\nWeek 2: Kubernetes", doc.Text)
}

func TestDocument_UnsupportedFormat(t *testing.T) {
	server := serve(t, "application/pdf", "%PDF-1.7")

	_, err := Document(context.Background(), server.URL+"/syllabus.pdf", nil)
	require.Error(t, err)

	var formatErr *ingestion.DocumentFormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestDocument_ShortPageWithoutBrowserKeepsText(t *testing.T) {
	server := serve(t, "text/html", `<html><body><div id="root">Loading</div></body></html>`)

	doc, err := Document(context.Background(), server.URL, &Options{})
	require.NoError(t, err)
	assert.Equal(t, "Loading", doc.Text)
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.edu/cs101"))
	assert.True(t, IsURL("HTTP://example.edu"))
	assert.False(t, IsURL("syllabus.txt"))
	assert.False(t, IsURL("-"))
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("   short   "))
	long := make([]byte, MinContentLength)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "syllabus.md", filename("https://example.edu/cs/syllabus.md?v=2"))
	assert.Equal(t, "", filename("https://example.edu"))
	assert.Equal(t, "", filename("https://example.edu/"))
}
