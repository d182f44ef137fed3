package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>Job posting</body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Job posting")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestURL_SetsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestURL_CustomHeaders(t *testing.T) {
	var gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Custom")
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.Headers = map[string]string{"X-Custom": "value"}

	_, err := URL(context.Background(), server.URL, opts)
	require.NoError(t, err)
	assert.Equal(t, "value", gotHeader)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "not-a-url", fetchErr.URL)
	assert.Contains(t, fetchErr.Error(), "invalid URL")
}

func TestURL_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP status 404")
	// The result is still returned so callers can inspect the body.
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestURL_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.Message, "HTTP request failed")
	assert.Error(t, fetchErr.Unwrap())
}

func TestExtractMainText_SelectorPriority(t *testing.T) {
	html := `<html><body>
		<main>generic main content</main>
		<div class="job-description">Senior Go Engineer. Requires Python and SQL.</div>
	</body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go Engineer")
	assert.NotContains(t, text, "generic main content")
}

func TestExtractMainText_RemovesNoise(t *testing.T) {
	html := `<html><body>
		<nav>Home | About</nav>
		<script>var tracking = true;</script>
		<div class="cookie-banner">Accept cookies</div>
		<div class="job-description">Backend role with Docker.</div>
		<footer>Copyright 2026</footer>
	</body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Backend role with Docker.")
	assert.NotContains(t, text, "Home | About")
	assert.NotContains(t, text, "tracking")
	assert.NotContains(t, text, "Accept cookies")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractMainText_BodyFallback(t *testing.T) {
	html := `<html><body><p>Plain posting with no known containers.</p></body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Plain posting with no known containers.")
}

func TestCleanWhitespace(t *testing.T) {
	input := "  first line  \n\n\n   second line\n\t\n third "
	assert.Equal(t, "first line\nsecond line\nthird", cleanWhitespace(input))
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("   short shell   "))
	assert.False(t, ShouldUseBrowser(strings.Repeat("job description text ", 50)))
}

func TestJobDescription_PlainFetchSufficient(t *testing.T) {
	body := `<html><body><div class="job-description">` +
		strings.Repeat("We are hiring a backend engineer with Go and Postgres experience. ", 20) +
		`</div></body></html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	text, err := JobDescription(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "backend engineer")
}

func TestJobDescription_FetchError(t *testing.T) {
	_, err := JobDescription(context.Background(), "://bad", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.True(t, errors.As(err, &fetchErr))
}

func TestError_Format(t *testing.T) {
	withCause := &Error{URL: "https://x", Message: "boom", Cause: errors.New("inner")}
	assert.Equal(t, "fetch error for https://x: boom: inner", withCause.Error())

	withoutCause := &Error{URL: "https://x", Message: "boom"}
	assert.Equal(t, "fetch error for https://x: boom", withoutCause.Error())
}
