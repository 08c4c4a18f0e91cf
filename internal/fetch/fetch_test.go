package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>Go Engineer</body></html>"))
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Go Engineer")
	assert.Equal(t, "text/html", result.ContentType)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not a url", nil)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "invalid URL")
}

func TestURL_Non200Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)

	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestURL_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := URL(ctx, srv.URL, nil)

	assert.True(t, errors.Is(err, context.Canceled) || err != nil)
}

func TestExtractMainText_PrefersContentSelector(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs</nav>
		<div class="job-description">Build Go services.</div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())

	require.NoError(t, err)
	assert.Equal(t, "Build Go services.", text)
}

func TestExtractMainText_RemovesNoiseSelectors(t *testing.T) {
	html := `<html><body><main>
		<p>Senior Backend Engineer</p>
		<form class="application-form">First name</form>
		<div class="eeo-statement">Equal opportunity employer</div>
	</main></body></html>`

	text, err := ExtractMainText(html, []string{"main"}, ".application-form", ".eeo-statement")

	require.NoError(t, err)
	assert.Contains(t, text, "Senior Backend Engineer")
	assert.NotContains(t, text, "First name")
	assert.NotContains(t, text, "Equal opportunity")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text</p></body></html>`

	text, err := ExtractMainText(html, []string{".does-not-exist"})

	require.NoError(t, err)
	assert.Equal(t, "Plain posting text", text)
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url  string
		want Platform
	}{
		{"https://boards.greenhouse.io/acme/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/acme/abc-def", PlatformLever},
		{"https://acme.wd1.myworkdayjobs.com/careers/job/123", PlatformWorkday},
		{"https://careers.example.com/jobs/123", PlatformUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectPlatform(tt.url), tt.url)
	}
}

func TestPlatformSelectors_NonEmpty(t *testing.T) {
	for _, p := range []Platform{PlatformGreenhouse, PlatformLever, PlatformWorkday, PlatformUnknown} {
		assert.NotEmpty(t, PlatformContentSelectors(p))
		assert.NotEmpty(t, PlatformNoiseSelectors(p))
	}
}
