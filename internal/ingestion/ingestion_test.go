package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<nav>Careers</nav>
			<div class="job-description">
				<p>Senior Go Engineer</p>
				<p>PostgreSQL   and    Kubernetes experience required.</p>
			</div>
		</body></html>`))
	}))
	defer srv.Close()

	text, meta, err := IngestFromURL(context.Background(), srv.URL, false)

	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "PostgreSQL and Kubernetes experience required.")
	assert.NotContains(t, text, "Careers")

	require.NotNil(t, meta)
	assert.Equal(t, srv.URL, meta.URL)
	assert.Equal(t, "unknown", meta.Platform)
	assert.Equal(t, len(text), meta.CharCount)
	assert.NotEmpty(t, meta.Hash)
}

func TestIngestFromURL_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, _, err := IngestFromURL(context.Background(), srv.URL, false)

	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}

func TestIngestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jd.txt")
	require.NoError(t, os.WriteFile(path, []byte("Python developer\r\n\r\n\r\nSQL required"), 0o600))

	text, meta, err := IngestFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "Python developer\n\nSQL required", text)
	assert.Equal(t, 4, meta.WordCount)
}

func TestIngestFromFile_Missing(t *testing.T) {
	_, _, err := IngestFromFile(filepath.Join(t.TempDir(), "absent.txt"))

	assert.ErrorContains(t, err, "file not found")
}

func TestCleanText_PreservesStructure(t *testing.T) {
	input := "# Requirements\r\n\r\n\r\n  - Go   experience\n  * SQL   skills\nRegular    line here"

	got := CleanText(input)

	assert.Equal(t, "# Requirements\n\n  - Go   experience\n  * SQL   skills\nRegular line here", got)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n  "))
}
