// Package ingestion turns job postings, from files or job board URLs, into
// clean text the scoring engine can consume.
package ingestion

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jonathan/resume-analyzer/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// IngestFromURL fetches a job posting URL and returns its cleaned text.
// Platform detection picks content and noise selectors tuned to the job
// board serving the page.
func IngestFromURL(ctx context.Context, urlStr string, verbose bool) (string, *Metadata, error) {
	platform := fetch.DetectPlatform(urlStr)
	if verbose {
		log.Printf("[ingest] URL: %s (platform: %s)", urlStr, platform)
	}

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if verbose {
		log.Printf("[ingest] fetched %d bytes", len(result.HTML))
	}

	textContent, err := fetch.ExtractMainText(result.HTML,
		fetch.PlatformContentSelectors(platform),
		fetch.PlatformNoiseSelectors(platform)...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	cleanedText := CleanText(textContent)
	if verbose {
		log.Printf("[ingest] cleaned text: %d chars", len(cleanedText))
	}

	metadata := NewMetadata(cleanedText, urlStr)
	metadata.Platform = string(platform)

	return cleanedText, metadata, nil
}

// IngestFromFile reads a job description text file and cleans it.
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	cleanedText := CleanText(string(content))
	return cleanedText, NewMetadata(cleanedText, ""), nil
}
