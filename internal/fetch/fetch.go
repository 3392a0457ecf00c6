// Package fetch retrieves remote documents, such as syllabus pages and job
// postings, and hands them to ingestion for text extraction.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/skill-intel/internal/ingestion"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; SkillIntel/1.0)"

// maxBodyBytes matches the upload limit of the API.
const maxBodyBytes = 10 << 20

// Result holds the raw content of a URL fetch.
type Result struct {
	URL         string
	Body        string
	ContentType string
	StatusCode  int
}

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
	// Browser re-renders HTML pages with too little text in headless Chrome.
	Browser bool
	Logger  *zap.Logger
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		Logger:    zap.NewNop(),
	}
}

func (o *Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// IsURL reports whether s looks like an http or https URL.
func IsURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// URL retrieves the body of a URL. A non-200 status returns the result along
// with an *Error.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	result := &Result{
		URL:         urlStr,
		Body:        string(body),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}
	if resp.StatusCode != http.StatusOK {
		return result, &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return result, nil
}

// Document fetches urlStr and extracts its text. The format comes from the
// URL path extension, then the response Content-Type.
func Document(ctx context.Context, urlStr string, opts *Options) (*ingestion.Document, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	res, err := URL(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}

	name := filename(urlStr)
	doc, err := ingestion.Extract(name, res.ContentType, []byte(res.Body))
	if err != nil {
		return nil, err
	}
	doc.Filename = urlStr

	if !opts.Browser || doc.Format != ingestion.FormatHTML || !ShouldUseBrowser(doc.Text) {
		return doc, nil
	}

	html, err := WithBrowser(ctx, urlStr, opts.Timeout, opts.logger())
	if err != nil {
		opts.logger().Warn("browser rendering failed, keeping fetched text", zap.String("url", urlStr), zap.Error(err))
		return doc, nil
	}
	rendered, err := ingestion.Extract(name, "text/html", []byte(html))
	if err != nil || len(rendered.Text) <= len(doc.Text) {
		return doc, nil
	}
	rendered.Filename = urlStr
	return rendered, nil
}

// filename is the last path segment of urlStr, or "" for a bare host.
func filename(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	base := path.Base(u.Path)
	if base == "/" || base == "." {
		return ""
	}
	return base
}
