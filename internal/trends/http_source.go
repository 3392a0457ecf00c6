package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/skill-intel/internal/types"
	"golang.org/x/time/rate"
)

// HTTPSourceError is a non-200 response from the timeline endpoint.
type HTTPSourceError struct {
	StatusCode int
	Body       string
}

func (e *HTTPSourceError) Error() string {
	return fmt.Sprintf("trend source returned status %d: %s", e.StatusCode, e.Body)
}

// HTTPSource queries a JSON timeline endpoint:
//
//	GET {base}/timeline?keyword=..&timeframe=..&geo=..
//	{"timeline": [{"date": "2025-01-01", "value": 42}, ...]}
//
// Requests are throttled so keyword sweeps stay under the upstream quota.
type HTTPSource struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
}

// NewHTTPSource creates a source for baseURL. An empty apiKey sends no
// Authorization header. perSecond <= 0 disables throttling.
func NewHTTPSource(baseURL, apiKey string, perSecond float64) *HTTPSource {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(limit, 1),
	}
}

type timelineResponse struct {
	Timeline []types.TrendPoint `json:"timeline"`
}

// Query fetches the interest series for keyword.
func (s *HTTPSource) Query(ctx context.Context, keyword, timeframe, region string) ([]types.TrendPoint, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	q := url.Values{}
	q.Set("keyword", keyword)
	q.Set("timeframe", timeframe)
	q.Set("geo", region)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/timeline?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", keyword, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPSourceError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var parsed timelineResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return parsed.Timeline, nil
}
