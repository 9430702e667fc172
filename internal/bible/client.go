package bible

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/truthseed/truthseed/internal/model"
	"github.com/truthseed/truthseed/internal/scripture"
	"github.com/truthseed/truthseed/internal/util"
)

// sleepFunc is the delay used before the single retry (injectable for tests)
var sleepFunc = time.Sleep

const maxBodyBytes = 1 << 20

// VerseData is the raw result of a successful upstream fetch
type VerseData struct {
	Text        string
	Translation string
}

// Client is the HTTP client for the verse API. It never returns an
// error to the caller: every failure path resolves to nil, with
// diagnostic detail written to stderr.
type Client struct {
	baseURL     string
	translation string
	retryDelay  time.Duration
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// NewClient creates a verse API client from configuration
func NewClient(cfg model.BibleConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	retryDelay := cfg.RetryDelay
	if retryDelay == 0 {
		retryDelay = 1 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		translation: cfg.DefaultTranslation,
		retryDelay:  retryDelay,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
			},
		},
		limiter: limiter,
	}
}

// requestOutcome classifies a single upstream attempt
type requestOutcome int

const (
	outcomeSuccess requestOutcome = iota
	outcomeAbsent
	outcomeRetry // server error, retry exactly once
)

// FetchVerse fetches verse text for a reference. An unrecognized book
// name returns nil immediately with zero network calls. A 5xx response
// is retried exactly once after the retry delay; 404, 429, other 4xx,
// timeouts and network failures are not retried.
func (c *Client) FetchVerse(ctx context.Context, ref model.Reference) *VerseData {
	verseID, ok := scripture.FormatVerseID(ref)
	if !ok {
		fmt.Fprintf(os.Stderr, "[bible] unable to parse book name: %s\n", ref.Book)
		return nil
	}

	translation := ref.Translation
	if translation == "" {
		translation = c.translation
	}
	url := fmt.Sprintf("%s/%s/%s", c.baseURL, translation, verseID)

	data, outcome := c.makeRequest(ctx, url, ref, translation)
	if outcome == outcomeRetry {
		fmt.Fprintf(os.Stderr, "[bible] retrying after server error for %s\n", ref.Display)
		sleepFunc(c.retryDelay)
		data, outcome = c.makeRequest(ctx, url, ref, translation)
		if outcome != outcomeSuccess {
			return nil
		}
	}
	return data
}

// makeRequest performs one GET against the verse API and classifies
// the result
func (c *Client) makeRequest(ctx context.Context, url string, ref model.Reference, translation string) (*VerseData, requestOutcome) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "[bible] rate limiter: %v\n", err)
			return nil, outcomeAbsent
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[bible] create request: %v\n", err)
		return nil, outcomeAbsent
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Covers network failures and the client timeout
		fmt.Fprintf(os.Stderr, "[bible] request failed for %s: %v\n", ref.Display, err)
		return nil, outcomeAbsent
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			fmt.Fprintf(os.Stderr, "[bible] read body for %s: %v\n", ref.Display, err)
			return nil, outcomeAbsent
		}
		text, err := extractText(body)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[bible] %v for %s\n", err, ref.Display)
			return nil, outcomeAbsent
		}
		return &VerseData{Text: text, Translation: translation}, outcomeSuccess

	case resp.StatusCode == http.StatusNotFound:
		fmt.Fprintf(os.Stderr, "[bible] verse not found: %s\n", ref.Display)
		return nil, outcomeAbsent

	case resp.StatusCode == http.StatusTooManyRequests:
		fmt.Fprintf(os.Stderr, "[bible] rate limit exceeded\n")
		return nil, outcomeAbsent

	case resp.StatusCode >= 500:
		fmt.Fprintf(os.Stderr, "[bible] server error (%d): %s\n", resp.StatusCode, resp.Status)
		return nil, outcomeRetry

	default:
		fmt.Fprintf(os.Stderr, "[bible] API error (%d): %s\n", resp.StatusCode, resp.Status)
		return nil, outcomeAbsent
	}
}
