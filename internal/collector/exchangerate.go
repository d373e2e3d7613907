package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"FXAnalyzer/internal/model"
)

// DefaultBaseURL is the exchangerate-api v6 endpoint.
const DefaultBaseURL = "https://v6.exchangerate-api.com/v6"

// ExchangeRateAPIFetcher implements Fetcher using the exchangerate-api history endpoint.
type ExchangeRateAPIFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	Limiter *rate.Limiter
	Metrics *Metrics
	Now     func() time.Time
}

// FetcherOptions tunes the HTTP fetcher. Zero values fall back to defaults.
type FetcherOptions struct {
	ProxyURL          string
	Timeout           time.Duration
	RequestsPerSecond float64
	Registerer        prometheus.Registerer
}

// NewExchangeRateAPIFetcher creates a new fetcher with optional proxy support.
func NewExchangeRateAPIFetcher(baseURL, apiKey string, opts FetcherOptions) *ExchangeRateAPIFetcher {
	transport := &http.Transport{}
	if opts.ProxyURL != "" {
		if u, err := url.Parse(opts.ProxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	return &ExchangeRateAPIFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		Limiter: rate.NewLimiter(limit, 1),
		Metrics: NewMetrics(opts.Registerer),
		Now:     time.Now,
	}
}

func (f *ExchangeRateAPIFetcher) Name() string { return "exchangerate-api" }

// historyResponse is the JSON shape of a history lookup.
type historyResponse struct {
	Result          string             `json:"result"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
	ErrorType       string             `json:"error-type"`
}

// FetchRates issues one request per calendar day, sequentially, newest first.
func (f *ExchangeRateAPIFetcher) FetchRates(ctx context.Context, base, target string, days int) (*model.FetchResult, error) {
	if err := validateRequest(base, target, days); err != nil {
		return nil, err
	}

	result := &model.FetchResult{Rates: make(map[string]float64, days)}
	end := f.now()
	for i := 0; i < days; i++ {
		date := end.AddDate(0, 0, -i)
		key := date.Format(model.DateLayout)

		if err := f.Limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Date: key, Err: err}
		}

		r, ok, err := f.fetchDay(ctx, base, target, date)
		if err != nil {
			if upErr, isUpstream := err.(model.UpstreamError); isUpstream {
				result.Failures = append(result.Failures, upErr)
				continue
			}
			return nil, err
		}
		if ok {
			result.Rates[key] = r
		}
	}
	log.Printf("[INFO] %s: fetched %d/%d dates for %s/%s", f.Name(), len(result.Rates), days, base, target)
	return result, nil
}

func (f *ExchangeRateAPIFetcher) fetchDay(ctx context.Context, base, target string, date time.Time) (float64, bool, error) {
	key := date.Format(model.DateLayout)
	endpoint := fmt.Sprintf("%s/%s/history/%s/%d/%d/%d",
		f.BaseURL, url.PathEscape(f.APIKey), url.PathEscape(base), date.Year(), int(date.Month()), date.Day())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, false, &TransportError{Date: key, Err: err}
	}

	start := time.Now()
	resp, err := f.Client.Do(req)
	f.Metrics.observe(time.Since(start))
	if err != nil {
		f.Metrics.count(outcomeTransport)
		return 0, false, &TransportError{Date: key, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		f.Metrics.count(outcomeHTTPError)
		return 0, false, model.UpstreamError{Date: key, Kind: model.UpstreamHTTP, StatusCode: resp.StatusCode}
	}

	var payload historyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		f.Metrics.count(outcomeDecodeError)
		return 0, false, model.UpstreamError{Date: key, Kind: model.UpstreamDecode, StatusCode: resp.StatusCode, ErrorType: err.Error()}
	}
	if payload.Result != "success" {
		f.Metrics.count(outcomeAPIError)
		return 0, false, model.UpstreamError{Date: key, Kind: model.UpstreamAPI, StatusCode: resp.StatusCode, ErrorType: payload.ErrorType}
	}

	r, ok := payload.ConversionRates[target]
	if !ok || r <= 0 {
		f.Metrics.count(outcomeMissing)
		return 0, false, nil
	}
	f.Metrics.count(outcomeSuccess)
	return r, true, nil
}

func (f *ExchangeRateAPIFetcher) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}
