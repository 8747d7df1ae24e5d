package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/currencygw/gw-currency-converter/internal/logger"
)

// defaultBaseURL is the frankfurter.dev API base URL. The API is free and
// does not require an API key or authentication.
const defaultBaseURL = "https://api.frankfurter.dev/v1"

// ErrUpstreamUnavailable is the only error this package returns to callers.
// Transport failures, timeouts, non-2xx responses and responses missing the
// requested rate all collapse into it.
var ErrUpstreamUnavailable = errors.New("exchange rate provider unavailable")

// FrankfurterClient fetches currency data from the frankfurter.dev HTTP API.
type FrankfurterClient struct {
	baseURL string
	client  *http.Client
}

// NewFrankfurterClient creates a client with a bounded per-request timeout.
// An empty baseURL selects the public frankfurter.dev endpoint.
func NewFrankfurterClient(baseURL string, timeout time.Duration) *FrankfurterClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &FrankfurterClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// ratesResponse is the JSON shape shared by the latest and historical endpoints.
type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

func (c *FrankfurterClient) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// ListCurrencies fetches the full supported-currency table (code -> display name).
func (c *FrankfurterClient) ListCurrencies(ctx context.Context) (map[string]string, error) {
	reqURL := c.baseURL + "/currencies"

	currencies := make(map[string]string)
	if err := c.getJSON(ctx, reqURL, &currencies); err != nil {
		logger.Log.Errorw("failed to fetch supported currencies", "error", err)
		return nil, ErrUpstreamUnavailable
	}
	if len(currencies) == 0 {
		logger.Log.Errorw("upstream returned an empty currency table")
		return nil, ErrUpstreamUnavailable
	}
	return currencies, nil
}

// ConvertLatest converts amount from base to target at the latest rate.
// Returns the converted amount and the rate used.
func (c *FrankfurterClient) ConvertLatest(ctx context.Context, base, target string, amount float64) (float64, float64, error) {
	base = strings.ToUpper(base)
	target = strings.ToUpper(target)
	reqURL := fmt.Sprintf("%s/latest?base=%s&symbols=%s", c.baseURL, url.QueryEscape(base), url.QueryEscape(target))

	var body ratesResponse
	if err := c.getJSON(ctx, reqURL, &body); err != nil {
		logger.Log.Errorw("failed to fetch latest rate", "base", base, "target", target, "error", err)
		return 0, 0, ErrUpstreamUnavailable
	}

	rate, ok := body.Rates[target]
	if !ok {
		logger.Log.Errorw("latest rate missing from response", "base", base, "target", target)
		return 0, 0, ErrUpstreamUnavailable
	}
	return amount * rate, rate, nil
}

// HistoricalRate fetches the base->target rate pinned to a past date (YYYY-MM-DD).
func (c *FrankfurterClient) HistoricalRate(ctx context.Context, base, target, date string) (float64, error) {
	base = strings.ToUpper(base)
	target = strings.ToUpper(target)
	reqURL := fmt.Sprintf("%s/%s?base=%s&symbols=%s", c.baseURL, url.PathEscape(date), url.QueryEscape(base), url.QueryEscape(target))

	var body ratesResponse
	if err := c.getJSON(ctx, reqURL, &body); err != nil {
		logger.Log.Errorw("failed to fetch historical rate", "base", base, "target", target, "date", date, "error", err)
		return 0, ErrUpstreamUnavailable
	}

	rate, ok := body.Rates[target]
	if !ok {
		logger.Log.Errorw("historical rate missing from response", "base", base, "target", target, "date", date)
		return 0, ErrUpstreamUnavailable
	}
	return rate, nil
}
