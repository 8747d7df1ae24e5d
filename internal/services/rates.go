package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/currencygw/gw-currency-converter/internal/logger"
	"github.com/currencygw/gw-currency-converter/internal/models"
)

var (
	ErrInvalidCurrency       = errors.New("invalid currency code")
	ErrConversionFailed      = errors.New("conversion failed")
	ErrHistoricalUnavailable = errors.New("historical data not available")

	errEmptyCurrencySet = errors.New("upstream returned an empty currency set")
)

// RateProvider fetches currency data from the upstream rate API.
type RateProvider interface {
	ListCurrencies(ctx context.Context) (map[string]string, error)
	ConvertLatest(ctx context.Context, base, target string, amount float64) (float64, float64, error)
	HistoricalRate(ctx context.Context, base, target, date string) (float64, error)
}

// HistoricalRateCache caches date-pinned rates.
type HistoricalRateCache interface {
	GetHistoricalRate(ctx context.Context, base, target, date string) (float64, error)
	SetHistoricalRate(ctx context.Context, base, target, date string, rate float64) error
}

// SuccessCharger applies the extra credit deduction after a completed conversion.
type SuccessCharger interface {
	ChargeOnSuccess(ctx context.Context, email string) bool
}

// RatesService owns the process-wide supported-currency cache and
// orchestrates conversions against the upstream provider.
//
// The cache holds a single entry: the upstream currency table is
// base-independent, so one set serves every request. A non-empty set is
// only ever replaced by a strictly newer successful fetch; when a refresh
// fails the previous set keeps serving reads, even past its TTL.
type RatesService struct {
	provider  RateProvider
	histCache HistoricalRateCache // optional
	charger   SuccessCharger
	ttl       time.Duration
	now       func() time.Time

	mu        sync.Mutex
	codes     map[string]struct{}
	fetchedAt time.Time

	refresh singleflight.Group
}

// NewRatesService creates a new service instance. histCache may be nil.
// now may be nil, in which case time.Now is used.
func NewRatesService(
	provider RateProvider,
	histCache HistoricalRateCache,
	charger SuccessCharger,
	ttl time.Duration,
	now func() time.Time,
) *RatesService {
	if now == nil {
		now = time.Now
	}
	return &RatesService{
		provider:  provider,
		histCache: histCache,
		charger:   charger,
		ttl:       ttl,
		now:       now,
	}
}

// Prewarm fetches the supported-currency set ahead of the first request.
func (s *RatesService) Prewarm(ctx context.Context) error {
	return s.refreshCurrencies(ctx)
}

// refreshCurrencies performs one upstream fetch of the currency table,
// collapsed across concurrent callers. A failed or empty fetch leaves the
// cached set untouched.
func (s *RatesService) refreshCurrencies(ctx context.Context) error {
	_, err, _ := s.refresh.Do("currencies", func() (any, error) {
		currencies, err := s.provider.ListCurrencies(ctx)
		if err != nil {
			logger.Log.Errorw("failed to refresh supported currencies", "error", err)
			return nil, err
		}
		if len(currencies) == 0 {
			logger.Log.Errorw("refusing to cache an empty currency set")
			return nil, errEmptyCurrencySet
		}

		set := make(map[string]struct{}, len(currencies))
		for code := range currencies {
			set[strings.ToUpper(code)] = struct{}{}
		}

		s.mu.Lock()
		s.codes = set
		s.fetchedAt = s.now()
		s.mu.Unlock()
		return nil, nil
	})
	return err
}

// SupportedCurrencies returns the cached currency codes, lexicographically
// sorted. An unexpired non-empty cache is served directly; otherwise one
// refresh is attempted, falling back to the stale set on failure. An empty
// result means currency data is currently unavailable, not that zero
// currencies exist.
func (s *RatesService) SupportedCurrencies(ctx context.Context) []string {
	s.mu.Lock()
	if len(s.codes) > 0 && s.now().Sub(s.fetchedAt) < s.ttl {
		codes := sortedCodes(s.codes)
		s.mu.Unlock()
		return codes
	}
	s.mu.Unlock()

	// Refresh failure is not terminal here: the stale set, if any, still serves.
	_ = s.refreshCurrencies(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedCodes(s.codes)
}

func sortedCodes(set map[string]struct{}) []string {
	codes := make([]string, 0, len(set))
	for code := range set {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// historicalRate returns the base->target rate for a past date, consulting
// the cache before the upstream and backfilling it on a successful fetch.
func (s *RatesService) historicalRate(ctx context.Context, base, target, date string) (float64, error) {
	if s.histCache != nil {
		rate, err := s.histCache.GetHistoricalRate(ctx, base, target, date)
		if err == nil {
			return rate, nil
		}
	}

	rate, err := s.provider.HistoricalRate(ctx, base, target, date)
	if err != nil {
		return 0, err
	}

	if s.histCache != nil {
		if err := s.histCache.SetHistoricalRate(ctx, base, target, date, rate); err != nil {
			logger.Log.Errorw("failed to cache historical rate", "base", base, "target", target, "date", date, "error", err)
		}
	}
	return rate, nil
}

// Convert turns amount of base currency into target currency, at the
// latest rate or at the rate pinned to date when date is non-empty.
//
// Both codes must be in the supported set; that check happens before any
// upstream call. When the conversion produces a number, the extra usage
// charge is applied best effort and its failure does not undo the result.
func (s *RatesService) Convert(
	ctx context.Context,
	user *models.User,
	base, target string,
	amount float64,
	date string,
) (*models.ConversionQuote, error) {
	base = strings.ToUpper(base)
	target = strings.ToUpper(target)

	supported := make(map[string]struct{})
	for _, code := range s.SupportedCurrencies(ctx) {
		supported[code] = struct{}{}
	}
	if _, ok := supported[base]; !ok {
		return nil, ErrInvalidCurrency
	}
	if _, ok := supported[target]; !ok {
		return nil, ErrInvalidCurrency
	}

	var convertedAmount, rate float64
	if date != "" {
		r, err := s.historicalRate(ctx, base, target, date)
		if err != nil {
			logger.Log.Errorw("historical rate unavailable", "base", base, "target", target, "date", date, "error", err)
			return nil, ErrHistoricalUnavailable
		}
		rate = r
		convertedAmount = amount * rate
	} else {
		converted, r, err := s.provider.ConvertLatest(ctx, base, target, amount)
		if err != nil {
			logger.Log.Errorw("conversion failed", "base", base, "target", target, "error", err)
			return nil, ErrConversionFailed
		}
		convertedAmount, rate = converted, r
	}

	if s.charger != nil {
		if !s.charger.ChargeOnSuccess(ctx, user.Email) {
			logger.Log.Warnw("usage charge after successful conversion was not applied", "email", user.Email)
		}
	}

	return &models.ConversionQuote{
		BaseCurrency:    base,
		TargetCurrency:  target,
		Amount:          amount,
		ConvertedAmount: convertedAmount,
		Rate:            rate,
		Date:            date,
	}, nil
}
