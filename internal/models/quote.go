package models

// ConversionQuote is the result of a single currency conversion.
// It lives for one request/response cycle and is never persisted.
type ConversionQuote struct {
	BaseCurrency    string  `json:"base_currency"`
	TargetCurrency  string  `json:"target_currency"`
	Amount          float64 `json:"amount"`
	ConvertedAmount float64 `json:"converted_amount"`
	Rate            float64 `json:"rate"`
	Date            string  `json:"date,omitempty"`
}
