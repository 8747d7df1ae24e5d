package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/currencygw/gw-currency-converter/internal/logger"
	"github.com/currencygw/gw-currency-converter/internal/models"
)

var (
	// ErrInsufficientCredits is returned when a user has no credits left for a metered request.
	ErrInsufficientCredits = errors.New("insufficient credits")
	// ErrInvalidUserRecord signals a caller bug: admission was requested for an unresolved user.
	ErrInvalidUserRecord = errors.New("invalid user record")
)

// CreditDecrementer deducts a single credit. The deduction is atomic per
// user; it returns false without mutating when the balance is already zero.
type CreditDecrementer interface {
	DecrementCredits(ctx context.Context, email string) (bool, error)
}

// UsageWriter defines a Kafka writer abstraction.
type UsageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CreditService meters requests against user credit balances and publishes
// usage events for applied deductions.
type CreditService struct {
	store       CreditDecrementer
	usageWriter UsageWriter
}

// NewCreditService creates a new CreditService. usageWriter may be nil,
// in which case usage events are skipped.
func NewCreditService(store CreditDecrementer, usageWriter UsageWriter) *CreditService {
	return &CreditService{
		store:       store,
		usageWriter: usageWriter,
	}
}

// publishUsage publishes a usage event to Kafka, best effort.
func (s *CreditService) publishUsage(ctx context.Context, email, operation string) {
	if s.usageWriter == nil {
		return
	}

	event := models.UsageEvent{
		EventID:   uuid.NewString(),
		Email:     email,
		Operation: operation,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal usage event", "email", email, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.usageWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish usage event", "email", email, "operation", operation, "error", err)
	}
}

// Admit gates a metered request: it checks the user's balance and eagerly
// deducts one credit. Deductions are never refunded, even if the request
// fails later.
func (s *CreditService) Admit(ctx context.Context, user *models.User) error {
	if user == nil || user.Email == "" {
		return ErrInvalidUserRecord
	}

	ok, err := s.store.DecrementCredits(ctx, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to deduct admission credit", "email", user.Email, "error", err)
		return err
	}
	if !ok {
		return ErrInsufficientCredits
	}

	s.publishUsage(ctx, user.Email, "admit")
	return nil
}

// ChargeOnSuccess applies the extra deduction for a completed conversion.
// Best effort: the caller may ignore the result, a lost charge is acceptable.
func (s *CreditService) ChargeOnSuccess(ctx context.Context, email string) bool {
	ok, err := s.store.DecrementCredits(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to deduct conversion credit", "email", email, "error", err)
		return false
	}
	if ok {
		s.publishUsage(ctx, email, "conversion")
	}
	return ok
}
