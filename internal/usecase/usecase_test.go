package usecase

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/polkiloo/projectdesk/internal/domain/repository"
	"github.com/polkiloo/projectdesk/internal/storage"
	"github.com/polkiloo/projectdesk/internal/storage/memory"
	testhelpers "github.com/polkiloo/projectdesk/internal/test"
)

var baseTime = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

type fixture struct {
	store      *memory.Store
	orders     repository.OrderRepository
	reviews    repository.ReviewRepository
	clock      *testhelpers.ManualClock
	events     *testhelpers.EventRecorder
	intake     *IntakeUseCase
	moderation *ModerationUseCase
	retrieval  *RetrievalUseCase
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New()
	logger := discardLogger()
	orders := storage.NewOrderRepository(store, logger)
	reviews := storage.NewReviewRepository(store, logger)
	return newFixtureWith(store, orders, reviews)
}

func newFixtureWith(store *memory.Store, orders repository.OrderRepository, reviews repository.ReviewRepository) *fixture {
	clock := testhelpers.NewManualClock(baseTime)
	events := &testhelpers.EventRecorder{}
	locks := NewWriteLocks()
	logger := discardLogger()
	return &fixture{
		store:      store,
		orders:     orders,
		reviews:    reviews,
		clock:      clock,
		events:     events,
		intake:     NewIntakeUseCase(orders, reviews, NewMonotonicIDGenerator(clock.Now), clock.Now, locks, events, logger),
		moderation: NewModerationUseCase(reviews, clock.Now, locks, events, logger),
		retrieval:  NewRetrievalUseCase(orders, reviews),
	}
}
