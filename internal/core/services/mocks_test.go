package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context, limit, offset int) ([]domain.Currency, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) InsertCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

// --- Mock ForexRepository ---
type MockForexRepository struct {
	mock.Mock
}

func (m *MockForexRepository) FindForexByID(ctx context.Context, id int64) (*domain.Forex, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Forex), args.Error(1)
}

func (m *MockForexRepository) FindForexByPairAndDate(ctx context.Context, fromID, toID int64, date time.Time) (*domain.Forex, error) {
	args := m.Called(ctx, fromID, toID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Forex), args.Error(1)
}

func (m *MockForexRepository) FindLatestForexAtOrBefore(ctx context.Context, fromID, toID int64, date time.Time) (*domain.Forex, error) {
	args := m.Called(ctx, fromID, toID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Forex), args.Error(1)
}

func (m *MockForexRepository) ListForex(ctx context.Context, limit, offset int) ([]domain.Forex, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Forex), args.Error(1)
}

func (m *MockForexRepository) InsertForex(ctx context.Context, forex domain.Forex) (*domain.Forex, error) {
	args := m.Called(ctx, forex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Forex), args.Error(1)
}

// --- Mock OfferRepository ---
type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) FindValidOfferByID(ctx context.Context, id int64) (*domain.ValidOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidOffer), args.Error(1)
}

func (m *MockOfferRepository) FindInvalidOfferByID(ctx context.Context, id int64) (*domain.InvalidOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvalidOffer), args.Error(1)
}

func (m *MockOfferRepository) FindOfferByKey(ctx context.Context, dest domain.Destination, key domain.OfferKey) (*domain.Offer, error) {
	args := m.Called(ctx, dest, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}

func (m *MockOfferRepository) ListValidOffers(ctx context.Context, limit, offset int) ([]domain.ValidOffer, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ValidOffer), args.Error(1)
}

func (m *MockOfferRepository) ListInvalidOffers(ctx context.Context, limit, offset int) ([]domain.InvalidOffer, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvalidOffer), args.Error(1)
}

func (m *MockOfferRepository) InsertOffer(ctx context.Context, dest domain.Destination, offer domain.Offer) (*domain.Offer, error) {
	args := m.Called(ctx, dest, offer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}

func (m *MockOfferRepository) SetValidOfferInvalid(ctx context.Context, id int64, invalid bool) error {
	args := m.Called(ctx, id, invalid)
	return args.Error(0)
}

// --- Mock StagingRepository ---
type MockStagingRepository struct {
	mock.Mock
}

func (m *MockStagingRepository) ListStagingCurrenciesByBatch(ctx context.Context, batchID int64) ([]domain.StagingCurrency, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StagingCurrency), args.Error(1)
}

func (m *MockStagingRepository) ListStagingForexByBatch(ctx context.Context, batchID int64) ([]domain.StagingForex, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StagingForex), args.Error(1)
}

func (m *MockStagingRepository) ListStagingOffersByBatch(ctx context.Context, batchID int64) ([]domain.StagingOffer, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StagingOffer), args.Error(1)
}

func (m *MockStagingRepository) ListStagingCurrenciesInError(ctx context.Context) ([]domain.StagingCurrency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StagingCurrency), args.Error(1)
}

func (m *MockStagingRepository) ListStagingForexInError(ctx context.Context) ([]domain.StagingForex, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StagingForex), args.Error(1)
}

func (m *MockStagingRepository) ListStagingOffersInError(ctx context.Context) ([]domain.StagingOffer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StagingOffer), args.Error(1)
}

func (m *MockStagingRepository) UpdateStagingStatus(ctx context.Context, entity domain.EntityType, id int64, status domain.CheckoutStatus) error {
	args := m.Called(ctx, entity, id, status)
	return args.Error(0)
}

// --- Mock BatchRepository ---
type MockBatchRepository struct {
	mock.Mock
}

func (m *MockBatchRepository) FindBatchByID(ctx context.Context, id int64) (*domain.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Batch), args.Error(1)
}

func (m *MockBatchRepository) MarkBatchProcessed(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
