package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/hqdw/hq_warehouse_app/internal/apperrors"
	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
	"github.com/hqdw/hq_warehouse_app/internal/core/services"
)

type WarehouseWriterTestSuite struct {
	suite.Suite
	mockCurrRepo  *MockCurrencyRepository
	mockRateRepo  *MockForexRepository
	mockOfferRepo *MockOfferRepository
	writer        *services.WarehouseWriter
}

func (suite *WarehouseWriterTestSuite) SetupTest() {
	suite.mockCurrRepo = new(MockCurrencyRepository)
	suite.mockRateRepo = new(MockForexRepository)
	suite.mockOfferRepo = new(MockOfferRepository)
	suite.writer = services.NewWarehouseWriter(suite.mockCurrRepo, suite.mockRateRepo, suite.mockOfferRepo)
}

func (suite *WarehouseWriterTestSuite) TestWriteCurrency_Inserted() {
	ctx := context.Background()
	params := domain.Currency{Code: "EUR", Name: "Euro"}
	inserted := &domain.Currency{ID: 3, Code: "EUR", Name: "Euro"}

	suite.mockCurrRepo.On("InsertCurrency", ctx, params).Return(inserted, nil).Once()

	written, outcome, err := suite.writer.WriteCurrency(ctx, params)

	suite.Require().NoError(err)
	suite.Equal(services.OutcomeInserted, outcome)
	suite.Equal(inserted, written)
	suite.mockCurrRepo.AssertExpectations(suite.T())
}

func (suite *WarehouseWriterTestSuite) TestWriteCurrency_DuplicateResolvesToExistingRow() {
	ctx := context.Background()
	params := domain.Currency{Code: "EUR", Name: "Euro"}
	existing := &domain.Currency{ID: 3, Code: "EUR", Name: "Euro"}

	suite.mockCurrRepo.On("InsertCurrency", ctx, params).Return(nil, apperrors.ErrDuplicate).Once()
	suite.mockCurrRepo.On("FindCurrencyByCode", ctx, "EUR").Return(existing, nil).Once()

	written, outcome, err := suite.writer.WriteCurrency(ctx, params)

	suite.Require().NoError(err)
	suite.Equal(services.OutcomeDuplicate, outcome)
	suite.Equal(existing, written)
	suite.mockCurrRepo.AssertExpectations(suite.T())
}

func (suite *WarehouseWriterTestSuite) TestWriteCurrency_RejectedByStore() {
	ctx := context.Background()
	params := domain.Currency{Code: "EUR", Name: "Euro"}

	suite.mockCurrRepo.On("InsertCurrency", ctx, params).Return(nil, apperrors.ErrRejected).Once()

	written, outcome, err := suite.writer.WriteCurrency(ctx, params)

	suite.Require().NoError(err)
	suite.Equal(services.OutcomeRejected, outcome)
	suite.Nil(written)
	suite.mockCurrRepo.AssertExpectations(suite.T())
}

func (suite *WarehouseWriterTestSuite) TestWriteCurrency_InfraErrorPropagates() {
	ctx := context.Background()
	params := domain.Currency{Code: "EUR", Name: "Euro"}
	expectedErr := assert.AnError

	suite.mockCurrRepo.On("InsertCurrency", ctx, params).Return(nil, expectedErr).Once()

	written, _, err := suite.writer.WriteCurrency(ctx, params)

	suite.Require().Error(err)
	suite.Nil(written)
	suite.ErrorIs(err, expectedErr)
	suite.mockCurrRepo.AssertExpectations(suite.T())
}

func (suite *WarehouseWriterTestSuite) TestWriteForex_DuplicateResolvesToExistingRow() {
	ctx := context.Background()
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	params := domain.Forex{CurrencyFromID: 3, CurrencyToID: 1, DateValid: date, Rate: decimal.NewFromFloat(1.08)}
	existing := &domain.Forex{ID: 5, CurrencyFromID: 3, CurrencyToID: 1, DateValid: date, Rate: decimal.NewFromFloat(1.08)}

	suite.mockRateRepo.On("InsertForex", ctx, params).Return(nil, apperrors.ErrDuplicate).Once()
	suite.mockRateRepo.On("FindForexByPairAndDate", ctx, int64(3), int64(1), date).Return(existing, nil).Once()

	written, outcome, err := suite.writer.WriteForex(ctx, params)

	suite.Require().NoError(err)
	suite.Equal(services.OutcomeDuplicate, outcome)
	suite.Equal(existing, written)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *WarehouseWriterTestSuite) TestWriteForex_DuplicateRowVanished() {
	ctx := context.Background()
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	params := domain.Forex{CurrencyFromID: 3, CurrencyToID: 1, DateValid: date, Rate: decimal.NewFromFloat(1.08)}

	suite.mockRateRepo.On("InsertForex", ctx, params).Return(nil, apperrors.ErrDuplicate).Once()
	suite.mockRateRepo.On("FindForexByPairAndDate", ctx, int64(3), int64(1), date).Return(nil, apperrors.ErrNotFound).Once()

	written, outcome, err := suite.writer.WriteForex(ctx, params)

	suite.Require().NoError(err)
	suite.Equal(services.OutcomeRejected, outcome)
	suite.Nil(written)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *WarehouseWriterTestSuite) TestWriteOffer_DuplicateLooksUpDestinationOnly() {
	ctx := context.Background()
	checkin := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	checkout := time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)
	params := domain.Offer{HotelID: 42, BreakfastIncluded: true, CheckinDate: checkin, CheckoutDate: checkout}
	existing := &domain.Offer{ID: 9, HotelID: 42, BreakfastIncluded: true, CheckinDate: checkin, CheckoutDate: checkout}

	suite.mockOfferRepo.On("InsertOffer", ctx, domain.DestInvalidOffer, params).Return(nil, apperrors.ErrDuplicate).Once()
	suite.mockOfferRepo.On("FindOfferByKey", ctx, domain.DestInvalidOffer, params.Key()).Return(existing, nil).Once()

	written, outcome, err := suite.writer.WriteOffer(ctx, domain.DestInvalidOffer, params)

	suite.Require().NoError(err)
	suite.Equal(services.OutcomeDuplicate, outcome)
	suite.Equal(existing, written)
	suite.mockOfferRepo.AssertExpectations(suite.T())
}

func (suite *WarehouseWriterTestSuite) TestWriteOffer_Inserted() {
	ctx := context.Background()
	params := domain.Offer{HotelID: 42}
	inserted := &domain.Offer{ID: 9, HotelID: 42}

	suite.mockOfferRepo.On("InsertOffer", ctx, domain.DestValidOffer, params).Return(inserted, nil).Once()

	written, outcome, err := suite.writer.WriteOffer(ctx, domain.DestValidOffer, params)

	suite.Require().NoError(err)
	suite.Equal(services.OutcomeInserted, outcome)
	suite.Equal(inserted, written)
	suite.mockOfferRepo.AssertExpectations(suite.T())
}

func TestWarehouseWriter(t *testing.T) {
	suite.Run(t, new(WarehouseWriterTestSuite))
}
