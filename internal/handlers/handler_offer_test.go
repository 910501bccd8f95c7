package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hqdw/hq_warehouse_app/internal/apperrors"
	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
	portsrepo "github.com/hqdw/hq_warehouse_app/internal/core/ports/repositories"
	"github.com/hqdw/hq_warehouse_app/internal/core/services"
	"github.com/hqdw/hq_warehouse_app/internal/dto"
	"github.com/hqdw/hq_warehouse_app/internal/handlers"
)

// --- Mock CurrencyReader ---
type MockCurrencyReader struct {
	mock.Mock
}

func (m *MockCurrencyReader) FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyReader) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyReader) ListCurrencies(ctx context.Context, limit, offset int) ([]domain.Currency, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock ForexReader ---
type MockForexReader struct {
	mock.Mock
}

func (m *MockForexReader) FindForexByID(ctx context.Context, id int64) (*domain.Forex, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Forex), args.Error(1)
}
func (m *MockForexReader) FindForexByPairAndDate(ctx context.Context, fromID, toID int64, date time.Time) (*domain.Forex, error) {
	args := m.Called(ctx, fromID, toID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Forex), args.Error(1)
}
func (m *MockForexReader) FindLatestForexAtOrBefore(ctx context.Context, fromID, toID int64, date time.Time) (*domain.Forex, error) {
	args := m.Called(ctx, fromID, toID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Forex), args.Error(1)
}
func (m *MockForexReader) ListForex(ctx context.Context, limit, offset int) ([]domain.Forex, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Forex), args.Error(1)
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

var _ portsrepo.OfferRepositoryFacade = (*MockOfferRepository)(nil)

// --- Test Suite ---
type OfferHandlerTestSuite struct {
	suite.Suite
	mockOfferRepo *MockOfferRepository
	router        *gin.Engine
}

func (suite *OfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockOfferRepo = new(MockOfferRepository)
	browseService := services.NewBrowseService(new(MockCurrencyReader), new(MockForexReader), suite.mockOfferRepo)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, browseService)
}

func (suite *OfferHandlerTestSuite) validOffer(id int64) *domain.ValidOffer {
	return &domain.ValidOffer{
		Offer: domain.Offer{
			ID:            id,
			HotelID:       42,
			PriceUSD:      decimal.NewFromFloat(130.14),
			OriginalPrice: decimal.NewFromFloat(120.50),
			CheckinDate:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			CheckoutDate:  time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}

func (suite *OfferHandlerTestSuite) TestGetValidOffer_Success() {
	offer := suite.validOffer(9)
	suite.mockOfferRepo.On("FindValidOfferByID", mock.Anything, int64(9)).Return(offer, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/valid-offers/9", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ValidOfferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(9), resp.ID)
	suite.Equal("2026-04-01", resp.CheckinDate)
	suite.False(resp.Invalid)
	suite.mockOfferRepo.AssertExpectations(suite.T())
}

func (suite *OfferHandlerTestSuite) TestGetValidOffer_NotFound() {
	suite.mockOfferRepo.On("FindValidOfferByID", mock.Anything, int64(77)).Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/valid-offers/77", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockOfferRepo.AssertExpectations(suite.T())
}

func (suite *OfferHandlerTestSuite) TestGetValidOffer_BadID() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/valid-offers/abc", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockOfferRepo.AssertNotCalled(suite.T(), "FindValidOfferByID")
}

func (suite *OfferHandlerTestSuite) TestListValidOffers_SecondPage() {
	suite.mockOfferRepo.On("ListValidOffers", mock.Anything, 12, 12).Return([]domain.ValidOffer{*suite.validOffer(13)}, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/valid-offers?page=2", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.ValidOfferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal(int64(13), resp[0].ID)
	suite.mockOfferRepo.AssertExpectations(suite.T())
}

func (suite *OfferHandlerTestSuite) TestUpdateValidOffer_SetsInvalidFlag() {
	updated := suite.validOffer(9)
	updated.Invalid = true

	suite.mockOfferRepo.On("SetValidOfferInvalid", mock.Anything, int64(9), true).Return(nil).Once()
	suite.mockOfferRepo.On("FindValidOfferByID", mock.Anything, int64(9)).Return(updated, nil).Once()

	body, _ := json.Marshal(dto.UpdateValidOfferRequest{Invalid: boolPtr(true)})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPatch, "/api/v1/valid-offers/9", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ValidOfferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Invalid)
	suite.mockOfferRepo.AssertExpectations(suite.T())
}

func (suite *OfferHandlerTestSuite) TestUpdateValidOffer_MissingBody() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPatch, "/api/v1/valid-offers/9", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockOfferRepo.AssertNotCalled(suite.T(), "SetValidOfferInvalid")
}

func boolPtr(b bool) *bool { return &b }

func TestOfferHandler(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}
