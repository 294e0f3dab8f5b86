package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/goldhub/pricing_admin_app/internal/apperrors"
	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	"github.com/goldhub/pricing_admin_app/internal/core/services"
	"github.com/goldhub/pricing_admin_app/internal/dto"
	"github.com/goldhub/pricing_admin_app/internal/utils/pricing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockReferencePriceRepository is a mock type for the ReferencePriceRepository interface
type MockReferencePriceRepository struct {
	mock.Mock
}

func (m *MockReferencePriceRepository) FindReferencePrice(ctx context.Context, instrumentID string) (*domain.ReferencePrice, error) {
	args := m.Called(ctx, instrumentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReferencePrice), args.Error(1)
}

func (m *MockReferencePriceRepository) SaveReferencePrice(ctx context.Context, price domain.ReferencePrice) error {
	args := m.Called(ctx, price)
	return args.Error(0)
}

// --- Test Suite Setup ---

type PricingServiceTestSuite struct {
	suite.Suite
	mockPriceRepo   *MockReferencePriceRepository
	mockHistoryRepo *MockChangeHistoryRepository
	service         *services.PricingService
}

func (suite *PricingServiceTestSuite) SetupTest() {
	suite.mockPriceRepo = new(MockReferencePriceRepository)
	suite.mockHistoryRepo = new(MockChangeHistoryRepository)
	suite.service = services.NewPricingService(suite.mockPriceRepo, suite.mockHistoryRepo)
}

func goldPrice(live, platform, sell string) *domain.ReferencePrice {
	return &domain.ReferencePrice{
		InstrumentID:  domain.GoldGramInstrumentID,
		LivePrice:     domain.NewMoney(dec(live), "NGN"),
		PlatformPrice: domain.NewMoney(dec(platform), "NGN"),
		SellPrice:     domain.NewMoney(dec(sell), "NGN"),
		AuditFields: domain.AuditFields{
			CreatedAt:     time.Now().Add(-time.Hour),
			CreatedBy:     "system",
			LastUpdatedAt: time.Now().Add(-time.Hour),
			LastUpdatedBy: "system",
		},
	}
}

// --- Test Cases ---

func (suite *PricingServiceTestSuite) TestUpdatePlatformPrice_Absolute() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	current := goldPrice("99.00", "100.00", "95.00")

	req := dto.UpdatePriceRequest{Mode: "absolute", NewPrice: decPtr("110.00")}

	suite.mockPriceRepo.On("FindReferencePrice", ctx, domain.GoldGramInstrumentID).Return(current, nil).Once()
	suite.mockPriceRepo.On("SaveReferencePrice", ctx, mock.AnythingOfType("domain.ReferencePrice")).Return(nil).Once()
	suite.mockHistoryRepo.On("SavePriceChange", ctx, mock.AnythingOfType("domain.PriceChange")).Return(nil).Once()

	updated, delta, err := suite.service.UpdatePlatformPrice(ctx, domain.GoldGramInstrumentID, req, updaterUserID)

	suite.Require().NoError(err)
	suite.True(updated.PlatformPrice.Equal(domain.NewMoney(dec("110.00"), "NGN")))
	// The other two prices never move on a platform update.
	suite.True(updated.LivePrice.Equal(current.LivePrice))
	suite.True(updated.SellPrice.Equal(current.SellPrice))
	suite.Equal(updaterUserID, updated.LastUpdatedBy)

	suite.True(delta.Absolute.Equal(domain.NewMoney(dec("10.00"), "NGN")))
	suite.Equal(domain.PositiveChange, delta.Classification)
	suite.Equal("10", delta.Percent.String())

	// One audit record, attributed to the operator and attached to the field.
	change := suite.mockHistoryRepo.Calls[0].Arguments.Get(1).(domain.PriceChange)
	suite.Equal(domain.PlatformPriceField, change.Field)
	suite.Equal(updaterUserID, change.UpdatedBy)
	suite.Equal(*current, change.Previous)

	suite.mockPriceRepo.AssertExpectations(suite.T())
	suite.mockHistoryRepo.AssertExpectations(suite.T())
}

func (suite *PricingServiceTestSuite) TestUpdateSellPrice_RelativePercent() {
	ctx := context.Background()
	current := goldPrice("99.00", "100.00", "90.00")

	req := dto.UpdatePriceRequest{Mode: "percent", Percent: decPtr("-10")}

	suite.mockPriceRepo.On("FindReferencePrice", ctx, domain.GoldGramInstrumentID).Return(current, nil).Once()
	suite.mockPriceRepo.On("SaveReferencePrice", ctx, mock.AnythingOfType("domain.ReferencePrice")).Return(nil).Once()
	suite.mockHistoryRepo.On("SavePriceChange", ctx, mock.AnythingOfType("domain.PriceChange")).Return(nil).Once()

	updated, delta, err := suite.service.UpdateSellPrice(ctx, domain.GoldGramInstrumentID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(updated.SellPrice.Equal(domain.NewMoney(dec("81.00"), "NGN")))
	suite.True(updated.PlatformPrice.Equal(current.PlatformPrice))
	suite.Equal(domain.NegativeChange, delta.Classification)
}

func (suite *PricingServiceTestSuite) TestUpdatePrice_NegativeRejected() {
	ctx := context.Background()
	current := goldPrice("99.00", "100.00", "95.00")

	req := dto.UpdatePriceRequest{Mode: "absolute", NewPrice: decPtr("-5")}

	suite.mockPriceRepo.On("FindReferencePrice", ctx, domain.GoldGramInstrumentID).Return(current, nil).Once()

	_, _, err := suite.service.UpdatePlatformPrice(ctx, domain.GoldGramInstrumentID, req, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrInvalidPrice)
	suite.mockPriceRepo.AssertNotCalled(suite.T(), "SaveReferencePrice", mock.Anything, mock.Anything)
	suite.mockHistoryRepo.AssertNotCalled(suite.T(), "SavePriceChange", mock.Anything, mock.Anything)
}

func (suite *PricingServiceTestSuite) TestUpdatePrice_MissingModeField() {
	ctx := context.Background()
	current := goldPrice("99.00", "100.00", "95.00")

	// absolute mode without a newPrice
	req := dto.UpdatePriceRequest{Mode: "absolute"}

	suite.mockPriceRepo.On("FindReferencePrice", ctx, domain.GoldGramInstrumentID).Return(current, nil).Once()

	_, _, err := suite.service.UpdatePlatformPrice(ctx, domain.GoldGramInstrumentID, req, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PricingServiceTestSuite) TestUpdatePrice_ZeroCurrentReportsPercentUndefined() {
	ctx := context.Background()
	current := goldPrice("0", "0", "0")

	req := dto.UpdatePriceRequest{Mode: "absolute", NewPrice: decPtr("50.00")}

	suite.mockPriceRepo.On("FindReferencePrice", ctx, domain.GoldGramInstrumentID).Return(current, nil).Once()
	suite.mockPriceRepo.On("SaveReferencePrice", ctx, mock.AnythingOfType("domain.ReferencePrice")).Return(nil).Once()
	suite.mockHistoryRepo.On("SavePriceChange", ctx, mock.AnythingOfType("domain.PriceChange")).Return(nil).Once()

	_, delta, err := suite.service.UpdatePlatformPrice(ctx, domain.GoldGramInstrumentID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(delta.PercentUndefined)
	suite.True(delta.Percent.IsZero())
	suite.Equal(domain.PositiveChange, delta.Classification)
}

func (suite *PricingServiceTestSuite) TestPreviewPriceUpdate_DoesNotPersist() {
	ctx := context.Background()
	current := goldPrice("99.00", "100.00", "95.00")

	suite.mockPriceRepo.On("FindReferencePrice", ctx, domain.GoldGramInstrumentID).Return(current, nil).Once()

	result, err := suite.service.PreviewPriceUpdate(ctx, domain.GoldGramInstrumentID, domain.PlatformPriceField, pricing.UpdateRequest{
		Mode:    pricing.RelativePercentMode,
		Percent: domain.NewPercentage(dec("10")),
	})

	suite.Require().NoError(err)
	suite.True(result.NewPrice.Equal(domain.NewMoney(dec("110.00"), "NGN")))
	suite.mockPriceRepo.AssertNotCalled(suite.T(), "SaveReferencePrice", mock.Anything, mock.Anything)
	suite.mockHistoryRepo.AssertNotCalled(suite.T(), "SavePriceChange", mock.Anything, mock.Anything)
}

func (suite *PricingServiceTestSuite) TestRecordLivePrice_Success() {
	ctx := context.Background()
	current := goldPrice("99.00", "100.00", "95.00")

	suite.mockPriceRepo.On("FindReferencePrice", ctx, domain.GoldGramInstrumentID).Return(current, nil).Once()
	suite.mockPriceRepo.On("SaveReferencePrice", ctx, mock.AnythingOfType("domain.ReferencePrice")).Return(nil).Once()

	updated, err := suite.service.RecordLivePrice(ctx, domain.GoldGramInstrumentID, domain.NewMoney(dec("101.505"), "NGN"))

	suite.Require().NoError(err)
	suite.True(updated.LivePrice.Equal(domain.NewMoney(dec("101.51"), "NGN")))
	// Operator prices are untouched by feed ticks.
	suite.True(updated.PlatformPrice.Equal(current.PlatformPrice))
	suite.True(updated.SellPrice.Equal(current.SellPrice))

	// Feed ticks are ground truth: no audit record.
	suite.mockHistoryRepo.AssertNotCalled(suite.T(), "SavePriceChange", mock.Anything, mock.Anything)
}

func (suite *PricingServiceTestSuite) TestRecordLivePrice_NegativeRejected() {
	ctx := context.Background()

	_, err := suite.service.RecordLivePrice(ctx, domain.GoldGramInstrumentID, domain.NewMoney(dec("-1"), "NGN"))

	suite.ErrorIs(err, apperrors.ErrInvalidPrice)
	suite.mockPriceRepo.AssertNotCalled(suite.T(), "FindReferencePrice", mock.Anything, mock.Anything)
}

func (suite *PricingServiceTestSuite) TestRecordLivePrice_CurrencyMismatch() {
	ctx := context.Background()
	current := goldPrice("99.00", "100.00", "95.00")

	suite.mockPriceRepo.On("FindReferencePrice", ctx, domain.GoldGramInstrumentID).Return(current, nil).Once()

	_, err := suite.service.RecordLivePrice(ctx, domain.GoldGramInstrumentID, domain.NewMoney(dec("100"), "USD"))

	suite.ErrorIs(err, apperrors.ErrCurrencyMismatch)
	suite.mockPriceRepo.AssertNotCalled(suite.T(), "SaveReferencePrice", mock.Anything, mock.Anything)
}

func (suite *PricingServiceTestSuite) TestGetReferencePrice_NotFound() {
	ctx := context.Background()
	suite.mockPriceRepo.On("FindReferencePrice", ctx, "UNKNOWN").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetReferencePrice(ctx, "UNKNOWN")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestPricingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PricingServiceTestSuite))
}
