package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goldhub/pricing_admin_app/internal/apperrors"
	"github.com/goldhub/pricing_admin_app/internal/core/domain"
	"github.com/goldhub/pricing_admin_app/internal/core/services"
	"github.com/goldhub/pricing_admin_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockChargeRuleRepository is a mock type for the ChargeRuleRepository interface
type MockChargeRuleRepository struct {
	mock.Mock
}

func (m *MockChargeRuleRepository) SaveChargeRule(ctx context.Context, rule domain.ChargeRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockChargeRuleRepository) UpdateChargeRule(ctx context.Context, rule domain.ChargeRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockChargeRuleRepository) FindChargeRuleByID(ctx context.Context, ruleID string) (*domain.ChargeRule, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChargeRule), args.Error(1)
}

func (m *MockChargeRuleRepository) ListChargeRules(ctx context.Context, kind *domain.TransactionKind, status *domain.RuleStatus) ([]domain.ChargeRule, error) {
	args := m.Called(ctx, kind, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChargeRule), args.Error(1)
}

func (m *MockChargeRuleRepository) ListActiveChargeRulesByKind(ctx context.Context, kind domain.TransactionKind) ([]domain.ChargeRule, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChargeRule), args.Error(1)
}

// MockChangeHistoryRepository is a mock type for the ChangeHistoryRepository interface
type MockChangeHistoryRepository struct {
	mock.Mock
}

func (m *MockChangeHistoryRepository) SaveChargeRuleChange(ctx context.Context, change domain.ChargeRuleChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

func (m *MockChangeHistoryRepository) ListChargeRuleChanges(ctx context.Context, ruleID *string, limit, offset int) ([]domain.ChargeRuleChange, error) {
	args := m.Called(ctx, ruleID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChargeRuleChange), args.Error(1)
}

func (m *MockChangeHistoryRepository) SavePriceChange(ctx context.Context, change domain.PriceChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

func (m *MockChangeHistoryRepository) ListPriceChanges(ctx context.Context, instrumentID string, limit, offset int) ([]domain.PriceChange, error) {
	args := m.Called(ctx, instrumentID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceChange), args.Error(1)
}

// --- Test Suite Setup ---

type ChargeRuleServiceTestSuite struct {
	suite.Suite
	mockRuleRepo    *MockChargeRuleRepository
	mockHistoryRepo *MockChangeHistoryRepository
	service         *services.ChargeRuleService
}

func (suite *ChargeRuleServiceTestSuite) SetupTest() {
	suite.mockRuleRepo = new(MockChargeRuleRepository)
	suite.mockHistoryRepo = new(MockChangeHistoryRepository)
	suite.service = services.NewChargeRuleService(suite.mockRuleRepo, suite.mockHistoryRepo, "NGN")
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func activeRule(id string, kind domain.TransactionKind, min, max string) domain.ChargeRule {
	return domain.ChargeRule{
		RuleID:        id,
		Kind:          kind,
		MinAmount:     domain.NewMoney(dec(min), "NGN"),
		MaxAmount:     domain.NewMoney(dec(max), "NGN"),
		FixedCharge:   domain.NewMoney(dec("1.00"), "NGN"),
		PercentCharge: domain.NewPercentage(dec("1.5")),
		VATPercent:    domain.NewPercentage(dec("2.5")),
		Status:        domain.RuleActive,
	}
}

// --- Test Cases ---

func (suite *ChargeRuleServiceTestSuite) TestCreateChargeRule_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateChargeRuleRequest{
		Kind:          "BUY",
		MinAmount:     dec("0"),
		MaxAmount:     dec("1000"),
		FixedCharge:   dec("1.00"),
		PercentCharge: dec("1.5"),
		VATPercent:    dec("2.5"),
	}

	suite.mockRuleRepo.On("ListActiveChargeRulesByKind", ctx, domain.KindBuy).Return([]domain.ChargeRule{}, nil).Once()
	suite.mockRuleRepo.On("SaveChargeRule", ctx, mock.AnythingOfType("domain.ChargeRule")).Return(nil).Once()
	suite.mockHistoryRepo.On("SaveChargeRuleChange", ctx, mock.AnythingOfType("domain.ChargeRuleChange")).Return(nil).Once()

	created, err := suite.service.CreateChargeRule(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.RuleID)
	suite.Equal(domain.KindBuy, created.Kind)
	suite.Equal(domain.RuleActive, created.Status)
	suite.Equal("NGN", created.MinAmount.CurrencyCode)
	suite.Equal(creatorUserID, created.CreatedBy)

	// Exactly one history record, carrying a zero previous snapshot.
	suite.mockHistoryRepo.AssertNumberOfCalls(suite.T(), "SaveChargeRuleChange", 1)
	change := suite.mockHistoryRepo.Calls[0].Arguments.Get(1).(domain.ChargeRuleChange)
	suite.Empty(change.Previous.RuleID)
	suite.Equal(created.RuleID, change.RuleID)
	suite.Equal(creatorUserID, change.UpdatedBy)

	suite.mockRuleRepo.AssertExpectations(suite.T())
	suite.mockHistoryRepo.AssertExpectations(suite.T())
}

func (suite *ChargeRuleServiceTestSuite) TestCreateChargeRule_LegacySlug() {
	ctx := context.Background()
	slug := 1 // SELL
	req := dto.CreateChargeRuleRequest{
		Slug:      &slug,
		MinAmount: dec("0"),
		MaxAmount: dec("500"),
	}

	suite.mockRuleRepo.On("ListActiveChargeRulesByKind", ctx, domain.KindSell).Return([]domain.ChargeRule{}, nil).Once()
	suite.mockRuleRepo.On("SaveChargeRule", ctx, mock.AnythingOfType("domain.ChargeRule")).Return(nil).Once()
	suite.mockHistoryRepo.On("SaveChargeRuleChange", ctx, mock.AnythingOfType("domain.ChargeRuleChange")).Return(nil).Once()

	created, err := suite.service.CreateChargeRule(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.KindSell, created.Kind)
}

func (suite *ChargeRuleServiceTestSuite) TestCreateChargeRule_OverlapRejected() {
	ctx := context.Background()
	req := dto.CreateChargeRuleRequest{
		Kind:      "BUY",
		MinAmount: dec("50"),
		MaxAmount: dec("150"),
	}

	existing := []domain.ChargeRule{activeRule("existing", domain.KindBuy, "0", "100")}
	suite.mockRuleRepo.On("ListActiveChargeRulesByKind", ctx, domain.KindBuy).Return(existing, nil).Once()

	created, err := suite.service.CreateChargeRule(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)

	var violations apperrors.ValidationErrors
	suite.Require().True(errors.As(err, &violations))
	suite.True(violations.HasField("minAmount"))

	// Nothing persisted, nothing recorded.
	suite.mockRuleRepo.AssertNotCalled(suite.T(), "SaveChargeRule", mock.Anything, mock.Anything)
	suite.mockHistoryRepo.AssertNotCalled(suite.T(), "SaveChargeRuleChange", mock.Anything, mock.Anything)
}

func (suite *ChargeRuleServiceTestSuite) TestCreateChargeRule_MissingKind() {
	ctx := context.Background()
	req := dto.CreateChargeRuleRequest{
		MinAmount: dec("0"),
		MaxAmount: dec("100"),
	}

	_, err := suite.service.CreateChargeRule(ctx, req, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRuleRepo.AssertNotCalled(suite.T(), "SaveChargeRule", mock.Anything, mock.Anything)
}

func (suite *ChargeRuleServiceTestSuite) TestUpdateChargeRule_Success() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	existing := activeRule("rule-1", domain.KindBuy, "0", "100")

	req := dto.UpdateChargeRuleRequest{
		MaxAmount: decPtr("200"),
	}

	suite.mockRuleRepo.On("FindChargeRuleByID", ctx, "rule-1").Return(&existing, nil).Once()
	suite.mockRuleRepo.On("ListActiveChargeRulesByKind", ctx, domain.KindBuy).Return([]domain.ChargeRule{existing}, nil).Once()
	suite.mockRuleRepo.On("UpdateChargeRule", ctx, mock.AnythingOfType("domain.ChargeRule")).Return(nil).Once()
	suite.mockHistoryRepo.On("SaveChargeRuleChange", ctx, mock.AnythingOfType("domain.ChargeRuleChange")).Return(nil).Once()

	updated, err := suite.service.UpdateChargeRule(ctx, "rule-1", req, updaterUserID)

	suite.Require().NoError(err)
	suite.True(updated.MaxAmount.Equal(domain.NewMoney(dec("200"), "NGN")))
	suite.Equal(updaterUserID, updated.LastUpdatedBy)
	// Untouched fields survive the patch.
	suite.True(updated.MinAmount.Equal(existing.MinAmount))
	suite.Equal(existing.Kind, updated.Kind)

	// History carries the full before/after snapshots.
	change := suite.mockHistoryRepo.Calls[0].Arguments.Get(1).(domain.ChargeRuleChange)
	suite.Equal(existing, change.Previous)
	suite.Equal(*updated, change.Updated)

	suite.mockRuleRepo.AssertExpectations(suite.T())
	suite.mockHistoryRepo.AssertExpectations(suite.T())
}

func (suite *ChargeRuleServiceTestSuite) TestUpdateChargeRule_MergedResultValidated() {
	ctx := context.Background()
	existing := activeRule("rule-1", domain.KindBuy, "0", "100")

	// Shrinking max below min must be rejected even though each field alone
	// is well-formed.
	req := dto.UpdateChargeRuleRequest{
		MaxAmount: decPtr("0"),
	}

	suite.mockRuleRepo.On("FindChargeRuleByID", ctx, "rule-1").Return(&existing, nil).Once()
	suite.mockRuleRepo.On("ListActiveChargeRulesByKind", ctx, domain.KindBuy).Return([]domain.ChargeRule{existing}, nil).Once()

	_, err := suite.service.UpdateChargeRule(ctx, "rule-1", req, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRuleRepo.AssertNotCalled(suite.T(), "UpdateChargeRule", mock.Anything, mock.Anything)
	suite.mockHistoryRepo.AssertNotCalled(suite.T(), "SaveChargeRuleChange", mock.Anything, mock.Anything)
}

func (suite *ChargeRuleServiceTestSuite) TestUpdateChargeRule_ReactivationChecksOverlap() {
	ctx := context.Background()
	dormant := activeRule("rule-1", domain.KindBuy, "0", "100")
	dormant.Status = domain.RuleInactive
	competitor := activeRule("rule-2", domain.KindBuy, "50", "150")

	active := true
	req := dto.UpdateChargeRuleRequest{Active: &active}

	suite.mockRuleRepo.On("FindChargeRuleByID", ctx, "rule-1").Return(&dormant, nil).Once()
	suite.mockRuleRepo.On("ListActiveChargeRulesByKind", ctx, domain.KindBuy).Return([]domain.ChargeRule{competitor}, nil).Once()

	_, err := suite.service.UpdateChargeRule(ctx, "rule-1", req, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRuleRepo.AssertNotCalled(suite.T(), "UpdateChargeRule", mock.Anything, mock.Anything)
}

func (suite *ChargeRuleServiceTestSuite) TestUpdateChargeRule_NotFound() {
	ctx := context.Background()
	suite.mockRuleRepo.On("FindChargeRuleByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateChargeRule(ctx, "missing", dto.UpdateChargeRuleRequest{}, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ChargeRuleServiceTestSuite) TestDisableChargeRule_Success() {
	ctx := context.Background()
	existing := activeRule("rule-1", domain.KindBuy, "0", "100")

	suite.mockRuleRepo.On("FindChargeRuleByID", ctx, "rule-1").Return(&existing, nil).Twice()
	suite.mockRuleRepo.On("ListActiveChargeRulesByKind", ctx, domain.KindBuy).Return([]domain.ChargeRule{existing}, nil).Once()
	suite.mockRuleRepo.On("UpdateChargeRule", ctx, mock.AnythingOfType("domain.ChargeRule")).Return(nil).Once()
	suite.mockHistoryRepo.On("SaveChargeRuleChange", ctx, mock.AnythingOfType("domain.ChargeRuleChange")).Return(nil).Once()

	disabled, err := suite.service.DisableChargeRule(ctx, "rule-1", uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.RuleInactive, disabled.Status)
	suite.mockHistoryRepo.AssertNumberOfCalls(suite.T(), "SaveChargeRuleChange", 1)
}

func (suite *ChargeRuleServiceTestSuite) TestDisableChargeRule_AlreadyInactiveIsNoOp() {
	ctx := context.Background()
	dormant := activeRule("rule-1", domain.KindBuy, "0", "100")
	dormant.Status = domain.RuleInactive

	suite.mockRuleRepo.On("FindChargeRuleByID", ctx, "rule-1").Return(&dormant, nil).Once()

	disabled, err := suite.service.DisableChargeRule(ctx, "rule-1", uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.RuleInactive, disabled.Status)
	suite.mockRuleRepo.AssertNotCalled(suite.T(), "UpdateChargeRule", mock.Anything, mock.Anything)
	suite.mockHistoryRepo.AssertNotCalled(suite.T(), "SaveChargeRuleChange", mock.Anything, mock.Anything)
}

func (suite *ChargeRuleServiceTestSuite) TestResolveCharge_Success() {
	ctx := context.Background()
	rules := []domain.ChargeRule{activeRule("rule-1", domain.KindBuy, "0", "1000")}

	suite.mockRuleRepo.On("ListActiveChargeRulesByKind", ctx, domain.KindBuy).Return(rules, nil).Once()

	breakdown, err := suite.service.ResolveCharge(ctx, domain.KindBuy, dec("100.00"))

	suite.Require().NoError(err)
	suite.True(breakdown.TotalCharge.Equal(domain.NewMoney(dec("2.56"), "NGN")))
	suite.True(breakdown.NetAmount.Equal(domain.NewMoney(dec("102.56"), "NGN")))
}

func (suite *ChargeRuleServiceTestSuite) TestResolveCharge_NoBracketCoversAmount() {
	ctx := context.Background()
	rules := []domain.ChargeRule{activeRule("rule-1", domain.KindBuy, "0", "100")}

	suite.mockRuleRepo.On("ListActiveChargeRulesByKind", ctx, domain.KindBuy).Return(rules, nil).Once()

	_, err := suite.service.ResolveCharge(ctx, domain.KindBuy, dec("500"))

	suite.ErrorIs(err, apperrors.ErrNoMatchingRule)
}

func (suite *ChargeRuleServiceTestSuite) TestResolveCharge_NegativeAmount() {
	ctx := context.Background()

	_, err := suite.service.ResolveCharge(ctx, domain.KindBuy, dec("-1"))

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRuleRepo.AssertNotCalled(suite.T(), "ListActiveChargeRulesByKind", mock.Anything, mock.Anything)
}

func (suite *ChargeRuleServiceTestSuite) TestListChargeRules_InvalidKindFilter() {
	ctx := context.Background()
	bogus := domain.TransactionKind("LEASE")

	_, err := suite.service.ListChargeRules(ctx, &bogus, nil)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestChargeRuleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChargeRuleServiceTestSuite))
}
