package services_test

import (
	"context"
	"testing"

	"collectbox/internal/apperrors"
	"collectbox/internal/core/domain"
	portssvc "collectbox/internal/core/ports/services"
	"collectbox/internal/core/services"
	"collectbox/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BoxRepository ---
type MockBoxRepository struct {
	mock.Mock
}

func (m *MockBoxRepository) CreateBox(ctx context.Context) (*domain.CollectionBox, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CollectionBox), args.Error(1)
}

func (m *MockBoxRepository) FindBoxByID(ctx context.Context, boxID int64) (*domain.CollectionBox, error) {
	args := m.Called(ctx, boxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CollectionBox), args.Error(1)
}

func (m *MockBoxRepository) ListBoxes(ctx context.Context, params pagination.Params) ([]domain.CollectionBox, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.CollectionBox), args.Get(1).(int64), args.Error(2)
}

func (m *MockBoxRepository) AssignBoxToEvent(ctx context.Context, boxID int64, eventID int64) error {
	args := m.Called(ctx, boxID, eventID)
	return args.Error(0)
}

func (m *MockBoxRepository) AddAmount(ctx context.Context, boxID int64, currencyCode string, amount decimal.Decimal) error {
	args := m.Called(ctx, boxID, currencyCode, amount)
	return args.Error(0)
}

func (m *MockBoxRepository) SoftDeleteBox(ctx context.Context, boxID int64) error {
	args := m.Called(ctx, boxID)
	return args.Error(0)
}

func (m *MockBoxRepository) SettleBox(ctx context.Context, box domain.CollectionBox, eventID int64, total decimal.Decimal) error {
	args := m.Called(ctx, box, eventID, total)
	return args.Error(0)
}

// --- Mock RateConverter ---
type MockRateConverter struct {
	mock.Mock
}

func (m *MockRateConverter) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, amount, fromCode, toCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type BoxServiceTestSuite struct {
	suite.Suite
	mockBoxRepo      *MockBoxRepository
	mockEventRepo    *MockEventRepository
	mockCurrencyRepo *MockCurrencyRepository
	mockConverter    *MockRateConverter
	service          portssvc.BoxSvcFacade
}

func (suite *BoxServiceTestSuite) SetupTest() {
	suite.mockBoxRepo = new(MockBoxRepository)
	suite.mockEventRepo = new(MockEventRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockConverter = new(MockRateConverter)
	suite.service = services.NewBoxService(suite.mockBoxRepo, suite.mockEventRepo, suite.mockCurrencyRepo, suite.mockConverter)
}

func eventIDPtr(id int64) *int64 {
	return &id
}

func testEvent(id int64, currencyCode string) *domain.FundraisingEvent {
	return &domain.FundraisingEvent{
		EventID:        id,
		Name:           "Charity One",
		CurrencyCode:   currencyCode,
		AccountBalance: decimal.Zero,
	}
}

// --- Test Cases ---

func (suite *BoxServiceTestSuite) TestRegisterBox_Success() {
	ctx := context.Background()
	created := &domain.CollectionBox{BoxID: 7}

	suite.mockBoxRepo.On("CreateBox", ctx).Return(created, nil).Once()

	box, err := suite.service.RegisterBox(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(box)
	suite.Equal(int64(7), box.BoxID)
	suite.False(box.IsAssigned())
	suite.True(box.IsEmpty())
	suite.mockBoxRepo.AssertExpectations(suite.T())
}

func (suite *BoxServiceTestSuite) TestListBoxes_InvalidPagination() {
	ctx := context.Background()

	_, _, err := suite.service.ListBoxes(ctx, -1, 10, "asc")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, _, err = suite.service.ListBoxes(ctx, 0, 0, "asc")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, _, err = suite.service.ListBoxes(ctx, 0, 101, "asc")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, _, err = suite.service.ListBoxes(ctx, 0, 10, "sideways")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockBoxRepo.AssertNotCalled(suite.T(), "ListBoxes")
}

func (suite *BoxServiceTestSuite) TestListBoxes_Success() {
	ctx := context.Background()
	boxes := []domain.CollectionBox{{BoxID: 1}, {BoxID: 2, EventID: eventIDPtr(5)}}

	suite.mockBoxRepo.On("ListBoxes", ctx, mock.MatchedBy(func(p pagination.Params) bool {
		return p.Page == 0 && p.Size == 10 && p.Direction == pagination.Desc
	})).Return(boxes, int64(2), nil).Once()

	got, total, err := suite.service.ListBoxes(ctx, 0, 10, "DESC")

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.Equal(int64(2), total)
	suite.mockBoxRepo.AssertExpectations(suite.T())
}

func (suite *BoxServiceTestSuite) TestUnregisterBox_NotFound() {
	ctx := context.Background()

	suite.mockBoxRepo.On("SoftDeleteBox", ctx, int64(42)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.UnregisterBox(ctx, 42)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), "collection box with ID 42 not found")
	suite.mockBoxRepo.AssertExpectations(suite.T())
}

func (suite *BoxServiceTestSuite) TestUnregisterBox_Success() {
	ctx := context.Background()

	suite.mockBoxRepo.On("SoftDeleteBox", ctx, int64(3)).Return(nil).Once()

	err := suite.service.UnregisterBox(ctx, 3)

	suite.Require().NoError(err)
	suite.mockBoxRepo.AssertExpectations(suite.T())
}

func (suite *BoxServiceTestSuite) TestAssignBox_Success() {
	ctx := context.Background()
	box := &domain.CollectionBox{BoxID: 1}

	suite.mockBoxRepo.On("FindBoxByID", ctx, int64(1)).Return(box, nil).Once()
	suite.mockEventRepo.On("FindEventByID", ctx, int64(9)).Return(testEvent(9, "USD"), nil).Once()
	suite.mockBoxRepo.On("AssignBoxToEvent", ctx, int64(1), int64(9)).Return(nil).Once()

	got, err := suite.service.AssignBoxToEvent(ctx, 1, 9)

	suite.Require().NoError(err)
	suite.Require().NotNil(got)
	suite.True(got.IsAssigned())
	suite.True(got.IsEmpty())
	suite.mockBoxRepo.AssertExpectations(suite.T())
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *BoxServiceTestSuite) TestAssignBox_AlreadyAssigned() {
	ctx := context.Background()
	box := &domain.CollectionBox{BoxID: 1, EventID: eventIDPtr(4)}

	suite.mockBoxRepo.On("FindBoxByID", ctx, int64(1)).Return(box, nil).Once()

	_, err := suite.service.AssignBoxToEvent(ctx, 1, 9)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "already assigned")
	suite.mockBoxRepo.AssertNotCalled(suite.T(), "AssignBoxToEvent")
}

func (suite *BoxServiceTestSuite) TestAssignBox_NotEmpty() {
	ctx := context.Background()
	box := &domain.CollectionBox{
		BoxID: 1,
		Amounts: []domain.CurrencyAmount{
			{AmountID: 1, BoxID: 1, CurrencyCode: "EUR", Amount: decimal.NewFromInt(5)},
		},
	}

	suite.mockBoxRepo.On("FindBoxByID", ctx, int64(1)).Return(box, nil).Once()

	_, err := suite.service.AssignBoxToEvent(ctx, 1, 9)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "not empty")
	suite.mockBoxRepo.AssertNotCalled(suite.T(), "AssignBoxToEvent")
}

func (suite *BoxServiceTestSuite) TestAssignBox_ZeroedEntriesStillEmpty() {
	// A box that was settled earlier has zero-amount entries but counts as empty.
	ctx := context.Background()
	box := &domain.CollectionBox{
		BoxID: 1,
		Amounts: []domain.CurrencyAmount{
			{AmountID: 1, BoxID: 1, CurrencyCode: "EUR", Amount: decimal.Zero},
		},
	}

	suite.mockBoxRepo.On("FindBoxByID", ctx, int64(1)).Return(box, nil).Once()
	suite.mockEventRepo.On("FindEventByID", ctx, int64(9)).Return(testEvent(9, "USD"), nil).Once()
	suite.mockBoxRepo.On("AssignBoxToEvent", ctx, int64(1), int64(9)).Return(nil).Once()

	got, err := suite.service.AssignBoxToEvent(ctx, 1, 9)

	suite.Require().NoError(err)
	suite.True(got.IsEmpty())
}

func (suite *BoxServiceTestSuite) TestAssignBox_EventNotFound() {
	ctx := context.Background()
	box := &domain.CollectionBox{BoxID: 1}

	suite.mockBoxRepo.On("FindBoxByID", ctx, int64(1)).Return(box, nil).Once()
	suite.mockEventRepo.On("FindEventByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AssignBoxToEvent(ctx, 1, 99)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), "fundraising event with ID 99 not found")
}

func (suite *BoxServiceTestSuite) TestAddMoney_NonPositiveAmount() {
	ctx := context.Background()

	err := suite.service.AddMoney(ctx, 1, "EUR", decimal.Zero)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "amount must be greater than 0")

	err = suite.service.AddMoney(ctx, 1, "EUR", decimal.NewFromInt(-5))
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockBoxRepo.AssertNotCalled(suite.T(), "AddAmount")
}

func (suite *BoxServiceTestSuite) TestAddMoney_UnassignedBox() {
	ctx := context.Background()
	box := &domain.CollectionBox{BoxID: 1}

	suite.mockBoxRepo.On("FindBoxByID", ctx, int64(1)).Return(box, nil).Once()

	err := suite.service.AddMoney(ctx, 1, "EUR", decimal.NewFromInt(10))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "not assigned")
	suite.mockBoxRepo.AssertNotCalled(suite.T(), "AddAmount")
}

func (suite *BoxServiceTestSuite) TestAddMoney_UnknownCurrency() {
	ctx := context.Background()
	box := &domain.CollectionBox{BoxID: 1, EventID: eventIDPtr(9)}

	suite.mockBoxRepo.On("FindBoxByID", ctx, int64(1)).Return(box, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "ZZZ").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AddMoney(ctx, 1, "ZZZ", decimal.NewFromInt(10))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), "currency 'ZZZ' not found or unsupported")
	suite.mockBoxRepo.AssertNotCalled(suite.T(), "AddAmount")
}

func (suite *BoxServiceTestSuite) TestAddMoney_Success() {
	ctx := context.Background()
	box := &domain.CollectionBox{BoxID: 1, EventID: eventIDPtr(9)}
	amount := decimal.NewFromFloat(12.5)

	suite.mockBoxRepo.On("FindBoxByID", ctx, int64(1)).Return(box, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(&domain.Currency{CurrencyCode: "EUR", Name: "Euro"}, nil).Once()
	suite.mockBoxRepo.On("AddAmount", ctx, int64(1), "EUR", amount).Return(nil).Once()

	err := suite.service.AddMoney(ctx, 1, "EUR", amount)

	suite.Require().NoError(err)
	suite.mockBoxRepo.AssertExpectations(suite.T())
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *BoxServiceTestSuite) TestEmptyBox_Unassigned() {
	ctx := context.Background()
	box := &domain.CollectionBox{BoxID: 1}

	suite.mockBoxRepo.On("FindBoxByID", ctx, int64(1)).Return(box, nil).Once()

	_, err := suite.service.EmptyBox(ctx, 1)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "not assigned")
}

func (suite *BoxServiceTestSuite) TestEmptyBox_EmptyBox() {
	ctx := context.Background()
	box := &domain.CollectionBox{BoxID: 1, EventID: eventIDPtr(9)}

	suite.mockBoxRepo.On("FindBoxByID", ctx, int64(1)).Return(box, nil).Once()

	_, err := suite.service.EmptyBox(ctx, 1)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "attempt to transfer money from box 1 which is empty")
	suite.mockBoxRepo.AssertNotCalled(suite.T(), "SettleBox")
}

func (suite *BoxServiceTestSuite) TestEmptyBox_ConvertsForeignCurrency() {
	// Register a box, assign it to a USD event, deposit 50.00 EUR, then empty:
	// the event gains the converted USD amount.
	ctx := context.Background()
	box := &domain.CollectionBox{
		BoxID:   1,
		EventID: eventIDPtr(9),
		Amounts: []domain.CurrencyAmount{
			{AmountID: 11, BoxID: 1, CurrencyCode: "EUR", Amount: decimal.NewFromFloat(50.00)},
		},
	}
	converted := decimal.NewFromFloat(54.00)

	suite.mockBoxRepo.On("FindBoxByID", ctx, int64(1)).Return(box, nil).Once()
	suite.mockEventRepo.On("FindEventByID", ctx, int64(9)).Return(testEvent(9, "USD"), nil).Once()
	suite.mockConverter.On("Convert", ctx, decimal.NewFromFloat(50.00), "EUR", "USD").Return(converted, nil).Once()
	suite.mockBoxRepo.On("SettleBox", ctx, *box, int64(9), mock.MatchedBy(func(total decimal.Decimal) bool {
		return total.Equal(converted)
	})).Return(nil).Once()

	settlement, err := suite.service.EmptyBox(ctx, 1)

	suite.Require().NoError(err)
	suite.Require().NotNil(settlement)
	suite.Equal(int64(1), settlement.BoxID)
	suite.Equal(int64(9), settlement.EventID)
	suite.Equal("USD", settlement.CurrencyCode)
	suite.True(settlement.TotalTransferred.Equal(converted))
	suite.mockBoxRepo.AssertExpectations(suite.T())
	suite.mockConverter.AssertExpectations(suite.T())
}

func (suite *BoxServiceTestSuite) TestEmptyBox_MixedCurrencies() {
	// Same-currency entries pass through unconverted, foreign ones go through
	// the converter, zero entries are skipped.
	ctx := context.Background()
	box := &domain.CollectionBox{
		BoxID:   2,
		EventID: eventIDPtr(9),
		Amounts: []domain.CurrencyAmount{
			{AmountID: 21, BoxID: 2, CurrencyCode: "USD", Amount: decimal.NewFromFloat(10.00)},
			{AmountID: 22, BoxID: 2, CurrencyCode: "EUR", Amount: decimal.NewFromFloat(50.00)},
			{AmountID: 23, BoxID: 2, CurrencyCode: "GBP", Amount: decimal.Zero},
		},
	}

	suite.mockBoxRepo.On("FindBoxByID", ctx, int64(2)).Return(box, nil).Once()
	suite.mockEventRepo.On("FindEventByID", ctx, int64(9)).Return(testEvent(9, "USD"), nil).Once()
	suite.mockConverter.On("Convert", ctx, decimal.NewFromFloat(50.00), "EUR", "USD").Return(decimal.NewFromFloat(54.00), nil).Once()
	suite.mockBoxRepo.On("SettleBox", ctx, *box, int64(9), mock.MatchedBy(func(total decimal.Decimal) bool {
		return total.Equal(decimal.NewFromFloat(64.00))
	})).Return(nil).Once()

	settlement, err := suite.service.EmptyBox(ctx, 2)

	suite.Require().NoError(err)
	suite.True(settlement.TotalTransferred.Equal(decimal.NewFromFloat(64.00)))
	suite.mockConverter.AssertNumberOfCalls(suite.T(), "Convert", 1)
}

func (suite *BoxServiceTestSuite) TestEmptyBox_ConversionFailureAbortsSettlement() {
	ctx := context.Background()
	box := &domain.CollectionBox{
		BoxID:   3,
		EventID: eventIDPtr(9),
		Amounts: []domain.CurrencyAmount{
			{AmountID: 31, BoxID: 3, CurrencyCode: "EUR", Amount: decimal.NewFromInt(20)},
		},
	}

	suite.mockBoxRepo.On("FindBoxByID", ctx, int64(3)).Return(box, nil).Once()
	suite.mockEventRepo.On("FindEventByID", ctx, int64(9)).Return(testEvent(9, "USD"), nil).Once()
	suite.mockConverter.On("Convert", ctx, decimal.NewFromInt(20), "EUR", "USD").
		Return(decimal.Zero, apperrors.ErrConversion).Once()

	_, err := suite.service.EmptyBox(ctx, 3)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConversion)
	suite.mockBoxRepo.AssertNotCalled(suite.T(), "SettleBox")
}

func (suite *BoxServiceTestSuite) TestEmptyBox_SettleConflictSurfaces() {
	ctx := context.Background()
	box := &domain.CollectionBox{
		BoxID:   4,
		EventID: eventIDPtr(9),
		Amounts: []domain.CurrencyAmount{
			{AmountID: 41, BoxID: 4, CurrencyCode: "USD", Amount: decimal.NewFromInt(5)},
		},
	}

	suite.mockBoxRepo.On("FindBoxByID", ctx, int64(4)).Return(box, nil).Once()
	suite.mockEventRepo.On("FindEventByID", ctx, int64(9)).Return(testEvent(9, "USD"), nil).Once()
	suite.mockBoxRepo.On("SettleBox", ctx, *box, int64(9), mock.Anything).Return(apperrors.ErrConflict).Once()

	_, err := suite.service.EmptyBox(ctx, 4)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *BoxServiceTestSuite) TestEmptyBox_BoxNotFound() {
	ctx := context.Background()

	suite.mockBoxRepo.On("FindBoxByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.EmptyBox(ctx, 404)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), "collection box with ID 404 not found")
}

func TestBoxServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BoxServiceTestSuite))
}
