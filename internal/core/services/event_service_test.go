package services_test

import (
	"context"
	"testing"

	"collectbox/internal/apperrors"
	"collectbox/internal/core/domain"
	portssvc "collectbox/internal/core/ports/services"
	"collectbox/internal/core/services"
	"collectbox/internal/dto"
	"collectbox/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EventRepository ---
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.FundraisingEvent) (*domain.FundraisingEvent, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FundraisingEvent), args.Error(1)
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID int64) (*domain.FundraisingEvent, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FundraisingEvent), args.Error(1)
}

func (m *MockEventRepository) ExistsEventByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockEventRepository) ListEvents(ctx context.Context, params pagination.Params) ([]domain.FundraisingEvent, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.FundraisingEvent), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventRepository) ListAllEvents(ctx context.Context, sortBy string, direction pagination.Direction) ([]domain.FundraisingEvent, error) {
	args := m.Called(ctx, sortBy, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FundraisingEvent), args.Error(1)
}

// --- Test Suite ---
type EventServiceTestSuite struct {
	suite.Suite
	mockEventRepo    *MockEventRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.EventSvcFacade
}

func (suite *EventServiceTestSuite) SetupTest() {
	suite.mockEventRepo = new(MockEventRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewEventService(suite.mockEventRepo, suite.mockCurrencyRepo)
}

func reportEvents() []domain.FundraisingEvent {
	return []domain.FundraisingEvent{
		{EventID: 1, Name: "Charity One", CurrencyCode: "EUR", AccountBalance: decimal.NewFromFloat(2048.679)},
		{EventID: 2, Name: "Charity Two", CurrencyCode: "GBP", AccountBalance: decimal.NewFromFloat(512.64)},
	}
}

// --- Test Cases ---

func (suite *EventServiceTestSuite) TestCreateEvent_Success() {
	ctx := context.Background()
	req := dto.CreateEventRequest{Name: "Charity One", CurrencyCode: "EUR"}

	suite.mockEventRepo.On("ExistsEventByName", ctx, "Charity One").Return(false, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(&domain.Currency{CurrencyCode: "EUR", Name: "Euro"}, nil).Once()
	suite.mockEventRepo.On("SaveEvent", ctx, mock.MatchedBy(func(e domain.FundraisingEvent) bool {
		return e.Name == "Charity One" && e.CurrencyCode == "EUR" && e.AccountBalance.IsZero()
	})).Return(&domain.FundraisingEvent{
		EventID: 1, Name: "Charity One", CurrencyCode: "EUR", AccountBalance: decimal.Zero,
	}, nil).Once()

	event, err := suite.service.CreateEvent(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(event)
	suite.Equal(int64(1), event.EventID)
	suite.True(event.AccountBalance.IsZero())
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestCreateEvent_BlankName() {
	ctx := context.Background()

	_, err := suite.service.CreateEvent(ctx, dto.CreateEventRequest{Name: "   ", CurrencyCode: "EUR"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "SaveEvent")
}

func (suite *EventServiceTestSuite) TestCreateEvent_DuplicateName() {
	ctx := context.Background()

	suite.mockEventRepo.On("ExistsEventByName", ctx, "Charity One").Return(true, nil).Once()

	_, err := suite.service.CreateEvent(ctx, dto.CreateEventRequest{Name: "Charity One", CurrencyCode: "EUR"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Contains(err.Error(), "fundraising event with name 'Charity One' already exists")
	suite.mockEventRepo.AssertNotCalled(suite.T(), "SaveEvent")
}

func (suite *EventServiceTestSuite) TestCreateEvent_UnknownCurrency() {
	ctx := context.Background()

	suite.mockEventRepo.On("ExistsEventByName", ctx, "Charity One").Return(false, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "ZZZ").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateEvent(ctx, dto.CreateEventRequest{Name: "Charity One", CurrencyCode: "ZZZ"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), "currency 'ZZZ' not found or unsupported")
	suite.mockEventRepo.AssertNotCalled(suite.T(), "SaveEvent")
}

func (suite *EventServiceTestSuite) TestFinancialReport_Success() {
	ctx := context.Background()
	events := reportEvents()

	suite.mockEventRepo.On("ListEvents", ctx, mock.MatchedBy(func(p pagination.Params) bool {
		return p.Page == 0 && p.Size == 10 && p.SortBy == "balance" && p.Direction == pagination.Desc
	})).Return(events, int64(2), nil).Once()

	got, total, err := suite.service.FinancialReport(ctx, 0, 10, "balance", "desc")

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.Equal(int64(2), total)

	// Display balances round half-up to 2 decimal places.
	report := dto.ToFinancialReportResponse(got, 0, 10, total)
	suite.True(report.Entries[0].Amount.Equal(decimal.NewFromFloat(2048.68)))
	suite.True(report.Entries[1].Amount.Equal(decimal.NewFromFloat(512.64)))
}

func (suite *EventServiceTestSuite) TestFinancialReport_UnsupportedSortField() {
	ctx := context.Background()

	_, _, err := suite.service.FinancialReport(ctx, 0, 10, "currency", "asc")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "unsupported sort field 'currency'")
	suite.mockEventRepo.AssertNotCalled(suite.T(), "ListEvents")
}

func (suite *EventServiceTestSuite) TestHTMLReport_RendersRows() {
	ctx := context.Background()

	suite.mockEventRepo.On("ListAllEvents", ctx, "id", pagination.Asc).Return(reportEvents(), nil).Once()

	html, err := suite.service.HTMLReport(ctx, "id", "asc")

	suite.Require().NoError(err)
	suite.Contains(html, "Fundraising Events Report")
	suite.Contains(html, "<td>Charity One</td>")
	suite.Contains(html, "<td>2048.68</td>")
	suite.Contains(html, "<td>GBP</td>")
}

func (suite *EventServiceTestSuite) TestHTMLReport_EscapesEventNames() {
	ctx := context.Background()
	events := []domain.FundraisingEvent{
		{EventID: 1, Name: "<script>alert(1)</script>", CurrencyCode: "EUR", AccountBalance: decimal.NewFromInt(1)},
	}

	suite.mockEventRepo.On("ListAllEvents", ctx, "id", pagination.Asc).Return(events, nil).Once()

	html, err := suite.service.HTMLReport(ctx, "id", "asc")

	suite.Require().NoError(err)
	suite.NotContains(html, "<script>alert(1)</script>")
	suite.Contains(html, "&lt;script&gt;")
}

func (suite *EventServiceTestSuite) TestExportFinancialReport_XLSX() {
	ctx := context.Background()

	suite.mockEventRepo.On("ListAllEvents", ctx, "name", pagination.Asc).Return(reportEvents(), nil).Once()

	data, contentType, err := suite.service.ExportFinancialReport(ctx, "xlsx", "name", "asc")

	suite.Require().NoError(err)
	suite.NotEmpty(data)
	suite.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)
}

func (suite *EventServiceTestSuite) TestExportFinancialReport_PDF() {
	ctx := context.Background()

	suite.mockEventRepo.On("ListAllEvents", ctx, "id", pagination.Asc).Return(reportEvents(), nil).Once()

	data, contentType, err := suite.service.ExportFinancialReport(ctx, "pdf", "id", "asc")

	suite.Require().NoError(err)
	suite.NotEmpty(data)
	suite.Equal("application/pdf", contentType)
}

func (suite *EventServiceTestSuite) TestExportFinancialReport_UnknownFormat() {
	ctx := context.Background()

	suite.mockEventRepo.On("ListAllEvents", ctx, "id", pagination.Asc).Return(reportEvents(), nil).Once()

	_, _, err := suite.service.ExportFinancialReport(ctx, "csv", "id", "asc")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "unsupported export format 'csv'")
}

func TestEventServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}
