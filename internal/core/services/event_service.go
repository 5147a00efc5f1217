package services

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"collectbox/internal/apperrors"
	"collectbox/internal/core/domain"
	portsrepo "collectbox/internal/core/ports/repositories"
	portssvc "collectbox/internal/core/ports/services"
	"collectbox/internal/dto"
	"collectbox/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// eventSortFields are the caller-facing sort fields for event reports.
var eventSortFields = []string{"id", "name", "balance"}

// EventService implements the fundraising event account operations.
type EventService struct {
	eventRepo    portsrepo.EventRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewEventService creates a new EventService.
func NewEventService(eventRepo portsrepo.EventRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade) *EventService {
	return &EventService{
		eventRepo:    eventRepo,
		currencyRepo: currencyRepo,
	}
}

// Ensure implementation matches interface
var _ portssvc.EventSvcFacade = (*EventService)(nil)

// CreateEvent creates a fundraising event with a zero account balance.
// Event names are unique.
func (s *EventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*domain.FundraisingEvent, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: event name must not be blank", apperrors.ErrValidation)
	}

	exists, err := s.eventRepo.ExistsEventByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check event name '%s': %w", name, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: fundraising event with name '%s' already exists", apperrors.ErrDuplicate, name)
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency '%s' not found or unsupported", apperrors.ErrNotFound, req.CurrencyCode)
		}
		return nil, fmt.Errorf("failed to resolve currency '%s': %w", req.CurrencyCode, err)
	}

	now := time.Now()
	event := domain.FundraisingEvent{
		Name:           name,
		CurrencyCode:   currency.CurrencyCode,
		AccountBalance: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	saved, err := s.eventRepo.SaveEvent(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("failed to create fundraising event '%s': %w", name, err)
	}
	return saved, nil
}

// FinancialReport returns a sorted page of all events.
func (s *EventService) FinancialReport(ctx context.Context, page, size int, sortBy, direction string) ([]domain.FundraisingEvent, int64, error) {
	params, err := pagination.New(page, size, sortBy, direction, eventSortFields...)
	if err != nil {
		return nil, 0, err
	}

	events, total, err := s.eventRepo.ListEvents(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list fundraising events: %w", err)
	}
	return events, total, nil
}

// reportTemplate renders the unpaged financial report.
var reportTemplate = template.Must(template.New("report").Parse(`<html><head><title>Fundraising Report</title>
<style>
    body { font-family: Arial, sans-serif; margin: 20px; }
    h1 { color: #333; }
    table { border-collapse: collapse; width: 100%; }
    th, td { border: 1px solid #ccc; padding: 8px; text-align: left; }
    th { background-color: #f2f2f2; }
    tr:nth-child(even) { background-color: #fafafa; }
</style>
</head><body>
<h1>Fundraising Events Report</h1>
<table>
<tr>
    <th>Fundraising event name</th>
    <th>Amount</th>
    <th>Currency</th>
</tr>
{{- range . }}
<tr><td>{{ .EventName }}</td><td>{{ .Amount }}</td><td>{{ .CurrencyCode }}</td></tr>
{{- end }}
</table></body></html>
`))

// HTMLReport renders every event as an HTML table, sorted as requested.
func (s *EventService) HTMLReport(ctx context.Context, sortBy, direction string) (string, error) {
	events, err := s.listAllSorted(ctx, sortBy, direction)
	if err != nil {
		return "", err
	}

	rows := make([]dto.FinancialReportEntry, len(events))
	for i, e := range events {
		rows[i] = dto.FinancialReportEntry{
			EventName:    e.Name,
			Amount:       e.DisplayBalance(),
			CurrencyCode: e.CurrencyCode,
		}
	}

	var sb strings.Builder
	if err := reportTemplate.Execute(&sb, rows); err != nil {
		return "", fmt.Errorf("failed to render HTML report: %w", err)
	}
	return sb.String(), nil
}

// ExportFinancialReport renders the unpaged report as a downloadable file.
func (s *EventService) ExportFinancialReport(ctx context.Context, format, sortBy, direction string) ([]byte, string, error) {
	events, err := s.listAllSorted(ctx, sortBy, direction)
	if err != nil {
		return nil, "", err
	}

	switch strings.ToLower(format) {
	case "xlsx":
		data, err := buildReportXLSX(events)
		if err != nil {
			return nil, "", fmt.Errorf("failed to build XLSX report: %w", err)
		}
		return data, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	case "pdf":
		data, err := buildReportPDF(events)
		if err != nil {
			return nil, "", fmt.Errorf("failed to build PDF report: %w", err)
		}
		return data, "application/pdf", nil
	default:
		return nil, "", fmt.Errorf("%w: unsupported export format '%s'", apperrors.ErrValidation, format)
	}
}

func (s *EventService) listAllSorted(ctx context.Context, sortBy, direction string) ([]domain.FundraisingEvent, error) {
	// Reuse the pagination validator for the sort field and direction.
	params, err := pagination.New(pagination.DefaultPage, pagination.DefaultSize, sortBy, direction, eventSortFields...)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListAllEvents(ctx, params.SortBy, params.Direction)
	if err != nil {
		return nil, fmt.Errorf("failed to list fundraising events: %w", err)
	}
	return events, nil
}
