package repositories

import (
	"context"

	"collectbox/internal/core/domain"
	"collectbox/internal/utils/pagination"
)

// EventReader defines read operations for fundraising event data
type EventReader interface {
	// FindEventByID retrieves a specific event by its id.
	FindEventByID(ctx context.Context, eventID int64) (*domain.FundraisingEvent, error)

	// ExistsEventByName reports whether an event with the given name exists.
	ExistsEventByName(ctx context.Context, name string) (bool, error)

	// ListEvents retrieves a sorted page of events plus the total count.
	ListEvents(ctx context.Context, params pagination.Params) ([]domain.FundraisingEvent, int64, error)

	// ListAllEvents retrieves every event, sorted. Used by unpaged reports.
	ListAllEvents(ctx context.Context, sortBy string, direction pagination.Direction) ([]domain.FundraisingEvent, error)
}

// EventWriter defines write operations for fundraising event data
type EventWriter interface {
	// SaveEvent persists a new event and returns it with its generated id.
	SaveEvent(ctx context.Context, event domain.FundraisingEvent) (*domain.FundraisingEvent, error)
}

// EventRepositoryFacade combines all event-related repository interfaces
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}
