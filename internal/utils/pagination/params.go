package pagination

import (
	"fmt"
	"strings"

	"collectbox/internal/apperrors"
)

// Direction is a normalised sort direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

const (
	// DefaultPage is the first (zero-based) page.
	DefaultPage = 0
	// DefaultSize is the page size used when the caller does not specify one.
	DefaultSize = 10
	// MaxSize caps the page size to keep listings bounded.
	MaxSize = 100
)

// Params carries validated pagination and sorting parameters.
type Params struct {
	Page      int
	Size      int
	SortBy    string
	Direction Direction
}

// New validates the raw pagination inputs and returns normalised Params.
// sortBy must be one of allowedSortFields; direction is case-insensitive.
func New(page, size int, sortBy, direction string, allowedSortFields ...string) (Params, error) {
	if page < 0 {
		return Params{}, fmt.Errorf("%w: page index must not be negative", apperrors.ErrValidation)
	}
	if size <= 0 || size > MaxSize {
		return Params{}, fmt.Errorf("%w: page size must be between 1 and %d", apperrors.ErrValidation, MaxSize)
	}

	dir, err := ParseDirection(direction)
	if err != nil {
		return Params{}, err
	}

	found := false
	for _, f := range allowedSortFields {
		if strings.EqualFold(f, sortBy) {
			sortBy = f
			found = true
			break
		}
	}
	if !found {
		return Params{}, fmt.Errorf("%w: unsupported sort field '%s'", apperrors.ErrValidation, sortBy)
	}

	return Params{Page: page, Size: size, SortBy: sortBy, Direction: dir}, nil
}

// ParseDirection normalises a sort direction string.
func ParseDirection(direction string) (Direction, error) {
	switch strings.ToLower(direction) {
	case "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	default:
		return "", fmt.Errorf("%w: sort direction must be 'asc' or 'desc'", apperrors.ErrValidation)
	}
}

// Offset returns the row offset for the page.
func (p Params) Offset() int {
	return p.Page * p.Size
}

// Limit returns the row limit for the page.
func (p Params) Limit() int {
	return p.Size
}
