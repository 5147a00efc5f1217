package pagination_test

import (
	"testing"

	"collectbox/internal/apperrors"
	"collectbox/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	allowed := []string{"id", "name", "balance"}

	tests := []struct {
		name      string
		page      int
		size      int
		sortBy    string
		direction string
		wantErr   string
		want      pagination.Params
	}{
		{
			name: "valid ascending", page: 0, size: 10, sortBy: "name", direction: "asc",
			want: pagination.Params{Page: 0, Size: 10, SortBy: "name", Direction: pagination.Asc},
		},
		{
			name: "direction and sort field are case-insensitive", page: 2, size: 25, sortBy: "BALANCE", direction: "DESC",
			want: pagination.Params{Page: 2, Size: 25, SortBy: "balance", Direction: pagination.Desc},
		},
		{
			name: "negative page", page: -1, size: 10, sortBy: "id", direction: "asc",
			wantErr: "page index must not be negative",
		},
		{
			name: "zero size", page: 0, size: 0, sortBy: "id", direction: "asc",
			wantErr: "page size must be between 1 and 100",
		},
		{
			name: "oversized page", page: 0, size: 101, sortBy: "id", direction: "asc",
			wantErr: "page size must be between 1 and 100",
		},
		{
			name: "bad direction", page: 0, size: 10, sortBy: "id", direction: "upwards",
			wantErr: "sort direction must be 'asc' or 'desc'",
		},
		{
			name: "unsupported sort field", page: 0, size: 10, sortBy: "color", direction: "asc",
			wantErr: "unsupported sort field 'color'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := pagination.New(tt.page, tt.size, tt.sortBy, tt.direction, allowed...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, params)
		})
	}
}

func TestParams_Offset(t *testing.T) {
	p := pagination.Params{Page: 3, Size: 20}
	assert.Equal(t, 60, p.Offset())
	assert.Equal(t, 20, p.Limit())
}
