package envelope

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name        string
		total       uint64
		page, limit int
		wantPages   uint64
		wantNext    bool
		wantPrev    bool
	}{
		{name: "empty set", total: 0, page: 1, limit: 10, wantPages: 0},
		{name: "single partial page", total: 7, page: 1, limit: 10, wantPages: 1},
		{name: "exact fit", total: 20, page: 2, limit: 10, wantPages: 2, wantPrev: true},
		{name: "middle page", total: 25, page: 2, limit: 10, wantPages: 3, wantNext: true, wantPrev: true},
		{name: "last page with remainder", total: 25, page: 3, limit: 10, wantPages: 3, wantPrev: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.total, tt.page, tt.limit)

			assert.Equal(t, tt.total, p.TotalRecords)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.wantNext, p.HasNext)
			assert.Equal(t, tt.wantPrev, p.HasPrev)
		})
	}
}

func TestEnvelope_JSONShape(t *testing.T) {
	t.Run("error omits data and pagination", func(t *testing.T) {
		b, err := json.Marshal(Error("boom"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"error","message":"boom"}`, string(b))
	})

	t.Run("success omits empty message", func(t *testing.T) {
		b, err := json.Marshal(Success("", map[string]any{"id": 1}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"success","data":{"id":1}}`, string(b))
	})

	t.Run("empty slice still renders as data", func(t *testing.T) {
		b, err := json.Marshal(SuccessPage([]string{}, NewPagination(0, 1, 10)))
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(b, &m))
		_, ok := m["data"]
		assert.True(t, ok)
	})
}
