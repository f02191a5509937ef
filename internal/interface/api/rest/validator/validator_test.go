package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	resultDTO "exam-registry-api/internal/interface/api/rest/dto/result"
	userDTO "exam-registry-api/internal/interface/api/rest/dto/user"
)

func TestMessage_DeterministicOrder(t *testing.T) {
	msg := Message(map[string]string{
		"name":  "name is required",
		"image": "image is required",
	})
	assert.Equal(t, "image: image is required; name: name is required", msg)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	for _, bad := range []string{"0", "-1", "abc", "", "1.5"} {
		_, err = ParseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestValidateListQuery_Defaults(t *testing.T) {
	f, errs := ValidateListQuery(ListQuery{})
	require.Nil(t, errs)

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.Limit)
	assert.False(t, f.IncludeDeleted)
	assert.Empty(t, f.Search)
	assert.Nil(t, f.FromDate)
	assert.Nil(t, f.ToDate)
}

func TestValidateListQuery(t *testing.T) {
	tests := []struct {
		name    string
		q       ListQuery
		wantKey string
	}{
		{name: "page zero", q: ListQuery{Page: "0"}, wantKey: "page"},
		{name: "page garbage", q: ListQuery{Page: "one"}, wantKey: "page"},
		{name: "limit too large", q: ListQuery{Limit: "101"}, wantKey: "limit"},
		{name: "limit zero", q: ListQuery{Limit: "0"}, wantKey: "limit"},
		{name: "bad boolean", q: ListQuery{IncludeDeleted: "maybe"}, wantKey: "include_deleted"},
		{name: "bad from_date", q: ListQuery{FromDate: "yesterday"}, wantKey: "from_date"},
		{name: "bad to_date", q: ListQuery{ToDate: "31-12-2025"}, wantKey: "to_date"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, errs := ValidateListQuery(tt.q)
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.wantKey)
		})
	}
}

func TestValidateListQuery_FullSet(t *testing.T) {
	f, errs := ValidateListQuery(ListQuery{
		Page:           "3",
		Limit:          "50",
		IncludeDeleted: "true",
		Search:         "  jane  ",
		FromDate:       "2025-01-01",
		ToDate:         "2025-12-31 23:59:59",
	})
	require.Nil(t, errs)

	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 50, f.Limit)
	assert.True(t, f.IncludeDeleted)
	assert.Equal(t, "jane", f.Search)
	require.NotNil(t, f.FromDate)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), f.FromDate.UTC())
	require.NotNil(t, f.ToDate)
}

func TestValidateCreateUser(t *testing.T) {
	longName := make([]byte, 0, 129)
	for i := 0; i < 129; i++ {
		longName = append(longName, 'a')
	}

	tests := []struct {
		name     string
		req      userDTO.CreateRequest
		wantKeys []string
	}{
		{
			name:     "missing everything",
			req:      userDTO.CreateRequest{},
			wantKeys: []string{"name", "image"},
		},
		{
			name:     "blank name",
			req:      userDTO.CreateRequest{Name: "   ", Image: "x.png"},
			wantKeys: []string{"name"},
		},
		{
			name:     "name too long",
			req:      userDTO.CreateRequest{Name: string(longName), Image: "x.png"},
			wantKeys: []string{"name"},
		},
		{
			name:     "bad take_date",
			req:      userDTO.CreateRequest{Name: "Jane", Image: "x.png", TakeDate: strPtr("soon")},
			wantKeys: []string{"take_date"},
		},
		{
			name:     "zero result_id",
			req:      userDTO.CreateRequest{Name: "Jane", Image: "x.png", ResultID: u64Ptr(0)},
			wantKeys: []string{"result_id"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCreateUser(tt.req)
			require.NotNil(t, errs)
			for _, k := range tt.wantKeys {
				assert.Contains(t, errs, k)
			}
		})
	}

	t.Run("valid", func(t *testing.T) {
		errs := ValidateCreateUser(userDTO.CreateRequest{
			Name:     "Jane",
			Image:    "x.png",
			TakeDate: strPtr("2025-06-01"),
			ResultID: u64Ptr(2),
		})
		assert.Nil(t, errs)
	})
}

func TestValidateUpdateUser(t *testing.T) {
	t.Run("empty patch", func(t *testing.T) {
		errs := ValidateUpdateUser(userDTO.UpdateRequest{})
		require.NotNil(t, errs)
		assert.Contains(t, errs, "body")
	})

	t.Run("blank name", func(t *testing.T) {
		errs := ValidateUpdateUser(userDTO.UpdateRequest{Name: strPtr("  ")})
		require.NotNil(t, errs)
		assert.Contains(t, errs, "name")
	})

	t.Run("blank image", func(t *testing.T) {
		errs := ValidateUpdateUser(userDTO.UpdateRequest{Image: strPtr("")})
		require.NotNil(t, errs)
		assert.Contains(t, errs, "image")
	})

	t.Run("nulling a field alone is valid", func(t *testing.T) {
		errs := ValidateUpdateUser(userDTO.UpdateRequest{PhoneSet: true})
		assert.Nil(t, errs)
	})
}

func TestValidateCreateResult(t *testing.T) {
	errs := ValidateCreateResult(resultDTO.CreateRequest{Title: "  "})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "title")

	errs = ValidateCreateResult(resultDTO.CreateRequest{Title: "Mathematics"})
	assert.Nil(t, errs)
}

func strPtr(s string) *string { return &s }
func u64Ptr(v uint64) *uint64 { return &v }
