package result

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "exam-registry-api/internal/domain/result"
)

var resultColumns = []string{"id", "title", "description", "created_at", "updated_at", "deleted_at"}

func newMock(t *testing.T) (pgxmock.PgxPoolIface, domain.Repository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewRepository(mock)
}

func strPtr(s string) *string { return &s }

func TestCreateResult_ReturnsFreshRow(t *testing.T) {
	mock, repo := newMock(t)

	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(InsertResult)).
		WithArgs("Math", (*string)(nil)).
		WillReturnRows(pgxmock.NewRows(resultColumns).AddRow(
			uint64(1), "Math", nil, now, now, nil,
		))

	r, err := repo.CreateResult(context.Background(), domain.Result{Title: "Math"})
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.Equal(t, domain.ID(1), r.ID)
	assert.Equal(t, "Math", r.Title)
	assert.Nil(t, r.Description)
	assert.Equal(t, r.CreatedAt, r.UpdatedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchResultByID_ExcludesSoftDeleted(t *testing.T) {
	mock, repo := newMock(t)

	// a soft-deleted row is filtered by the statement itself
	mock.ExpectQuery(regexp.QuoteMeta(SelectResultByID)).
		WithArgs(uint64(8)).
		WillReturnRows(pgxmock.NewRows(resultColumns))

	r, err := repo.FetchResultByID(context.Background(), 8)
	require.NoError(t, err)
	assert.Nil(t, r)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchResults_NewestFirst(t *testing.T) {
	mock, repo := newMock(t)

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta(SelectResults)).
		WillReturnRows(pgxmock.NewRows(resultColumns).
			AddRow(uint64(2), "Physics", strPtr("2nd wave"), now, now, nil).
			AddRow(uint64(1), "Math", nil, now.Add(-time.Hour), now.Add(-time.Hour), nil))

	rs, err := repo.FetchResults(context.Background())
	require.NoError(t, err)

	require.Len(t, rs, 2)
	assert.Equal(t, "Physics", rs[0].Title)
	assert.Equal(t, "Math", rs[1].Title)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateResult_PartialPatch(t *testing.T) {
	mock, repo := newMock(t)

	title := "Mathematics"
	p := domain.Patch{Title: &title}
	sql, _ := BuildUpdateQuery(1, p)

	now := time.Now().UTC()
	mock.ExpectExec(regexp.QuoteMeta(sql)).
		WithArgs("Mathematics", uint64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery(regexp.QuoteMeta(SelectResultByID)).
		WithArgs(uint64(1)).
		WillReturnRows(pgxmock.NewRows(resultColumns).AddRow(
			uint64(1), "Mathematics", nil, now.Add(-time.Hour), now, nil,
		))

	r, err := repo.UpdateResult(context.Background(), 1, p)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "Mathematics", r.Title)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteResult_AlreadyDeleted(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(SoftDeleteResultByID)).
		WithArgs(uint64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.DeleteResult(context.Background(), 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsActive(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(SelectResultActive)).
		WithArgs(uint64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta(SelectResultActive)).
		WithArgs(uint64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := repo.ExistsActive(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsActive(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}
