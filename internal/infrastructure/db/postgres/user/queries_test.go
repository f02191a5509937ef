package user

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "exam-registry-api/internal/domain/user"
)

func TestBuildListQuery_Defaults(t *testing.T) {
	dataSQL, countSQL, dataArgs, countArgs := BuildListQuery(domain.ListFilter{Page: 1, Limit: 10})

	assert.Contains(t, dataSQL, "WHERE (r.deleted_at IS NULL OR r.id IS NULL)")
	assert.Contains(t, dataSQL, "u.deleted_at IS NULL")
	assert.Contains(t, dataSQL, "ORDER BY u.created_at DESC LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{10, 0}, dataArgs)

	assert.Contains(t, countSQL, "SELECT COUNT(*)")
	assert.NotContains(t, countSQL, "LIMIT")
	assert.NotContains(t, countSQL, "OFFSET")
	assert.Empty(t, countArgs)
}

func TestBuildListQuery_IncludeDeleted(t *testing.T) {
	dataSQL, countSQL, _, _ := BuildListQuery(domain.ListFilter{Page: 1, Limit: 10, IncludeDeleted: true})

	assert.NotContains(t, dataSQL, "u.deleted_at IS NULL")
	assert.NotContains(t, countSQL, "u.deleted_at IS NULL")

	// the joined-result validity check never goes away
	assert.Contains(t, dataSQL, "(r.deleted_at IS NULL OR r.id IS NULL)")
	assert.Contains(t, countSQL, "(r.deleted_at IS NULL OR r.id IS NULL)")
}

func TestBuildListQuery_SearchGroupedAndParenthesized(t *testing.T) {
	dataSQL, countSQL, dataArgs, countArgs := BuildListQuery(domain.ListFilter{
		Page:   2,
		Limit:  25,
		Search: "ana",
	})

	want := "AND (u.name ILIKE $1 OR u.phone ILIKE $1 OR u.program ILIKE $1)"
	assert.Contains(t, dataSQL, want)
	assert.Contains(t, countSQL, want)

	assert.Equal(t, []any{"%ana%"}, countArgs)
	assert.Equal(t, []any{"%ana%", 25, 25}, dataArgs)
}

func TestBuildListQuery_DateBounds(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)

	dataSQL, countSQL, dataArgs, countArgs := BuildListQuery(domain.ListFilter{
		Page:     1,
		Limit:    10,
		FromDate: &from,
		ToDate:   &to,
	})

	assert.Contains(t, dataSQL, "u.take_date >= $1")
	assert.Contains(t, dataSQL, "u.take_date <= $2")
	assert.Equal(t, []any{from, to}, countArgs)
	assert.Equal(t, []any{from, to, 10, 0}, dataArgs)
	assert.Contains(t, countSQL, "u.take_date >= $1")
}

func TestBuildListQuery_PredicatesStayInLockStep(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f := domain.ListFilter{
		Page:     3,
		Limit:    20,
		Search:   "math",
		FromDate: &from,
	}

	dataSQL, countSQL, dataArgs, countArgs := BuildListQuery(f)

	// identical WHERE clause in both statements
	wherePos := strings.Index(dataSQL, " WHERE ")
	orderPos := strings.Index(dataSQL, " ORDER BY")
	require.Greater(t, orderPos, wherePos)
	dataWhere := dataSQL[wherePos:orderPos]

	countWherePos := strings.Index(countSQL, " WHERE ")
	require.GreaterOrEqual(t, countWherePos, 0)
	assert.Equal(t, dataWhere, countSQL[countWherePos:])

	// the data args are the count args plus limit/offset
	require.Len(t, dataArgs, len(countArgs)+2)
	assert.Equal(t, countArgs, dataArgs[:len(countArgs)])
	assert.Equal(t, 20, dataArgs[len(dataArgs)-2])
	assert.Equal(t, 40, dataArgs[len(dataArgs)-1])
}

func TestBuildUpdateQuery_OnlySuppliedColumns(t *testing.T) {
	name := "Ana"
	p := domain.Patch{Name: &name}

	sql, args := BuildUpdateQuery(7, p)

	assert.Equal(t, "UPDATE users SET name = $1, updated_at = now() WHERE id = $2 AND deleted_at IS NULL", sql)
	assert.Equal(t, []any{"Ana", uint64(7)}, args)
}

func TestBuildUpdateQuery_NullableFieldsCanBeCleared(t *testing.T) {
	p := domain.Patch{
		PhoneSet:    true, // phone: null
		ResultIDSet: true, // result_id: null
	}

	sql, args := BuildUpdateQuery(3, p)

	assert.Contains(t, sql, "phone = $1")
	assert.Contains(t, sql, "result_id = $2")
	assert.Contains(t, sql, "updated_at = now()")
	assert.Contains(t, sql, "WHERE id = $3 AND deleted_at IS NULL")

	require.Len(t, args, 3)
	assert.Nil(t, args[0])
	assert.Nil(t, args[1])
	assert.Equal(t, uint64(3), args[2])
}

func TestBuildUpdateQuery_FullPatch(t *testing.T) {
	name := "Budi"
	image := "b.png"
	phone := "0812"
	program := "Informatics"
	take := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	rid := uint64(4)

	p := domain.Patch{
		Name:        &name,
		Image:       &image,
		Phone:       &phone,
		PhoneSet:    true,
		Program:     &program,
		ProgramSet:  true,
		TakeDate:    &take,
		TakeDateSet: true,
		ResultID:    &rid,
		ResultIDSet: true,
	}

	sql, args := BuildUpdateQuery(9, p)

	assert.Equal(t,
		"UPDATE users SET name = $1, phone = $2, program = $3, take_date = $4, image = $5, result_id = $6, updated_at = now() WHERE id = $7 AND deleted_at IS NULL",
		sql,
	)
	require.Len(t, args, 7)
	assert.Equal(t, uint64(9), args[6])
}
