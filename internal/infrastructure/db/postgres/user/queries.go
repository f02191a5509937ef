package user

import (
	"strconv"
	"strings"

	domain "exam-registry-api/internal/domain/user"
)

const (
	// Joined column set shared by every user read. The join condition keeps
	// the result association only while the result is alive, so a user row
	// pointing at a soft-deleted result comes back with a NULL result_title.
	listColumns = `u.id, u.name, u.phone, u.program, u.image, u.take_date, u.result_id, r.title AS result_title, u.created_at, u.updated_at, u.deleted_at`

	SelectUserByID = `
		SELECT u.id, u.name, u.phone, u.program, u.image, u.take_date, u.result_id, r.title AS result_title, u.created_at, u.updated_at, u.deleted_at
		FROM users u
		LEFT JOIN results r ON u.result_id = r.id AND r.deleted_at IS NULL
		WHERE u.id = $1
	`
	InsertUser = `
		INSERT INTO users (name, phone, program, image, take_date, result_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	UpdateUserImageByID = `
		UPDATE users
		SET image = $1,
		    updated_at = now()
		WHERE id = $2 AND deleted_at IS NULL
	`
	SoftDeleteUserByID = `
		UPDATE users
		SET deleted_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`
)

// BuildListQuery assembles the data and count statements for a filtered
// listing from one predicate set, so total_records is always computed over
// exactly the universe the page was cut from. The data statement gets two
// extra trailing args for LIMIT/OFFSET.
func BuildListQuery(f domain.ListFilter) (dataSQL, countSQL string, dataArgs, countArgs []any) {
	var where strings.Builder
	args := make([]any, 0, 5)

	// Rows whose referenced result was soft-deleted are excluded outright;
	// an orphan result_id (no row at all) is tolerated.
	where.WriteString(" WHERE (r.deleted_at IS NULL OR r.id IS NULL)")
	if !f.IncludeDeleted {
		where.WriteString(" AND u.deleted_at IS NULL")
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := strconv.Itoa(len(args))
		// One parenthesized OR group, AND'd with the rest of the filter.
		where.WriteString(" AND (u.name ILIKE $" + n + " OR u.phone ILIKE $" + n + " OR u.program ILIKE $" + n + ")")
	}
	if f.FromDate != nil {
		args = append(args, *f.FromDate)
		where.WriteString(" AND u.take_date >= $" + strconv.Itoa(len(args)))
	}
	if f.ToDate != nil {
		args = append(args, *f.ToDate)
		where.WriteString(" AND u.take_date <= $" + strconv.Itoa(len(args)))
	}

	const from = " FROM users u LEFT JOIN results r ON u.result_id = r.id"

	countSQL = "SELECT COUNT(*)" + from + where.String()
	countArgs = args

	limitPos := strconv.Itoa(len(args) + 1)
	offsetPos := strconv.Itoa(len(args) + 2)
	dataSQL = "SELECT " + listColumns + from + where.String() +
		" ORDER BY u.created_at DESC LIMIT $" + limitPos + " OFFSET $" + offsetPos
	dataArgs = append(args[:len(args):len(args)], f.Limit, (f.Page-1)*f.Limit)

	return dataSQL, countSQL, dataArgs, countArgs
}

// BuildUpdateQuery rewrites only the columns the patch carries, plus
// updated_at. The WHERE clause refuses soft-deleted rows so an update can
// never resurrect or silently touch a deleted user.
func BuildUpdateQuery(id domain.ID, p domain.Patch) (string, []any) {
	sets := make([]string, 0, 7)
	args := make([]any, 0, 7)

	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}

	if p.Name != nil {
		set("name", *p.Name)
	}
	if p.PhoneSet {
		set("phone", p.Phone)
	}
	if p.ProgramSet {
		set("program", p.Program)
	}
	if p.TakeDateSet {
		set("take_date", p.TakeDate)
	}
	if p.Image != nil {
		set("image", *p.Image)
	}
	if p.ResultIDSet {
		set("result_id", p.ResultID)
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, uint64(id))
	sql := "UPDATE users SET " + strings.Join(sets, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)) + " AND deleted_at IS NULL"

	return sql, args
}
