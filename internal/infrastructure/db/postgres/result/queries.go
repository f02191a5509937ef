package result

import (
	"strconv"
	"strings"

	domain "exam-registry-api/internal/domain/result"
)

const (
	SelectResultByID = `
		SELECT id, title, description, created_at, updated_at, deleted_at
		FROM results
		WHERE id = $1 AND deleted_at IS NULL
	`
	SelectResults = `
		SELECT id, title, description, created_at, updated_at, deleted_at
		FROM results
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`
	InsertResult = `
		INSERT INTO results (title, description)
		VALUES ($1, $2)
		RETURNING
		  id, title, description, created_at, updated_at, deleted_at
	`
	SoftDeleteResultByID = `
		UPDATE results
		SET deleted_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`
	SelectResultActive = `SELECT EXISTS (SELECT 1 FROM results WHERE id = $1 AND deleted_at IS NULL)`
)

// BuildUpdateQuery rewrites only the columns the patch carries, plus
// updated_at, and refuses soft-deleted rows.
func BuildUpdateQuery(id domain.ID, p domain.Patch) (string, []any) {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if p.Title != nil {
		args = append(args, *p.Title)
		sets = append(sets, "title = $"+strconv.Itoa(len(args)))
	}
	if p.DescriptionSet {
		args = append(args, p.Description)
		sets = append(sets, "description = $"+strconv.Itoa(len(args)))
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, uint64(id))
	sql := "UPDATE results SET " + strings.Join(sets, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)) + " AND deleted_at IS NULL"

	return sql, args
}
