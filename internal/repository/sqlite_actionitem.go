package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/notedir/internal/db"
	"github.com/alexanderramin/notedir/internal/domain"
)

const actionItemColumns = `id, description, completed, source_note_id, created_at`

// actionItemSortColumns whitelists the columns an action item listing may
// order by. Anything else falls back to newest-first.
var actionItemSortColumns = map[string]bool{
	"created_at":  true,
	"description": true,
	"completed":   true,
	"id":          true,
}

// SQLiteActionItemRepo implements ActionItemRepo using a SQLite database.
type SQLiteActionItemRepo struct {
	db db.DBTX
}

// NewSQLiteActionItemRepo creates a new SQLiteActionItemRepo.
func NewSQLiteActionItemRepo(conn db.DBTX) *SQLiteActionItemRepo {
	return &SQLiteActionItemRepo{db: conn}
}

func (r *SQLiteActionItemRepo) Create(ctx context.Context, a *domain.ActionItem) error {
	query := `INSERT INTO action_items (id, description, completed, source_note_id, created_at)
		VALUES (?, ?, ?, ?, ?)`
	var sourceNoteID any
	if a.SourceNoteID != nil {
		sourceNoteID = *a.SourceNoteID
	}
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Description,
		boolToInt(a.Completed),
		sourceNoteID,
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting action item: %w", err)
	}
	return nil
}

func (r *SQLiteActionItemRepo) GetByID(ctx context.Context, id string) (*domain.ActionItem, error) {
	query := `SELECT ` + actionItemColumns + ` FROM action_items WHERE id = ?`
	return r.scanActionItem(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteActionItemRepo) List(ctx context.Context, f ActionItemFilter) ([]*domain.ActionItem, error) {
	where := ""
	var args []any
	if f.Completed != nil {
		where = ` WHERE completed = ?`
		args = append(args, boolToInt(*f.Completed))
	}

	query := `SELECT ` + actionItemColumns + ` FROM action_items` + where +
		` ORDER BY ` + actionItemOrderClause(f.Sort) + ` LIMIT ? OFFSET ?`
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing action items: %w", err)
	}
	defer rows.Close()
	return r.scanActionItems(rows)
}

func (r *SQLiteActionItemRepo) ListBySourceNote(ctx context.Context, noteID string) ([]*domain.ActionItem, error) {
	query := `SELECT ` + actionItemColumns + ` FROM action_items
		WHERE source_note_id = ? ORDER BY created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query, noteID)
	if err != nil {
		return nil, fmt.Errorf("listing action items by source note: %w", err)
	}
	defer rows.Close()
	return r.scanActionItems(rows)
}

func (r *SQLiteActionItemRepo) Update(ctx context.Context, a *domain.ActionItem) error {
	query := `UPDATE action_items SET description = ?, completed = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, a.Description, boolToInt(a.Completed), a.ID)
	if err != nil {
		return fmt.Errorf("updating action item: %w", err)
	}
	return nil
}

func (r *SQLiteActionItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM action_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting action item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting action item: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("action item: %w", ErrNotFound)
	}
	return nil
}

// actionItemOrderClause translates an API sort token ("description",
// "-created_at", ...) into an ORDER BY clause against the whitelist.
func actionItemOrderClause(sort string) string {
	direction := "ASC"
	column := sort
	if strings.HasPrefix(sort, "-") {
		direction = "DESC"
		column = sort[1:]
	}
	if !actionItemSortColumns[column] {
		column, direction = "created_at", "DESC"
	}
	return column + " " + direction + ", id ASC"
}

func (r *SQLiteActionItemRepo) scanActionItem(row *sql.Row) (*domain.ActionItem, error) {
	var a domain.ActionItem
	var completedInt int
	var sourceNoteID sql.NullString
	var createdAtStr string

	err := row.Scan(&a.ID, &a.Description, &completedInt, &sourceNoteID, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("action item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning action item: %w", err)
	}
	return r.populateActionItem(&a, completedInt, sourceNoteID, createdAtStr)
}

func (r *SQLiteActionItemRepo) scanActionItems(rows *sql.Rows) ([]*domain.ActionItem, error) {
	var items []*domain.ActionItem
	for rows.Next() {
		var a domain.ActionItem
		var completedInt int
		var sourceNoteID sql.NullString
		var createdAtStr string

		if err := rows.Scan(&a.ID, &a.Description, &completedInt, &sourceNoteID, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning action item row: %w", err)
		}
		item, err := r.populateActionItem(&a, completedInt, sourceNoteID, createdAtStr)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating action items: %w", err)
	}
	return items, nil
}

func (r *SQLiteActionItemRepo) populateActionItem(
	a *domain.ActionItem,
	completedInt int,
	sourceNoteID sql.NullString,
	createdAtStr string,
) (*domain.ActionItem, error) {
	a.Completed = intToBool(completedInt)
	if sourceNoteID.Valid {
		s := sourceNoteID.String
		a.SourceNoteID = &s
	}
	var err error
	a.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return a, nil
}
