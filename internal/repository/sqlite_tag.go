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

// ErrDuplicateTag is wrapped when a tag name already exists.
var ErrDuplicateTag = fmt.Errorf("tag already exists")

// SQLiteTagRepo implements TagRepo using a SQLite database.
type SQLiteTagRepo struct {
	db db.DBTX
}

// NewSQLiteTagRepo creates a new SQLiteTagRepo.
func NewSQLiteTagRepo(conn db.DBTX) *SQLiteTagRepo {
	return &SQLiteTagRepo{db: conn}
}

func (r *SQLiteTagRepo) Create(ctx context.Context, t *domain.Tag) error {
	query := `INSERT INTO tags (id, name, created_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, t.ID, t.Name, t.CreatedAt.Format(time.RFC3339))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("tag %q: %w", t.Name, ErrDuplicateTag)
		}
		return fmt.Errorf("inserting tag: %w", err)
	}
	return nil
}

func (r *SQLiteTagRepo) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, created_at FROM tags WHERE id = ?`, id)
	return r.scanTag(row)
}

func (r *SQLiteTagRepo) GetByName(ctx context.Context, name string) (*domain.Tag, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, created_at FROM tags WHERE name = ?`, name)
	return r.scanTag(row)
}

func (r *SQLiteTagRepo) List(ctx context.Context, offset, limit int) ([]*domain.Tag, error) {
	query := `SELECT id, name, created_at FROM tags ORDER BY name ASC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer rows.Close()

	var tags []*domain.Tag
	for rows.Next() {
		var t domain.Tag
		var createdAtStr string
		if err := rows.Scan(&t.ID, &t.Name, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning tag row: %w", err)
		}
		var parseErr error
		t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		tags = append(tags, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}
	return tags, nil
}

func (r *SQLiteTagRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting tag: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting tag: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("tag: %w", ErrNotFound)
	}
	return nil
}

// AttachToNote links a tag to a note. Attaching twice is a no-op.
func (r *SQLiteTagRepo) AttachToNote(ctx context.Context, tagID, noteID string) error {
	query := `INSERT OR IGNORE INTO note_tags (note_id, tag_id) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, noteID, tagID); err != nil {
		return fmt.Errorf("attaching tag to note: %w", err)
	}
	return nil
}

// DetachFromNote unlinks a tag from a note. Detaching an absent link is a no-op.
func (r *SQLiteTagRepo) DetachFromNote(ctx context.Context, tagID, noteID string) error {
	query := `DELETE FROM note_tags WHERE note_id = ? AND tag_id = ?`
	if _, err := r.db.ExecContext(ctx, query, noteID, tagID); err != nil {
		return fmt.Errorf("detaching tag from note: %w", err)
	}
	return nil
}

func (r *SQLiteTagRepo) scanTag(row *sql.Row) (*domain.Tag, error) {
	var t domain.Tag
	var createdAtStr string
	if err := row.Scan(&t.ID, &t.Name, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("tag: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning tag: %w", err)
	}
	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return &t, nil
}
