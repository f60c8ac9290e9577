package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/notedir/internal/db"
	"github.com/alexanderramin/notedir/internal/domain"
)

const noteColumns = `id, title, content, created_at`

// SQLiteNoteRepo implements NoteRepo using a SQLite database.
type SQLiteNoteRepo struct {
	db db.DBTX
}

// NewSQLiteNoteRepo creates a new SQLiteNoteRepo.
func NewSQLiteNoteRepo(conn db.DBTX) *SQLiteNoteRepo {
	return &SQLiteNoteRepo{db: conn}
}

func (r *SQLiteNoteRepo) Create(ctx context.Context, n *domain.Note) error {
	query := `INSERT INTO notes (id, title, content, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID,
		n.Title,
		n.Content,
		n.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting note: %w", err)
	}
	return nil
}

func (r *SQLiteNoteRepo) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	n, err := r.scanNote(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadTags(ctx, []*domain.Note{n}); err != nil {
		return nil, err
	}
	return n, nil
}

func (r *SQLiteNoteRepo) List(ctx context.Context, offset, limit int) ([]*domain.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes
		ORDER BY created_at DESC, id ASC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	notes, err := r.scanNotes(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadTags(ctx, notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *SQLiteNoteRepo) Search(ctx context.Context, s NoteSearch) ([]*domain.Note, int, error) {
	where := ""
	var whereArgs []any
	if s.Query != "" {
		where = ` WHERE (LOWER(title) LIKE ? ESCAPE '\' OR LOWER(content) LIKE ? ESCAPE '\')`
		pattern := likePattern(s.Query)
		whereArgs = append(whereArgs, pattern, pattern)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM notes` + where
	if err := r.db.QueryRowContext(ctx, countQuery, whereArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting matching notes: %w", err)
	}

	// Ties broken by id ascending so pages are stable across requests.
	var order string
	switch s.Sort {
	case domain.SortCreatedAsc:
		order = `created_at ASC, id ASC`
	case domain.SortTitleAsc:
		order = `title ASC, id ASC`
	default:
		order = `created_at DESC, id ASC`
	}

	query := `SELECT ` + noteColumns + ` FROM notes` + where +
		` ORDER BY ` + order + ` LIMIT ? OFFSET ?`
	args := append(whereArgs, s.Limit, s.Offset)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("searching notes: %w", err)
	}
	defer rows.Close()

	notes, err := r.scanNotes(rows)
	if err != nil {
		return nil, 0, err
	}
	if err := r.loadTags(ctx, notes); err != nil {
		return nil, 0, err
	}
	return notes, total, nil
}

func (r *SQLiteNoteRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("note: %w", ErrNotFound)
	}
	return nil
}

// scanNote scans a single note from a *sql.Row.
func (r *SQLiteNoteRepo) scanNote(row *sql.Row) (*domain.Note, error) {
	var n domain.Note
	var createdAtStr string
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("note: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning note: %w", err)
	}
	return r.populateNote(&n, createdAtStr)
}

// scanNotes scans multiple notes from *sql.Rows.
func (r *SQLiteNoteRepo) scanNotes(rows *sql.Rows) ([]*domain.Note, error) {
	var notes []*domain.Note
	for rows.Next() {
		var n domain.Note
		var createdAtStr string
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning note row: %w", err)
		}
		note, err := r.populateNote(&n, createdAtStr)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}
	return notes, nil
}

func (r *SQLiteNoteRepo) populateNote(n *domain.Note, createdAtStr string) (*domain.Note, error) {
	var err error
	n.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	n.Tags = []string{}
	return n, nil
}

// loadTags fills the Tags slice of each note from the note_tags association.
func (r *SQLiteNoteRepo) loadTags(ctx context.Context, notes []*domain.Note) error {
	if len(notes) == 0 {
		return nil
	}
	ids := make([]any, 0, len(notes))
	byID := make(map[string]*domain.Note, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
		byID[n.ID] = n
	}

	query := `SELECT nt.note_id, t.name FROM note_tags nt
		JOIN tags t ON nt.tag_id = t.id
		WHERE nt.note_id IN (` + placeholders(len(ids)) + `)
		ORDER BY t.name`
	rows, err := r.db.QueryContext(ctx, query, ids...)
	if err != nil {
		return fmt.Errorf("loading note tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var noteID, name string
		if err := rows.Scan(&noteID, &name); err != nil {
			return fmt.Errorf("scanning note tag: %w", err)
		}
		if n, ok := byID[noteID]; ok {
			n.Tags = append(n.Tags, name)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating note tags: %w", err)
	}
	return nil
}
