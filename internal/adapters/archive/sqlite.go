// Package archive provides a SQLite implementation of the archive port.
// Completed tasks moved out of the live task file land here so the task
// file stays small without losing history.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/kherrera/taskdeck/internal/domain"
	"github.com/kherrera/taskdeck/internal/ports"
)

// sqliteArchive implements the ports.Archive interface using SQLite.
type sqliteArchive struct {
	db *sql.DB
}

// Ensure sqliteArchive implements ports.Archive.
var _ ports.Archive = (*sqliteArchive)(nil)

// Open creates a new SQLite archive instance at dbPath.
func Open(dbPath string) (ports.Archive, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive database: %w", err)
	}

	a := &sqliteArchive{db: db}
	if err := a.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate archive database: %w", err)
	}
	return a, nil
}

// OpenMemory creates an in-memory archive for testing.
func OpenMemory() (ports.Archive, error) {
	return Open(":memory:")
}

// Migrate creates the archive schema.
func (a *sqliteArchive) Migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS archived_tasks (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		due_date TEXT,
		priority TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TEXT NOT NULL,
		completed_at TEXT,
		archived_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_archived_tasks_archived ON archived_tasks(archived_at);
	`

	if _, err := a.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// Store archives a task and returns the identifier assigned to it.
func (a *sqliteArchive) Store(ctx context.Context, task *domain.Task) (string, error) {
	query := `
		INSERT INTO archived_tasks (id, title, description, due_date, priority, status, created_at, completed_at, archived_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	id := uuid.New().String()
	archivedAt := time.Now().Format(domain.TimestampLayout)

	_, err := a.db.ExecContext(ctx, query,
		id,
		task.Title,
		task.Description,
		nullable(task.DueDate),
		task.Priority.Name(),
		task.Status.Display(),
		task.CreatedAt,
		nullable(task.CompletedAt),
		archivedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to archive task: %w", err)
	}
	return id, nil
}

// List returns all archived tasks, most recently archived first.
func (a *sqliteArchive) List(ctx context.Context) ([]*ports.ArchivedTask, error) {
	query := `
		SELECT id, title, description, due_date, priority, status, created_at, completed_at, archived_at
		FROM archived_tasks
		ORDER BY archived_at DESC, id
	`

	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query archived tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*ports.ArchivedTask
	for rows.Next() {
		var (
			item        ports.ArchivedTask
			description sql.NullString
			dueDate     sql.NullString
			priority    string
			status      string
			completedAt sql.NullString
		)

		err := rows.Scan(
			&item.ID,
			&item.Task.Title,
			&description,
			&dueDate,
			&priority,
			&status,
			&item.Task.CreatedAt,
			&completedAt,
			&item.ArchivedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan archived task: %w", err)
		}

		item.Task.Description = description.String
		item.Task.DueDate = dueDate.String
		item.Task.CompletedAt = completedAt.String

		item.Task.Priority, err = domain.ParsePriorityName(priority)
		if err != nil {
			return nil, fmt.Errorf("failed to decode archived task %s: %w", item.ID, err)
		}
		item.Task.Status, err = domain.ParseStatusDisplay(status)
		if err != nil {
			return nil, fmt.Errorf("failed to decode archived task %s: %w", item.ID, err)
		}

		result = append(result, &item)
	}
	return result, rows.Err()
}

// Close closes the database connection.
func (a *sqliteArchive) Close() error {
	return a.db.Close()
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
