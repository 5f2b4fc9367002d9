package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/piwi3910/DrywallCalc/internal/model"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS projects (
    id           TEXT PRIMARY KEY,
    client_name  TEXT NOT NULL,
    service_type TEXT NOT NULL,
    created_at   INTEGER NOT NULL,
    total_value  REAL NOT NULL,
    payload_json TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_projects_created_at ON projects (created_at);
`

// SQLiteStore keeps one row per project. Searchable columns are stored next
// to the full JSON document.
type SQLiteStore struct {
	sqlDB *sql.DB
}

// OpenSQLite opens and migrates a project database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(sqliteSchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SQLiteStore{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *SQLiteStore) SaveProject(ctx context.Context, p model.Project) error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("project id is required")
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO projects (id, client_name, service_type, created_at, total_value, payload_json)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		    client_name = excluded.client_name,
		    service_type = excluded.service_type,
		    created_at = excluded.created_at,
		    total_value = excluded.total_value,
		    payload_json = excluded.payload_json`,
		p.ID,
		p.Client.Name,
		p.Type,
		p.CreatedAt.UnixMilli(),
		p.Totals.TotalValue,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Project(ctx context.Context, id string) (model.Project, bool, error) {
	var payload string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT payload_json FROM projects WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Project{}, false, nil
		}
		return model.Project{}, false, fmt.Errorf("get project: %w", err)
	}
	p, err := decodeProject(payload)
	if err != nil {
		return model.Project{}, false, err
	}
	return p, true, nil
}

func (s *SQLiteStore) Projects(ctx context.Context) ([]model.Project, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT payload_json FROM projects ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		p, err := decodeProject(payload)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (s *SQLiteStore) DeleteProject(ctx context.Context, id string) (bool, error) {
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return n > 0, nil
}

func decodeProject(payload string) (model.Project, error) {
	var p model.Project
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return model.Project{}, fmt.Errorf("decode project: %w", err)
	}
	return p, nil
}
