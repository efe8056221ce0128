// Package snapshot persists the registry of a completed read phase so the
// next invocation can consult it as a read-only previous-run snapshot. The
// schema cache decision is the only consumer of the loaded data.
package snapshot

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/harrison/manifold/internal/filelock"
	"github.com/harrison/manifold/internal/filespec"
)

//go:embed schema.sql
var schemaSQL string

// Store manages the SQLite database holding the previous run's registry.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open opens (creating if necessary) the snapshot database at dbPath.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create snapshot directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open snapshot database: %w", err)
	}

	// busy_timeout first so subsequent statements wait on locks.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init snapshot schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save replaces the stored registry with files and records a run row
// stamped with a fresh run id. The write is guarded by an advisory file
// lock so concurrent invocations cannot interleave saves.
func (s *Store) Save(ctx context.Context, files filespec.Registry) error {
	if s.dbPath != ":memory:" {
		lock := filelock.New(s.dbPath + ".lock")
		if err := lock.Lock(); err != nil {
			return err
		}
		defer lock.Unlock()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM files"); err != nil {
		return fmt.Errorf("clear previous snapshot: %w", err)
	}

	insert, err := tx.PrepareContext(ctx, `
		INSERT INTO files (
			file_id, project_name, searched_path, relative_path, project_root,
			file_size, modification_time, parse_type, checksum_name, checksum,
			schema_data
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare snapshot insert: %w", err)
	}
	defer insert.Close()

	for id, sf := range files {
		var schemaData any
		if sf.SchemaData != nil {
			encoded, err := json.Marshal(sf.SchemaData)
			if err != nil {
				return fmt.Errorf("encode schema data for %s: %w", id, err)
			}
			schemaData = string(encoded)
		}

		_, err := insert.ExecContext(ctx,
			string(id),
			sf.ProjectName,
			sf.Path.SearchedPath,
			sf.Path.RelativePath,
			sf.Path.ProjectRoot,
			sf.Path.FileSize,
			sf.Path.ModificationTime,
			sf.ParseType.String(),
			sf.Checksum.Name,
			sf.Checksum.Checksum,
			schemaData,
		)
		if err != nil {
			return fmt.Errorf("save snapshot row for %s: %w", id, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO runs (run_id, created_at, file_count) VALUES (?, ?, ?)",
		uuid.NewString(), time.Now().UTC(), len(files))
	if err != nil {
		return fmt.Errorf("record snapshot run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot save: %w", err)
	}
	return nil
}

// Load returns the stored registry. The result is a fresh mapping the
// caller may hold for the duration of a read phase; the store itself is
// never mutated by loading.
func (s *Store) Load(ctx context.Context) (filespec.Registry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT file_id, project_name, searched_path, relative_path,
		       project_root, file_size, modification_time, parse_type,
		       checksum_name, checksum, schema_data
		FROM files`)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	defer rows.Close()

	files := make(filespec.Registry)
	for rows.Next() {
		var (
			id, projectName, searchedPath, relativePath, projectRoot string
			fileSize                                                 int64
			modificationTime                                         float64
			parseType, checksumName, checksum                        string
			schemaData                                               sql.NullString
		)
		if err := rows.Scan(&id, &projectName, &searchedPath, &relativePath,
			&projectRoot, &fileSize, &modificationTime, &parseType,
			&checksumName, &checksum, &schemaData); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}

		sf := &filespec.SourceFile{
			Path: filespec.FilePath{
				SearchedPath:     searchedPath,
				RelativePath:     relativePath,
				ProjectRoot:      projectRoot,
				FileSize:         fileSize,
				ModificationTime: modificationTime,
			},
			Checksum:    filespec.FileHash{Name: checksumName, Checksum: checksum},
			ParseType:   filespec.ParseTypeFromString(parseType),
			ProjectName: projectName,
		}
		if schemaData.Valid {
			var doc map[string]any
			if err := json.Unmarshal([]byte(schemaData.String), &doc); err != nil {
				return nil, fmt.Errorf("decode schema data for %s: %w", id, err)
			}
			sf.SchemaData = doc
		}
		files[filespec.FileID(id)] = sf
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshot rows: %w", err)
	}

	return files, nil
}

// LastRun returns the id and timestamp of the most recent save, or ok=false
// when no run has been recorded yet.
func (s *Store) LastRun(ctx context.Context) (runID string, createdAt time.Time, ok bool, err error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT run_id, created_at FROM runs ORDER BY created_at DESC LIMIT 1")
	if err := row.Scan(&runID, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return "", time.Time{}, false, nil
		}
		return "", time.Time{}, false, fmt.Errorf("query last run: %w", err)
	}
	return runID, createdAt, true, nil
}
