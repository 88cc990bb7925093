package tables

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/hog/internal/models"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS distributions (
	rolls       INTEGER NOT NULL,
	dice        INTEGER NOT NULL,
	total       INTEGER NOT NULL,
	probability REAL    NOT NULL,
	PRIMARY KEY (rolls, dice, total)
);

CREATE TABLE IF NOT EXISTS value_entries (
	num_rolls      INTEGER NOT NULL,
	dice           INTEGER NOT NULL,
	score          INTEGER NOT NULL,
	opponent_score INTEGER NOT NULL,
	value          REAL    NOT NULL,
	PRIMARY KEY (num_rolls, dice, score, opponent_score)
);
`

// SQLiteStore persists precomputed tables in a local SQLite file.
type SQLiteStore struct {
	sqlDB *sql.DB
}

// OpenSQLite opens a SQLite tables store and creates its schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveDistributions replaces each given distribution inside one transaction.
func (s *SQLiteStore) SaveDistributions(ctx context.Context, input *SaveDistributionsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		del, err := tx.PrepareContext(ctx, `DELETE FROM distributions WHERE rolls = ? AND dice = ?`)
		if err != nil {
			return fmt.Errorf("prepare delete: %w", err)
		}
		defer del.Close()

		ins, err := tx.PrepareContext(ctx, `INSERT INTO distributions (rolls, dice, total, probability) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare insert: %w", err)
		}
		defer ins.Close()

		for _, table := range input.Tables {
			if table == nil {
				return errors.New("distribution table cannot be nil")
			}
			if _, err := del.ExecContext(ctx, table.Rolls, table.Dice); err != nil {
				return fmt.Errorf("delete distribution %d:%d: %w", table.Rolls, table.Dice, err)
			}
			for total, p := range table.Probabilities {
				if _, err := ins.ExecContext(ctx, table.Rolls, table.Dice, total, p); err != nil {
					return fmt.Errorf("insert distribution %d:%d: %w", table.Rolls, table.Dice, err)
				}
			}
		}
		return nil
	})
}

// LoadDistributions reads every stored distribution ordered by dice then rolls.
func (s *SQLiteStore) LoadDistributions(ctx context.Context, input *LoadDistributionsInput) (*LoadDistributionsOutput, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT rolls, dice, total, probability FROM distributions ORDER BY dice, rolls, total`)
	if err != nil {
		return nil, fmt.Errorf("query distributions: %w", err)
	}
	defer rows.Close()

	var tables []*models.DistributionTable
	var current *models.DistributionTable
	for rows.Next() {
		var rolls, dice, total int
		var p float64
		if err := rows.Scan(&rolls, &dice, &total, &p); err != nil {
			return nil, fmt.Errorf("scan distribution: %w", err)
		}
		if current == nil || current.Rolls != rolls || current.Dice != dice {
			current = &models.DistributionTable{
				Rolls:         rolls,
				Dice:          dice,
				Probabilities: map[int]float64{},
			}
			tables = append(tables, current)
		}
		current.Probabilities[total] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate distributions: %w", err)
	}

	return &LoadDistributionsOutput{
		Tables: tables,
	}, nil
}

// SaveValues upserts expected-value entries inside one transaction.
func (s *SQLiteStore) SaveValues(ctx context.Context, input *SaveValuesInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO value_entries (num_rolls, dice, score, opponent_score, value) VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT (num_rolls, dice, score, opponent_score) DO UPDATE SET value = excluded.value`)
		if err != nil {
			return fmt.Errorf("prepare upsert: %w", err)
		}
		defer stmt.Close()

		for _, entry := range input.Entries {
			if entry == nil {
				return errors.New("value entry cannot be nil")
			}
			if _, err := stmt.ExecContext(ctx, entry.NumRolls, entry.Dice, entry.Score, entry.OpponentScore, entry.Value); err != nil {
				return fmt.Errorf("upsert value %s: %w", valueField(entry), err)
			}
		}
		return nil
	})
}

// LoadValues reads every stored expected-value entry.
func (s *SQLiteStore) LoadValues(ctx context.Context, input *LoadValuesInput) (*LoadValuesOutput, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT num_rolls, dice, score, opponent_score, value FROM value_entries
		 ORDER BY dice, num_rolls, score, opponent_score`)
	if err != nil {
		return nil, fmt.Errorf("query values: %w", err)
	}
	defer rows.Close()

	var entries []*models.ValueEntry
	for rows.Next() {
		var entry models.ValueEntry
		if err := rows.Scan(&entry.NumRolls, &entry.Dice, &entry.Score, &entry.OpponentScore, &entry.Value); err != nil {
			return nil, fmt.Errorf("scan value: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate values: %w", err)
	}

	return &LoadValuesOutput{
		Entries: entries,
	}, nil
}

func (s *SQLiteStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
