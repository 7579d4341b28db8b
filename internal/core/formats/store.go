/*
Package formats persists custom formats backed by compiled patterns.

A custom format is only created through Apply, which gates on the
compiler result: empty and advisory outcomes are rejected before any
row is written, so every pattern in storage is a syntactically valid
regular expression.
*/
package formats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/arrstack/cfpattern/internal/core/db"
	"github.com/arrstack/cfpattern/internal/pattern"
	"github.com/arrstack/cfpattern/internal/types"
)

// Store manages custom format persistence.
type Store struct {
	db      *sqlx.DB
	queries *db.Queries
	log     zerolog.Logger
}

// NewStore creates a format store. Both the database handle and the
// loaded query set are required.
func NewStore(database *sqlx.DB, queries *db.Queries, log zerolog.Logger) (*Store, error) {
	if database == nil {
		return nil, errors.New("database connection is required")
	}
	if queries == nil {
		return nil, errors.New("queries are required")
	}
	return &Store{db: database, queries: queries, log: log}, nil
}

// formatRow maps a custom_formats row. created_at is stored as RFC3339
// text in both drivers so a single string scan works everywhere.
type formatRow struct {
	FormatID  string `db:"format_id"`
	Name      string `db:"name"`
	Pattern   string `db:"pattern"`
	Score     int    `db:"score"`
	CreatedAt string `db:"created_at"`
}

func (r formatRow) toCustomFormat() (types.CustomFormat, error) {
	id, err := types.ParseFormatID(r.FormatID)
	if err != nil {
		return types.CustomFormat{}, fmt.Errorf("corrupt format id %q: %w", r.FormatID, err)
	}

	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return types.CustomFormat{}, fmt.Errorf("corrupt created_at %q: %w", r.CreatedAt, err)
	}

	return types.CustomFormat{
		FormatID:  id,
		Name:      r.Name,
		Pattern:   r.Pattern,
		Score:     r.Score,
		CreatedAt: createdAt,
	}, nil
}

// Apply validates a compiler result and persists it as a custom format.
// Empty and advisory results are rejected (pattern.Validate), as are
// results whose pattern fails the PCRE syntax check. Name must be
// non-empty and within the length limit.
func (s *Store) Apply(ctx context.Context, name string, score int, result pattern.Result) (types.CustomFormat, error) {
	if name == "" {
		return types.CustomFormat{}, types.ErrEmptyName
	}
	if len(name) > types.MaxNameLength {
		return types.CustomFormat{}, types.ErrNameTooLong
	}

	if err := pattern.Validate(result); err != nil {
		return types.CustomFormat{}, err
	}

	format := types.CustomFormat{
		FormatID:  types.NewFormatID(),
		Name:      name,
		Pattern:   result.Pattern,
		Score:     score,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	_, err := s.queries.Exec(ctx, "create-format",
		format.FormatID.String(),
		format.Name,
		format.Pattern,
		format.Score,
		format.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return types.CustomFormat{}, fmt.Errorf("failed to create format: %w", err)
	}

	s.log.Info().
		Str("format_id", format.FormatID.String()).
		Str("name", format.Name).
		Int("score", format.Score).
		Msg("custom format created")

	return format, nil
}

// Get retrieves a custom format by ID.
func (s *Store) Get(ctx context.Context, id types.FormatID) (types.CustomFormat, error) {
	var row formatRow
	err := s.queries.Get(ctx, "get-format", &row, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return types.CustomFormat{}, types.ErrFormatNotFound
	}
	if err != nil {
		return types.CustomFormat{}, fmt.Errorf("failed to get format: %w", err)
	}
	return row.toCustomFormat()
}

// List returns all custom formats, newest first.
func (s *Store) List(ctx context.Context) ([]types.CustomFormat, error) {
	var rows []formatRow
	if err := s.queries.Select(ctx, "list-formats", &rows); err != nil {
		return nil, fmt.Errorf("failed to list formats: %w", err)
	}

	formats := make([]types.CustomFormat, 0, len(rows))
	for _, row := range rows {
		format, err := row.toCustomFormat()
		if err != nil {
			return nil, err
		}
		formats = append(formats, format)
	}
	return formats, nil
}

// Delete removes a custom format by ID. Returns ErrFormatNotFound when
// no row matched.
func (s *Store) Delete(ctx context.Context, id types.FormatID) error {
	res, err := s.queries.Exec(ctx, "delete-format", id.String())
	if err != nil {
		return fmt.Errorf("failed to delete format: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return types.ErrFormatNotFound
	}

	s.log.Info().Str("format_id", id.String()).Msg("custom format deleted")
	return nil
}
