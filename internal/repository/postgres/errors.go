package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/model"
)

// SQLSTATE codes the repositories distinguish.
const (
	pgUniqueViolation = "23505"
)

// classifyError maps a driver error onto the closed set the service layer
// understands: model.ErrNotFound, an error wrapping model.ErrConflict, or a
// plain wrapped error.
func classifyError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("failed to %s: %w: %w", op, model.ErrConflict, err)
	}

	return fmt.Errorf("failed to %s: %w", op, err)
}

// escapeLike makes every character of needle match literally inside an
// ILIKE pattern using the default backslash escape.
func escapeLike(needle string) string {
	var b []byte
	for i := 0; i < len(needle); i++ {
		switch c := needle[i]; c {
		case '\\', '%', '_':
			b = append(b, '\\', c)
		default:
			b = append(b, c)
		}
	}
	return string(b)
}
