package e

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound       = errors.New("not found")
	ErrMissingField   = errors.New("missing required field")
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnknownAction  = errors.New("unknown action")
	ErrInternal       = errors.New("internal error")
	ErrDeadline       = errors.New("deadline exceeded")
	ErrCanceled       = errors.New("context canceled")
	ErrConflict       = errors.New("conflict")
	ErrQueueEmpty     = errors.New("share queue is empty")
)

// WrapError normalizes storage and context errors into the sentinel set so
// presenters can map them to HTTP statuses with errors.Is.
func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", op, ErrConflict)
		case "23503", "23514":
			return fmt.Errorf("%s: %w", op, ErrInvalidRequest)
		default:
			return fmt.Errorf("%s: pg error %s: %w", op, pgErr.Code, ErrInternal)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, ErrInternal)
}
