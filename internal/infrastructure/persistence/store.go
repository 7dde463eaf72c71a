package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"lotmarket/internal/domain"
	"lotmarket/pkg/contextx"
	"lotmarket/pkg/errcodes"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	sqlStateCheckViolation  = "23514"
	sqlStateUniqueViolation = "23505"
)

// store — общая часть репозиториев: соединение и транзакции.
type store struct {
	db *sqlx.DB
}

// withTx выполняет функцию в транзакции.
func (s store) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.InternalServerError,
				"transaction failed",
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// writeError переводит ошибки Postgres в коды, на которые реагируют сервисы.
func writeError(err error, message string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateCheckViolation:
			return domain.WrapError(err, errcodes.ConstraintViolation, message+": "+pgErr.ConstraintName)
		case sqlStateUniqueViolation:
			return domain.WrapError(err, errcodes.UniqueViolation, message+": "+pgErr.ConstraintName)
		}
	}

	return domain.WrapError(err, errcodes.InternalServerError, message)
}
