package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"lotmarket/internal/domain"
	"lotmarket/pkg/errcodes"
)

func TestHasCode(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("pq: violates check constraint")
	err := fmt.Errorf("insert offer: %w", domain.WrapError(cause, errcodes.ConstraintViolation, "failed to insert offer"))

	rq.True(domain.HasCode(err, errcodes.ConstraintViolation))
	rq.True(domain.HasCode(err, errcodes.UniqueViolation, errcodes.ConstraintViolation))
	rq.False(domain.HasCode(err, errcodes.LotNotFound))
	rq.False(domain.HasCode(cause, errcodes.ConstraintViolation))
	rq.ErrorIs(err, cause)
	rq.Contains(err.Error(), "failed to insert offer: pq: violates check constraint")
}

func TestNotFound(t *testing.T) {
	rq := require.New(t)

	err := domain.NotFound(domain.NewError(errcodes.LotNotFound, "lot not found"), errcodes.LotNotFound, "Lot not found")
	rq.True(failure.IsNotFoundError(err))
	rq.Equal(errcodes.LotNotFound, failure.Code(err))

	other := domain.WrapError(errors.New("conn reset"), errcodes.InternalServerError, "failed to get lot")
	rq.Equal(error(other), domain.NotFound(other, errcodes.LotNotFound, "Lot not found"))
}
