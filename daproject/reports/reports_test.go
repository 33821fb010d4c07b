package reports

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestNotFoundTranslation(t *testing.T) {
	assert.ErrorIs(t, notFound(pgx.ErrNoRows), ErrReportNotFound)
}

func TestNotFoundKeepsOtherErrors(t *testing.T) {
	cause := errors.New("connection refused")

	assert.Equal(t, cause, notFound(cause))
	assert.NotErrorIs(t, notFound(cause), ErrReportNotFound)
}
