package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/go-retail/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleError_RaiseExceptionKeepsRoutineMessage(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Severity: "ERROR",
		Code:     "P0001",
		Message:  "Rating must be between 1 and 5",
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Rating must be between 1 and 5", httpErr.Message)
	assert.Equal(t, "RECORD_INVALID", httpErr.Code)
	assert.True(t, httpErr.Override)
}

func TestHandleError_ForeignKeyViolation(t *testing.T) {
	err := HandleError(fmt.Errorf("insert review: %w", &pgconn.PgError{
		Severity:   "ERROR",
		Code:       "23503",
		TableName:  "reviews",
		ColumnName: "customer_id",
	}))

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "REVIEW_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Customer does not exist", httpErr.Message)
}

func TestHandleError_UniqueViolationNamesColumn(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		TableName:      "customers",
		ConstraintName: "customers_email_key",
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, "CUSTOMER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Customer with this Email already exists", httpErr.Message)
}

func TestHandleError_NotNullViolationAddsFieldError(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Severity:   "ERROR",
		Code:       "23502",
		TableName:  "reviews",
		ColumnName: "rating",
	})

	httpErr := asHTTPError(t, err)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "rating", httpErr.Errors[0].Field)
	assert.Equal(t, "The Rating is required", httpErr.Message)
}

func TestHandleError_NoRowsWithTable(t *testing.T) {
	err := HandleError(WithTable("products", pgx.ErrNoRows))

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Product not found", httpErr.Message)
}

func TestHandleError_NoRowsWithoutTable(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(pgx.ErrNoRows))
	assert.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewForbiddenError("nope", false)
	assert.Same(t, original, HandleError(original))
}

func TestHandleError_UnknownIsInternal(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection reset")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, CheckViolation, MapCode("23514"))
	assert.Equal(t, RaiseException, MapCode("P0001"))
	assert.Equal(t, Other, MapCode("XX000"))
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23505", Severity: "ERROR"})
	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("wrap: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestWithTable_Nil(t *testing.T) {
	assert.NoError(t, WithTable("orders", nil))
}
