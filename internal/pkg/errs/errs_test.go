package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 7)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, 7, err.ID)
		assert.Equal(t, "object not found: orderId 7", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("string ids are sanitized", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("productId", "1\n2")
		assert.Equal(t, "object not found: productId 1 2", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("-1 is not greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("tableNumber", cause)

		assert.Equal(t, "tableNumber", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: tableNumber (cause: -1 is not greater than 0)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("cause with newlines stays on one line", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s is unknown", "ready\r\nnow"))
		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "ready now")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerName")

		assert.Equal(t, "customerName", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customerName", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("empty list")
		err := errs.NewValueIsRequiredErrorWithCause("items", cause)

		assert.Equal(t, "value is required: items (cause: empty list)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}

func TestClassification(t *testing.T) {
	t.Run("validation errors", func(t *testing.T) {
		assert.True(t, errs.IsValidation(errs.NewValueIsRequiredError("a")))
		assert.True(t, errs.IsValidation(errs.NewValueIsInvalidErrorWithCause("b", nil)))
		assert.False(t, errs.IsValidation(errs.NewObjectNotFoundError("c", 1)))
		assert.False(t, errs.IsValidation(errors.New("boom")))
	})

	t.Run("joined and wrapped errors keep their class", func(t *testing.T) {
		joined := errors.Join(errors.New("other"), fmt.Errorf("items[0]: %w", errs.NewValueIsInvalidErrorWithCause("quantity", nil)))
		assert.True(t, errs.IsValidation(joined))
		require.ErrorIs(t, joined, errs.ErrValueIsInvalid)
	})

	t.Run("not found", func(t *testing.T) {
		assert.True(t, errs.IsNotFound(fmt.Errorf("wrap: %w", errs.NewObjectNotFoundError("orderId", 1))))
		assert.False(t, errs.IsNotFound(errs.NewValueIsRequiredError("x")))
	})
}

func TestNest(t *testing.T) {
	t.Run("validation errors move under the parent", func(t *testing.T) {
		err := errs.Nest("items[2]", errors.Join(
			errs.NewValueIsRequiredError("name"),
			errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("0 is not greater than 0")),
		))

		var required *errs.ValueIsRequiredError
		require.ErrorAs(t, err, &required)
		assert.Equal(t, "items[2].name", required.ParamName)

		var invalid *errs.ValueIsInvalidError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "items[2].quantity", invalid.ParamName)
		require.EqualError(t, invalid.Cause, "0 is not greater than 0")

		assert.True(t, errs.IsValidation(err))
	})

	t.Run("the original error is not changed", func(t *testing.T) {
		original := errs.NewValueIsRequiredError("name")
		_ = errs.Nest("items[0]", original)
		assert.Equal(t, "name", original.ParamName)
	})

	t.Run("other errors get a prefix", func(t *testing.T) {
		cause := errors.New("boom")
		err := errs.Nest("items[0]", cause)
		require.ErrorIs(t, err, cause)
		assert.Equal(t, "items[0]: boom", err.Error())
	})

	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, errs.Nest("items[0]", nil))
	})
}
