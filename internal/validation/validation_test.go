package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type ratingPayload struct {
	Stars float64 `validate:"min=0,max=5"`
	Count int     `validate:"min=0"`
}

func TestFieldErrorsNamesOffendingField(t *testing.T) {
	v := New()

	err := v.Struct(ratingPayload{Stars: 6, Count: -1})
	require.Error(t, err)

	fields := FieldErrors(err)
	require.Contains(t, fields, "ratingPayload.Stars")
	require.Contains(t, fields, "ratingPayload.Count")
}

func TestValidPayloadPasses(t *testing.T) {
	v := New()
	require.NoError(t, v.Struct(ratingPayload{Stars: 4.5, Count: 12}))
}

func TestIsFieldError(t *testing.T) {
	v := New()

	err := v.Struct(ratingPayload{Stars: 6})
	require.True(t, IsFieldError(err))
	require.False(t, IsFieldError(errPlain("boom")))
}

func TestFieldErrorsHandlesNonValidatorError(t *testing.T) {
	fields := FieldErrors(errPlain("boom"))
	require.Equal(t, "boom", fields["error"])
}

type errPlain string

func (e errPlain) Error() string { return string(e) }
