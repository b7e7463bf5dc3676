package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type statusError struct{ code int }

func (e *statusError) Error() string { return fmt.Sprintf("status %d", e.code) }

func TestAsType_FindsWrappedError(t *testing.T) {
	err := Wrap(Join(New("first"), &statusError{code: 502}), "graph call")

	got, ok := AsType[*statusError](err)
	assert.True(t, ok)
	assert.Equal(t, 502, got.code)

	_, ok = AsType[*statusError](New("plain"))
	assert.False(t, ok)
}

func TestWrap_KeepsSentinel(t *testing.T) {
	sentinel := New("not found")

	assert.True(t, Is(Wrapf(sentinel, "user %d", 7), sentinel))
	assert.True(t, Is(WithStack(sentinel), sentinel))
	assert.Equal(t, "user 7: not found", Wrapf(sentinel, "user %d", 7).Error())
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}

func TestErrorf_CarriesStack(t *testing.T) {
	err := Errorf("unknown level %q", "trace")

	assert.Equal(t, `unknown level "trace"`, err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestErrorf_CarriesStack")
}
