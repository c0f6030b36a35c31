package clipboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	var m Memory
	assert.NoError(t, m.Write(context.Background(), "a"))
	assert.NoError(t, m.Write(context.Background(), "b"))
	assert.Equal(t, "b", m.Text())
	assert.Equal(t, 2, m.Writes())

	m.Err = errors.New("denied")
	assert.Error(t, m.Write(context.Background(), "c"))
	assert.Equal(t, "b", m.Text())
	assert.Equal(t, 2, m.Writes())
}

func TestDeferred(t *testing.T) {
	var d Deferred
	assert.False(t, d.Pending)
	assert.NoError(t, d.Write(context.Background(), "code"))
	assert.True(t, d.Pending)
	assert.Equal(t, "code", d.Text)
}

func TestUnavailable(t *testing.T) {
	err := Unavailable{}.Write(context.Background(), "x")
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestSystem_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, System{}.Write(ctx, "x"), context.Canceled)
}
