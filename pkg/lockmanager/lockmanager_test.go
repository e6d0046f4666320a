package lockmanager

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSerializable_RunsFn(t *testing.T) {
	m := New()

	ran := false
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
}

func TestDoSerializable_PropagatesFnError(t *testing.T) {
	m := New()

	wantErr := errors.New("boom")
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
}

func TestDoSerializable_CancelledContext(t *testing.T) {
	m := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.DoSerializable(ctx, func(context.Context) error {
		t.Fatal("fn must not run with a cancelled context")
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDoSerializable_SerializesCriticalSections(t *testing.T) {
	m := New()

	const workers = 32

	var (
		wg      sync.WaitGroup
		inside  int
		maxSeen int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_ = m.DoSerializable(context.Background(), func(context.Context) error {
				inside++
				if inside > maxSeen {
					maxSeen = inside
				}
				inside--
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen, "at most one goroutine may be inside the critical section")
}
