package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyDo(t *testing.T) {
	t.Run("returns nil on first success", func(t *testing.T) {
		calls := 0
		policy := Policy{MaxAttempts: 3, Delay: time.Hour}

		err := policy.Do(context.Background(), func(ctx context.Context) error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries up to max attempts and returns last error", func(t *testing.T) {
		calls := 0
		policy := Policy{MaxAttempts: 3, Delay: time.Millisecond}

		err := policy.Do(context.Background(), func(ctx context.Context) error {
			calls++
			return errors.New("transient")
		})

		require.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("succeeds on a later attempt", func(t *testing.T) {
		calls := 0
		policy := Policy{MaxAttempts: 3, Delay: time.Millisecond}

		err := policy.Do(context.Background(), func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("non-retriable error stops immediately", func(t *testing.T) {
		fatal := errors.New("constraint violation")
		calls := 0
		policy := Policy{
			MaxAttempts: 3,
			Delay:       time.Millisecond,
			Retriable:   func(err error) bool { return !errors.Is(err, fatal) },
		}

		err := policy.Do(context.Background(), func(ctx context.Context) error {
			calls++
			return fatal
		})

		assert.ErrorIs(t, err, fatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("attempts are spaced by the fixed delay", func(t *testing.T) {
		var stamps []time.Time
		policy := Policy{MaxAttempts: 3, Delay: 30 * time.Millisecond}

		_ = policy.Do(context.Background(), func(ctx context.Context) error {
			stamps = append(stamps, time.Now())
			return errors.New("transient")
		})

		require.Len(t, stamps, 3)
		for i := 1; i < len(stamps); i++ {
			gap := stamps[i].Sub(stamps[i-1])
			assert.GreaterOrEqual(t, gap, 25*time.Millisecond)
		}
	})

	t.Run("context cancellation during delay returns last error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		policy := Policy{MaxAttempts: 5, Delay: time.Hour}

		err := policy.Do(ctx, func(ctx context.Context) error {
			calls++
			cancel()
			return errors.New("transient")
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("zero max attempts still runs once", func(t *testing.T) {
		calls := 0
		policy := Policy{}

		_ = policy.Do(context.Background(), func(ctx context.Context) error {
			calls++
			return errors.New("boom")
		})

		assert.Equal(t, 1, calls)
	})
}
