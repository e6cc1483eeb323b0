package connection

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBackoff(t *testing.T) {
	t.Run("DefaultSequence", func(t *testing.T) {
		b := NewBackoff()

		expected := []time.Duration{
			500 * time.Millisecond,
			1 * time.Second,
			2 * time.Second,
			4 * time.Second,
			8 * time.Second,
			16 * time.Second,
			30 * time.Second,
			30 * time.Second, // stays at max
		}

		for i, exp := range expected {
			base := b.Current()
			_ = b.Next()
			if base != exp {
				t.Errorf("attempt %d: base = %v, want %v", i, base, exp)
			}
		}
	})

	t.Run("Jitter", func(t *testing.T) {
		b := NewBackoff()

		for i := 0; i < 20; i++ {
			b.Reset()
			d := b.Next()
			if d < InitialBackoff || d > InitialBackoff+InitialBackoff/4 {
				t.Errorf("sample %d: %v out of range", i, d)
			}
		}
	})

	t.Run("Reset", func(t *testing.T) {
		b := NewBackoff()
		for i := 0; i < 5; i++ {
			b.Next()
		}
		if b.Attempts() != 5 {
			t.Errorf("Attempts() = %d, want 5", b.Attempts())
		}

		b.Reset()
		if b.Current() != InitialBackoff || b.Attempts() != 0 {
			t.Errorf("after reset: current %v, attempts %d", b.Current(), b.Attempts())
		}
	})

	t.Run("CustomConfig", func(t *testing.T) {
		b := NewBackoffWithConfig(BackoffConfig{
			Initial: 100 * time.Millisecond,
			Max:     500 * time.Millisecond,
			Jitter:  -1,
		})

		expected := []time.Duration{
			100 * time.Millisecond,
			200 * time.Millisecond,
			400 * time.Millisecond,
			500 * time.Millisecond,
			500 * time.Millisecond,
		}
		for i, exp := range expected {
			if got := b.Next(); got != exp {
				t.Errorf("attempt %d: got %v, want %v", i, got, exp)
			}
		}
	})
}

func TestBackoffWaitCancelled(t *testing.T) {
	b := NewBackoffWithConfig(BackoffConfig{Initial: time.Hour, Jitter: -1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := b.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func fastBackoff() *Backoff {
	return NewBackoffWithConfig(BackoffConfig{Initial: time.Millisecond, Max: 2 * time.Millisecond, Jitter: -1})
}

func TestRetry(t *testing.T) {
	boom := errors.New("connection refused")

	t.Run("SucceedsAfterFailures", func(t *testing.T) {
		calls := 0
		v, err := Retry(context.Background(), 3, fastBackoff(), func(context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", boom
			}
			return "conn", nil
		})
		if err != nil {
			t.Fatalf("Retry failed: %v", err)
		}
		if v != "conn" || calls != 3 {
			t.Errorf("got %q after %d calls", v, calls)
		}
	})

	t.Run("Exhausted", func(t *testing.T) {
		calls := 0
		_, err := Retry(context.Background(), 2, fastBackoff(), func(context.Context) (int, error) {
			calls++
			return 0, boom
		})
		if !errors.Is(err, ErrAttemptsExhausted) || !errors.Is(err, boom) {
			t.Errorf("unexpected error: %v", err)
		}
		if calls != 2 {
			t.Errorf("calls = %d, want 2", calls)
		}
	})

	t.Run("SingleAttemptByDefault", func(t *testing.T) {
		calls := 0
		_, _ = Retry(context.Background(), 0, fastBackoff(), func(context.Context) (int, error) {
			calls++
			return 0, boom
		})
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		_, err := Retry(ctx, 5, fastBackoff(), func(context.Context) (int, error) {
			cancel()
			return 0, boom
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateDisconnected, "DISCONNECTED"},
		{StateDiscovering, "DISCOVERING"},
		{StateConnecting, "CONNECTING"},
		{StateConnected, "CONNECTED"},
		{StateClosed, "CLOSED"},
		{State(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
