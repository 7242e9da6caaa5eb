package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

type countingPurger struct {
	calls atomic.Int32
}

func (p *countingPurger) PurgeReadBefore(context.Context, time.Time) int {
	p.calls.Add(1)
	return 1
}

func TestNotificationCleaner_StopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	p := &countingPurger{}
	done := StartNotificationCleaner(ctx, p, 5*time.Millisecond, time.Hour, nil)

	deadline := time.After(2 * time.Second)
	for p.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("cleaner never ran")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cleaner did not stop")
	}
}
