package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestReductionsRunsAllAndSucceeds(t *testing.T) {
	var count atomic.Int32
	fns := make([]func(context.Context) error, 8)
	for i := range fns {
		fns[i] = func(ctx context.Context) error {
			count.Add(1)
			return nil
		}
	}
	if err := Reductions(context.Background(), fns...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count.Load() != int32(len(fns)) {
		t.Fatalf("ran %d of %d", count.Load(), len(fns))
	}
}

func TestReductionsPropagatesFirstError(t *testing.T) {
	wantErr := errors.New("boom")
	err := Reductions(context.Background(),
		func(ctx context.Context) error { return nil },
		func(ctx context.Context) error { return wantErr },
	)
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want %v", err, wantErr)
	}
}

func TestLimitedCapsConcurrency(t *testing.T) {
	var cur, max atomic.Int32
	fns := make([]func(context.Context) error, 20)
	for i := range fns {
		fns[i] = func(ctx context.Context) error {
			n := cur.Add(1)
			for {
				old := max.Load()
				if n <= old || max.CompareAndSwap(old, n) {
					break
				}
			}
			cur.Add(-1)
			return nil
		}
	}
	if err := Limited(context.Background(), 3, fns...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if max.Load() > 3 {
		t.Fatalf("observed concurrency %d exceeds limit 3", max.Load())
	}
}
