package adapters

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestSequence(t *testing.T) *redisReceiptSequence {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &redisReceiptSequence{client: client}
}

func TestReceiptSequenceNext(t *testing.T) {
	ctx := context.Background()
	seq := newTestSequence(t)

	t.Run("starts at one and increments", func(t *testing.T) {
		for want := int64(1); want <= 3; want++ {
			got, err := seq.Next(ctx, "B001")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != want {
				t.Errorf("expected %d, got %d", want, got)
			}
		}
	})

	t.Run("series are counted independently", func(t *testing.T) {
		got, err := seq.Next(ctx, "F001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 1 {
			t.Errorf("expected F001 to start at 1, got %d", got)
		}
	})
}
