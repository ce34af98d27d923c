package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestOpenRedis_PingAndSelectedDB(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	c, err := OpenRedis(s.Addr(), 3)
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if got := c.Options().DB; got != 3 {
		t.Fatalf("client DB = %d, want 3", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// Round trip through the selected DB.
	if err := c.Set(ctx, "loans:list:u1", `[]`, time.Minute).Err(); err != nil {
		t.Fatalf("SET err: %v", err)
	}
	got, err := c.Get(ctx, "loans:list:u1").Result()
	if err != nil {
		t.Fatalf("GET err: %v", err)
	}
	if got != `[]` {
		t.Fatalf("GET value = %q, want %q", got, `[]`)
	}
}

func TestOpenRedis_UnreachableHost(t *testing.T) {
	if _, err := OpenRedis("not-a-real-host:6379", 0); err == nil {
		t.Fatal("expected connect error, got nil")
	}
}
