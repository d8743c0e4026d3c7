package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"kejani_backend/pkg/cache"
)

type payload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func TestRedis_RoundTrip(t *testing.T) {
	srv := miniredis.RunT(t)
	c := cache.NewRedis(srv.Addr(), "", 0)
	ctx := context.Background()

	var out payload
	hit, err := c.Get(ctx, "prop:1", &out)
	if err != nil {
		t.Fatalf("get on empty cache: %v", err)
	}
	if hit {
		t.Fatalf("empty cache should miss")
	}

	in := payload{ID: "1", Title: "Beachfront Apartment"}
	if err := c.Set(ctx, "prop:1", in, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	hit, err = c.Get(ctx, "prop:1", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !hit || out != in {
		t.Fatalf("hit=%v out=%+v, want %+v", hit, out, in)
	}
}

func TestRedis_DelRemovesKey(t *testing.T) {
	srv := miniredis.RunT(t)
	c := cache.NewRedis(srv.Addr(), "", 0)
	ctx := context.Background()

	if err := c.Set(ctx, "prop:2", payload{ID: "2"}, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Del(ctx, "prop:2"); err != nil {
		t.Fatalf("del: %v", err)
	}

	var out payload
	hit, err := c.Get(ctx, "prop:2", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if hit {
		t.Fatalf("deleted key should miss")
	}
}

func TestRedis_TTLExpires(t *testing.T) {
	srv := miniredis.RunT(t)
	c := cache.NewRedis(srv.Addr(), "", 0)
	ctx := context.Background()

	if err := c.Set(ctx, "prop:3", payload{ID: "3"}, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	srv.FastForward(2 * time.Minute)

	var out payload
	hit, err := c.Get(ctx, "prop:3", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if hit {
		t.Fatalf("expired key should miss")
	}
}

func TestNoop_AlwaysMisses(t *testing.T) {
	var c cache.Cache = cache.Noop{}
	ctx := context.Background()

	if err := c.Set(ctx, "k", payload{}, time.Minute); err != nil {
		t.Fatalf("noop set: %v", err)
	}
	var out payload
	hit, err := c.Get(ctx, "k", &out)
	if err != nil || hit {
		t.Fatalf("noop get: hit=%v err=%v", hit, err)
	}
}
