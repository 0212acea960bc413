package memory

import (
	"testing"
	"time"
)

func TestLRUTTLSetGet(t *testing.T) {
	c := NewLRUTTL[string, int](4, time.Minute)
	c.Set("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("got %v %v", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatalf("unexpected hit")
	}
}

func TestLRUTTLEvictsOldest(t *testing.T) {
	c := NewLRUTTL[string, int](2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // refresh a
	c.Set("c", 3)
	if _, ok := c.Get("b"); ok {
		t.Fatalf("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("a should survive")
	}
}

func TestLRUTTLExpiry(t *testing.T) {
	c := NewLRUTTL[string, int](4, 10*time.Millisecond)
	c.Set("a", 1)
	time.Sleep(25 * time.Millisecond)
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expired entry returned")
	}
}

func TestLRUTTLDeleteAndClear(t *testing.T) {
	c := NewLRUTTL[string, int](4, time.Minute)
	c.Set("a", 1)
	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Fatalf("deleted entry returned")
	}
	c.Set("b", 2)
	c.Clear()
	if _, ok := c.Get("b"); ok {
		t.Fatalf("cleared entry returned")
	}
}

func TestLRUTTLNilReceiver(t *testing.T) {
	var c *LRUTTL[string, int]
	c.Set("a", 1)
	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Fatalf("nil cache hit")
	}
}
