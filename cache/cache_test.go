package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestGetSet(t *testing.T) {
	c := New[int]()

	if _, ok := c.Get("missing"); ok {
		t.Error("Get on empty cache reported a hit")
	}

	c.Set("a", 1)
	c.Set("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = (%v, %v), want (1, true)", v, ok)
	}
	if v, ok := c.Get("b"); !ok || v != 2 {
		t.Errorf("Get(b) = (%v, %v), want (2, true)", v, ok)
	}

	c.Set("a", 10)
	if v, _ := c.Get("a"); v != 10 {
		t.Errorf("Set did not replace: got %v, want 10", v)
	}
}

func TestGetOrCreate(t *testing.T) {
	c := New[string]()
	calls := 0
	create := func() string {
		calls++
		return "value"
	}

	if got := c.GetOrCreate("k", create); got != "value" {
		t.Errorf("GetOrCreate = %q", got)
	}
	if got := c.GetOrCreate("k", create); got != "value" {
		t.Errorf("GetOrCreate = %q", got)
	}
	if calls != 1 {
		t.Errorf("create ran %d times, want 1", calls)
	}
}

func TestClearAndLen(t *testing.T) {
	c := New[int]()
	for i := 0; i < 100; i++ {
		c.Set(fmt.Sprintf("key-%d", i), i)
	}
	if got := c.Len(); got != 100 {
		t.Errorf("Len = %d, want 100", got)
	}

	c.Delete("key-50")
	if got := c.Len(); got != 99 {
		t.Errorf("Len after Delete = %d, want 99", got)
	}

	c.Clear()
	if got := c.Len(); got != 0 {
		t.Errorf("Len after Clear = %d, want 0", got)
	}
	if _, ok := c.Get("key-1"); ok {
		t.Error("entry survived Clear")
	}
}

func TestStats(t *testing.T) {
	c := New[int]()
	c.Set("a", 1)

	c.Get("a")       // hit
	c.Get("a")       // hit
	c.Get("missing") // miss

	hits, misses := c.Stats()
	if hits != 2 || misses != 1 {
		t.Errorf("Stats = (%d, %d), want (2, 1)", hits, misses)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[int]()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				key := fmt.Sprintf("key-%d", i%64)
				c.Set(key, g*1000+i)
				c.Get(key)
				if i%100 == 0 {
					c.GetOrCreate(key, func() int { return i })
				}
			}
		}()
	}
	wg.Wait()
	if got := c.Len(); got != 64 {
		t.Errorf("Len = %d, want 64", got)
	}
}
