package cache

import (
	"errors"
	"strconv"
	"sync"
	"testing"
)

func value(v int) func() (int, error) {
	return func() (int, error) { return v, nil }
}

func TestNew(t *testing.T) {
	s := New[string, int](100).Stats()
	if s.Capacity != 100 {
		t.Errorf("expected capacity 100, got %d", s.Capacity)
	}
	if s.Len != 0 {
		t.Errorf("expected empty cache, got %d entries", s.Len)
	}
	if New[string, int](-1).Stats().Capacity != 0 {
		t.Error("expected negative capacity to mean unlimited")
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	calls := 0
	create := func() (int, error) {
		calls++
		return 100, nil
	}

	for range 2 {
		v, err := c.GetOrCreate("key1", create)
		if err != nil || v != 100 {
			t.Errorf("expected 100, nil; got %d, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("expected create called once, got %d", calls)
	}

	boom := errors.New("boom")
	if _, err := c.GetOrCreate("bad", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
	if v, _ := c.GetOrCreate("bad", value(7)); v != 7 {
		t.Errorf("expected failed create to store nothing, got %d", v)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](3)
	c.GetOrCreate("a", value(1))
	c.GetOrCreate("b", value(2))
	c.GetOrCreate("c", value(3))

	// Touch a so b becomes the oldest.
	c.GetOrCreate("a", value(-1))
	c.GetOrCreate("d", value(4))

	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("expected 1 eviction, got %d", got)
	}
	for k, want := range map[string]int{"a": 1, "c": 3, "d": 4} {
		if v, _ := c.GetOrCreate(k, value(-1)); v != want {
			t.Errorf("expected %s to survive as %d, got %d", k, want, v)
		}
	}
	if v, _ := c.GetOrCreate("b", value(-1)); v != -1 {
		t.Errorf("expected b to be evicted, got %d", v)
	}
}

func TestCacheClear(t *testing.T) {
	c := New[string, int](10)
	c.GetOrCreate("a", value(1))
	c.GetOrCreate("b", value(2))

	c.Clear()
	s := c.Stats()
	if s.Len != 0 {
		t.Errorf("expected empty cache after Clear, got %d", s.Len)
	}
	if s.Misses != 2 {
		t.Errorf("expected statistics kept after Clear, got %d misses", s.Misses)
	}
	if v, _ := c.GetOrCreate("a", value(3)); v != 3 {
		t.Errorf("expected recreated value 3 after Clear, got %d", v)
	}
}

func TestCacheStats(t *testing.T) {
	c := New[string, int](10)
	c.GetOrCreate("a", value(1))
	c.GetOrCreate("a", value(1))
	c.GetOrCreate("a", value(1))

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("expected 2 hits 1 miss, got %d hits %d misses", s.Hits, s.Misses)
	}
	if s.HitRate < 0.66 || s.HitRate > 0.67 {
		t.Errorf("expected hit rate ~0.667, got %f", s.HitRate)
	}
	if s.Len != 1 {
		t.Errorf("expected 1 entry, got %d", s.Len)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](50)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				key := strconv.Itoa((g*200 + i) % 80)
				_, _ = c.GetOrCreate(key, value(i))
			}
		}()
	}
	wg.Wait()
	if n := c.Stats().Len; n > 50 {
		t.Errorf("expected at most 50 entries, got %d", n)
	}
}

func BenchmarkCacheGetOrCreate(b *testing.B) {
	c := New[string, int](256)
	for i := range 256 {
		c.GetOrCreate(strconv.Itoa(i), value(i))
	}
	for b.Loop() {
		c.GetOrCreate("128", value(0))
	}
}
