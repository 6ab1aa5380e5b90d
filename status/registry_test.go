package status

import (
	"sync"
	"testing"

	"github.com/bytedance/sonic"
)

func TestMetricMapCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("clock.ticks")
	b := r.Ints.Get("clock.ticks")
	if a != b {
		t.Fatal("Get() should return the cached pointer for an existing key")
	}
	a.Store(42)
	if got := b.Load(); got != 42 {
		t.Errorf("cached metric = %d, want 42", got)
	}
	if !r.Ints.Has("clock.ticks") || r.Ints.Has("clock.missing") {
		t.Error("Has() reports wrong membership")
	}
}

func TestRegistryFormat(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("clock.logs").Store(3)
	r.Ints.Get("clock.inversions").Store(1)
	r.Floats.Get("clock.progress").Set(0.5)
	r.Bools.Get("clock.inverted").Store(true)
	r.Strings.Get("clock.direction").Store("<<")

	want := "clock.inversions=1 clock.logs=3 clock.progress=0.500 clock.inverted=true clock.direction=<<"
	if got := r.Format(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
	if r.TotalCount() != 5 {
		t.Errorf("TotalCount() = %d, want 5", r.TotalCount())
	}
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()
	if got := f.Get(); got != 400 {
		t.Errorf("Get() = %v, want 400", got)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("zero value should load empty string")
	}
	s.Store("abcdefghijklmnopqrstuvwxyz")
	if got := s.Load(); len(got) != MaxStringLen {
		t.Errorf("stored length = %d, want %d", len(got), MaxStringLen)
	}
}

func TestRegistrySnapshotJSON(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("clock.ticks").Store(42)
	r.Floats.Get("clock.progress").Set(0.25)
	r.Bools.Get("clock.paused").Store(true)
	r.Strings.Get("clock.direction").Store(">>")

	snap := r.Snapshot()
	if len(snap) != 4 {
		t.Fatalf("Snapshot() has %d entries, want 4", len(snap))
	}
	if snap["clock.ticks"] != int64(42) {
		t.Errorf("clock.ticks = %v, want 42", snap["clock.ticks"])
	}

	data, err := r.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	var decoded map[string]any
	if err := sonic.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded["clock.ticks"] != float64(42) || decoded["clock.progress"] != 0.25 ||
		decoded["clock.paused"] != true || decoded["clock.direction"] != ">>" {
		t.Errorf("decoded = %v", decoded)
	}
}
