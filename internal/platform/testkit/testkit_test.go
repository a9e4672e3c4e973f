package testkit

import (
	"sync"
	"testing"
	"time"
)

func TestMustPanicAndContain(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
	MustContain(t, "session started for adunni", "adunni")
}

var claimTTL = 15 * time.Minute

func TestSwapRestores(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &claimTTL, time.Second)
		if claimTTL != time.Second {
			t.Fatalf("claimTTL = %v", claimTTL)
		}
	})
	if claimTTL != 15*time.Minute {
		t.Fatalf("not restored: %v", claimTTL)
	}
}

func TestSerialExcludes(t *testing.T) {
	var (
		mu      sync.Mutex
		inside  int
		overlap bool
	)
	enter := func(t *testing.T) {
		Serial(t)
		mu.Lock()
		inside++
		overlap = overlap || inside > 1
		mu.Unlock()
		time.Sleep(20 * time.Millisecond)
		mu.Lock()
		inside--
		mu.Unlock()
	}
	t.Run("group", func(t *testing.T) {
		for _, name := range []string{"a", "b", "c"} {
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				enter(t)
			})
		}
	})
	if overlap {
		t.Fatal("Serial let two tests run at once")
	}
}
