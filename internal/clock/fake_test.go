package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2020, 2, 11, 3, 15, 30, 0, time.UTC)

func TestFakeNowAdvances(t *testing.T) {
	f := NewFake(epoch)
	require.Equal(t, epoch, f.Now())

	f.Advance(1500 * time.Millisecond)
	assert.Equal(t, epoch.Add(1500*time.Millisecond), f.Now())
}

func TestFakeTickerFiresOnDeadline(t *testing.T) {
	f := NewFake(epoch)
	tk := f.NewTicker(500 * time.Millisecond)

	f.Advance(499 * time.Millisecond)
	select {
	case <-tk.C():
		t.Fatal("ticker fired before its deadline")
	default:
	}

	f.Advance(time.Millisecond)
	select {
	case got := <-tk.C():
		assert.Equal(t, epoch.Add(500*time.Millisecond), got)
	default:
		t.Fatal("ticker did not fire at its deadline")
	}
}

func TestFakeTickerDropsWhileReaderLags(t *testing.T) {
	f := NewFake(epoch)
	tk := f.NewTicker(time.Second)

	f.Advance(5 * time.Second)

	got := <-tk.C()
	assert.Equal(t, epoch.Add(time.Second), got)
	select {
	case extra := <-tk.C():
		t.Fatalf("expected ticks to be dropped, got %v", extra)
	default:
	}

	f.Advance(time.Second)
	assert.Equal(t, epoch.Add(6*time.Second), <-tk.C())
}

func TestFakeTickerStop(t *testing.T) {
	f := NewFake(epoch)
	tk := f.NewTicker(time.Second)
	require.Equal(t, 1, f.Tickers())

	tk.Stop()
	tk.Stop()
	assert.Equal(t, 0, f.Tickers())

	f.Advance(10 * time.Second)
	select {
	case <-tk.C():
		t.Fatal("stopped ticker fired")
	default:
	}
}

func TestFakeNewTickerPanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { NewFake(epoch).NewTicker(0) })
}

func TestFakeConcurrentAdvance(t *testing.T) {
	f := NewFake(epoch)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Advance(time.Millisecond)
		}()
	}
	wg.Wait()

	assert.Equal(t, epoch.Add(50*time.Millisecond), f.Now())
}
