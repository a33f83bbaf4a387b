package idle

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimer_FiresOnce(t *testing.T) {
	var fired atomic.Int32
	tm := New(20*time.Millisecond, func() { fired.Add(1) })

	tm.Arm()
	assert.True(t, tm.Armed())

	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.False(t, tm.Armed())

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestTimer_DisarmPreventsExpiry(t *testing.T) {
	var fired atomic.Int32
	tm := New(30*time.Millisecond, func() { fired.Add(1) })

	tm.Arm()
	tm.Disarm()
	assert.False(t, tm.Armed())

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestTimer_ResetPostponesExpiry(t *testing.T) {
	var fired atomic.Int32
	tm := New(150*time.Millisecond, func() { fired.Add(1) })
	tm.Arm()

	for i := 0; i < 5; i++ {
		time.Sleep(20 * time.Millisecond)
		require.True(t, tm.Reset())
	}
	assert.Equal(t, int32(0), fired.Load(), "activity within the window must keep the timer alive")

	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestTimer_ResetOnDisarmedIsNoop(t *testing.T) {
	var fired atomic.Int32
	tm := New(10*time.Millisecond, func() { fired.Add(1) })

	assert.False(t, tm.Reset())
	assert.False(t, tm.Armed())

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestTimer_RearmAfterExpiry(t *testing.T) {
	var fired atomic.Int32
	tm := New(10*time.Millisecond, func() { fired.Add(1) })

	tm.Arm()
	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 2*time.Millisecond)

	tm.Arm()
	require.Eventually(t, func() bool { return fired.Load() == 2 }, time.Second, 2*time.Millisecond)
}

func TestTimer_ExpiryCanDisarm(t *testing.T) {
	done := make(chan struct{})
	var tm *Timer
	tm = New(5*time.Millisecond, func() {
		tm.Disarm()
		close(done)
	})
	tm.Arm()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expiry callback did not run")
	}
	assert.Equal(t, 5*time.Millisecond, tm.Timeout())
}
