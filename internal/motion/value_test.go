package motion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueSetNotifiesSubscribers(t *testing.T) {
	v := NewValue("x", 0)
	var seen []float64
	v.Subscribe(func(x float64) { seen = append(seen, x) })

	v.Set(3)
	v.Set(3)
	v.Set(-1)

	assert.Equal(t, -1.0, v.Get())
	assert.Equal(t, []float64{3, -1}, seen)
	assert.Equal(t, "x", v.Name())
}

func TestValueIgnoresNonFinite(t *testing.T) {
	v := NewValue("x", 2)
	calls := 0
	v.Subscribe(func(float64) { calls++ })
	v.Set(math.NaN())
	v.Set(math.Inf(1))
	assert.Equal(t, 2.0, v.Get())
	assert.Zero(t, calls)
	assert.Zero(t, NewValue("nan", math.NaN()).Get())
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	v := NewValue("x", 0)
	calls := 0
	for i := 0; i < 100; i++ {
		unsub := v.Subscribe(func(float64) { calls++ })
		v.Set(float64(i + 1))
		unsub()
		unsub()
	}
	require.Equal(t, 100, calls)
	assert.Zero(t, v.SubscriberCount())

	v.Set(1000)
	assert.Equal(t, 100, calls)
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	v := NewValue("x", 0)
	var second Unsubscribe
	secondCalls := 0
	v.Subscribe(func(float64) { second() })
	second = v.Subscribe(func(float64) { secondCalls++ })

	v.Set(1)
	v.Set(2)
	assert.Zero(t, secondCalls)
	assert.Equal(t, 1, v.SubscriberCount())
}
