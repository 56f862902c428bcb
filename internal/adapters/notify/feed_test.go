package notify

import (
	"delivery-sim/internal/ports"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedRecentNewestFirst(t *testing.T) {
	f := NewFeed(3)

	for _, addr := range []string{"a", "b", "c", "d"} {
		f.Notify(ports.Notification{Kind: ports.DeliveryCompleted, Address: addr})
	}

	got := f.Recent(0)
	assert.Len(t, got, 3)
	assert.Equal(t, "d", got[0].Address)
	assert.Equal(t, "c", got[1].Address)
	assert.Equal(t, "b", got[2].Address)

	assert.Len(t, f.Recent(2), 2)
	assert.Equal(t, "d", f.Recent(1)[0].Address)
}

func TestFeedEmptyAndDefaultSize(t *testing.T) {
	f := NewFeed(0)

	assert.Empty(t, f.Recent(10))
	assert.Len(t, f.buf, DefaultFeedSize)
}

func TestMultiForwardsInOrder(t *testing.T) {
	var order []string
	m := Multi{
		ports.NotifierFunc(func(ports.Notification) { order = append(order, "first") }),
		nil,
		ports.NotifierFunc(func(ports.Notification) { order = append(order, "second") }),
	}

	m.Notify(ports.Notification{Kind: ports.RouteRecomputed})

	assert.Equal(t, []string{"first", "second"}, order)
}
