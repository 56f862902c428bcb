package metrics

import (
	"delivery-sim/internal/ports"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorCountsNotifications(t *testing.T) {
	c := NewCollector()
	require.NoError(t, c.Register())

	c.Notify(ports.Notification{Kind: ports.DeliveryCompleted})
	c.Notify(ports.Notification{Kind: ports.DeliveryCompleted})
	c.Notify(ports.Notification{Kind: ports.SimulationCompleted})
	c.Notify(ports.Notification{Kind: ports.EventTriggered})
	c.Notify(ports.Notification{Kind: ports.EventTriggered})
	c.Notify(ports.Notification{Kind: ports.EventResolved})
	c.Notify(ports.Notification{Kind: ports.RouteRecomputed, Distance: 18})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.deliveries))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.completions))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.activeEvents))
	assert.Equal(t, 18.0, testutil.ToFloat64(c.routeDistance))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.notifications.WithLabelValues(string(ports.EventTriggered))))

	c.ResetEvents()
	assert.Equal(t, 0.0, testutil.ToFloat64(c.activeEvents))
}

func TestCollectorRecordsHTTPRequests(t *testing.T) {
	c := NewCollector()
	require.NoError(t, c.Register())

	c.RecordHTTPRequest("GET", "/grid", 200, 0.002)
	c.RecordHTTPRequest("GET", "/grid", 200, 0.004)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.httpRequests.WithLabelValues("GET", "/grid", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.httpDuration))
}

func TestCollectorRegisterTwiceFails(t *testing.T) {
	c := NewCollector()
	require.NoError(t, c.Register())

	assert.Error(t, c.Register())
}
