package notify

import (
	"delivery-sim/internal/ports"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNotifierFields(t *testing.T) {
	logger, hook := test.NewNullLogger()
	n := NewLogNotifier(logger)

	n.Notify(ports.Notification{Kind: ports.EventTriggered, EventID: "event-1", Description: "Road closure"})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "notification", entry.Message)
	assert.Equal(t, ports.EventTriggered, entry.Data["kind"])
	assert.Equal(t, "event-1", entry.Data["event_id"])
	assert.Equal(t, "notify", entry.Data["module"])
	assert.NotContains(t, entry.Data, "distance")
}
