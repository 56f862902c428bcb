package notify

import (
	"delivery-sim/internal/ports"

	"github.com/sirupsen/logrus"
)

// LogNotifier writes each notification as a structured log line.
type LogNotifier struct {
	log *logrus.Entry
}

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogNotifier{log: logger.WithField("module", "notify")}
}

func (n *LogNotifier) Notify(msg ports.Notification) {
	fields := logrus.Fields{"kind": msg.Kind}

	switch msg.Kind {
	case ports.DeliveryCompleted:
		fields["address"] = msg.Address
	case ports.SimulationCompleted:
		fields["minutes"] = msg.Minutes
	case ports.EventTriggered:
		fields["event_id"] = msg.EventID
		fields["description"] = msg.Description
	case ports.EventResolved:
		fields["event_id"] = msg.EventID
	case ports.RouteRecomputed:
		fields["distance"] = msg.Distance
	}

	n.log.WithFields(fields).Info("notification")
}
