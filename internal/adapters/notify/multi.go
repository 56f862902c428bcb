package notify

import "delivery-sim/internal/ports"

// Multi forwards each notification to every wrapped notifier in order.
type Multi []ports.Notifier

func (m Multi) Notify(n ports.Notification) {
	for _, target := range m {
		if target != nil {
			target.Notify(n)
		}
	}
}
