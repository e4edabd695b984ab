package notify

import "github.com/prometheus/client_golang/prometheus"

// metrics instruments the scheduler. Registration is optional: pass a
// Registerer via WithRegisterer to expose them, otherwise the counters
// stay unregistered (still safe to increment).
type metrics struct {
	scans      prometheus.Counter
	sent       *prometheus.CounterVec
	sendErrors prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		scans: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "prism_notification_scans_total",
			Help: "Bill scans performed by the notification scheduler.",
		}),
		sent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prism_notifications_sent_total",
			Help: "Notifications handed to the display layer, by kind.",
		}, []string{"kind"}),
		sendErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "prism_notification_send_errors_total",
			Help: "Notifications the display layer failed to deliver.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.scans, m.sent, m.sendErrors)
	}
	return m
}
