package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ActiveConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chat_active_connections",
		Help: "Active websocket connections",
	})
	MessagesStored = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chat_messages_stored_total",
		Help: "Messages accepted and appended to a conversation log",
	})
	MessagesDelivered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chat_messages_delivered_total",
		Help: "Messages that transitioned to delivered",
	})
)

func Init() {
	prometheus.MustRegister(ActiveConnections, MessagesStored, MessagesDelivered)
}
