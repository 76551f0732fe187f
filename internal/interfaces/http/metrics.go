package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/store-api/internal/domain"
)

var commandsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "store_api_commands_total",
		Help: "Comandos de dominio procesados, por operación y resultado.",
	},
	[]string{"operation", "outcome"},
)

// observeCommand registra el resultado de un comando de dominio.
func observeCommand(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = domain.KindOf(err).String()
	}
	commandsTotal.WithLabelValues(operation, outcome).Inc()
}

// MetricsHandler expone el registro de Prometheus vía el adaptador
// fiber↔net/http.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
