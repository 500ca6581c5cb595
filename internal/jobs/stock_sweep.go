// Package jobs contiene los trabajos de fondo del servicio.
package jobs

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/jortizdev/stockvista-api/internal/application/usecase"
	"github.com/jortizdev/stockvista-api/pkg/logger"
)

// DefaultSweepInterval frecuencia del barrido de alertas cuando la
// configuración no indica otra.
const DefaultSweepInterval = 30 * time.Minute

// StockSweep recalcula periódicamente las alertas de inventario y las deja en
// el log estructurado. No envía notificaciones ni muta estado: la API sigue
// siendo la fuente de verdad; el barrido existe para que los operadores vean
// el deterioro del inventario sin tener el dashboard abierto.
type StockSweep struct {
	scheduler gocron.Scheduler
	alerts    *usecase.AlertUseCase
	log       *logger.Logger
	interval  time.Duration
}

// NewStockSweep construye el barrido. interval <= 0 aplica el default de 30 m.
func NewStockSweep(alerts *usecase.AlertUseCase, log *logger.Logger, interval time.Duration) (*StockSweep, error) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &StockSweep{
		scheduler: scheduler,
		alerts:    alerts,
		log:       log.Component("stock-sweep"),
		interval:  interval,
	}, nil
}

// Start registra el job y arranca el scheduler.
func (s *StockSweep) Start() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.run, context.Background()),
		gocron.WithName("stock-alert-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}
	s.scheduler.Start()
	s.log.Info().Dur("interval", s.interval).Msg("barrido de alertas iniciado")
	return nil
}

// Stop detiene el scheduler esperando a que termine el job en curso.
func (s *StockSweep) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *StockSweep) run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := s.alerts.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("barrido de alertas falló")
		return
	}
	if len(resp.Alerts) == 0 {
		s.log.Debug().Msg("barrido de alertas: inventario sin alertas activas")
		return
	}

	s.log.Warn().
		Int("total", len(resp.Alerts)).
		Int("critical", resp.CriticalCount).
		Int("warning", resp.WarningCount).
		Msg("alertas de inventario activas")
	for _, a := range resp.Alerts {
		s.log.Warn().
			Str("alert_id", a.ID).
			Str("type", string(a.Type)).
			Str("category", string(a.Category)).
			Str("product_id", a.ProductID).
			Msg(a.Message)
	}
}
