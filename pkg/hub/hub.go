// Package hub provides the pipeline orchestrator. A Hub owns three
// registries (generators by kind, formatters by format, delivery
// strategies by method), sequences generate → format → deliver for
// each request, fans out across delivery targets, and appends one
// history entry per completed delivery attempt.
package hub

import (
	"context"
	"time"

	"github.com/kart-io/dispatchhub/pkg/async"
	"github.com/kart-io/dispatchhub/pkg/config"
	"github.com/kart-io/dispatchhub/pkg/delivery"
	"github.com/kart-io/dispatchhub/pkg/format"
	"github.com/kart-io/dispatchhub/pkg/generator"
	"github.com/kart-io/dispatchhub/pkg/history"
	"github.com/kart-io/dispatchhub/pkg/logger"
	"github.com/kart-io/dispatchhub/pkg/observability"
	"github.com/kart-io/dispatchhub/pkg/registry"
	"github.com/kart-io/dispatchhub/pkg/request"
	"github.com/kart-io/dispatchhub/pkg/target"
	"github.com/kart-io/dispatchhub/pkg/utils/clock"
)

// Hub orchestrates the content pipeline.
type Hub struct {
	generators *registry.Registry[generator.Generator]
	formatters *registry.Registry[format.Formatter]
	deliveries *registry.Registry[delivery.Strategy]
	history    history.Store
	logger     logger.Logger
	clock      clock.Clock
	telemetry  *observability.Telemetry
	pool       *async.Pool[*Receipt]
	cfg        *config.Config
}

// New builds a hub from functional options.
func New(opts ...config.Option) (*Hub, error) {
	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg)
}

// NewWithConfig builds a hub from an already-validated configuration.
// Unless the configuration skips defaults, the built-in generator,
// formatter, and delivery sets are pre-registered; more can be
// registered at any time through the registry accessors.
func NewWithConfig(cfg *config.Config) (*Hub, error) {
	telemetry, err := observability.New(cfg.Telemetry)
	if err != nil {
		return nil, err
	}

	h := &Hub{
		generators: registry.New[generator.Generator]("generator", cfg.Logger),
		formatters: registry.New[format.Formatter]("formatter", cfg.Logger),
		deliveries: registry.New[delivery.Strategy]("delivery", cfg.Logger),
		history:    cfg.History,
		logger:     cfg.Logger,
		clock:      cfg.Clock,
		telemetry:  telemetry,
		pool:       async.NewPool[*Receipt](cfg.QueueCapacity, cfg.Workers, cfg.Logger),
		cfg:        cfg,
	}
	if !cfg.SkipDefaults {
		h.registerDefaults()
	}
	return h, nil
}

func (h *Hub) registerDefaults() {
	clk, log := h.clock, h.logger

	h.generators.Register(generator.KindSales, generator.NewSalesGenerator(clk))
	h.generators.Register(generator.KindInventory, generator.NewInventoryGenerator(clk))
	h.generators.Register(generator.KindFinancial, generator.NewFinancialGenerator(clk))
	h.generators.Register(generator.KindOrderEmail, generator.NewOrderMessageGenerator(target.TypeEmail, clk))
	h.generators.Register(generator.KindOrderSMS, generator.NewOrderMessageGenerator(target.TypeSMS, clk))
	h.generators.Register(generator.KindOrderPush, generator.NewOrderMessageGenerator(target.TypePush, clk))

	h.formatters.Register(format.FormatPDF, format.NewPDFFormatter(log))
	h.formatters.Register(format.FormatExcel, format.NewExcelFormatter(log))
	h.formatters.Register(format.FormatHTML, format.NewHTMLFormatter(log))
	h.formatters.Register(format.FormatText, format.NewTextFormatter())

	h.deliveries.Register(target.TypeEmail, delivery.NewEmailStrategy(log, clk))
	h.deliveries.Register(target.TypeSMS, delivery.NewSMSStrategy(log, clk))
	h.deliveries.Register(target.TypePush, delivery.NewPushStrategy(log, clk))
	h.deliveries.Register(target.TypeDownload, delivery.NewDownloadStrategy(log, clk))
	h.deliveries.Register(target.TypeCloud, delivery.NewCloudStrategy(log, clk))
}

// Generators returns the generator registry for runtime registration.
func (h *Hub) Generators() *registry.Registry[generator.Generator] { return h.generators }

// Formatters returns the formatter registry for runtime registration.
func (h *Hub) Formatters() *registry.Registry[format.Formatter] { return h.formatters }

// Deliveries returns the delivery registry for runtime registration.
func (h *Hub) Deliveries() *registry.Registry[delivery.Strategy] { return h.deliveries }

// History returns the history store.
func (h *Hub) History() history.Store { return h.history }

// ProcessAsync queues the request for background processing and
// returns a handle for tracking the receipt.
func (h *Hub) ProcessAsync(ctx context.Context, req *request.Request) (*async.Handle[*Receipt], error) {
	return h.pool.Submit(ctx, func(ctx context.Context) (*Receipt, error) {
		return h.Process(ctx, req)
	})
}

// Close drains the async pool and releases the history store and
// telemetry provider.
func (h *Hub) Close() error {
	h.pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.telemetry.Shutdown(ctx); err != nil {
		h.logger.Warn("Telemetry shutdown failed", "error", err)
	}
	return h.history.Close()
}
