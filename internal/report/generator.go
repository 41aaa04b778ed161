package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tony-feasts/bet-sync/internal/domain"
	"github.com/tony-feasts/bet-sync/internal/ports"
)

const defaultBankSize = 1000

// Config contiene la configuración del generador.
type Config struct {
	Bank   domain.Number
	Filter FilterConfig
}

// DefaultConfig devuelve la configuración del script original: bank de 1000, sin filtros.
func DefaultConfig() Config {
	return Config{
		Bank:   domain.NumberFromFloat(defaultBankSize),
		Filter: DefaultFilterConfig(),
	}
}

// Summary resume una corrida.
type Summary struct {
	RunID   string
	Loaded  int // oportunidades cargadas, antes de filtros
	Printed int // bloques presentados
	Failed  int // archivos con error de carga
	Stopped bool
}

// Generator es el pipeline load → rank → filter → notify.
type Generator struct {
	cfg      Config
	source   ports.OpportunitySource
	notifier ports.Notifier
	filter   *Filter
}

// New crea un Generator con todas las dependencias inyectadas.
func New(cfg Config, source ports.OpportunitySource, notifier ports.Notifier) *Generator {
	return &Generator{
		cfg:      cfg,
		source:   source,
		notifier: notifier,
		filter:   NewFilter(cfg.Filter),
	}
}

// Run ejecuta una corrida completa. Los errores de carga no son fatales:
// se entregan al notificador y la corrida sigue con lo que se pudo leer.
// Solo un error del notificador se devuelve.
func (g *Generator) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	runID := uuid.New().String()
	log := slog.With("run_id", runID)

	report, res := g.Build(ctx)
	sum := Summary{
		RunID:   runID,
		Loaded:  report.Loaded,
		Printed: len(report.Ranked),
		Failed:  len(report.Failures),
		Stopped: res.Stopped,
	}

	for _, f := range report.Failures {
		log.Warn("load failure tolerated", "path", f.Path, "err", f.Err)
	}

	if err := g.notifier.Notify(ctx, report); err != nil {
		return sum, fmt.Errorf("report.Run: notify: %w", err)
	}

	log.Info("report complete",
		"files", len(res.Files),
		"loaded", sum.Loaded,
		"printed", sum.Printed,
		"failed", sum.Failed,
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return sum, nil
}

// Build hace load → rank → filter y devuelve el reporte sin presentarlo.
func (g *Generator) Build(ctx context.Context) (domain.Report, domain.LoadResult) {
	res := g.source.Load(ctx)
	loaded := res.Opportunities()

	return domain.Report{
		Bank:     g.cfg.Bank,
		Loaded:   len(loaded),
		Failures: res.Failures(),
		Ranked:   g.filter.Apply(rankByProfit(loaded)),
	}, res
}
