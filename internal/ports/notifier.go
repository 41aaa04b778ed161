package ports

import (
	"context"

	"github.com/tony-feasts/bet-sync/internal/domain"
)

// Notifier presenta el reporte al usuario.
type Notifier interface {
	// Notify muestra los errores de carga, el conteo y cada oportunidad
	// en el orden recibido. En la implementación de consola, escribe texto plano.
	Notify(ctx context.Context, report domain.Report) error
}
