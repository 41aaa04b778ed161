package ports

import (
	"context"

	"github.com/tony-feasts/bet-sync/internal/domain"
)

// OpportunitySource entrega las oportunidades de arbitraje ya calculadas.
type OpportunitySource interface {
	// Load lee todas las oportunidades disponibles. Los fallos por archivo
	// quedan dentro del LoadResult; la implementación decide, según su
	// política, si sigue leyendo tras un error.
	Load(ctx context.Context) domain.LoadResult
}
