package report

import (
	"github.com/tony-feasts/bet-sync/internal/domain"
)

// FilterConfig contiene los parámetros configurables de filtrado.
// Solo afecta a los bloques impresos; el conteo siempre refleja todo lo cargado.
type FilterConfig struct {
	// MinProfitPercentage descarta oportunidades con profit menor. nil = sin filtro.
	MinProfitPercentage *domain.Number
	// Limit imprime solo las N mejores. 0 = todas.
	Limit int
}

// DefaultFilterConfig no filtra nada, igual que el script original.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{}
}

// Filter aplica los filtros configurados sobre una lista ya ordenada.
type Filter struct {
	cfg FilterConfig
}

// NewFilter crea un Filter con la configuración dada.
func NewFilter(cfg FilterConfig) *Filter {
	return &Filter{cfg: cfg}
}

// Apply devuelve las oportunidades que pasan el umbral, recortadas a Limit.
// El orden de entrada se conserva.
func (f *Filter) Apply(opps []domain.Opportunity) []domain.Opportunity {
	result := make([]domain.Opportunity, 0, len(opps))
	for _, opp := range opps {
		if f.cfg.Limit > 0 && len(result) >= f.cfg.Limit {
			break
		}
		if f.passes(opp) {
			result = append(result, opp)
		}
	}
	return result
}

func (f *Filter) passes(opp domain.Opportunity) bool {
	if f.cfg.MinProfitPercentage != nil && opp.ProfitPercentage.Cmp(*f.cfg.MinProfitPercentage) < 0 {
		return false
	}
	return true
}
