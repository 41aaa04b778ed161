package report

import (
	"sort"

	"github.com/tony-feasts/bet-sync/internal/domain"
)

// rankByProfit devuelve una copia ordenada por ProfitPercentage descendente.
// El orden es estable: los empates conservan el orden de carga.
func rankByProfit(opps []domain.Opportunity) []domain.Opportunity {
	ranked := make([]domain.Opportunity, len(opps))
	copy(ranked, opps)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ProfitPercentage.Cmp(ranked[j].ProfitPercentage) > 0
	})
	return ranked
}
