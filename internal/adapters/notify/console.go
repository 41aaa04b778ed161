package notify

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/tony-feasts/bet-sync/internal/domain"
)

// Console implementa ports.Notifier escribiendo el reporte en texto plano.
type Console struct {
	out   io.Writer
	table bool
}

// NewConsole crea un notificador que escribe a stdout.
func NewConsole(table bool) *Console {
	return &Console{out: os.Stdout, table: table}
}

// NewConsoleWriter crea un notificador para tests.
func NewConsoleWriter(w io.Writer, table bool) *Console {
	return &Console{out: w, table: table}
}

// Notify imprime los errores de carga, el conteo total y un bloque por
// oportunidad en el orden recibido.
func (c *Console) Notify(_ context.Context, r domain.Report) error {
	w := bufio.NewWriter(c.out)

	for _, f := range r.Failures {
		fmt.Fprintln(w, "Unexpected exception: ", f.Err)
	}
	fmt.Fprintf(w, "Found %d arbitrages in total \n\n", r.Loaded)

	for _, opp := range r.Ranked {
		writeOpportunity(w, opp, r.Bank)
	}

	if c.table && len(r.Ranked) > 0 {
		writeSummaryTable(w, r)
	}

	return w.Flush()
}

// writeOpportunity imprime el bloque de una oportunidad:
// cabecera, apuestas sugeridas y el payoff de cada resultado.
func writeOpportunity(w io.Writer, opp domain.Opportunity, bank domain.Number) {
	alloc := opp.Allocate(bank)

	fmt.Fprintf(w, "Found arbitrage: %s - %s\n", opp.Match, opp.CommenceTime)
	fmt.Fprintf(w, "Profit percentage: %s%%\n", opp.ProfitPercentage)

	fmt.Fprintf(w, "Optimal bet sizes (assume bank size of $%s):\n", bank)
	for _, s := range alloc.Stakes {
		fmt.Fprintf(w, "   %s: $%s (%s, %s)\n",
			s.Offer.Outcome, s.BetSize, s.Offer.Bookmaker, s.Offer.Odds)
	}

	fmt.Fprintln(w, "Possible outcomes")
	for i, s := range alloc.Stakes {
		fmt.Fprintf(w, "   Case %d (%s): win = %s * %s = $%s, lose = $%s, net = $%s\n",
			i+1, s.Offer.Outcome, s.BetSize, s.OddsShown, s.Win, bank, s.Net)
	}
	fmt.Fprint(w, "\n\n\n")
}

// writeSummaryTable imprime una tabla compacta con el ranking.
func writeSummaryTable(w io.Writer, r domain.Report) {
	table := tablewriter.NewWriter(w)
	table.Header("#", "Match", "Profit %", "Stake", "Guaranteed", "Net")

	for i, opp := range r.Ranked {
		alloc := opp.Allocate(r.Bank)
		table.Append(
			fmt.Sprintf("%d", i+1),
			truncate(opp.Match, 40),
			opp.ProfitPercentage.String(),
			"$"+alloc.TotalStake().String(),
			"$"+alloc.GuaranteedReturn().String(),
			"$"+alloc.GuaranteedProfit().String(),
		)
	}

	table.Render()
	fmt.Fprintf(w, "  Stake = total apostado | Guaranteed = peor payout | Net = Guaranteed - bank ($%s)\n", r.Bank)
}

// truncate recorta s a maxLen runas, agregando "..." si corta.
func truncate(s string, maxLen int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= maxLen {
		return string(runes)
	}
	return string(runes[:maxLen-3]) + "..."
}
