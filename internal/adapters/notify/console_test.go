package notify_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tony-feasts/bet-sync/internal/adapters/notify"
	"github.com/tony-feasts/bet-sync/internal/domain"
)

func makeOffer(outcome, bookmaker, odds, alloc string) domain.OutcomeOffer {
	return domain.OutcomeOffer{
		Outcome:    outcome,
		Bookmaker:  bookmaker,
		Odds:       domain.MustNumber(odds),
		Allocation: domain.MustNumber(alloc),
	}
}

func scenarioOpp() domain.Opportunity {
	return domain.Opportunity{
		Match:            "X vs Y",
		CommenceTime:     "2024-01-01T00:00:00Z",
		ProfitPercentage: domain.MustNumber("5.0"),
		Odds: []domain.OutcomeOffer{
			makeOffer("X", "B1", "2.1", "0.48"),
			makeOffer("Y", "B2", "2.0", "0.50"),
		},
	}
}

func TestConsole_Notify_Scenario(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewConsoleWriter(&buf, false)

	err := n.Notify(context.Background(), domain.Report{
		Bank:   domain.NumberFromFloat(1000),
		Loaded: 1,
		Ranked: []domain.Opportunity{scenarioOpp()},
	})
	require.NoError(t, err)

	want := "Found 1 arbitrages in total \n" +
		"\n" +
		"Found arbitrage: X vs Y - 2024-01-01T00:00:00Z\n" +
		"Profit percentage: 5.0%\n" +
		"Optimal bet sizes (assume bank size of $1000):\n" +
		"   X: $480.0 (B1, 2.1)\n" +
		"   Y: $500.0 (B2, 2.0)\n" +
		"Possible outcomes\n" +
		"   Case 1 (X): win = 480.0 * 2.1 = $1008.0, lose = $1000, net = $8.0\n" +
		"   Case 2 (Y): win = 500.0 * 2.0 = $1000.0, lose = $1000, net = $0.0\n" +
		"\n\n\n"
	assert.Equal(t, want, buf.String())
}

func TestConsole_Notify_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewConsoleWriter(&buf, true)

	err := n.Notify(context.Background(), domain.Report{Bank: domain.NumberFromFloat(1000)})
	require.NoError(t, err)
	assert.Equal(t, "Found 0 arbitrages in total \n\n", buf.String())
}

func TestConsole_Notify_LoadFailureLine(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewConsoleWriter(&buf, false)

	err := n.Notify(context.Background(), domain.Report{
		Bank:     domain.NumberFromFloat(1000),
		Failures: []domain.FileResult{{Path: "b.json", Err: errors.New("b.json: parse: unexpected end of JSON input")}},
	})
	require.NoError(t, err)

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "Unexpected exception:  b.json: parse: unexpected end of JSON input", lines[0])
	assert.Equal(t, "Found 0 arbitrages in total ", lines[1])
}

func TestConsole_Notify_IntegerLiteralsAndFractionalBank(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewConsoleWriter(&buf, false)

	opp := domain.Opportunity{
		Match:            "A vs B",
		CommenceTime:     "soon",
		ProfitPercentage: domain.MustNumber("3"),
		Odds:             []domain.OutcomeOffer{makeOffer("A", "bk", "3", "0.5")},
	}
	err := n.Notify(context.Background(), domain.Report{
		Bank:   domain.NumberFromFloat(250.5),
		Loaded: 1,
		Ranked: []domain.Opportunity{opp},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Profit percentage: 3%\n")
	assert.Contains(t, out, "(assume bank size of $250.5):")
	// 0.5 × 250.5 = 125.25; 125.25 × 3 = 375.75; 375.75 - 250.5 = 125.25
	assert.Contains(t, out, "   A: $125.25 (bk, 3)\n")
	assert.Contains(t, out, "   Case 1 (A): win = 125.25 * 3 = $375.75, lose = $250.5, net = $125.25\n")
}

func TestConsole_Notify_CasesAreOneIndexed(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewConsoleWriter(&buf, false)

	opp := scenarioOpp()
	opp.Odds = append(opp.Odds, makeOffer("Draw", "B3", "9.5", "0.02"))

	err := n.Notify(context.Background(), domain.Report{
		Bank:   domain.NumberFromFloat(1000),
		Loaded: 1,
		Ranked: []domain.Opportunity{opp},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "   Case 3 (Draw): win = 20.0 * 9.5 = $190.0, lose = $1000, net = $-810.0\n")
	assert.NotContains(t, out, "Case 0")
}

func TestConsole_Notify_SummaryTable(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewConsoleWriter(&buf, true)

	err := n.Notify(context.Background(), domain.Report{
		Bank:   domain.NumberFromFloat(1000),
		Loaded: 1,
		Ranked: []domain.Opportunity{scenarioOpp()},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "X vs Y")
	assert.Contains(t, out, "$980.0")
	assert.Contains(t, out, "Guaranteed = peor payout")
}

func TestConsole_Notify_LongMatchTruncatedInTable(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewConsoleWriter(&buf, true)

	opp := scenarioOpp()
	opp.Match = strings.Repeat("A", 50)

	err := n.Notify(context.Background(), domain.Report{
		Bank:   domain.NumberFromFloat(1000),
		Loaded: 1,
		Ranked: []domain.Opportunity{opp},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), strings.Repeat("A", 37)+"...")
}
