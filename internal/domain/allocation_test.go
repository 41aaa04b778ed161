package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offer(outcome, odds, alloc string) OutcomeOffer {
	return OutcomeOffer{
		Outcome:    outcome,
		Bookmaker:  "bk",
		Odds:       MustNumber(odds),
		Allocation: MustNumber(alloc),
	}
}

func TestAllocateOffer_TwoWayScenario(t *testing.T) {
	bank := NumberFromFloat(1000)

	x := AllocateOffer(offer("X", "2.1", "0.48"), bank)
	assert.Equal(t, "480.0", x.BetSize.String())
	assert.Equal(t, "2.1", x.OddsShown.String())
	assert.Equal(t, "1008.0", x.Win.String())
	assert.Equal(t, "8.0", x.Net.String())

	y := AllocateOffer(offer("Y", "2.0", "0.50"), bank)
	assert.Equal(t, "500.0", y.BetSize.String())
	assert.Equal(t, "2.0", y.OddsShown.String())
	assert.Equal(t, "1000.0", y.Win.String())
	assert.Equal(t, "0.0", y.Net.String())
}

func TestAllocateOffer_RoundsOddsBeforeMultiplying(t *testing.T) {
	// 2.345 → 2.34 (half-even), 400 × 2.34 = 936
	s := AllocateOffer(offer("A", "2.345", "0.4"), NumberFromFloat(1000))
	assert.Equal(t, "2.34", s.OddsShown.String())
	assert.Equal(t, "936.0", s.Win.String())
	assert.Equal(t, "-64.0", s.Net.String())
}

func TestAllocateOffer_Idempotent(t *testing.T) {
	o := offer("A", "3.17", "0.316423")
	bank := NumberFromFloat(1000)

	first := AllocateOffer(o, bank)
	second := AllocateOffer(o, bank)
	assert.Equal(t, first, second)
	assert.Equal(t, "316.42", first.BetSize.String())
	assert.Equal(t, "1003.05", first.Win.String())
}

func TestRound2_BankersRounding(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"0.125", "0.12"},
		{"0.135", "0.14"},
		{"2.675", "2.68"},
		{"-1.005", "-1.0"},
		{"7.1", "7.1"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, MustNumber(tc.in).Round2().String())
		})
	}
}

func TestNumber_String(t *testing.T) {
	cases := []struct {
		lit, want string
	}{
		{"5", "5"},
		{"5.0", "5.0"},
		{"2.10", "2.1"},
		{"-0.5", "-0.5"},
		{"1e-5", "1e-05"},
		{"1.5e2", "150.0"},
	}
	for _, tc := range cases {
		t.Run(tc.lit, func(t *testing.T) {
			assert.Equal(t, tc.want, MustNumber(tc.lit).String())
		})
	}
}

func TestNumber_IntegerArithmeticStaysInteger(t *testing.T) {
	s := AllocateOffer(offer("A", "2", "1"), NumberFromFloat(1000))
	assert.Equal(t, "1000", s.BetSize.String())
	assert.Equal(t, "2000", s.Win.String())
	assert.Equal(t, "1000", s.Net.String())
}

func TestNumberFromFloat(t *testing.T) {
	assert.Equal(t, "1000", NumberFromFloat(1000).String())
	assert.False(t, NumberFromFloat(1000).IsFloat())
	assert.Equal(t, "250.5", NumberFromFloat(250.5).String())
	assert.True(t, NumberFromFloat(250.5).IsFloat())
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	var n Number
	require.NoError(t, json.Unmarshal([]byte(`4.20`), &n))
	assert.Equal(t, "4.2", n.String())
	assert.True(t, n.IsFloat())

	assert.Error(t, json.Unmarshal([]byte(`"4.20"`), &n))
	assert.Error(t, json.Unmarshal([]byte(`true`), &n))
}

func TestAllocation_Summary(t *testing.T) {
	opp := Opportunity{
		Match:            "X vs Y",
		ProfitPercentage: MustNumber("5.0"),
		Odds: []OutcomeOffer{
			offer("X", "2.1", "0.48"),
			offer("Y", "2.0", "0.50"),
		},
	}

	a := opp.Allocate(NumberFromFloat(1000))
	require.Len(t, a.Stakes, 2)
	assert.Equal(t, "980.0", a.TotalStake().String())
	assert.Equal(t, "1000.0", a.GuaranteedReturn().String())
	assert.Equal(t, "0.0", a.GuaranteedProfit().String())
}

func TestAllocation_Empty(t *testing.T) {
	a := Opportunity{}.Allocate(NumberFromFloat(1000))
	assert.Empty(t, a.Stakes)
	assert.Equal(t, "0.0", a.TotalStake().String())
	assert.Equal(t, "-1000.0", a.GuaranteedProfit().String())
}
