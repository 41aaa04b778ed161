package domain

// Stake es la apuesta sugerida para un resultado y su payoff si ese resultado gana.
//
//	BetSize   = round2(allocation × bank)
//	OddsShown = round2(odds)
//	Win       = round2(BetSize × OddsShown)
//	Net       = round2(Win − bank)
type Stake struct {
	Offer     OutcomeOffer
	BetSize   Number
	OddsShown Number
	Win       Number
	Net       Number
}

// Allocation agrupa los Stakes de una oportunidad.
type Allocation struct {
	Bank   Number
	Stakes []Stake
}

// AllocateOffer aplica la aritmética de reparto a una sola cuota.
// Es determinista: mismas entradas, mismos valores redondeados.
func AllocateOffer(offer OutcomeOffer, bank Number) Stake {
	bet := offer.Allocation.Mul(bank).Round2()
	odds := offer.Odds.Round2()
	win := bet.Mul(odds).Round2()
	return Stake{
		Offer:     offer,
		BetSize:   bet,
		OddsShown: odds,
		Win:       win,
		Net:       win.Sub(bank).Round2(),
	}
}

// TotalStake es la suma de todas las apuestas.
func (a Allocation) TotalStake() Number {
	total := MustNumber("0.0")
	for _, s := range a.Stakes {
		total = total.Add(s.BetSize)
	}
	return total.Round2()
}

// GuaranteedReturn es el peor payout entre todos los resultados.
// Sin resultados devuelve cero.
func (a Allocation) GuaranteedReturn() Number {
	if len(a.Stakes) == 0 {
		return MustNumber("0.0")
	}
	worst := a.Stakes[0].Win
	for _, s := range a.Stakes[1:] {
		if s.Win.Cmp(worst) < 0 {
			worst = s.Win
		}
	}
	return worst
}

// GuaranteedProfit es GuaranteedReturn menos el bank.
func (a Allocation) GuaranteedProfit() Number {
	return a.GuaranteedReturn().Sub(a.Bank).Round2()
}
