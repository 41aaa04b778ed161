package domain

import "errors"

// ErrMissingField indica que un registro de entrada no trae un campo obligatorio.
var ErrMissingField = errors.New("missing field")

// Opportunity es una oportunidad de arbitraje ya calculada aguas arriba.
// El reporte solo la consume: no valida la propiedad de arbitraje.
type Opportunity struct {
	Match            string
	CommenceTime     string
	ProfitPercentage Number
	Odds             []OutcomeOffer

	// Source es el archivo del que se leyó (vacío si no viene de disco).
	Source string
}

// OutcomeOffer es la mejor cuota de un resultado en una casa de apuestas.
type OutcomeOffer struct {
	Outcome   string
	Bookmaker string
	Odds      Number // cuota decimal
	// Allocation es la fracción del bank (0..1) a apostar en este resultado
	// para igualar el payout entre todos los resultados.
	Allocation Number
}

// Allocate calcula las apuestas de todos los resultados para un bank dado.
func (o Opportunity) Allocate(bank Number) Allocation {
	a := Allocation{Bank: bank, Stakes: make([]Stake, 0, len(o.Odds))}
	for _, offer := range o.Odds {
		a.Stakes = append(a.Stakes, AllocateOffer(offer, bank))
	}
	return a
}
