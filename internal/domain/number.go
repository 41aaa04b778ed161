package domain

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Number es un valor numérico del JSON de entrada.
// Guarda el valor exacto en decimal y si el literal era entero o flotante:
// un entero se muestra sin decimales ("5"), un flotante siempre con al menos
// uno ("5.0"). La aritmética propaga el tipo: si un operando es flotante, el
// resultado también.
type Number struct {
	value   decimal.Decimal
	isFloat bool
}

// ParseNumber interpreta un literal numérico JSON.
func ParseNumber(lit string) (Number, error) {
	d, err := decimal.NewFromString(lit)
	if err != nil {
		return Number{}, fmt.Errorf("domain.ParseNumber: %q: %w", lit, err)
	}
	return Number{value: d, isFloat: strings.ContainsAny(lit, ".eE")}, nil
}

// MustNumber es ParseNumber para literales conocidos (tests, constantes).
func MustNumber(lit string) Number {
	n, err := ParseNumber(lit)
	if err != nil {
		panic(err)
	}
	return n
}

// NumberFromFloat convierte un float de configuración. Los valores enteros
// (ej. bank size 1000) se tratan como enteros.
func NumberFromFloat(f float64) Number {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return Number{value: decimal.NewFromInt(int64(f))}
	}
	return Number{value: decimal.NewFromFloat(f), isFloat: true}
}

// UnmarshalJSON acepta solo números JSON; los strings numéricos se rechazan.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || !(b[0] == '-' || (b[0] >= '0' && b[0] <= '9')) {
		return fmt.Errorf("expected a number, got %s", b)
	}
	parsed, err := ParseNumber(string(b))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Decimal devuelve el valor exacto.
func (n Number) Decimal() decimal.Decimal { return n.value }

// IsFloat indica si el valor se muestra como flotante.
func (n Number) IsFloat() bool { return n.isFloat }

// Float64 devuelve el valor como float64 (puede perder precisión).
func (n Number) Float64() float64 { return n.value.InexactFloat64() }

// Cmp compara dos Number por valor: -1, 0 o +1.
func (n Number) Cmp(o Number) int { return n.value.Cmp(o.value) }

func (n Number) Add(o Number) Number {
	return Number{value: n.value.Add(o.value), isFloat: n.isFloat || o.isFloat}
}

func (n Number) Sub(o Number) Number {
	return Number{value: n.value.Sub(o.value), isFloat: n.isFloat || o.isFloat}
}

func (n Number) Mul(o Number) Number {
	return Number{value: n.value.Mul(o.value), isFloat: n.isFloat || o.isFloat}
}

// Round2 redondea a 2 decimales con round-half-to-even (banker's rounding).
// El tipo entero/flotante no cambia.
func (n Number) Round2() Number {
	return Number{value: n.value.RoundBank(2), isFloat: n.isFloat}
}

// String formatea el número como lo muestra el reporte: enteros tal cual,
// flotantes con la representación más corta y al menos un decimal, con
// notación exponencial fuera de [1e-4, 1e16).
func (n Number) String() string {
	if !n.isFloat {
		return n.value.String()
	}
	return formatFloat(n.value.InexactFloat64())
}

func formatFloat(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
