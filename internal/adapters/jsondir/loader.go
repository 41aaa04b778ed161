package jsondir

// loader.go — lee oportunidades precalculadas desde un directorio de JSON.
//
// Cada archivo `*.json` es un documento con una key opcional
// `arbitrage_opportunities`. Los registros se decodifican a structs tipados y
// se validan al parsear: un campo faltante falla el archivo entero con el
// nombre del campo en el error.
//
// El orden de lectura es el de os.ReadDir (por nombre), así la política
// stop/skip es determinista.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tony-feasts/bet-sync/internal/domain"
)

// Policy decide qué hacer cuando un archivo falla.
type Policy string

const (
	// PolicyStop corta la carga en el primer error y conserva lo ya leído.
	PolicyStop Policy = "stop"
	// PolicySkip registra el error y sigue con el resto de archivos.
	PolicySkip Policy = "skip"
)

// ParsePolicy valida un nombre de política de config/flags.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyStop, PolicySkip:
		return p, nil
	default:
		return "", fmt.Errorf("jsondir.ParsePolicy: unknown policy %q (want stop|skip)", s)
	}
}

// FileError asocia un error de carga con el archivo que lo produjo.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return e.Path + ": " + e.Err.Error() }

func (e *FileError) Unwrap() error { return e.Err }

const opportunitiesKey = "arbitrage_opportunities"

// document es el formato en disco.
type document struct {
	Opportunities []rawOpportunity `json:"arbitrage_opportunities" validate:"dive"`
}

// Los punteros distinguen "campo ausente" de "valor cero".
type rawOpportunity struct {
	Match            *string        `json:"match" validate:"required"`
	CommenceTime     *string        `json:"commence_time" validate:"required"`
	ProfitPercentage *domain.Number `json:"profit_percentage" validate:"required"`
	Odds             []rawOffer     `json:"odds" validate:"required,dive"`
}

type rawOffer struct {
	Outcome    *string        `json:"outcome" validate:"required"`
	Bookmaker  *string        `json:"bookmaker" validate:"required"`
	Odds       *domain.Number `json:"odds" validate:"required"`
	Allocation *domain.Number `json:"optimal_bank_allocation" validate:"required"`
}

// Loader implementa ports.OpportunitySource sobre un directorio local.
type Loader struct {
	dir       string
	extension string
	policy    Policy
	validate  *validator.Validate
}

// NewLoader crea un Loader. Una extensión vacía equivale a ".json".
func NewLoader(dir, extension string, policy Policy) *Loader {
	if extension == "" {
		extension = ".json"
	}
	if policy == "" {
		policy = PolicyStop
	}

	v := validator.New()
	// Errores con los nombres del JSON, no los del struct.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Loader{dir: dir, extension: extension, policy: policy, validate: v}
}

// Dir devuelve el directorio configurado.
func (l *Loader) Dir() string { return l.dir }

// Load lee todos los archivos del directorio con la extensión configurada.
// Nunca devuelve error: los fallos quedan en el LoadResult para que el
// llamador decida.
func (l *Loader) Load(ctx context.Context) domain.LoadResult {
	var res domain.LoadResult

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		res.Files = append(res.Files, domain.FileResult{
			Path: l.dir,
			Err:  &FileError{Path: l.dir, Err: fmt.Errorf("list directory: %w", err)},
		})
		res.Stopped = true
		return res
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), l.extension) {
			continue
		}
		if err := ctx.Err(); err != nil {
			res.Files = append(res.Files, domain.FileResult{Path: l.dir, Err: err})
			res.Stopped = true
			return res
		}

		path := filepath.Join(l.dir, entry.Name())
		fr := l.loadFile(path)
		res.Files = append(res.Files, fr)

		if fr.OK() {
			slog.Debug("loaded opportunities file", "path", path, "count", len(fr.Opportunities))
			continue
		}

		slog.Debug("failed to load opportunities file", "path", path, "err", fr.Err, "policy", l.policy)
		if l.policy == PolicyStop {
			res.Stopped = true
			return res
		}
	}

	return res
}

// loadFile lee y valida un archivo.
func (l *Loader) loadFile(path string) domain.FileResult {
	opps, err := l.readFile(path)
	if err != nil {
		return domain.FileResult{Path: path, Err: &FileError{Path: path, Err: err}}
	}
	return domain.FileResult{Path: path, Opportunities: opps}
}

func (l *Loader) readFile(path string) ([]domain.Opportunity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}

	if err := l.validate.Struct(doc); err != nil {
		return nil, describeValidation(err)
	}

	return doc.toDomain(path), nil
}

// decodeDocument separa la key de oportunidades del resto del documento.
// Un documento que es un array no tiene la key: aporta cero, sin error.
// Un documento null o una lista null sí son errores.
func decodeDocument(data []byte) (document, error) {
	var doc document

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if !json.Valid(trimmed) {
			return doc, fmt.Errorf("parse: invalid JSON array")
		}
		return doc, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return doc, fmt.Errorf("parse: %w", err)
	}
	if fields == nil {
		return doc, fmt.Errorf("parse: document is null")
	}

	raw, ok := fields[opportunitiesKey]
	if !ok {
		return doc, nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return doc, fmt.Errorf("parse: %s is null, want a list", opportunitiesKey)
	}
	if err := json.Unmarshal(raw, &doc.Opportunities); err != nil {
		return doc, fmt.Errorf("parse: %s: %w", opportunitiesKey, err)
	}
	return doc, nil
}

// describeValidation convierte el primer error del validador en
// "<ruta JSON>: missing field".
func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate: %w", err)
	}

	fe := verrs[0]
	// Namespace viene como "document.arbitrage_opportunities[0].odds[1].odds".
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	if fe.Tag() == "required" {
		return fmt.Errorf("%s: %w", field, domain.ErrMissingField)
	}
	return fmt.Errorf("%s: failed %q validation", field, fe.Tag())
}

func (d document) toDomain(source string) []domain.Opportunity {
	opps := make([]domain.Opportunity, 0, len(d.Opportunities))
	for _, r := range d.Opportunities {
		opp := domain.Opportunity{
			Match:            *r.Match,
			CommenceTime:     *r.CommenceTime,
			ProfitPercentage: *r.ProfitPercentage,
			Odds:             make([]domain.OutcomeOffer, 0, len(r.Odds)),
			Source:           source,
		}
		for _, o := range r.Odds {
			opp.Odds = append(opp.Odds, domain.OutcomeOffer{
				Outcome:    *o.Outcome,
				Bookmaker:  *o.Bookmaker,
				Odds:       *o.Odds,
				Allocation: *o.Allocation,
			})
		}
		opps = append(opps, opp)
	}
	return opps
}
