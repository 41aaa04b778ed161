package domain

// FileResult es el resultado de leer un archivo de oportunidades:
// o bien Opportunities, o bien Err.
type FileResult struct {
	Path          string
	Opportunities []Opportunity
	Err           error
}

// OK devuelve true si el archivo se leyó sin error.
func (r FileResult) OK() bool { return r.Err == nil }

// LoadResult agrega los resultados por archivo de una carga de directorio.
type LoadResult struct {
	// Files contiene un resultado por archivo procesado, en orden de lectura.
	// Un error al listar el directorio aparece como un FileResult con la ruta
	// del directorio.
	Files []FileResult
	// Stopped es true si la carga se cortó en el primer error.
	Stopped bool
}

// Opportunities concatena las oportunidades de los archivos leídos sin error.
func (r LoadResult) Opportunities() []Opportunity {
	var all []Opportunity
	for _, f := range r.Files {
		if f.OK() {
			all = append(all, f.Opportunities...)
		}
	}
	return all
}

// Failures devuelve los archivos que fallaron.
func (r LoadResult) Failures() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if !f.OK() {
			failed = append(failed, f)
		}
	}
	return failed
}

// Report es lo que el notificador presenta al usuario en una corrida.
type Report struct {
	Bank     Number
	Loaded   int           // total cargado, antes de filtros
	Failures []FileResult  // errores de carga, ya tolerados
	Ranked   []Opportunity // ordenadas por ProfitPercentage desc
}
