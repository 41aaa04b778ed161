package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa del reporte.
type Config struct {
	Report ReportConfig `yaml:"report"`
	Load   LoadConfig   `yaml:"load"`
	Log    LogConfig    `yaml:"log"`
}

// ReportConfig controla el cálculo y la presentación.
type ReportConfig struct {
	BankSize            float64  `yaml:"bank_size"`
	InputDirectory      string   `yaml:"input_directory"`
	MinProfitPercentage *float64 `yaml:"min_profit_percentage"` // nil = sin filtro
	Limit               int      `yaml:"limit"`                 // 0 = todas
	Table               bool     `yaml:"table"`
}

// LoadConfig controla la lectura del directorio de entrada.
type LoadConfig struct {
	Extension string `yaml:"extension"`
	OnError   string `yaml:"on_error"` // stop | skip
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Si el YAML no existe se usan los defaults; un YAML inválido es un error.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	setDefaults(&cfg)

	return &cfg, nil
}

// Validate rechaza valores que harían el reporte inválido.
func (c *Config) Validate() error {
	if math.IsNaN(c.Report.BankSize) || math.IsInf(c.Report.BankSize, 0) {
		return fmt.Errorf("config.Validate: bank_size must be finite, got %v", c.Report.BankSize)
	}
	if c.Report.BankSize <= 0 {
		return fmt.Errorf("config.Validate: bank_size must be > 0, got %v", c.Report.BankSize)
	}
	if p := c.Report.MinProfitPercentage; p != nil && (math.IsNaN(*p) || math.IsInf(*p, 0)) {
		return fmt.Errorf("config.Validate: min_profit_percentage must be finite, got %v", *p)
	}
	if c.Report.Limit < 0 {
		return fmt.Errorf("config.Validate: limit must be >= 0, got %d", c.Report.Limit)
	}
	switch c.Load.OnError {
	case "stop", "skip":
	default:
		return fmt.Errorf("config.Validate: load.on_error must be stop|skip, got %q", c.Load.OnError)
	}
	return nil
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("BANK_SIZE"); v != "" {
		bank, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config.Load: BANK_SIZE %q: %w", v, err)
		}
		cfg.Report.BankSize = bank
	}
	if v := os.Getenv("INPUT_DIR"); v != "" {
		cfg.Report.InputDirectory = v
	}
	if v := os.Getenv("LOAD_ON_ERROR"); v != "" {
		cfg.Load.OnError = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	return nil
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
// Los defaults reproducen el script original.
func setDefaults(cfg *Config) {
	if cfg.Report.BankSize == 0 {
		cfg.Report.BankSize = 1000
	}
	if cfg.Report.InputDirectory == "" {
		cfg.Report.InputDirectory = "arbitrage-opportunities/"
	}
	if cfg.Load.Extension == "" {
		cfg.Load.Extension = ".json"
	}
	if cfg.Load.OnError == "" {
		cfg.Load.OnError = "stop"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
