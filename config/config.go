package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config enthält alle Konfigurationsparameter aus Umgebungsvariablen.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8001"`

	// Verzeichnis mit den PMC→DOI JSON-Records (eine Datei pro PMC-ID)
	DataDir string `envconfig:"DATA_DIR" default:"data/doi"`

	SemanticScholarBaseURL string `envconfig:"SEMANTIC_SCHOLAR_BASE_URL" default:"https://api.semanticscholar.org/graph/v1"`
	SemanticScholarAPIKey  string `envconfig:"SEMANTIC_SCHOLAR_API_KEY"`

	// Mindestabstand zwischen zwei ausgehenden Provider-Aufrufen, prozessweit
	ProviderMinInterval time.Duration `envconfig:"PROVIDER_MIN_INTERVAL" default:"1s"`

	// Optionaler Cron-Plan zum Neuladen des Datasets; leer = deaktiviert
	DataReloadCron string `envconfig:"DATA_RELOAD_CRON"`
}

// Load lädt die Konfiguration aus den Umgebungsvariablen.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return &c, err
}
