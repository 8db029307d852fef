package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the full application configuration surface.
type Config struct {
	Server Server
	Sheets Sheets
	Mongo  Mongo
	FX     FX
	Auth   Auth
	Cache  Cache

	// LedgerFile points at the YAML document describing ledger layouts and
	// the catalog category list.
	LedgerFile string
}

// Server holds HTTP server related options.
type Server struct {
	Port string
}

// Sheets contains configuration required to interact with the spreadsheet backend.
type Sheets struct {
	CredentialsPath string
	SpreadsheetID   string
}

// Mongo holds settings for the submission audit store.
type Mongo struct {
	URI    string
	DBName string
}

// FX holds settings for the exchange-rate client.
type FX struct {
	BaseURL string
}

// Auth carries the static credential list, parsed from "user:pass,user:pass".
type Auth struct {
	Users map[string]string
}

// Cache holds catalog snapshot refresh options.
type Cache struct {
	RefreshSchedule string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	users, err := parseUsers(os.Getenv("DASHBOARD_USERS"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: Server{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Sheets: Sheets{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
		},
		Mongo: Mongo{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "quotedesk"),
		},
		FX: FX{
			BaseURL: getenvWithDefault("FX_BASE_URL", "https://open.er-api.com/v6"),
		},
		Auth: Auth{
			Users: users,
		},
		Cache: Cache{
			RefreshSchedule: getenvWithDefault("CATALOG_REFRESH_SCHEDULE", "*/30 * * * *"),
		},
		LedgerFile: getenvWithDefault("LEDGER_CONFIG_PATH", "configs/ledger.yaml"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Sheets.CredentialsPath == "" {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided")
	}

	if c.Sheets.SpreadsheetID == "" {
		return errors.New("GOOGLE_SHEET_DATABASE_ID must be provided")
	}

	if len(c.Auth.Users) == 0 {
		return errors.New("DASHBOARD_USERS must list at least one user:password pair")
	}

	if c.Cache.RefreshSchedule == "" {
		return errors.New("CATALOG_REFRESH_SCHEDULE must be provided")
	}

	if c.LedgerFile == "" {
		return errors.New("LEDGER_CONFIG_PATH must be provided")
	}

	return nil
}

func parseUsers(raw string) (map[string]string, error) {
	users := make(map[string]string)
	if strings.TrimSpace(raw) == "" {
		return users, nil
	}

	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, pass, ok := strings.Cut(pair, ":")
		if !ok || name == "" || pass == "" {
			return nil, fmt.Errorf("malformed DASHBOARD_USERS entry %q", pair)
		}
		users[name] = pass
	}

	return users, nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// LedgerConfig mirrors the YAML ledger configuration document.
type LedgerConfig struct {
	Ledgers map[string]LedgerEntry `yaml:"ledgers"`
	Catalog CatalogConfig          `yaml:"catalog"`
}

// LedgerEntry describes one currency ledger's table and layout generation.
type LedgerEntry struct {
	Table               string   `yaml:"table"`
	SlotCount           int      `yaml:"slot_count"`
	PriceDecimals       int      `yaml:"price_decimals"`
	PluralCustomerSlots []int    `yaml:"plural_customer_slots"`
	PerSlotDistributor  bool     `yaml:"per_slot_distributor"`
	DefaultHeaders      []string `yaml:"default_headers"`
}

// CatalogConfig lists the browsable product category tables.
type CatalogConfig struct {
	Categories []CategoryEntry `yaml:"categories"`
}

// CategoryEntry binds a product category to its table and search column.
type CategoryEntry struct {
	Name         string `yaml:"name"`
	Table        string `yaml:"table"`
	SearchColumn string `yaml:"search_column"`
}

// LoadLedgerConfig parses and validates the ledger YAML file.
func LoadLedgerConfig(path string) (*LedgerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ledger config %s: %w", path, err)
	}

	var lc LedgerConfig
	if err := yaml.Unmarshal(data, &lc); err != nil {
		return nil, fmt.Errorf("parse ledger config %s: %w", path, err)
	}

	if len(lc.Ledgers) == 0 {
		return nil, fmt.Errorf("ledger config %s declares no ledgers", path)
	}

	for currency, entry := range lc.Ledgers {
		switch {
		case entry.Table == "":
			return nil, fmt.Errorf("ledger %s: table must be set", currency)
		case entry.SlotCount <= 0:
			return nil, fmt.Errorf("ledger %s: slot_count must be positive", currency)
		case entry.PriceDecimals <= 0:
			return nil, fmt.Errorf("ledger %s: price_decimals must be positive", currency)
		case len(entry.DefaultHeaders) == 0:
			return nil, fmt.Errorf("ledger %s: default_headers must not be empty", currency)
		}
		for _, idx := range entry.PluralCustomerSlots {
			if idx < 1 || idx > entry.SlotCount {
				return nil, fmt.Errorf("ledger %s: plural slot index %d outside 1..%d", currency, idx, entry.SlotCount)
			}
		}
	}

	for _, cat := range lc.Catalog.Categories {
		if cat.Name == "" || cat.Table == "" || cat.SearchColumn == "" {
			return nil, fmt.Errorf("catalog category %q: name, table and search_column are required", cat.Name)
		}
	}

	return &lc, nil
}
