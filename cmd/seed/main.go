package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"opeec-backend/internal/config"
	"opeec-backend/internal/domain"
	"opeec-backend/internal/logger"
	"opeec-backend/internal/repository/postgres"
	"opeec-backend/internal/service"
)

// SeedSettings mirrors domain.SettingsPatch with YAML keys.
type SeedSettings struct {
	AdminFeePercentage       *float64 `yaml:"admin_fee_percentage"`
	InsurancePercentage      *float64 `yaml:"insurance_percentage"`
	DailyInsuranceMultiplier *float64 `yaml:"daily_insurance_multiplier"`
	DepositPercentage        *float64 `yaml:"deposit_percentage"`
	TaxPercentage            *float64 `yaml:"tax_percentage"`
	StripeFeePercentage      *float64 `yaml:"stripe_fee_percentage"`
}

type SeedOption struct {
	Label       string `yaml:"label"`
	Value       int    `yaml:"value"`
	Recommended bool   `yaml:"recommended"`
}

type SeedCatalogEntry struct {
	Name    string       `yaml:"name"`
	Unit    string       `yaml:"unit"`
	Options []SeedOption `yaml:"options"`
}

type SeedData struct {
	Settings SeedSettings       `yaml:"settings"`
	Catalog  []SeedCatalogEntry `yaml:"catalog"`
}

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	seedPath := flag.String("data", "config/seed.yaml", "Path to seed data file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format, cfg.LogFileOutput())

	raw, err := os.ReadFile(*seedPath)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}
	seed, err := parseSeed(raw)
	if err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Connected to database", "host", cfg.Database.Host, "database", cfg.Database.Database)

	ctx := context.Background()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	store := postgres.NewStore(db)
	settingsSvc := service.NewSettingsService(store.SettingsRepository)
	catalogSvc := service.NewCatalogService(store.CatalogRepository, cfg.CatalogCacheTTL())

	if err := populate(ctx, settingsSvc, catalogSvc, seed); err != nil {
		log.Fatalf("Failed to populate data: %v", err)
	}
	logger.Info("Seed data successfully populated")
}

func parseSeed(data []byte) (*SeedData, error) {
	var seed SeedData
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

func populate(ctx context.Context, settings service.SettingsService, catalog service.CatalogService, seed *SeedData) error {
	stored, err := settings.UpsertSettings(ctx, seed.settingsPatch())
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	logger.Info("Settings seeded", "admin_fee_percentage", stored.AdminFeePercentage, "deposit_percentage", stored.DepositPercentage)

	if len(seed.Catalog) == 0 {
		return nil
	}
	result, err := catalog.UpsertCatalogEntries(ctx, seed.catalogInputs())
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	if len(result.Failed) > 0 {
		return fmt.Errorf("catalog entries rejected: %v", result.Failed)
	}
	logger.Info("Catalog seeded", "entries", result.Applied)
	return nil
}

func (s *SeedData) settingsPatch() domain.SettingsPatch {
	return domain.SettingsPatch{
		AdminFeePercentage:       s.Settings.AdminFeePercentage,
		InsurancePercentage:      s.Settings.InsurancePercentage,
		DailyInsuranceMultiplier: s.Settings.DailyInsuranceMultiplier,
		DepositPercentage:        s.Settings.DepositPercentage,
		TaxPercentage:            s.Settings.TaxPercentage,
		StripeFeePercentage:      s.Settings.StripeFeePercentage,
	}
}

func (s *SeedData) catalogInputs() []domain.CatalogEntryInput {
	return lo.Map(s.Catalog, func(e SeedCatalogEntry, _ int) domain.CatalogEntryInput {
		return domain.CatalogEntryInput{
			Name: domain.CatalogName(e.Name),
			Unit: domain.DurationUnit(e.Unit),
			Options: lo.Map(e.Options, func(o SeedOption, _ int) domain.CatalogOptionInput {
				return domain.CatalogOptionInput{
					Label:       o.Label,
					Value:       lo.ToPtr(o.Value),
					Recommended: lo.ToPtr(o.Recommended),
				}
			}),
		}
	})
}
