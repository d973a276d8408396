package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/clearpath-labs/semcore-cli/internal/adapters/driven/config/file"
	"github.com/clearpath-labs/semcore-cli/internal/adapters/driven/oracle/dataforseo"
	"github.com/clearpath-labs/semcore-cli/internal/adapters/driven/storage/sqlite"
	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
	"github.com/clearpath-labs/semcore-cli/internal/core/services"
)

// Config keys for oracle credentials. Environment variables take over
// when the keys are unset, so CI runs need no config file.
const (
	loginKey    = "dataforseo.login"
	passwordKey = "dataforseo.password"

	loginEnv    = "DATAFORSEO_LOGIN"
	passwordEnv = "DATAFORSEO_PASSWORD"
)

var (
	sqliteStore *sqlite.Store
	configStore *file.ConfigStore
)

// ensureBudgetService wires config, storage and the budget guard.
// Safe to call more than once; tests pre-assign the services instead.
func ensureBudgetService(ctx context.Context) error {
	if budgetService != nil {
		return nil
	}

	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	configStore = cfg

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening data store: %w", err)
	}
	sqliteStore = store
	runStore = store.RunStore()

	guard, err := services.NewBudgetGuard(ctx, limitsFromConfig(cfg), store.UsageStore())
	if err != nil {
		return err
	}
	budgetGuard = guard
	budgetService = guard
	return nil
}

// ensureCoreService wires the full pipeline on top of the budget
// services. Fails before any external call when credentials are absent.
func ensureCoreService(ctx context.Context) error {
	if coreService != nil {
		return nil
	}

	if err := ensureBudgetService(ctx); err != nil {
		return err
	}

	cfg := configStore
	if cfg == nil {
		var err error
		cfg, err = file.NewConfigStore(configDir)
		if err != nil {
			return fmt.Errorf("opening config store: %w", err)
		}
	}

	login, password := credentials(cfg)
	if login == "" || password == "" {
		return fmt.Errorf("%w: set %s/%s in %s or export %s/%s",
			domain.ErrMissingCredentials, loginKey, passwordKey, cfg.Path(), loginEnv, passwordEnv)
	}

	oracle := dataforseo.NewClient(login, password)
	coreService = services.NewSemanticService(oracle, budgetGuard)
	return nil
}

// limitsFromConfig overlays configured budget values on the defaults.
// Unset or non-positive keys keep their default.
func limitsFromConfig(cfg *file.ConfigStore) domain.BudgetLimits {
	limits := domain.DefaultLimits()
	if v := cfg.GetFloat("budget.max_cost_per_request"); v > 0 {
		limits.MaxCostPerRequest = v
	}
	if v := cfg.GetFloat("budget.max_daily_cost"); v > 0 {
		limits.MaxDailyCost = v
	}
	if v := cfg.GetFloat("budget.max_monthly_cost"); v > 0 {
		limits.MaxMonthlyCost = v
	}
	if v := cfg.GetInt("budget.max_keywords_per_batch"); v > 0 {
		limits.MaxKeywordsPerBatch = v
	}
	if v := cfg.GetFloat("budget.alert_threshold_percent"); v > 0 {
		limits.AlertThresholdPercent = v
	}
	return limits
}

// credentials resolves oracle credentials from config, falling back to
// the environment.
func credentials(cfg *file.ConfigStore) (login, password string) {
	login = cfg.GetString(loginKey)
	if login == "" {
		login = os.Getenv(loginEnv)
	}
	password = cfg.GetString(passwordKey)
	if password == "" {
		password = os.Getenv(passwordEnv)
	}
	return login, password
}

func closeStore() {
	if sqliteStore != nil {
		_ = sqliteStore.Close() //nolint:errcheck // Best-effort shutdown
		sqliteStore = nil
	}
}
