package config

import (
	"errors"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// BillingModule provides the hot-reloadable billing configuration.
var BillingModule = fx.Provide(NewBillingConfigHolder)

// BillingConfig carries the tunable billing knobs: how long customers get to
// pay an invoice and when overdue accounts earn a warning or suspension letter.
type BillingConfig struct {
	InvoiceDueDays int           `mapstructure:"invoiceDueDays"`
	WarningRules   []WarningRule `mapstructure:"warningRules"`
}

// WarningRule maps days-overdue thresholds to a warning letter status.
type WarningRule struct {
	Status  string `mapstructure:"status"`
	MinDays int    `mapstructure:"minDays"`
}

func DefaultBillingConfig() BillingConfig {
	return BillingConfig{
		InvoiceDueDays: 30,
		WarningRules: []WarningRule{
			{Status: "suspension", MinDays: 60},
			{Status: "warning", MinDays: 30},
		},
	}
}

// BillingConfigHolder exposes the current billing config and reloads it when
// the file changes on disk.
type BillingConfigHolder struct {
	current atomic.Value // holds BillingConfig
}

func NewBillingConfigHolder(log *zap.Logger) (*BillingConfigHolder, error) {
	log = log.Named("billing.config")
	v := viper.New()

	v.SetConfigName("billing")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/newsagent")
	v.AddConfigPath(".")

	v.SetEnvPrefix("NEWSAGENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultBillingConfig()
		v.SetDefault("billing.invoiceDueDays", defaults.InvoiceDueDays)
		v.SetDefault("billing.warningRules", defaults.WarningRules)
	}

	var cfg BillingConfig
	if err := v.UnmarshalKey("billing", &cfg); err != nil {
		return nil, err
	}
	if err := validateBillingConfig(cfg); err != nil {
		return nil, err
	}

	holder := &BillingConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated BillingConfig
		if err := v.UnmarshalKey("billing", &updated); err != nil {
			log.Warn("reload failed", zap.Error(err))
			return
		}
		if err := validateBillingConfig(updated); err != nil {
			log.Warn("invalid config ignored", zap.Error(err))
			return
		}
		holder.current.Store(updated)
		log.Info("billing config reloaded", zap.String("file", e.Name))
	})

	return holder, nil
}

func (h *BillingConfigHolder) Get() BillingConfig {
	return h.current.Load().(BillingConfig)
}

// NewStaticBillingConfigHolder returns a holder pinned to one config. Test hook.
func NewStaticBillingConfigHolder(cfg BillingConfig) *BillingConfigHolder {
	holder := &BillingConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func validateBillingConfig(cfg BillingConfig) error {
	if cfg.InvoiceDueDays <= 0 {
		return errors.New("billing.invoiceDueDays must be positive")
	}
	for _, rule := range cfg.WarningRules {
		if rule.Status != "warning" && rule.Status != "suspension" {
			return errors.New("billing.warningRules status must be warning or suspension")
		}
		if rule.MinDays < 0 {
			return errors.New("billing.warningRules minDays cannot be negative")
		}
	}
	return nil
}
