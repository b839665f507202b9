package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBillingConfigIsValid(t *testing.T) {
	cfg := DefaultBillingConfig()
	require.NoError(t, validateBillingConfig(cfg))
	assert.Equal(t, 30, cfg.InvoiceDueDays)
	assert.Len(t, cfg.WarningRules, 2)
}

func TestValidateBillingConfig(t *testing.T) {
	assert.Error(t, validateBillingConfig(BillingConfig{InvoiceDueDays: 0}))

	assert.Error(t, validateBillingConfig(BillingConfig{
		InvoiceDueDays: 30,
		WarningRules:   []WarningRule{{Status: "reminder", MinDays: 10}},
	}))

	assert.Error(t, validateBillingConfig(BillingConfig{
		InvoiceDueDays: 30,
		WarningRules:   []WarningRule{{Status: "warning", MinDays: -1}},
	}))
}

func TestStaticBillingConfigHolder(t *testing.T) {
	cfg := BillingConfig{InvoiceDueDays: 14}
	holder := NewStaticBillingConfigHolder(cfg)
	assert.Equal(t, cfg, holder.Get())
}
