package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRevenueSources_Total(t *testing.T) {
	sources := RevenueSources{
		"A": decimal.RequireFromString("1000.00"),
		"B": decimal.RequireFromString("500.00"),
	}

	total := sources.Total()

	expected := decimal.RequireFromString("1500.00")
	if !total.Equal(expected) {
		t.Errorf("expected total %s, got %s", expected, total)
	}
}

func TestRevenueSources_Total_NoFloatDrift(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3, not 0.30000000000000004
	sources := RevenueSources{
		"first":  decimal.RequireFromString("0.1"),
		"second": decimal.RequireFromString("0.2"),
	}

	total := sources.Total()

	if total.String() != "0.3" {
		t.Errorf("expected exact total 0.3, got %s", total)
	}
}

func TestRevenueSources_Total_Empty(t *testing.T) {
	sources := RevenueSources{}

	total := sources.Total()

	if !total.IsZero() {
		t.Errorf("expected zero total, got %s", total)
	}
}

func TestRevenueSources_Total_ManySources(t *testing.T) {
	sources := RevenueSources{
		"worker_fees":          decimal.RequireFromString("1200.50"),
		"tool_fees":            decimal.RequireFromString("850.00"),
		"platform_commissions": decimal.RequireFromString("2300.75"),
		"subscription_revenue": decimal.RequireFromString("990.00"),
		"marketplace_margin":   decimal.RequireFromString("458.25"),
	}

	total := sources.Total()

	if total.StringFixed(2) != "5799.50" {
		t.Errorf("expected total 5799.50, got %s", total.StringFixed(2))
	}
}
