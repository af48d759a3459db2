package core

import "testing"

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{LightThreshold: 800, ShowLight: true}.WithDefaults()

	if cfg.LightThreshold != 800 || !cfg.ShowLight {
		t.Errorf("Expected explicit fields kept, got %+v", cfg)
	}
	def := DefaultConfig()
	if cfg.ADCRetries != def.ADCRetries || cfg.LightPolls != def.LightPolls || cfg.LoopPeriodMillis != 200 {
		t.Errorf("Expected zero fields defaulted, got %+v", cfg)
	}
	if cfg.LightPolls >= cfg.ADCRetries {
		t.Errorf("Expected the I2C poll budget below the ADC one, got %d >= %d", cfg.LightPolls, cfg.ADCRetries)
	}
}

func TestConfigWithDefaultsRejectsNegativeBudgets(t *testing.T) {
	cfg := Config{ADCRetries: -1, LightPolls: -5}.WithDefaults()
	if cfg.ADCRetries <= 0 || cfg.LightPolls <= 0 {
		t.Errorf("Expected negative budgets replaced, got %+v", cfg)
	}
}
