package config

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// defaultBaseFreight is the flat fee owed per collected order, in currency
// units, before any reversal.
const defaultBaseFreight = "8.00"

type Config struct {
	Freight FreightConfig
	Export  ExportConfig
	Log     LogConfig
	Demo    DemoConfig
}

type FreightConfig struct {
	Base string
}

type ExportConfig struct {
	Dir string
}

type LogConfig struct {
	Level  string
	Format string
}

type DemoConfig struct {
	Seed bool
}

// BaseFreight parses the configured flat fee, falling back to the default
// when the configured value is not a valid decimal.
func (c *Config) BaseFreight() decimal.Decimal {
	base, err := decimal.NewFromString(c.Freight.Base)
	if err != nil {
		return decimal.RequireFromString(defaultBaseFreight)
	}
	return base
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("BASE_FREIGHT", defaultBaseFreight)
	viper.SetDefault("EXPORT_DIR", ".")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")
	viper.SetDefault("SEED_DEMO_DATA", false)

	cfg := &Config{
		Freight: FreightConfig{
			Base: viper.GetString("BASE_FREIGHT"),
		},
		Export: ExportConfig{
			Dir: viper.GetString("EXPORT_DIR"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Demo: DemoConfig{
			Seed: viper.GetBool("SEED_DEMO_DATA"),
		},
	}

	return cfg, nil
}
