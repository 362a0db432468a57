package backtest

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-analyzer/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config describes one backtest run loaded from a YAML file.
type Config struct {
	// Strategy is the identifier of the strategy to replay.
	Strategy StrategyID `yaml:"strategy" validate:"required"`
	// InitialCapital is the starting cash in account currency.
	InitialCapital float64 `yaml:"initial_capital" validate:"required,gt=0"`
	// DataPath points to the CSV or Parquet file holding the price series.
	DataPath string `yaml:"data_path" validate:"required"`
}

// Validate checks the configuration fields and the strategy identifier.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeBacktestConfigError, "invalid backtest config", err)
	}

	if _, err := NewStrategy(c.Strategy); err != nil {
		return err
	}

	return nil
}

// ParseConfig decodes and validates a YAML backtest configuration.
func ParseConfig(raw []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(raw, &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeBacktestConfigError, "failed to parse backtest config", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// LoadConfig reads and parses a YAML backtest configuration file.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeBacktestConfigError, "failed to read backtest config", err)
	}

	return ParseConfig(raw)
}
