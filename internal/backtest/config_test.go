package backtest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rxtech-lab/argo-analyzer/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestParseValidConfig() {
	raw := []byte(`
strategy: sma_crossover
initial_capital: 10000
data_path: data/AAPL.csv
`)

	config, err := ParseConfig(raw)
	suite.Require().NoError(err)
	suite.Equal(StrategySMACrossover, config.Strategy)
	suite.Equal(10000.0, config.InitialCapital)
	suite.Equal("data/AAPL.csv", config.DataPath)
}

func (suite *ConfigTestSuite) TestParseUnknownStrategy() {
	raw := []byte(`
strategy: momentum
initial_capital: 10000
data_path: data/AAPL.csv
`)

	_, err := ParseConfig(raw)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeUnknownStrategy))
}

func (suite *ConfigTestSuite) TestParseMissingCapital() {
	raw := []byte(`
strategy: rsi_reversal
data_path: data/AAPL.csv
`)

	_, err := ParseConfig(raw)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeBacktestConfigError))
}

func (suite *ConfigTestSuite) TestParseNegativeCapital() {
	raw := []byte(`
strategy: rsi_reversal
initial_capital: -5
data_path: data/AAPL.csv
`)

	_, err := ParseConfig(raw)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeBacktestConfigError))
}

func (suite *ConfigTestSuite) TestParseMalformedYAML() {
	_, err := ParseConfig([]byte("strategy: [unclosed"))
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeBacktestConfigError))
}

func (suite *ConfigTestSuite) TestValidateMissingDataPath() {
	config := Config{
		Strategy:       StrategySMACrossover,
		InitialCapital: 10000,
	}

	err := config.Validate()
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeBacktestConfigError))
}

func (suite *ConfigTestSuite) TestLoadConfigFromFile() {
	path := filepath.Join(suite.T().TempDir(), "backtest.yaml")
	raw := []byte(`
strategy: rsi_reversal
initial_capital: 25000
data_path: data/AAPL.parquet
`)
	suite.Require().NoError(os.WriteFile(path, raw, 0o644))

	config, err := LoadConfig(path)
	suite.Require().NoError(err)
	suite.Equal(StrategyRSIReversal, config.Strategy)
	suite.Equal(25000.0, config.InitialCapital)
	suite.Equal("data/AAPL.parquet", config.DataPath)
}

func (suite *ConfigTestSuite) TestLoadConfigMissingFile() {
	_, err := LoadConfig(filepath.Join(suite.T().TempDir(), "absent.yaml"))
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeBacktestConfigError))
}

func (suite *ConfigTestSuite) TestStrategyIDs() {
	ids := StrategyIDs()
	suite.Contains(ids, StrategySMACrossover)
	suite.Contains(ids, StrategyRSIReversal)
	suite.Len(ids, 2)
}
