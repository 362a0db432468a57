package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/polygon-io/client-go/rest/models"
	"github.com/rxtech-lab/argo-analyzer/internal/backtest"
	"github.com/rxtech-lab/argo-analyzer/internal/datasource"
	"github.com/rxtech-lab/argo-analyzer/internal/format"
	"github.com/rxtech-lab/argo-analyzer/internal/indicator"
	"github.com/rxtech-lab/argo-analyzer/internal/logger"
	"github.com/rxtech-lab/argo-analyzer/internal/signal"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
	"github.com/rxtech-lab/argo-analyzer/pkg/marketdata"
	"github.com/rxtech-lab/argo-analyzer/pkg/marketdata/provider"
	"github.com/rxtech-lab/argo-analyzer/pkg/utils"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap/zapcore"
)

// priceChangeBars is the lookback for the report's price change line.
const priceChangeBars = 1

func newLogger(cmd *cli.Command) (*logger.Logger, error) {
	if cmd.Bool("verbose") {
		return logger.NewLoggerWithLevel(zapcore.DebugLevel)
	}

	return logger.NewLogger()
}

// analyzeAction loads a price series, computes the indicator snapshot for
// its last bar, classifies it, and writes the analysis report to stdout.
func analyzeAction(ctx context.Context, cmd *cli.Command) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	series, err := datasource.Load(cmd.String("data"), log)
	if err != nil {
		return err
	}

	engine := indicator.NewEngine(log)
	snapshot := engine.ComputeAll(series)
	change := engine.PriceChange(series, priceChangeBars)
	signals := signal.NewGenerator().Generate(snapshot, series.Last().Close)

	report := format.NewAnalysisReport(cmd.String("ticker"), series.Last(), change, snapshot, signals)

	return format.WriteJSON(os.Stdout, report)
}

// backtestConfig assembles the run configuration from the command line,
// reading the YAML file named by --config when given. Explicit flags
// override the file's values.
func backtestConfig(cmd *cli.Command) (backtest.Config, error) {
	config := backtest.Config{
		Strategy:       backtest.StrategyID(cmd.String("strategy")),
		InitialCapital: cmd.Float("initial-capital"),
		DataPath:       cmd.String("data"),
	}

	if path := cmd.String("config"); path != "" {
		loaded, err := backtest.LoadConfig(path)
		if err != nil {
			return backtest.Config{}, err
		}

		if !cmd.IsSet("strategy") {
			config.Strategy = loaded.Strategy
		}
		if !cmd.IsSet("initial-capital") {
			config.InitialCapital = loaded.InitialCapital
		}
		if !cmd.IsSet("data") {
			config.DataPath = loaded.DataPath
		}
	}

	return config, nil
}

// backtestAction replays a strategy over a price series and writes the
// backtest report to stdout.
func backtestAction(ctx context.Context, cmd *cli.Command) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	config, err := backtestConfig(cmd)
	if err != nil {
		return err
	}

	if err := config.Validate(); err != nil {
		return err
	}

	series, err := datasource.Load(config.DataPath, log)
	if err != nil {
		return err
	}

	if err := backtest.ValidateSeriesLength(series, config.Strategy); err != nil {
		return err
	}

	result, err := backtest.NewSimulator(log).Run(series, config.Strategy, config.InitialCapital)
	if err != nil {
		return err
	}

	stats := types.ComputeBacktestStats(cmd.String("ticker"), string(config.Strategy), config.InitialCapital, series, result)

	if statsOut := cmd.String("stats-out"); statsOut != "" {
		if err := types.WriteBacktestStats(statsOut, stats); err != nil {
			return err
		}
	}

	return format.WriteJSON(os.Stdout, format.NewBacktestReport(stats, result))
}

// downloadAction fetches historical daily bars from the configured provider
// and writes them to a Parquet file under the data directory.
func downloadAction(ctx context.Context, cmd *cli.Command) error {
	clientConfig := marketdata.ClientConfig{
		ProviderType:  provider.ProviderType(cmd.String("provider")),
		WriterType:    marketdata.WriterType(cmd.String("writer")),
		DataPath:      cmd.String("data"),
		PolygonApiKey: os.Getenv("POLYGON_API_KEY"),
	}

	client, err := marketdata.NewClient(clientConfig, nil)
	if err != nil {
		return err
	}

	path, err := client.Download(ctx, marketdata.DownloadParams{
		Ticker:     cmd.String("ticker"),
		StartDate:  cmd.Timestamp("start"),
		EndDate:    cmd.Timestamp("end"),
		Multiplier: 1,
		Timespan:   models.Day,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "downloaded", path)

	return nil
}

// schemaAction prints the JSON schema of the backtest configuration file.
func schemaAction(ctx context.Context, cmd *cli.Command) error {
	schema, err := utils.GetSchemaFromConfig(backtest.Config{})
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, schema)

	return nil
}

func dateFlag(name, alias, usage string, required bool) *cli.TimestampFlag {
	flag := &cli.TimestampFlag{
		Name:     name,
		Aliases:  []string{alias},
		Usage:    usage,
		Required: required,
		Config: cli.TimestampConfig{
			Layouts: []string{"2006-01-02"},
		},
	}
	if !required {
		flag.Value = time.Now()
	}

	return flag
}

func main() {
	dataFlag := &cli.StringFlag{
		Name:     "data",
		Aliases:  []string{"d"},
		Usage:    "Path to the price data file (.csv or .parquet)",
		Required: true,
	}
	tickerFlag := &cli.StringFlag{
		Name:    "ticker",
		Aliases: []string{"t"},
		Usage:   "Ticker symbol used in the report",
		Value:   "UNKNOWN",
	}
	verboseFlag := &cli.BoolFlag{
		Name:  "verbose",
		Usage: "Enable debug logging",
	}

	cmd := &cli.Command{
		Name:  "analyzer",
		Usage: "Technical analysis, signal generation and strategy backtesting",
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "Compute indicators and signals for the latest bar",
				Flags:  []cli.Flag{dataFlag, tickerFlag, verboseFlag},
				Action: analyzeAction,
			},
			{
				Name:  "backtest",
				Usage: "Replay a trading strategy over historical data",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "data",
						Aliases: []string{"d"},
						Usage:   "Path to the price data file (.csv or .parquet)",
					},
					tickerFlag,
					verboseFlag,
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML backtest configuration file; explicit flags override its values",
					},
					&cli.StringFlag{
						Name:    "strategy",
						Aliases: []string{"s"},
						Usage:   fmt.Sprintf("Strategy to replay (%s or %s)", backtest.StrategySMACrossover, backtest.StrategyRSIReversal),
					},
					&cli.FloatFlag{
						Name:    "initial-capital",
						Aliases: []string{"c"},
						Usage:   "Starting cash for the simulation",
						Value:   10000,
					},
					&cli.StringFlag{
						Name:  "stats-out",
						Usage: "Also write run statistics to this YAML file",
					},
				},
				Action: backtestAction,
			},
			{
				Name:  "download",
				Usage: "Download historical daily bars to a Parquet file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "ticker",
						Aliases:  []string{"t"},
						Usage:    "Stock ticker symbol",
						Required: true,
					},
					dateFlag("start", "s", "Start date in `YYYY-MM-DD` format", true),
					dateFlag("end", "e", "End date in `YYYY-MM-DD` format. Defaults to today.", false),
					&cli.StringFlag{
						Name:  "provider",
						Usage: fmt.Sprintf("Data provider to use (e.g., %s)", provider.ProviderPolygon),
						Value: string(provider.ProviderPolygon),
					},
					&cli.StringFlag{
						Name:  "writer",
						Usage: fmt.Sprintf("Data writer format (e.g., %s)", marketdata.WriterDuckDB),
						Value: string(marketdata.WriterDuckDB),
					},
					&cli.StringFlag{
						Name:    "data",
						Aliases: []string{"d"},
						Usage:   "Path to the data output directory",
						Value:   "data",
					},
				},
				Action: downloadAction,
			},
			{
				Name:   "schema",
				Usage:  "Print the JSON schema of the backtest configuration",
				Action: schemaAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		format.WriteJSON(os.Stdout, format.NewErrorReport(err))
		os.Exit(1)
	}
}
