package datasource

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/rxtech-lab/argo-analyzer/internal/logger"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
	"github.com/rxtech-lab/argo-analyzer/pkg/errors"
	"go.uber.org/zap"
)

// ParquetSource reads price series from Parquet files through an in-memory
// DuckDB instance. One source can load multiple files; Close releases the
// database.
type ParquetSource struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewParquetSource opens an in-memory DuckDB instance. A nil logger disables
// logging.
func NewParquetSource(log *logger.Logger) (*ParquetSource, error) {
	if log == nil {
		log = logger.NewNopLogger()
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to open duckdb", err)
	}

	return &ParquetSource{
		db:     db,
		logger: log,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// Load reads all bars from the Parquet file in date order and constructs a
// validated price series.
func (p *ParquetSource) Load(path string) (*types.PriceSeries, error) {
	p.logger.Debug("loading price series from parquet", zap.String("path", path))

	if _, err := p.db.Exec(`DROP VIEW IF EXISTS price_data;`); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to drop existing view", err)
	}

	// Squirrel has no CREATE VIEW support, so this statement stays raw SQL.
	createView := fmt.Sprintf(`
		CREATE VIEW price_data AS
		SELECT * FROM read_parquet('%s');
	`, path)

	if _, err := p.db.Exec(createView); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeDataNotFound, err, "failed to read parquet file %s", path)
	}

	query, args, err := p.sq.
		Select("date", "open", "high", "low", "close", "volume").
		From("price_data").
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build query", err)
	}

	rows, err := p.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query price data", err)
	}
	defer rows.Close()

	var bars []types.PriceBar

	for rows.Next() {
		var bar types.PriceBar

		if err := rows.Scan(&bar.Date, &bar.Open, &bar.High, &bar.Low, &bar.Close, &bar.Volume); err != nil {
			return nil, errors.Wrap(errors.ErrCodeDataParseFailed, "failed to scan price row", err)
		}

		bars = append(bars, bar)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "error iterating price rows", err)
	}

	return types.NewPriceSeries(bars)
}

// Close releases the underlying database.
func (p *ParquetSource) Close() error {
	return p.db.Close()
}
