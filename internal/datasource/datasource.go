// Package datasource loads OHLCV price series from local files. CSV files
// are parsed directly; Parquet files are read through an in-memory DuckDB
// instance. Both loaders return a validated types.PriceSeries, so everything
// downstream can assume ordered, well-formed bars.
package datasource

import (
	"path/filepath"
	"strings"

	"github.com/rxtech-lab/argo-analyzer/internal/logger"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
	"github.com/rxtech-lab/argo-analyzer/pkg/errors"
)

// Load reads a price series from the given file, choosing the loader from
// the file extension.
func Load(path string, log *logger.Logger) (*types.PriceSeries, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path, log)
	case ".parquet":
		source, err := NewParquetSource(log)
		if err != nil {
			return nil, err
		}
		defer source.Close()

		return source.Load(path)
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "unsupported data file extension: %s", filepath.Ext(path))
	}
}
