package datasource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rxtech-lab/argo-analyzer/internal/types"
	"github.com/rxtech-lab/argo-analyzer/pkg/errors"
	"github.com/rxtech-lab/argo-analyzer/pkg/marketdata/writer"
	"github.com/stretchr/testify/suite"
)

type ParquetTestSuite struct {
	suite.Suite
	tempDir string
}

func TestParquetSuite(t *testing.T) {
	suite.Run(t, new(ParquetTestSuite))
}

func (suite *ParquetTestSuite) SetupSuite() {
	tempDir, err := os.MkdirTemp("", "parquet-test")
	suite.Require().NoError(err)
	suite.tempDir = tempDir
}

func (suite *ParquetTestSuite) TearDownSuite() {
	if suite.tempDir != "" {
		os.RemoveAll(suite.tempDir)
	}
}

func (suite *ParquetTestSuite) writeSampleParquet(path string) {
	w := writer.NewDuckDBWriter("AAPL", path)
	suite.Require().NoError(w.Initialize())

	defer w.Close()

	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	for i, close := range []float64{186.9, 187.5, 189.0} {
		bar := types.PriceBar{
			Date:   start.AddDate(0, 0, i),
			Open:   close - 1,
			High:   close + 1,
			Low:    close - 2,
			Close:  close,
			Volume: int64(1000 * (i + 1)),
		}
		suite.Require().NoError(w.Write(bar))
	}

	written, err := w.Finalize()
	suite.Require().NoError(err)
	suite.Equal(path, written)
}

func (suite *ParquetTestSuite) TestWriteThenLoadRoundTrip() {
	path := filepath.Join(suite.tempDir, "AAPL.parquet")
	suite.writeSampleParquet(path)

	source, err := NewParquetSource(nil)
	suite.Require().NoError(err)

	defer source.Close()

	series, err := source.Load(path)
	suite.Require().NoError(err)

	suite.Equal(3, series.Len())
	suite.Equal(186.9, series.At(0).Close)
	suite.Equal(189.0, series.Last().Close)
	suite.Equal(int64(3000), series.Last().Volume)
	suite.Equal("2024-01-02", series.At(0).Date.UTC().Format("2006-01-02"))
}

func (suite *ParquetTestSuite) TestLoadMissingParquet() {
	source, err := NewParquetSource(nil)
	suite.Require().NoError(err)

	defer source.Close()

	_, err = source.Load(filepath.Join(suite.tempDir, "missing.parquet"))
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeDataNotFound))
}
