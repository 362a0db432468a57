package datasource

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rxtech-lab/argo-analyzer/internal/logger"
	"github.com/rxtech-lab/argo-analyzer/internal/types"
	"github.com/rxtech-lab/argo-analyzer/pkg/errors"
	"go.uber.org/zap"
)

// csvColumns is the required header of a price series CSV file, in order.
var csvColumns = []string{"date", "open", "high", "low", "close", "volume"}

// dateLayouts are the accepted date formats, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// LoadCSV reads a price series from a CSV file with a
// date,open,high,low,close,volume header. A nil logger disables logging.
func LoadCSV(path string, log *logger.Logger) (*types.PriceSeries, error) {
	if log == nil {
		log = logger.NewNopLogger()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeDataNotFound, err, "failed to open data file %s", path)
	}
	defer file.Close()

	series, err := ReadCSV(file)
	if err != nil {
		return nil, err
	}

	log.Debug("loaded price series from csv",
		zap.String("path", path),
		zap.Int("bars", series.Len()),
	)

	return series, nil
}

// ReadCSV parses CSV price data from a reader.
func ReadCSV(r io.Reader) (*types.PriceSeries, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataParseFailed, "failed to read csv header", err)
	}

	if err := validateHeader(header); err != nil {
		return nil, err
	}

	var bars []types.PriceBar

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeDataParseFailed, err, "failed to read csv line %d", line)
		}

		bar, err := parseRecord(record)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeDataParseFailed, err, "invalid csv line %d", line)
		}

		bars = append(bars, bar)
	}

	return types.NewPriceSeries(bars)
}

func validateHeader(header []string) error {
	if len(header) != len(csvColumns) {
		return errors.Newf(errors.ErrCodeDataParseFailed, "expected %d csv columns, got %d", len(csvColumns), len(header))
	}

	for i, column := range csvColumns {
		if header[i] != column {
			return errors.Newf(errors.ErrCodeDataParseFailed, "expected csv column %q at position %d, got %q", column, i, header[i])
		}
	}

	return nil
}

func parseRecord(record []string) (types.PriceBar, error) {
	if len(record) != len(csvColumns) {
		return types.PriceBar{}, errors.Newf(errors.ErrCodeDataParseFailed, "expected %d fields, got %d", len(csvColumns), len(record))
	}

	date, err := parseDate(record[0])
	if err != nil {
		return types.PriceBar{}, err
	}

	prices := make([]float64, 4)

	for i := range prices {
		prices[i], err = strconv.ParseFloat(record[i+1], 64)
		if err != nil {
			return types.PriceBar{}, errors.Wrapf(errors.ErrCodeDataParseFailed, err, "invalid %s value %q", csvColumns[i+1], record[i+1])
		}
	}

	volume, err := strconv.ParseInt(record[5], 10, 64)
	if err != nil {
		return types.PriceBar{}, errors.Wrapf(errors.ErrCodeDataParseFailed, err, "invalid volume value %q", record[5])
	}

	return types.PriceBar{
		Date:   date,
		Open:   prices[0],
		High:   prices[1],
		Low:    prices[2],
		Close:  prices[3],
		Volume: volume,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}

	return time.Time{}, errors.Newf(errors.ErrCodeDataParseFailed, "invalid date value %q", value)
}
