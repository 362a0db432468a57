package datasource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rxtech-lab/argo-analyzer/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type CSVTestSuite struct {
	suite.Suite
	tempDir string
}

func TestCSVSuite(t *testing.T) {
	suite.Run(t, new(CSVTestSuite))
}

func (suite *CSVTestSuite) SetupSuite() {
	tempDir, err := os.MkdirTemp("", "datasource-test")
	suite.Require().NoError(err)
	suite.tempDir = tempDir
}

func (suite *CSVTestSuite) TearDownSuite() {
	if suite.tempDir != "" {
		os.RemoveAll(suite.tempDir)
	}
}

const sampleCSV = `date,open,high,low,close,volume
2024-01-02,185.5,187.2,184.1,186.9,48000000
2024-01-03,186.0,188.0,185.0,187.5,51000000
2024-01-04,187.0,189.5,186.5,189.0,47000000
`

func (suite *CSVTestSuite) TestReadCSV() {
	series, err := ReadCSV(strings.NewReader(sampleCSV))
	suite.Require().NoError(err)

	suite.Equal(3, series.Len())
	suite.Equal(186.9, series.At(0).Close)
	suite.Equal(int64(48000000), series.At(0).Volume)
	suite.Equal(189.0, series.Last().Close)
	suite.Equal("2024-01-04", series.Last().Date.Format("2006-01-02"))
}

func (suite *CSVTestSuite) TestReadCSVWithTimestamps() {
	raw := `date,open,high,low,close,volume
2024-01-02T09:30:00Z,185.5,187.2,184.1,186.9,1000
2024-01-02T09:31:00Z,186.9,187.0,186.0,186.5,1200
`

	series, err := ReadCSV(strings.NewReader(raw))
	suite.Require().NoError(err)
	suite.Equal(2, series.Len())
	suite.True(series.IsIntraday())
}

func (suite *CSVTestSuite) TestReadCSVWrongHeader() {
	raw := "timestamp,open,high,low,close,volume\n2024-01-02,1,2,1,1,10\n"

	_, err := ReadCSV(strings.NewReader(raw))
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeDataParseFailed))
}

func (suite *CSVTestSuite) TestReadCSVBadNumber() {
	raw := "date,open,high,low,close,volume\n2024-01-02,1.0,2.0,1.0,abc,10\n"

	_, err := ReadCSV(strings.NewReader(raw))
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeDataParseFailed))
}

func (suite *CSVTestSuite) TestReadCSVBadDate() {
	raw := "date,open,high,low,close,volume\n01/02/2024,1.0,2.0,1.0,1.5,10\n"

	_, err := ReadCSV(strings.NewReader(raw))
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeDataParseFailed))
}

func (suite *CSVTestSuite) TestReadCSVUnorderedDates() {
	raw := `date,open,high,low,close,volume
2024-01-03,186.0,188.0,185.0,187.5,51000000
2024-01-02,185.5,187.2,184.1,186.9,48000000
`

	_, err := ReadCSV(strings.NewReader(raw))
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidSeries))
}

func (suite *CSVTestSuite) TestLoadCSVFromFile() {
	path := filepath.Join(suite.tempDir, "sample.csv")
	suite.Require().NoError(os.WriteFile(path, []byte(sampleCSV), 0644))

	series, err := LoadCSV(path, nil)
	suite.Require().NoError(err)
	suite.Equal(3, series.Len())
}

func (suite *CSVTestSuite) TestLoadCSVMissingFile() {
	_, err := LoadCSV(filepath.Join(suite.tempDir, "missing.csv"), nil)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeDataNotFound))
}

func (suite *CSVTestSuite) TestLoadDispatchesOnExtension() {
	path := filepath.Join(suite.tempDir, "dispatch.csv")
	suite.Require().NoError(os.WriteFile(path, []byte(sampleCSV), 0644))

	series, err := Load(path, nil)
	suite.Require().NoError(err)
	suite.Equal(3, series.Len())

	_, err = Load(filepath.Join(suite.tempDir, "data.json"), nil)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))
}
