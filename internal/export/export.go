package export

import (
	"encoding/json"
	"fmt"
	"os"

	"FXAnalyzer/internal/model"
)

// ISODateLayout is the ISO-8601 layout used for exported dates.
const ISODateLayout = "2006-01-02T15:04:05.000Z"

// DefaultFileName is the download name for the series export.
const DefaultFileName = "exchange_rates.json"

// Record is one exported row. Undefined values are encoded as null.
type Record struct {
	Date           string   `json:"Date"`
	ExchangeRate   float64  `json:"Exchange Rate"`
	DailyChange    *float64 `json:"Daily Change"`
	MovingAverage7 *float64 `json:"7-Day Moving Average"`
}

// Records converts a series into export rows.
func Records(series model.DerivedSeries) []Record {
	records := make([]Record, len(series))
	for i, r := range series {
		records[i] = Record{
			Date:           r.Date.UTC().Format(ISODateLayout),
			ExchangeRate:   r.Rate,
			DailyChange:    r.DailyChange,
			MovingAverage7: r.MovingAverage7,
		}
	}
	return records
}

// MarshalRecords encodes the series as a record-oriented JSON array.
func MarshalRecords(series model.DerivedSeries) ([]byte, error) {
	return json.Marshal(Records(series))
}

// Exporter writes the series export somewhere.
type Exporter interface {
	Export(series model.DerivedSeries) error
	Location() string
}

// FileExporter writes the export to a JSON file.
type FileExporter struct {
	Path string
}

// NewFileExporter creates an exporter writing to path, or DefaultFileName when empty.
func NewFileExporter(path string) *FileExporter {
	if path == "" {
		path = DefaultFileName
	}
	return &FileExporter{Path: path}
}

func (f *FileExporter) Export(series model.DerivedSeries) error {
	data, err := MarshalRecords(series)
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	if err := os.WriteFile(f.Path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	return nil
}

func (f *FileExporter) Location() string { return f.Path }

// NoopExporter is used when no export was requested.
type NoopExporter struct{}

func NewNoopExporter() *NoopExporter { return &NoopExporter{} }

func (n *NoopExporter) Export(_ model.DerivedSeries) error { return nil }
func (n *NoopExporter) Location() string                   { return "" }

// WriteJSON writes v as indented JSON to filePath.
func WriteJSON(filePath string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
