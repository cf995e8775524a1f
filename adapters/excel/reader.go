// Package excel reads prediction tables from Excel and CSV files.
package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"fairlens/domain/core"
	"fairlens/domain/frame"
)

// DataReader handles reading Excel and CSV files into a Frame.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
}

// NewDataReader creates a reader for the given path. The format is chosen
// by extension: .csv is parsed as CSV, everything else as xlsx (Sheet1).
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType, sheet: "Sheet1"}
}

// Load reads the file into a Frame. The first row supplies column names;
// numeric cells become numeric values, empty cells become missing, and
// everything else stays a string.
func (r *DataReader) Load(ctx context.Context) (*frame.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}

	return r.buildFrame(rows)
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.sheet, err)
	}
	log.Printf("[DataReader] Excel file read (%d rows)", len(rows))
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	log.Printf("[DataReader] CSV file read (%d rows)", len(rows))
	return rows, nil
}

// buildFrame converts raw string rows into a typed Frame. Short rows are
// padded with missing cells.
func (r *DataReader) buildFrame(rows [][]string) (*frame.Frame, error) {
	if len(rows) < 2 {
		return nil, core.ErrEmptyTable
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	columns := make([]frame.Series, len(headers))
	for j, name := range headers {
		values := make([]frame.Value, 0, len(rows)-1)
		for i := 1; i < len(rows); i++ {
			if j >= len(rows[i]) {
				values = append(values, frame.Missing())
				continue
			}
			values = append(values, parseCell(rows[i][j]))
		}
		columns[j] = frame.Series{Name: name, Values: values}
	}

	return frame.New(columns...)
}

func parseCell(raw string) frame.Value {
	cell := strings.TrimSpace(raw)
	if cell == "" {
		return frame.Missing()
	}
	if num, err := strconv.ParseFloat(cell, 64); err == nil {
		return frame.Num(num)
	}
	return frame.Str(cell)
}
