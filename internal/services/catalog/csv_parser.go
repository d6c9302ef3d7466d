package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"aircon-subsidy-engine/internal/models"
)

// CSVParser errors
var (
	ErrEmptyCSV       = errors.New("CSV content is empty")
	ErrMissingColumns = errors.New("missing required columns")
	ErrNoDataRows     = errors.New("CSV file contains no data rows")
)

// RequiredColumns defines the columns that must be present in the CSV.
var RequiredColumns = []string{
	"model_code",
	"unit_price",
	"install_cost",
	"efficiency_score",
	"rated_cooling_capacity_kw",
}

// ColumnAliases maps alternative column names to standard names. The
// reference file ships with Japanese headers; English variants are
// accepted for hand-edited copies.
var ColumnAliases = map[string]string{
	// model_code aliases
	"型番":         "model_code",
	"model":      "model_code",
	"modelcode":  "model_code",
	"model code": "model_code",

	// unit_price aliases
	"機器販売価格":     "unit_price",
	"price":      "unit_price",
	"unit price": "unit_price",
	"unitprice":  "unit_price",

	// install_cost aliases
	"基本工事費":        "install_cost",
	"install cost": "install_cost",
	"installcost":  "install_cost",
	"cost":         "install_cost",

	// efficiency_score aliases
	"多段階評価点":           "efficiency_score",
	"efficiency":       "efficiency_score",
	"efficiency score": "efficiency_score",
	"rating":           "efficiency_score",

	// rated_cooling_capacity_kw aliases
	"定格能力":             "rated_cooling_capacity_kw",
	"capacity":         "rated_cooling_capacity_kw",
	"capacity_kw":      "rated_cooling_capacity_kw",
	"cooling_capacity": "rated_cooling_capacity_kw",
}

// CSVParser handles parsing of the catalog reference CSV.
type CSVParser struct {
	columnMapping map[string]int
}

// NewCSVParser creates a new CSV parser instance.
func NewCSVParser() *CSVParser {
	return &CSVParser{
		columnMapping: make(map[string]int),
	}
}

// ParseEntries parses CSV content and returns the catalog rows. Bad
// rows are reported per line and skipped; a file with no usable rows is
// an error.
func (p *CSVParser) ParseEntries(content string) ([]models.CatalogEntry, []error) {
	if strings.TrimSpace(content) == "" {
		return nil, []error{ErrEmptyCSV}
	}

	reader := csv.NewReader(strings.NewReader(content))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Read header
	header, err := reader.Read()
	if err != nil {
		return nil, []error{fmt.Errorf("failed to read header: %w", err)}
	}

	// Build column mapping
	if err := p.buildColumnMapping(header); err != nil {
		return nil, []error{err}
	}

	// Parse data rows
	var entries []models.CatalogEntry
	var parseErrors []error
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			parseErrors = append(parseErrors, fmt.Errorf("line %d: %w", lineNum, err))
			continue
		}

		entry, err := p.parseRow(record)
		if err != nil {
			parseErrors = append(parseErrors, fmt.Errorf("line %d: %w", lineNum, err))
			continue
		}

		entries = append(entries, entry)
	}

	if len(entries) == 0 && len(parseErrors) > 0 {
		return nil, append([]error{ErrNoDataRows}, parseErrors...)
	}

	return entries, parseErrors
}

// buildColumnMapping creates a mapping of standard column names to their indices.
func (p *CSVParser) buildColumnMapping(header []string) error {
	p.columnMapping = make(map[string]int)

	for i, col := range header {
		normalized := strings.ToLower(strings.TrimSpace(col))
		if alias, ok := ColumnAliases[normalized]; ok {
			normalized = alias
		}
		p.columnMapping[normalized] = i
	}

	// Check for required columns
	var missing []string
	for _, required := range RequiredColumns {
		if _, ok := p.columnMapping[required]; !ok {
			missing = append(missing, required)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	return nil
}

// parseRow parses a single CSV row into a CatalogEntry.
func (p *CSVParser) parseRow(record []string) (models.CatalogEntry, error) {
	getValue := func(column string) (string, error) {
		idx, ok := p.columnMapping[column]
		if !ok {
			return "", fmt.Errorf("column %s not found", column)
		}
		if idx >= len(record) {
			return "", fmt.Errorf("column %s index out of range", column)
		}
		return strings.TrimSpace(record[idx]), nil
	}

	modelCode, err := getValue("model_code")
	if err != nil {
		return models.CatalogEntry{}, err
	}
	if modelCode == "" {
		return models.CatalogEntry{}, errors.New("empty model code")
	}

	priceStr, err := getValue("unit_price")
	if err != nil {
		return models.CatalogEntry{}, err
	}
	price, err := parseInt(priceStr)
	if err != nil {
		return models.CatalogEntry{}, fmt.Errorf("invalid unit_price: %w", err)
	}

	costStr, err := getValue("install_cost")
	if err != nil {
		return models.CatalogEntry{}, err
	}
	cost, err := parseInt(costStr)
	if err != nil {
		return models.CatalogEntry{}, fmt.Errorf("invalid install_cost: %w", err)
	}

	scoreStr, err := getValue("efficiency_score")
	if err != nil {
		return models.CatalogEntry{}, err
	}
	score, err := parseFloat(scoreStr)
	if err != nil {
		return models.CatalogEntry{}, fmt.Errorf("invalid efficiency_score: %w", err)
	}

	capacityStr, err := getValue("rated_cooling_capacity_kw")
	if err != nil {
		return models.CatalogEntry{}, err
	}
	capacity, err := parseFloat(capacityStr)
	if err != nil {
		return models.CatalogEntry{}, fmt.Errorf("invalid rated_cooling_capacity_kw: %w", err)
	}

	return models.CatalogEntry{
		ModelCode:              modelCode,
		UnitPrice:              price,
		InstallCost:            cost,
		EfficiencyScore:        score,
		RatedCoolingCapacityKW: capacity,
	}, nil
}

// parseFloat parses a string to float64, handling common formats.
func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, errors.New("empty value")
	}

	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "kW")
	s = strings.TrimSpace(s)

	return strconv.ParseFloat(s, 64)
}

// parseInt parses a string to int, handling common formats.
func parseInt(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty value")
	}

	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "円")
	s = strings.TrimSpace(s)

	// Handle float strings (e.g., "150000.0")
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, err
		}
		return int(f), nil
	}

	return strconv.Atoi(s)
}
