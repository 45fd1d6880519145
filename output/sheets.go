package output

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"wow-analyzer/model"
)

// ErrInvalidSheetURL is returned when no spreadsheet ID can be found in a URL.
var ErrInvalidSheetURL = errors.New("invalid spreadsheet URL")

var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// SheetsClient handles Google Sheets operations
type SheetsClient struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
	logger        *zap.Logger
}

// NewSheetsClient creates a new Google Sheets client using service account credentials
func NewSheetsClient(ctx context.Context, credentialsJSON []byte, sheetURL, sheetName string, logger *zap.Logger) (*SheetsClient, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Extract spreadsheet ID from URL
	spreadsheetID, err := extractSpreadsheetID(sheetURL)
	if err != nil {
		return nil, err
	}

	// Parse credentials and create JWT config
	config, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &SheetsClient{
		service:       srv,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		logger:        logger,
	}, nil
}

// extractSpreadsheetID extracts the spreadsheet ID from a Google Sheets URL
func extractSpreadsheetID(url string) (string, error) {
	matches := spreadsheetIDPattern.FindStringSubmatch(url)
	if len(matches) < 2 {
		return "", fmt.Errorf("%w: %s", ErrInvalidSheetURL, url)
	}
	return matches[1], nil
}

var sheetHeaders = []interface{}{
	"Run ID", "Analyzer", "Title", "Category", "Kind", "Label", "Value", "Display",
}

// categoryOrder puts talents before items, matching the results page.
var categoryOrder = map[model.Category]int{
	model.CategoryTalents: 0,
	model.CategoryItems:   1,
}

// statisticRows flattens statistics into sheet rows: one per field and
// one per suggestion, sorted by category and then position.
func statisticRows(runID string, statistics []model.Statistic) [][]interface{} {
	ordered := make([]model.Statistic, len(statistics))
	copy(ordered, statistics)
	sort.SliceStable(ordered, func(i, j int) bool {
		ci, cj := categoryOrder[ordered[i].Category], categoryOrder[ordered[j].Category]
		if ci != cj {
			return ci < cj
		}
		return ordered[i].Position < ordered[j].Position
	})

	rows := [][]interface{}{sheetHeaders}
	for _, s := range ordered {
		for _, f := range s.Fields {
			rows = append(rows, []interface{}{
				runID, s.Analyzer, s.Title, string(s.Category), "field", f.Label, f.Value, FormatField(f),
			})
		}
		for _, sg := range s.Suggestions {
			rows = append(rows, []interface{}{
				runID, s.Analyzer, s.Title, string(s.Category), "suggestion", sg.Importance.String(), sg.Actual, sg.Text,
			})
		}
	}
	return rows
}

// UploadStatistics replaces the sheet's contents with the statistics of one run.
func (c *SheetsClient) UploadStatistics(ctx context.Context, runID string, statistics []model.Statistic) error {
	rows := statisticRows(runID, statistics)

	// Clear existing data in the sheet first
	clearRange := fmt.Sprintf("%s!A:H", c.sheetName)
	_, err := c.service.Spreadsheets.Values.Clear(c.spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to clear sheet: %w", err)
	}

	writeRange := fmt.Sprintf("%s!A1", c.sheetName)
	valueRange := &sheets.ValueRange{
		Values: rows,
	}

	_, err = c.service.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write to sheet: %w", err)
	}

	c.logger.Info("Statistics uploaded",
		zap.String("runID", runID),
		zap.String("sheet", c.sheetName),
		zap.Int("rows", len(rows)-1))
	return nil
}
