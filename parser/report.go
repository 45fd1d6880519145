package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"wow-analyzer/model"
)

// ErrInvalidReport is returned when a report's fight bounds make no sense.
var ErrInvalidReport = errors.New("invalid report")

// DecodeReport reads a JSON report and normalizes it for parsing: events
// are sorted by timestamp (stable, so same-ms events keep log order), and
// a missing fight end is taken from the last event.
func DecodeReport(r io.Reader) (*model.Report, error) {
	var report model.Report
	if err := json.NewDecoder(r).Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}

	sort.SliceStable(report.Events, func(i, j int) bool {
		return report.Events[i].Timestamp < report.Events[j].Timestamp
	})

	if report.Fight.EndTime == 0 && len(report.Events) > 0 {
		report.Fight.EndTime = report.Events[len(report.Events)-1].Timestamp
	}
	if report.Fight.EndTime < report.Fight.StartTime {
		return nil, fmt.Errorf("%w: fight %d ends at %d before it starts at %d",
			ErrInvalidReport, report.Fight.ID, report.Fight.EndTime, report.Fight.StartTime)
	}

	return &report, nil
}
