// Package report runs the full fairness and performance battery over a
// prediction table and packages the results as an audit artifact.
package report

import (
	"fairlens/domain/core"
	"fairlens/internal/profiling"
)

// ColumnAudit holds every metric computed for one predicted-label column.
type ColumnAudit struct {
	Column      string             `json:"column"`
	Fairness    map[string]float64 `json:"fairness"`
	Scores      map[string]float64 `json:"scores"`
	Performance map[string]float64 `json:"performance"`
	Distances   map[string]float64 `json:"distances"`
}

// AuditReport is the artifact emitted by a single audit run.
type AuditReport struct {
	ID        core.ReportID                      `json:"id"`
	CreatedAt core.Timestamp                     `json:"created_at"`
	Dataset   core.DatasetHash                   `json:"dataset_hash"`
	Rows      int                                `json:"rows"`
	Condition map[string]string                  `json:"condition"`
	Positive  string                             `json:"positive_label"`
	Columns   []ColumnAudit                      `json:"columns"`
	Profiles  map[string]profiling.ColumnProfile `json:"profiles"`
}

// Audit looks up the results for a predicted column by name.
func (r *AuditReport) Audit(column string) (ColumnAudit, bool) {
	for _, a := range r.Columns {
		if a.Column == column {
			return a, true
		}
	}
	return ColumnAudit{}, false
}
