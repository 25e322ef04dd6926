package ingest

import "fmt"

// Warning reasons. Warnings are recoverable-skip events: the offending
// row or value is excluded from computation but the batch continues.
const (
	ReasonMalformedRow  = "malformed_row"
	ReasonNonNumeric    = "non_numeric"
	ReasonOutOfRange    = "out_of_range"
	ReasonDroppedRecord = "dropped_record"
)

// Warning records one recoverable ingestion problem for later audit.
type Warning struct {
	Row    int    `json:"row"`
	Field  string `json:"field,omitempty"`
	Value  string `json:"value,omitempty"`
	Reason string `json:"reason"`
}

func (w Warning) String() string {
	if w.Field == "" {
		return fmt.Sprintf("row %d: %s", w.Row, w.Reason)
	}
	return fmt.Sprintf("row %d, field %s: %s (%q)", w.Row, w.Field, w.Reason, w.Value)
}
