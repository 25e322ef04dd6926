// Package ingest parses the delimited survey and roster exports into
// typed records, recording recoverable problems as warnings.
package ingest

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// headerMapping renames the long Spanish question headers of the survey
// export onto stable metric keys. Headers not listed here pass through
// trimmed but unchanged.
var headerMapping = map[string]string{
	"En general   ¿La información suministrada en nuestros canales de atención fue clara y fácil de comprender?":                                                                                                                                           "claridad_informacion",
	"¿Qué tan probable es que usted le recomiende Coltefinanciera a sus colegas   familiares o amigos?":                                                                                                                                                    "recomendacion",
	"En general   ¿Qué tan satisfecho se encuentra con los servicios que le ofrece Coltefinanciera?":                                                                                                                                                       "satisfaccion_general",
	"Asumiendo que otra entidad financiera le ofreciera al mismo precio los mismos productos y servicios que usted tiene actualmente con Coltefinanciera   ¿Qué tan probable es que usted continúe siendo cliente de Coltefinanciera?":                     "lealtad",
	"¿Tiene alguna recomendación o sugerencia acerca del servicio que le ofrecemos en Coltefinanciera?":                                                                                                                                                    "sugerencias",
	"TIPO EJECUTIVO": "TIPO_EJECUTIVO",
}

// mapHeader trims a raw header and applies the question-to-key mapping.
func mapHeader(raw string) string {
	h := strings.TrimSpace(raw)
	if mapped, ok := headerMapping[h]; ok {
		return mapped
	}
	return h
}

// RawRecord is one data row keyed by mapped header name. Values are
// cleaned (trimmed, unquoted) but not yet validated.
type RawRecord map[string]string

// Reader parses delimited text into raw records.
type Reader struct {
	delimiter rune
}

// NewReader creates a Reader for the given delimiter. Semicolon and
// comma are the variants seen across the two source files; an empty
// delimiter defaults to semicolon.
func NewReader(delimiter string) *Reader {
	d := ';'
	if delimiter != "" {
		d = []rune(delimiter)[0]
	}
	return &Reader{delimiter: d}
}

// Read parses the full input. The first row is the header; data rows
// whose field count differs from the header are skipped and recorded as
// malformed-row warnings. Blank lines are ignored.
func (r *Reader) Read(src io.Reader) ([]RawRecord, []Warning, error) {
	cr := csv.NewReader(src)
	cr.Comma = r.delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, eris.Wrap(err, "ingest: read delimited input")
	}
	if len(rows) == 0 {
		return nil, nil, eris.New("ingest: input has no header row")
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = mapHeader(h)
	}

	var (
		records  []RawRecord
		warnings []Warning
	)
	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after header

		if isBlankRow(row) {
			continue
		}
		if len(row) != len(header) {
			warnings = append(warnings, Warning{Row: rowNum, Reason: ReasonMalformedRow})
			continue
		}

		rec := make(RawRecord, len(header))
		for j, col := range header {
			rec[col] = cleanField(row[j])
		}
		records = append(records, rec)
	}

	if len(warnings) > 0 {
		zap.L().Warn("ingest: skipped malformed rows",
			zap.Int("skipped", len(warnings)),
			zap.Int("accepted", len(records)),
		)
	}

	return records, warnings, nil
}

// isBlankRow reports whether every field of the row is empty after trimming.
func isBlankRow(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
