// Package roster loads the curated executive roster and attributes
// survey volume to its entries by fuzzy name matching.
package roster

import (
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/JhonLaurens/medicion-del-servicio/internal/ingest"
	"github.com/JhonLaurens/medicion-del-servicio/internal/model"
)

// Roster file column names after header mapping.
const (
	colName          = "EJECUTIVO_FINAL"
	colSegment       = "SEGMENTO"
	colCity          = "CIUDAD"
	colAgency        = "AGENCIA"
	colExecutiveType = "TIPO_EJECUTIVO"
	colUniverse      = "UNIVERSO"
)

// LoadFile reads the roster export. Entries keep their file order:
// the matcher resolves ties by first entry wins, so order is part of
// the contract.
func LoadFile(path, delimiter string) ([]model.RosterEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "roster: open %s", path)
	}
	defer f.Close()

	raw, warnings, err := ingest.NewReader(delimiter).Read(f)
	if err != nil {
		return nil, eris.Wrap(err, "roster: parse")
	}

	var entries []model.RosterEntry
	for _, rr := range raw {
		name := rr[colName]
		if name == "" {
			continue
		}
		universe, _ := strconv.Atoi(rr[colUniverse])
		entries = append(entries, model.RosterEntry{
			Name:          name,
			Segment:       model.ParseSegment(rr[colSegment]),
			City:          rr[colCity],
			Agency:        rr[colAgency],
			ExecutiveType: rr[colExecutiveType],
			UniverseSize:  universe,
		})
	}

	zap.L().Info("roster: loaded entries",
		zap.String("path", path),
		zap.Int("entries", len(entries)),
		zap.Int("warnings", len(warnings)),
	)

	return entries, nil
}
