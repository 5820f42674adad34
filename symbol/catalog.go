package symbol

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"io"
	"log"
)

// The curated catalog ships with the binary so the most common names
// resolve without any network or cache. It is intentionally small; the
// master list covers the long tail.

//go:embed catalog.csv
var catalogCSV []byte

// Catalog returns the curated (symbol, name) candidates.
func Catalog() []Candidate {
	r := csv.NewReader(bytes.NewReader(catalogCSV))
	r.FieldsPerRecord = -1
	var out []Candidate
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// the catalog is embedded, a bad line is a build defect
			log.Printf("catalog: skipping bad line: %v", err)
			continue
		}
		if len(record) < 2 {
			continue
		}
		out = append(out, Candidate{Symbol: record[0], Name: record[1]})
	}
	return out
}

// Aliases is the manual transliteration table: a folded spelling that
// users type but listings never carry, mapped to the symbol it means.
// Keys must be pre-normalized (see Normalize).
var Aliases = map[string]string{
	"toyota":    "7203.T",
	"softbank":  "9984.T",
	"そふとばんく":    "9984.T",
	"sony":      "6758.T",
	"ntt":       "9432.T",
	"nintendo":  "7974.T",
	"にんてんどう":    "7974.T",
	"fast retailing": "9983.T",
	"ゆにくろ":      "9983.T",
	"keyence":   "6861.T",
	"mufg":      "8306.T",
}
