package table

import (
	"encoding/json"
	"io"

	"github.com/goccy/go-yaml"
)

// Encoded is the machine-readable form of a table. Each row is a string with
// one byte per column.
type Encoded struct {
	Variables  []string `json:"variables" yaml:"variables"`
	Expression string   `json:"expression" yaml:"expression"`
	Rows       []string `json:"rows" yaml:"rows"`
}

// Encode returns the machine-readable form of t.
func (t *Table) Encode() Encoded {
	enc := Encoded{
		Variables:  append([]string{}, t.Variables()...),
		Expression: t.Expression(),
		Rows:       make([]string, t.Rows()),
	}
	for i, row := range t.Grid {
		enc.Rows[i] = string(row)
	}
	return enc
}

// EncodeJSON writes t as indented JSON.
func EncodeJSON(w io.Writer, t *Table) error {
	e := json.NewEncoder(w)
	e.SetEscapeHTML(false)
	e.SetIndent("", "  ")
	return e.Encode(t.Encode())
}

// EncodeYAML writes t as a YAML document.
func EncodeYAML(w io.Writer, t *Table) error {
	bs, err := yaml.Marshal(t.Encode())
	if err != nil {
		return err
	}
	_, err = w.Write(bs)
	return err
}
