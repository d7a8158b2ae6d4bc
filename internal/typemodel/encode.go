package typemodel

import (
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// DefaultEntry is the well-known registry name of a module's default export.
const DefaultEntry = "default"

// Encode writes the registry as a self-contained JSON document:
//
//	{"types": {name: node, ...}}
//
// A default export, when present, is the entry named DefaultEntry. Entries
// are written in sorted name order so equivalent extraction runs serialize
// identically. The transient External escape hatch on ref nodes never
// appears in the output.
func (r *Registry) Encode(w io.Writer, indent bool) error {
	var opts []jsontext.Options
	if indent {
		opts = append(opts, jsontext.WithIndent("  "))
	}
	enc := jsontext.NewEncoder(w, opts...)

	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	if err := enc.WriteToken(jsontext.String("types")); err != nil {
		return err
	}
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	for _, name := range r.Names() {
		if err := enc.WriteToken(jsontext.String(name)); err != nil {
			return err
		}
		if err := json.MarshalEncode(enc, r.entries[name]); err != nil {
			return err
		}
	}
	if err := enc.WriteToken(jsontext.EndObject); err != nil {
		return err
	}
	return enc.WriteToken(jsontext.EndObject)
}
