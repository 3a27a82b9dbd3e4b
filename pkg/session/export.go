package session

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kinship-dev/kinship/pkg/formats"
)

// ExportCSV writes the current graph as a two-column relationship table.
func (s *Session) ExportCSV(w io.Writer) error {
	return formats.WriteCSV(s.tree.Snapshot(), w)
}

// ExportGEDCOM writes the current graph as a genealogical file.
func (s *Session) ExportGEDCOM(w io.Writer) error {
	return formats.WriteGEDCOM(s.tree.Snapshot(), w)
}

// ExportJSON writes the derived hierarchy as indented JSON: a nested object
// with a name field and a children list, children omitted for leaves. This
// is the form the rendering and AI-prompt collaborators consume. An empty
// graph exports as JSON null.
func (s *Session) ExportJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.Hierarchy()); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
