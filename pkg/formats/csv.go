package formats

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/kinship-dev/kinship/pkg/errors"
	"github.com/kinship-dev/kinship/pkg/family"
)

// Candidates is the raw output of an import adapter: the individuals and
// relation candidates found in the input, in encounter order. Nothing here
// has been validated against store invariants - that is the mutation
// layer's job.
type Candidates struct {
	People    []string
	Relations []family.Relation
}

// ParseCSV reads a two-column relationship table. The header row must
// contain fields named "parent" and "child" (case-insensitive, any column
// order, extra columns ignored); a header missing either field is a
// malformed-input error naming the missing column(s). Data rows with both
// fields populated become one relation candidate each; rows missing either
// field are silently skipped. Field quoting and surrounding whitespace are
// stripped.
func ParseCSV(r io.Reader) (Candidates, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return Candidates{}, errors.Wrap(errors.ErrCodeMalformedInput, err, "unparsable CSV input")
	}
	if len(rows) == 0 {
		return Candidates{}, errors.New(errors.ErrCodeMalformedInput, "empty CSV input")
	}

	parentCol, childCol := -1, -1
	for i, field := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(field)) {
		case "parent":
			if parentCol < 0 {
				parentCol = i
			}
		case "child":
			if childCol < 0 {
				childCol = i
			}
		}
	}
	if parentCol < 0 || childCol < 0 {
		var missing []string
		if parentCol < 0 {
			missing = append(missing, "parent")
		}
		if childCol < 0 {
			missing = append(missing, "child")
		}
		return Candidates{}, errors.New(errors.ErrCodeMalformedInput,
			"missing required column(s): %s", strings.Join(missing, ", "))
	}
	if len(rows) < 2 {
		return Candidates{}, errors.New(errors.ErrCodeMalformedInput, "no data rows")
	}

	var out Candidates
	seen := make(map[string]bool)
	add := func(name string) {
		key := family.Fold(name)
		if !seen[key] {
			seen[key] = true
			out.People = append(out.People, name)
		}
	}

	for _, row := range rows[1:] {
		if parentCol >= len(row) || childCol >= len(row) {
			continue
		}
		parent := strings.TrimSpace(row[parentCol])
		child := strings.TrimSpace(row[childCol])
		if parent == "" || child == "" {
			continue
		}
		add(parent)
		add(child)
		out.Relations = append(out.Relations, family.Relation{Parent: parent, Child: child})
	}

	return out, nil
}

// WriteCSV serializes the snapshot's relations as a two-column table: a
// literal "parent,child" header followed by one quoted row per relation, in
// relation insertion order. Individuals without any relation do not appear;
// the CSV form carries edges, not the full individual set.
func WriteCSV(s family.Snapshot, w io.Writer) error {
	if _, err := io.WriteString(w, "parent,child\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range s.Relations {
		if _, err := fmt.Fprintf(w, "%s,%s\n", quoteField(r.Parent), quoteField(r.Child)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return nil
}

// quoteField wraps a field in double quotes, doubling any embedded quotes.
func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
