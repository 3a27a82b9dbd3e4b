package formats

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kinship-dev/kinship/pkg/errors"
	"github.com/kinship-dev/kinship/pkg/family"
	"github.com/kinship-dev/kinship/pkg/family/transform"
)

// gedcomVersion is the version advertised in the export header.
const gedcomVersion = "5.5.1"

// indiRecord is an individual record collected during parsing.
type indiRecord struct {
	xref string
	name string
}

// famRecord is a family-unit record: parent roles (HUSB/WIFE) linked to
// child references (CHIL), all by xref, in encounter order.
type famRecord struct {
	parents  []string
	children []string
}

// ParseGEDCOM reads a line-oriented genealogical file and returns relation
// candidates plus the number of candidates dropped for closing ancestry
// cycles.
//
// Only level 0 and 1 structure is interpreted: INDI records contribute an
// individual per NAME line (surname slashes stripped), and FAM records link
// parent roles (HUSB, WIFE) to child references (CHIL). Every (parent role,
// child) pair within one family becomes one candidate - a family with two
// parent roles therefore yields two candidates into the same child, and
// resolving that against the single-parent rule is deliberately left to the
// mutation layer. References to xrefs with no named individual are skipped.
//
// Candidates are passed through the bulk cycle filter (see
// [transform.DropCycles]) before being returned, so the result is acyclic.
// A line whose level is not an integer makes the whole input malformed; so
// does input containing no level-0 record at all.
func ParseGEDCOM(r io.Reader, maxDepth int) (Candidates, int, error) {
	var (
		indis []indiRecord
		fams  []famRecord
		cur   *indiRecord
		fam   *famRecord
	)
	records := 0

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		levelTok, rest, _ := strings.Cut(line, " ")
		level, err := strconv.Atoi(levelTok)
		if err != nil || level < 0 {
			return Candidates{}, 0, errors.New(errors.ErrCodeMalformedInput,
				"line %d: expected level number, got %q", lineNo, levelTok)
		}

		switch level {
		case 0:
			records++
			cur, fam = nil, nil
			xref, tag := splitXref(rest)
			switch tag {
			case "INDI":
				indis = append(indis, indiRecord{xref: xref})
				cur = &indis[len(indis)-1]
			case "FAM":
				fams = append(fams, famRecord{})
				fam = &fams[len(fams)-1]
			}
		case 1:
			tag, value, _ := strings.Cut(rest, " ")
			switch {
			case cur != nil && tag == "NAME":
				cur.name = cleanName(value)
			case fam != nil && (tag == "HUSB" || tag == "WIFE"):
				fam.parents = append(fam.parents, trimXref(value))
			case fam != nil && tag == "CHIL":
				fam.children = append(fam.children, trimXref(value))
			}
		}
		// Deeper levels carry detail this model does not track.
	}
	if err := scanner.Err(); err != nil {
		return Candidates{}, 0, errors.Wrap(errors.ErrCodeMalformedInput, err, "read input")
	}
	if records == 0 {
		return Candidates{}, 0, errors.New(errors.ErrCodeMalformedInput, "no records found")
	}

	byXref := make(map[string]string, len(indis))
	var out Candidates
	seen := make(map[string]bool)
	for _, ind := range indis {
		if ind.name == "" {
			continue
		}
		if ind.xref != "" {
			byXref[ind.xref] = ind.name
		}
		key := family.Fold(ind.name)
		if !seen[key] {
			seen[key] = true
			out.People = append(out.People, ind.name)
		}
	}

	for _, f := range fams {
		for _, p := range f.parents {
			parent, ok := byXref[p]
			if !ok {
				continue
			}
			for _, c := range f.children {
				child, ok := byXref[c]
				if !ok {
					continue
				}
				out.Relations = append(out.Relations, family.Relation{Parent: parent, Child: child})
			}
		}
	}

	kept, dropped := transform.DropCycles(out.Relations, maxDepth)
	out.Relations = kept
	return out, dropped, nil
}

// WriteGEDCOM serializes the snapshot as a minimal genealogical file:
// a header envelope, one INDI record per individual (synthetic @I#@ xrefs
// in insertion order), one FAM record per distinct parent that has at least
// one child (synthetic @F#@ xrefs, parents in first-seen order), and a
// trailer. Parent roles are emitted as HUSB - the model does not track sex.
func WriteGEDCOM(s family.Snapshot, w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "0 HEAD")
	fmt.Fprintln(bw, "1 SOUR kinship")
	fmt.Fprintln(bw, "1 GEDC")
	fmt.Fprintf(bw, "2 VERS %s\n", gedcomVersion)
	fmt.Fprintln(bw, "1 CHAR UTF-8")

	xrefs := make(map[string]string, len(s.People))
	for i, name := range s.People {
		xref := fmt.Sprintf("@I%d@", i+1)
		xrefs[family.Fold(name)] = xref
		fmt.Fprintf(bw, "0 %s INDI\n", xref)
		fmt.Fprintf(bw, "1 NAME %s\n", gedcomName(name))
	}

	type famOut struct {
		parent   string
		children []string
	}
	var famsOut []famOut
	index := make(map[string]int)
	for _, r := range s.Relations {
		pk := family.Fold(r.Parent)
		i, ok := index[pk]
		if !ok {
			i = len(famsOut)
			index[pk] = i
			famsOut = append(famsOut, famOut{parent: r.Parent})
		}
		famsOut[i].children = append(famsOut[i].children, r.Child)
	}

	for i, f := range famsOut {
		fmt.Fprintf(bw, "0 @F%d@ FAM\n", i+1)
		fmt.Fprintf(bw, "1 HUSB %s\n", xrefs[family.Fold(f.parent)])
		for _, c := range f.children {
			fmt.Fprintf(bw, "1 CHIL %s\n", xrefs[family.Fold(c)])
		}
	}

	fmt.Fprintln(bw, "0 TRLR")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// splitXref splits the remainder of a level-0 line into its optional @xref@
// and record tag, e.g. "@I1@ INDI" → ("@I1@", "INDI") and "HEAD" → ("", "HEAD").
func splitXref(rest string) (xref, tag string) {
	first, remainder, _ := strings.Cut(rest, " ")
	if strings.HasPrefix(first, "@") && strings.HasSuffix(first, "@") {
		return first, strings.TrimSpace(remainder)
	}
	return "", first
}

// trimXref strips surrounding whitespace from an xref pointer value.
func trimXref(value string) string {
	return strings.TrimSpace(value)
}

// cleanName converts a GEDCOM personal name to a display name: surname
// slashes are removed and interior whitespace collapsed, so "Ada /Byron/"
// becomes "Ada Byron".
func cleanName(value string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(value, "/", " ")), " ")
}

// gedcomName formats a display name for export, marking the final word as
// the surname: "Ada Byron" → "Ada /Byron/". Single-word names are emitted
// verbatim.
func gedcomName(name string) string {
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return name
	}
	last := fields[len(fields)-1]
	return strings.Join(fields[:len(fields)-1], " ") + " /" + last + "/"
}
