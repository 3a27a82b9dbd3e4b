package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kinship-dev/kinship/pkg/family/transform"
	"github.com/kinship-dev/kinship/pkg/session"
)

// File formats understood by convert and show.
const (
	formatCSV    = "csv"
	formatGEDCOM = "gedcom"
	formatJSON   = "json"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	from     string // input format (auto-detected from extension if empty)
	to       string // output format (auto-detected from extension if empty)
	maxDepth int    // cycle-detection traversal bound
}

// newConvertCmd creates the convert command, which imports a family-tree
// file and re-exports it in another format. Relations that would close an
// ancestry cycle are dropped (and counted) rather than failing the
// conversion.
func newConvertCmd() *cobra.Command {
	opts := convertOpts{maxDepth: transform.DefaultMaxDepth}

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a family-tree file between CSV, GEDCOM, and JSON",
		Long: `Convert a family-tree file between formats.

Input formats: csv, gedcom. Output formats: csv, gedcom, json (nested
hierarchy). Formats are detected from file extensions; use --from/--to to
override. Pass "-" as the output to write to stdout.

Examples:
  kinship convert lineage.csv lineage.ged
  kinship convert ancestry.ged tree.json
  kinship convert --from gedcom export.txt -`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runConvert(c.Context(), &opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "input format: csv|gedcom")
	cmd.Flags().StringVar(&opts.to, "to", "", "output format: csv|gedcom|json")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", opts.maxDepth, "cycle-detection traversal bound")
	return cmd
}

func runConvert(ctx context.Context, opts *convertOpts, input, output string) error {
	logger := loggerFromContext(ctx)

	from, err := resolveFormat(opts.from, input, false)
	if err != nil {
		return err
	}
	to, err := resolveFormat(opts.to, output, true)
	if err != nil {
		return err
	}

	sess, report, err := importFile(ctx, input, from, opts.maxDepth)
	if err != nil {
		return err
	}
	logger.Infof("Imported %d individuals with %d relations", report.Individuals, report.Relations)
	if report.CyclesDropped > 0 {
		logger.Warnf("Dropped %d cycle-closing relation(s)", report.CyclesDropped)
	}
	if report.ConflictsSkipped > 0 {
		logger.Warnf("Skipped %d conflicting relation(s)", report.ConflictsSkipped)
	}

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	switch to {
	case formatCSV:
		err = sess.ExportCSV(out)
	case formatGEDCOM:
		err = sess.ExportGEDCOM(out)
	case formatJSON:
		err = sess.ExportJSON(out)
	}
	if err != nil {
		return err
	}
	if output != "-" {
		logger.Infof("Wrote %s to %s", to, output)
	}
	return nil
}

// importFile reads a file into a fresh session using the given format.
func importFile(ctx context.Context, path, format string, maxDepth int) (*session.Session, session.ImportReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, session.ImportReport{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sess := session.New(session.Options{
		Logger:   loggerFromContext(ctx),
		MaxDepth: maxDepth,
	})

	var report session.ImportReport
	switch format {
	case formatCSV:
		report, err = sess.ImportCSV(f, false)
	case formatGEDCOM:
		report, err = sess.ImportGEDCOM(f, false)
	default:
		err = fmt.Errorf("cannot import format %q", format)
	}
	if err != nil {
		return nil, session.ImportReport{}, err
	}
	return sess, report, nil
}

// resolveFormat picks the format from an explicit flag or the file
// extension. JSON is export-only: the hierarchy form drops no information
// but is not an accepted import shape.
func resolveFormat(explicit, path string, output bool) (string, error) {
	if explicit != "" {
		switch explicit {
		case formatCSV, formatGEDCOM:
			return explicit, nil
		case formatJSON:
			if output {
				return explicit, nil
			}
			return "", fmt.Errorf("json is an export-only format")
		default:
			return "", fmt.Errorf("unknown format: %q", explicit)
		}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return formatCSV, nil
	case ".ged", ".gedcom":
		return formatGEDCOM, nil
	case ".json":
		if output {
			return formatJSON, nil
		}
		return "", fmt.Errorf("json is an export-only format")
	}
	return "", fmt.Errorf("cannot detect format of %q (use --from/--to)", path)
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is "-", it returns os.Stdout wrapped in nopCloser.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
