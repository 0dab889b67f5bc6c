package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gopivot/pkg/execution/pivot"
	"gopivot/pkg/grouping"
	"gopivot/pkg/ingest"
	"gopivot/pkg/logging"
	"gopivot/pkg/pipeline"
	"gopivot/pkg/primitives"
	"gopivot/pkg/table"
	"gopivot/pkg/ui"
)

var (
	inputPath string
	groupKeys []string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "gopivot <pivot-column> <value-column> <operation>",
	Short: "Pivot a grouped table",
	Long: `Reads a CSV table, groups it by the given key columns, and pivots it:
the distinct values of the pivot column become output columns, and each cell
holds the aggregate of the value column over the rows sharing that group and
pivot value.

Operations: first, sum, min, max, mean, median.`,
	Example: `  gopivot b c sum --input data.csv --group-by a`,
	Args:    cobra.ExactArgs(3),
	RunE:    runPivot,
	// Errors are rendered with argument spans below; cobra's own echo
	// would duplicate them.
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "CSV input file (default: stdin)")
	rootCmd.Flags().StringSliceVarP(&groupKeys, "group-by", "g", nil, "key columns to group by before pivoting")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "INFO", "log verbosity (DEBUG, INFO, WARN, ERROR)")
	_ = rootCmd.MarkFlagRequired("group-by")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPivot(cmd *cobra.Command, args []string) error {
	if err := logging.Init(logging.Config{Level: logging.LogLevel(logLevel)}); err != nil {
		return err
	}
	log := logging.WithStage("pivot")

	tbl, err := loadInput()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	log.Debug("table loaded", "rows", tbl.NumRows(), "columns", tbl.NumColumns())

	grouped, err := grouping.GroupBy(tbl, groupKeys...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	log.Debug("table grouped", "keys", strings.Join(groupKeys, ","), "groups", grouped.NumGroups())

	invocation, spans := argSpans(args)
	command := pivot.NewCommand(
		primitives.Span{Start: 0, End: len(invocation)},
		primitives.NewTagged(args[0], spans[0]),
		primitives.NewTagged(args[1], spans[1]),
		primitives.NewTagged(args[2], spans[2]),
	)

	src := pipeline.NewSliceSource(&pipeline.GroupedTableArtifact{Grouped: grouped})
	out, err := command.Run(src)
	if err != nil {
		renderError(invocation, err)
		return err
	}

	result := out.(*pipeline.TableArtifact)
	rendered, err := ui.RenderTable(result.Table)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	fmt.Println(rendered)
	return nil
}

// loadInput reads the CSV table from the input file, or stdin when no file
// was given.
func loadInput() (*table.Table, error) {
	if inputPath == "" {
		return ingest.ReadCSV(os.Stdin)
	}
	logging.WithInput(inputPath).Debug("reading csv input")
	return ingest.ReadCSVFile(inputPath)
}

// argSpans reconstructs the positional part of the invocation and the byte
// span of each argument within it.
func argSpans(args []string) (string, []primitives.Span) {
	spans := make([]primitives.Span, len(args))
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		start := b.Len()
		b.WriteString(arg)
		spans[i] = primitives.Span{Start: start, End: b.Len()}
	}
	return b.String(), spans
}

// renderError prints a pivot failure, pointing at the offending argument
// when its span is known.
func renderError(invocation string, err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)

	var pe *pivot.Error
	if !errors.As(err, &pe) || !pe.Span.IsKnown() || pe.Span.End > len(invocation) {
		return
	}
	fmt.Fprintf(os.Stderr, "  %s\n", invocation)
	fmt.Fprintf(os.Stderr, "  %s%s\n",
		strings.Repeat(" ", pe.Span.Start),
		strings.Repeat("^", pe.Span.End-pe.Span.Start))
}
