package cmd

import (
	"sort"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/asc2tikz/pkg/asc"
	"github.com/OpenTraceLab/asc2tikz/pkg/tikz"
	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <schematic.asc>",
	Short: "Show schematic information",
	Long: `Parse an LTspice schematic and summarize what a conversion would emit:
record counts, symbols grouped by circuitikz family, net flags and the
keywords that are ignored. Symbol types without a circuitikz family are
listed instead of aborting.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

// schematicSummary is what info reports about a schematic.
type schematicSummary struct {
	Wires    int
	Symbols  map[tikz.Family][]string
	Unknown  map[string]int
	Flags    []string
	Grounds  int
	Ignored  map[string]int
	Orphaned int
}

func runInfo(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	filename := args[0]
	parser, err := asc.NewParser()
	if err != nil {
		return err
	}

	records, err := parser.ParseFile(filename)
	if err != nil {
		return errors.Wrap(err, "error parsing schematic")
	}

	showSummary(filename, summarize(records))
	return nil
}

func summarize(records []*asc.Record) *schematicSummary {
	s := &schematicSummary{
		Symbols: make(map[tikz.Family][]string),
		Unknown: make(map[string]int),
		Ignored: make(map[string]int),
	}

	// name slot of the symbol the next SYMATTR applies to
	var current *string
	for _, rec := range records {
		switch {
		case rec.Wire != nil:
			current = nil
			s.Wires++
		case rec.Symbol != nil:
			current = nil
			family, err := tikz.LookupFamily(rec.Symbol.Type)
			if err != nil {
				s.Unknown[rec.Symbol.Type]++
				continue
			}
			names := append(s.Symbols[family], "?")
			s.Symbols[family] = names
			current = &names[len(names)-1]
		case rec.Attr != nil:
			if current == nil {
				s.Orphaned++
				continue
			}
			if rec.Attr.Key == asc.AttrInstName {
				*current = rec.Attr.Value
			}
		case rec.Flag != nil:
			current = nil
			if rec.Flag.IsGround() {
				s.Grounds++
			} else {
				s.Flags = append(s.Flags, rec.Flag.Name)
			}
		default:
			s.Ignored[rec.Kind()]++
		}
	}
	return s
}

func showSummary(filename string, s *schematicSummary) {
	pterm.DefaultHeader.WithFullWidth().Printf("Schematic: %s", filename)
	pterm.Println()

	symbols := 0
	for _, names := range s.Symbols {
		symbols += len(names)
	}

	stats := pterm.TableData{
		{"Record", "Count"},
		{"Wires", strconv.Itoa(s.Wires)},
		{"Symbols", strconv.Itoa(symbols)},
		{"Net flags", strconv.Itoa(len(s.Flags))},
		{"Grounds", strconv.Itoa(s.Grounds)},
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(stats).Render()
	pterm.Println()

	if len(s.Symbols) > 0 {
		families := make([]string, 0, len(s.Symbols))
		for f := range s.Symbols {
			families = append(families, string(f))
		}
		sort.Strings(families)

		table := pterm.TableData{{"Family", "Kind", "Instances"}}
		for _, f := range families {
			family := tikz.Family(f)
			names := append([]string(nil), s.Symbols[family]...)
			sort.Strings(names)
			table = append(table, []string{f, family.Kind().String(), strings.Join(names, ", ")})
		}
		_ = pterm.DefaultTable.WithHasHeader().WithData(table).Render()
		pterm.Println()
	}

	if len(s.Flags) > 0 {
		flags := append([]string(nil), s.Flags...)
		sort.Strings(flags)
		pterm.Info.Printfln("Net flags: %s", strings.Join(flags, ", "))
	}

	for _, t := range sortedKeys(s.Unknown) {
		pterm.Warning.Printfln("Unsupported symbol type %q (%d instances)", t, s.Unknown[t])
	}
	if s.Orphaned > 0 {
		pterm.Warning.Printfln("%d attributes follow no supported symbol", s.Orphaned)
	}

	if len(s.Ignored) > 0 {
		var ignored []string
		for _, k := range sortedKeys(s.Ignored) {
			ignored = append(ignored, k+" ("+strconv.Itoa(s.Ignored[k])+")")
		}
		pterm.Info.Printfln("Ignored records: %s", strings.Join(ignored, ", "))
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
