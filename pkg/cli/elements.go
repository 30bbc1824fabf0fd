package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yuzhenhan994520-spec/element-crawler/pkg/element"
)

var elementsCommand = &cli.Command{
	Name:  "elements",
	Usage: "Print the UI element tree of the connected device",
	Description: `Take a snapshot of the device UI and print it grouped by tree depth.

Examples:
  element-crawler elements
  element-crawler elements --json
  element-crawler elements --compact`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output the raw snapshot as JSON",
		},
		&cli.BoolFlag{
			Name:  "compact",
			Usage: "Output in CSV format",
		},
	},
	Action: runElements,
}

func runElements(c *cli.Context) error {
	client, _, err := dialAgent(c)
	if err != nil {
		return err
	}
	defer client.Disconnect()

	elements := client.GetElements()

	switch {
	case c.Bool("json"):
		return writeJSON(os.Stdout, elements)
	case c.Bool("compact"):
		return writeCSV(os.Stdout, elements)
	default:
		writeTree(os.Stdout, elements)
		fmt.Fprintf(os.Stdout, "\n%d elements\n", len(elements))
		return nil
	}
}

func writeJSON(w io.Writer, elements []element.Element) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(elements)
}

func writeCSV(w io.Writer, elements []element.Element) error {
	cw := csv.NewWriter(w)
	header := []string{"depth", "class", "resourceId", "text", "contentDesc", "x", "y", "clickable"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, g := range element.GroupByDepth(elements) {
		for _, e := range g.Elements {
			record := []string{
				strconv.Itoa(e.Depth),
				e.ClassName,
				e.ResourceID,
				e.Text,
				e.ContentDesc,
				strconv.Itoa(e.X),
				strconv.Itoa(e.Y),
				strconv.FormatBool(e.IsClickable),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeTree prints elements grouped by ascending depth, indented per depth,
// with the snapshot index callers pass to locate/click. Indexes are
// positional, so field-identical siblings stay individually addressable.
func writeTree(w io.Writer, elements []element.Element) {
	byDepth := make(map[int][]int) // depth -> snapshot indexes, response order
	for i, e := range elements {
		byDepth[e.Depth] = append(byDepth[e.Depth], i)
	}

	depths := make([]int, 0, len(byDepth))
	for d := range byDepth {
		depths = append(depths, d)
	}
	sort.Ints(depths)

	for _, d := range depths {
		indent := strings.Repeat("  ", d)
		for _, i := range byDepth[d] {
			e := elements[i]
			fmt.Fprintf(w, "%s[%d] %s%s\n", indent, i, e.Label(), capabilityFlags(e))
		}
	}
}

func capabilityFlags(e element.Element) string {
	var flags []string
	if e.IsClickable {
		flags = append(flags, "clickable")
	}
	if e.IsScrollable {
		flags = append(flags, "scrollable")
	}
	if e.IsEditable {
		flags = append(flags, "editable")
	}
	if len(flags) == 0 {
		return ""
	}
	return " (" + strings.Join(flags, ",") + ")"
}
