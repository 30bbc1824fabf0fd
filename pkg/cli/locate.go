package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yuzhenhan994520-spec/element-crawler/pkg/element"
)

var locateCommand = &cli.Command{
	Name:  "locate",
	Usage: "Show locator candidates for an element",
	Description: `Take a snapshot, pick one element, and print every viable locator in
priority order together with the generated Appium code. Element indexes
are the ones printed by the elements command.

Examples:
  element-crawler locate --index 3
  element-crawler locate --id com.app:id/login
  element-crawler locate --text Login`,
	Flags:  selectFlags,
	Action: runLocate,
}

// selectFlags pick one element out of a snapshot.
var selectFlags = []cli.Flag{
	&cli.IntFlag{
		Name:  "index",
		Usage: "Snapshot index of the element",
		Value: -1,
	},
	&cli.StringFlag{
		Name:  "id",
		Usage: "Match by resource ID",
	},
	&cli.StringFlag{
		Name:  "text",
		Usage: "Match by visible text",
	},
}

// pickElement selects one element from a snapshot by index, resource ID,
// or text, in that order of precedence.
func pickElement(c *cli.Context, elements []element.Element) (element.Element, error) {
	if idx := c.Int("index"); idx >= 0 {
		if idx >= len(elements) {
			return element.Element{}, fmt.Errorf("index %d out of range (snapshot has %d elements)", idx, len(elements))
		}
		return elements[idx], nil
	}
	if id := c.String("id"); id != "" {
		for _, e := range elements {
			if e.ResourceID == id {
				return e, nil
			}
		}
		return element.Element{}, fmt.Errorf("no element with resource ID %q", id)
	}
	if text := c.String("text"); text != "" {
		for _, e := range elements {
			if e.Text == text {
				return e, nil
			}
		}
		return element.Element{}, fmt.Errorf("no element with text %q", text)
	}
	return element.Element{}, fmt.Errorf("select an element with --index, --id, or --text")
}

func runLocate(c *cli.Context) error {
	client, _, err := dialAgent(c)
	if err != nil {
		return err
	}
	defer client.Disconnect()

	elements := client.GetElements()
	e, err := pickElement(c, elements)
	if err != nil {
		return err
	}

	fmt.Printf("Element: %s\n", e.Label())
	if e.Bounds != "" {
		fmt.Printf("Bounds:  %s\n", e.Bounds)
	}
	fmt.Printf("Center:  (%d, %d)\n\n", e.X, e.Y)

	best := element.Best(e)
	for _, l := range element.Locators(e) {
		marker := " "
		if l == best {
			marker = "*"
		}
		fmt.Printf("%s %d. %-13s %s\n", marker, l.Priority, l.Kind, l.Value)
		fmt.Printf("     %s\n", l.Code)
	}
	return nil
}
