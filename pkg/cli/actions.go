package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

var clickCommand = &cli.Command{
	Name:  "click",
	Usage: "Click an element on the device",
	Description: `Click by an explicit locator, or pick a snapshot element with --index
and let the client try resource ID, text, and content description in
priority order.

Examples:
  element-crawler click --id com.app:id/login
  element-crawler click --text Login
  element-crawler click --desc "Login button"
  element-crawler click --coords 540,960
  element-crawler click --index 3`,
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "index",
			Usage: "Snapshot index of the element (uses the fallback chain)",
			Value: -1,
		},
		&cli.StringFlag{
			Name:  "id",
			Usage: "Click by resource ID",
		},
		&cli.StringFlag{
			Name:  "text",
			Usage: "Click by visible text",
		},
		&cli.StringFlag{
			Name:  "desc",
			Usage: "Click by content description",
		},
		&cli.StringFlag{
			Name:  "coords",
			Usage: "Click at coordinates, given as x,y",
		},
	},
	Action: runClick,
}

var inputCommand = &cli.Command{
	Name:      "input",
	Usage:     "Type text into the focused element",
	ArgsUsage: "<text>",
	Action:    runInput,
}

var scrollCommand = &cli.Command{
	Name:      "scroll",
	Usage:     "Scroll the current view",
	ArgsUsage: "up|down",
	Action:    runScroll,
}

func runClick(c *cli.Context) error {
	client, _, err := dialAgent(c)
	if err != nil {
		return err
	}
	defer client.Disconnect()

	switch {
	case c.Int("index") >= 0:
		elements := client.GetElements()
		e, err := pickElement(c, elements)
		if err != nil {
			return err
		}
		kind, ok := client.ClickElement(e)
		if !ok {
			return fmt.Errorf("click failed: element has no locator the agent accepts")
		}
		fmt.Printf("Clicked via %s\n", kind)
		return nil

	case c.String("id") != "":
		return reportClick(client.ClickByID(c.String("id")))
	case c.String("text") != "":
		return reportClick(client.ClickByText(c.String("text")))
	case c.String("desc") != "":
		return reportClick(client.ClickByContentDesc(c.String("desc")))
	case c.String("coords") != "":
		x, y, err := parseCoords(c.String("coords"))
		if err != nil {
			return err
		}
		return reportClick(client.ClickByCoords(x, y))
	default:
		return fmt.Errorf("give a locator: --id, --text, --desc, --coords, or --index")
	}
}

func reportClick(ok bool) error {
	if !ok {
		return fmt.Errorf("click failed")
	}
	fmt.Println("OK")
	return nil
}

// parseCoords parses "x,y" into device pixel coordinates.
func parseCoords(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("coordinates must be given as x,y")
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad x coordinate %q", parts[0])
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad y coordinate %q", parts[1])
	}
	return x, y, nil
}

func runInput(c *cli.Context) error {
	text := c.Args().First()
	if text == "" {
		return fmt.Errorf("give the text to type")
	}

	client, _, err := dialAgent(c)
	if err != nil {
		return err
	}
	defer client.Disconnect()

	if !client.InputText(text) {
		return fmt.Errorf("input failed")
	}
	fmt.Println("OK")
	return nil
}

func runScroll(c *cli.Context) error {
	direction := c.Args().First()
	if direction != "up" && direction != "down" {
		return fmt.Errorf("scroll direction must be up or down")
	}

	client, _, err := dialAgent(c)
	if err != nil {
		return err
	}
	defer client.Disconnect()

	var ok bool
	if direction == "up" {
		ok = client.ScrollUp()
	} else {
		ok = client.ScrollDown()
	}
	if !ok {
		return fmt.Errorf("scroll failed")
	}
	fmt.Println("OK")
	return nil
}
