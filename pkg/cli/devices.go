package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yuzhenhan994520-spec/element-crawler/pkg/adb"
)

var devicesCommand = &cli.Command{
	Name:  "devices",
	Usage: "List attached Android devices",
	Description: `List the serials of devices attached over adb.

Examples:
  element-crawler devices`,
	Action: runDevices,
}

var statusCommand = &cli.Command{
	Name:  "status",
	Usage: "Check connectivity to the on-device agent",
	Description: `Forward the agent port, open a session, and report whether the agent
answers a snapshot request.

Examples:
  element-crawler status
  element-crawler status --device emulator-5554`,
	Action: runStatus,
}

func runDevices(c *cli.Context) error {
	bridge, err := adb.New("")
	if err != nil {
		return err
	}

	devices, err := bridge.ListDevices()
	if err != nil {
		return fmt.Errorf("list devices: %w", err)
	}

	if len(devices) == 0 {
		fmt.Println("No devices attached. Check USB debugging.")
		return nil
	}

	for _, serial := range devices {
		fmt.Println(serial)
	}
	return nil
}

func runStatus(c *cli.Context) error {
	client, cfg, err := dialAgent(c)
	if err != nil {
		return err
	}
	defer client.Disconnect()

	elements := client.GetElements()
	fmt.Printf("Connected to agent at %s:%d\n", cfg.Host, cfg.Port)
	fmt.Printf("Snapshot: %d elements\n", len(elements))
	return nil
}
