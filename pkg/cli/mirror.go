package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yuzhenhan994520-spec/element-crawler/pkg/adb"
	"github.com/yuzhenhan994520-spec/element-crawler/pkg/scrcpy"
)

var mirrorCommand = &cli.Command{
	Name:  "mirror",
	Usage: "Start or stop screen mirroring via scrcpy",
	Description: `Launch scrcpy for the target device. The mirror runs until its window
is closed or "mirror stop" is invoked.

Examples:
  element-crawler mirror start
  element-crawler -s emulator-5554 mirror stop`,
	Subcommands: []*cli.Command{
		{
			Name:   "start",
			Usage:  "Start mirroring the target device",
			Action: runMirrorStart,
		},
		{
			Name:   "stop",
			Usage:  "Stop mirroring the target device",
			Action: runMirrorStop,
		},
	},
}

// resolveSerial picks the device serial: the flag/config value, or the
// single attached device.
func resolveSerial(device string) (string, error) {
	if device != "" {
		return device, nil
	}

	bridge, err := adb.New("")
	if err != nil {
		return "", err
	}
	devices, err := bridge.ListDevices()
	if err != nil {
		return "", err
	}
	if len(devices) == 0 {
		return "", fmt.Errorf("no devices attached")
	}
	if len(devices) > 1 {
		return "", fmt.Errorf("multiple devices attached; pick one with --device")
	}
	return devices[0], nil
}

func runMirrorStart(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	serial, err := resolveSerial(cfg.Device)
	if err != nil {
		return err
	}

	manager := scrcpy.NewManager()
	if err := manager.Start(serial, scrcpy.Options{
		Path:      cfg.Scrcpy.Path,
		ExtraArgs: cfg.Scrcpy.Args,
	}); err != nil {
		return err
	}

	fmt.Printf("Mirror started for %s\n", serial)
	return nil
}

func runMirrorStop(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	serial, err := resolveSerial(cfg.Device)
	if err != nil {
		return err
	}

	manager := scrcpy.NewManager()
	if err := manager.Stop(serial); err != nil {
		return err
	}

	fmt.Printf("Mirror stopped for %s\n", serial)
	return nil
}
