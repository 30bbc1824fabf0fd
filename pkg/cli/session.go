package cli

import (
	"fmt"
	"net"

	"github.com/urfave/cli/v2"

	"github.com/yuzhenhan994520-spec/element-crawler/pkg/adb"
	"github.com/yuzhenhan994520-spec/element-crawler/pkg/agent"
	"github.com/yuzhenhan994520-spec/element-crawler/pkg/config"
	"github.com/yuzhenhan994520-spec/element-crawler/pkg/logger"
)

// loadConfig merges the config file with command-line overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadFromDir(".")
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if c.IsSet("host") {
		cfg.Host = c.String("host")
	}
	if c.IsSet("port") {
		cfg.Port = c.Int("port")
	}
	if c.IsSet("device") {
		cfg.Device = c.String("device")
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}

	if cfg.LogFile != "" {
		if err := logger.Init(cfg.LogFile); err != nil {
			return nil, err
		}
	}
	logger.SetVerbose(c.Bool("verbose"))

	return cfg, nil
}

// dialAgent resolves the device, sets up port forwarding when connecting
// through loopback, and opens the agent session. The caller must
// Disconnect the returned client.
func dialAgent(c *cli.Context) (*agent.Client, *config.Config, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, nil, err
	}

	// Loopback means we reach the agent through an adb port forward.
	if isLoopback(cfg.Host) {
		bridge, err := adb.New(cfg.Device)
		if err != nil {
			logger.Warn("adb unavailable, connecting without port forward: %v", err)
		} else if err := bridge.ForwardPort(cfg.Port); err != nil {
			logger.Warn("port forward failed: %v", err)
		}
	}

	client := agent.New()
	client.SetDialTimeout(cfg.ConnectTimeout.Std())
	client.SetReadTimeout(cfg.ReadTimeout.Std())

	if err := client.Connect(cfg.Host, cfg.Port); err != nil {
		return nil, nil, fmt.Errorf("connect to agent at %s:%d: %w (is the accessibility service running on the device?)",
			cfg.Host, cfg.Port, err)
	}

	return client, cfg, nil
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
