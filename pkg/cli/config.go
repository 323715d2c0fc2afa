package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mchmarny/creditscore/pkg/config"
	urfave "github.com/urfave/cli/v3"
)

const (
	configCmdName = "config"
	flagPath      = "path"
)

func configCmd() *urfave.Command {
	return &urfave.Command{
		Name:  configCmdName,
		Usage: "Config file operations",
		Commands: []*urfave.Command{
			{
				Name:  "init",
				Usage: "Write a default config file",
				Flags: []urfave.Flag{
					&urfave.StringFlag{
						Name:  flagPath,
						Usage: "Config file path",
						Value: config.DefaultFileName,
					},
				},
				Action: cmdConfigInit,
			},
		},
	}
}

func cmdConfigInit(_ context.Context, cmd *urfave.Command) error {
	cfg := getConfig(cmd)
	path := cmd.String(flagPath)

	c := config.Default()
	c.Format = cfg.Format
	c.LogLevel = cfg.LogLevel

	if err := config.Save(path, c); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}

	slog.Info("config created", "path", path)
	fmt.Fprintf(cfg.Stdout, "Config written to %s\n", path)
	return nil
}
