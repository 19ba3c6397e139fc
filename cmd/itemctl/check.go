package main

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/osse101/PluginKit_Go/internal/chatcolor"
	"github.com/osse101/PluginKit_Go/internal/inventory"
	"github.com/osse101/PluginKit_Go/internal/updatecheck"
)

// consoleName receives the notification when --notify is set
const consoleName = "CONSOLE"

func newCheckCmd() *cobra.Command {
	opts := updatecheck.Options{Enabled: true}
	var notify bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Ask the release API whether a newer plugin version exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.BukkitDevSlug == "" {
				opts.BukkitDevSlug = strings.ToLower(opts.PluginName)
			}
			opts.Logger = slog.Default()

			checker, err := updatecheck.New(opts)
			if err != nil {
				return err
			}
			if err := checker.CheckNow(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			status := checker.Status()
			outdated := strconv.FormatBool(status.UpdateRequired)
			if status.UpdateRequired {
				outdated = warningStyle.Render(outdated)
			}
			field(out, "plugin", status.Plugin)
			field(out, "current", status.CurrentVersion)
			field(out, "latest", status.LastVersion)
			field(out, "outdated", outdated)
			field(out, "checked", humanize.Time(status.LastChecked))
			field(out, "url", status.URL)

			if notify {
				console := inventory.NewPlayer(consoleName, nil)
				console.Grant(checker.Permission())
				if checker.Notify(console) {
					for _, line := range console.Messages() {
						printf(out, "%s\n", chatcolor.Strip(line))
					}
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.PluginName, "plugin", "", "plugin name as used in release file names")
	f.StringVar(&opts.ProjectID, "project", "", "numeric CurseForge project id")
	f.StringVar(&opts.CurrentVersion, "current", "", "version currently installed")
	f.StringVar(&opts.BukkitDevSlug, "slug", "", "BukkitDev project slug (default is the lower-cased plugin name)")
	f.StringVar(&opts.APIBaseURL, "api-url", "", "release API base URL")
	f.BoolVar(&notify, "notify", false, "print the in-game update notice")
	_ = cmd.MarkFlagRequired("plugin")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}
