package cmd

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// Build information set by goreleaser.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

const releaseSlug = "trly/deployctl"

// ReleaseDetector reports the newest published release.
type ReleaseDetector func(ctx context.Context) (version string, found bool, newer bool, err error)

// VersionCommand represents the version command.
type VersionCommand struct {
	detect ReleaseDetector
}

// NewVersionCommand creates a new VersionCommand that checks GitHub releases.
func NewVersionCommand() *VersionCommand {
	return &VersionCommand{detect: detectLatestRelease}
}

// GetCobraCommand returns the cobra command for displaying version information.
func (c *VersionCommand) GetCobraCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show version information for deployctl.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "deployctl version %s\n", Version)
			_, _ = fmt.Fprintf(out, "  commit: %s\n", Commit)
			_, _ = fmt.Fprintf(out, "  built: %s\n", Date)
			_, _ = fmt.Fprintf(out, "  go: %s\n", runtime.Version())

			c.checkForUpdates(cmd.Context(), out)
		},
	}
}

// checkForUpdates prints a message if a newer release is available.
func (c *VersionCommand) checkForUpdates(ctx context.Context, out io.Writer) {
	// Skip update check for development builds
	if Version == "dev" {
		_, _ = fmt.Fprintln(out, "\nSkipping update check for development build.")
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	_, _ = fmt.Fprintln(out, "\nChecking for updates...")

	latest, found, newer, err := c.detect(ctx)
	switch {
	case err != nil:
		_, _ = fmt.Fprintf(out, "Failed to check for updates: %v\n", err)
	case !found:
		_, _ = fmt.Fprintln(out, "No release found")
	case !newer:
		_, _ = fmt.Fprintln(out, "You are running the latest version.")
	default:
		_, _ = fmt.Fprintf(out, "Update available! New version: %s\n", latest)
	}
}

func detectLatestRelease(ctx context.Context) (string, bool, bool, error) {
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(releaseSlug))
	if err != nil || !found {
		return "", found, false, err
	}
	return latest.Version(), true, !latest.LessOrEqual(Version), nil
}
