package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/autobrr/go-dvdauthor/internal/cli"
	"github.com/autobrr/go-dvdauthor/internal/dvdauthor"
)

var version = "dev"

const helpBanner = "" +
	"                                                                    \n" +
	"██████╗ ██╗   ██╗██████╗  █████╗ ██╗   ██╗████████╗██╗  ██╗ ██████╗ ██████╗ \n" +
	"██╔══██╗██║   ██║██╔══██╗██╔══██╗██║   ██║╚══██╔══╝██║  ██║██╔═══██╗██╔══██╗\n" +
	"██║  ██║██║   ██║██║  ██║███████║██║   ██║   ██║   ███████║██║   ██║██████╔╝\n" +
	"██║  ██║╚██╗ ██╔╝██║  ██║██╔══██║██║   ██║   ██║   ██╔══██║██║   ██║██╔══██╗\n" +
	"██████╔╝ ╚████╔╝ ██████╔╝██║  ██║╚██████╔╝   ██║   ██║  ██║╚██████╔╝██║  ██║\n" +
	"╚═════╝   ╚═══╝  ╚═════╝ ╚═╝  ╚═╝ ╚═════╝    ╚═╝   ╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═╝"

const helpTemplate = helpBanner + `

{{with or .Long .Short}}{{. | trimTrailingWhitespaces}}

{{end}}{{if or .Runnable .HasSubCommands}}{{.UsageString}}{{end}}`

var opts cli.Options

var rootCmd = &cobra.Command{
	Use:           "dvdauthor <command> [options]",
	Short:         "DVD-Video authoring core.",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			os.Exit(cli.Usage(cmd.Name(), cmd.OutOrStdout()))
		}
		cli.Help(cmd.Name(), cmd.OutOrStdout())
	},
}

var attrsReq cli.AttrsRequest

var attrsCmd = &cobra.Command{
	Use:   "attrs",
	Short: "Negotiate declared stream attributes",
	Long: "Apply video, audio and subpicture declaration tokens to a vob group, run the\n" +
		"attribute inference pass and print the resolved attributes.",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		os.Exit(cli.Attrs(opts, attrsReq, cmd.OutOrStdout(), cmd.ErrOrStderr()))
	},
}

var timecodeCmd = &cobra.Command{
	Use:   "timecode <seconds|0xTIMECODE> [...]",
	Short: "Encode or decode DVD BCD timecodes",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(cli.Timecode(opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr()))
	},
}

var subpicMaskCmd = &cobra.Command{
	Use:   "subpic-mask <4:3|16:9> [noletterbox|nopanscan|crop]",
	Short: "List the subpicture modes legal for an aspect ratio",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		ws := ""
		if len(args) > 1 {
			ws = args[1]
		}
		os.Exit(cli.SubpicMask(opts, args[0], ws, cmd.OutOrStdout(), cmd.ErrOrStderr()))
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update dvdauthor",
	Long:  "Update dvdauthor to latest version (release builds only).",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSelfUpdate(cmd.Context())
	},
	DisableFlagsInUseLine: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print go-dvdauthor version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cli.Version(cmd.OutOrStdout())
		return nil
	},
	DisableFlagsInUseLine: true,
}

func init() {
	resolvedVersion := resolveVersion()
	cli.SetVersion(resolvedVersion)
	dvdauthor.SetAppVersion(resolvedVersion)
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	rootCmd.SetHelpTemplate(helpTemplate)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.ConfigPath, "config", "", "YAML run configuration")
	pf.BoolVar(&opts.Jumppad, "jumppad", false, "enable the creation of jumppads")
	pf.BoolVar(&opts.AllGPRM, "allgprm", false, "free all 16 general purpose registers")
	pf.StringVar(&opts.LogLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&opts.FrameRate, "frame-rate", "", "frame rate assumed when none was detected (ntsc or pal)")
	rootCmd.MarkFlagsMutuallyExclusive("jumppad", "allgprm")

	af := attrsCmd.Flags()
	af.BoolVar(&attrsReq.Menu, "menu", false, "negotiate as a title set menu")
	af.StringSliceVar(&attrsReq.Video, "video", nil, "video tokens, e.g. mpeg2,pal,16:9,720x576")
	af.StringArrayVar(&attrsReq.Audio, "audio", nil, "audio tokens of one track, repeat per track, e.g. ac3,en")
	af.StringArrayVar(&attrsReq.Subpicture, "subpicture", nil, "subpicture tokens of one track, repeat per track")

	rootCmd.AddCommand(attrsCmd)
	rootCmd.AddCommand(timecodeCmd)
	rootCmd.AddCommand(subpicMaskCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func runSelfUpdate(ctx context.Context) error {
	if version == "" || version == "dev" {
		return errors.New("self-update is only available in release builds")
	}

	if _, err := semver.ParseTolerant(version); err != nil {
		return fmt.Errorf("could not parse version: %w", err)
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug("autobrr/go-dvdauthor"))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s/%s could not be found from github repository", "autobrr/go-dvdauthor", version)
	}

	if latest.LessOrEqual(version) {
		fmt.Printf("Current binary is the latest version: %s\n", dvdauthor.FormatVersion(version))
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Printf("Successfully updated to version: %s\n", dvdauthor.FormatVersion(latest.Version()))
	return nil
}

func resolveVersion() string {
	if version != "" && version != "dev" {
		return normalizeVersion(version)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return normalizeVersion(info.Main.Version)
		}
	}
	return "dev"
}

func normalizeVersion(value string) string {
	return strings.TrimPrefix(value, "v")
}
