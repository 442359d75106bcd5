package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"lf-go/internal/app"
	"lf-go/internal/config"
	"lf-go/internal/localfile"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an LFApp. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "ListFiles", "Watch").
func newApp(operation string) (*app.LFApp, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if errors.Is(err, fs.ErrNotExist) && operation == "Resolve" {
		// Ad-hoc listing works without a config file.
		cfg, err = config.NewConfig(defaults["base_dir"]), nil
		cfg.LogDir = ""
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := app.ApplyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if operation == "Resolve" {
		// Configured locations are not needed and must not be provisioned.
		cfg.Locations = nil
	}

	a, err := app.NewLFApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// printFiles writes one path per line, or a table with kind and mtime when
// stdout is a terminal.
func printFiles(w io.Writer, files []*localfile.Path) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		for _, f := range files {
			fmt.Fprintln(w, f.String())
		}
		return
	}

	if len(files) == 0 {
		fmt.Fprintln(w, "No files found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range files {
		kind := "file"
		if f.IsDir() {
			kind = "dir"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f.ModTime().Format("2006-01-02 15:04:05"), kind, f.String())
	}
	tw.Flush()
}

var rootCmd = &cobra.Command{
	Use:          "lf",
	Short:        "Resolve local file data locations",
	SilenceUsage: true,
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Base Dir: %s\n", defaults["base_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Base Dir:  %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:   %s\n", cfg.LogDir)
		fmt.Printf("Log Level: %s\n", cfg.LogLevel)
		if len(cfg.Locations) == 0 {
			fmt.Println("\nNo locations configured.")
			return nil
		}
		fmt.Println("\nLocations:")
		for _, l := range cfg.Locations {
			fmt.Printf("  %-20s %s  pattern=%s\n", l.Name, l.Location, l.Pattern)
		}
		return nil
	},
}

// files command
var filesCmd = &cobra.Command{
	Use:   "files NAME",
	Short: "List the files of a configured location, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListFiles")
		if err != nil {
			return err
		}
		defer a.Close()

		files, err := a.Files(args[0])
		if err != nil {
			return err
		}
		printFiles(cmd.OutOrStdout(), files)
		return nil
	},
}

// ls command
var lsCmd = &cobra.Command{
	Use:   "ls LOCATION",
	Short: "List the files of a path, newest first",
	Long: "List the files of a path, newest first.\n\n" +
		"With --pattern the path must be a directory and is created if missing;\n" +
		"only entries whose whole name matches the regular expression are listed.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := localfile.NoPattern()
		if cmd.Flags().Changed("pattern") {
			expr, _ := cmd.Flags().GetString("pattern")
			pattern = localfile.PatternOf(expr)
		}

		a, err := newApp("Resolve")
		if err != nil {
			return err
		}
		defer a.Close()

		files, err := a.Resolve(args[0], pattern)
		if err != nil {
			return err
		}
		printFiles(cmd.OutOrStdout(), files)
		return nil
	},
}

// watch command
var watchCmd = &cobra.Command{
	Use:   "watch NAME",
	Short: "Print the files of a configured location whenever it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Watch")
		if err != nil {
			return err
		}
		defer a.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		return a.Watch(ctx, args[0], func(files []*localfile.Path, err error) error {
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "listing failed: %v\n", err)
				return nil
			}
			fmt.Fprintf(out, "-- %d file(s)\n", len(files))
			printFiles(out, files)
			return nil
		})
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().StringP("pattern", "p", "", "Regular expression matched against whole entry names")
	rootCmd.AddCommand(watchCmd)
}
