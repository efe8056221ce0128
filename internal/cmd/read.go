package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/harrison/manifold/internal/filespec"
	"github.com/harrison/manifold/internal/logger"
	"github.com/harrison/manifold/internal/project"
	"github.com/harrison/manifold/internal/reader"
	"github.com/harrison/manifold/internal/snapshot"
)

// readOptions holds the flags for the read command.
type readOptions struct {
	statePath string
	logLevel  string
	noSave    bool
}

// NewReadCommand creates the read command, which runs the full read phase
// over one or more project directories and reports per-parser file counts.
func NewReadCommand() *cobra.Command {
	opts := &readOptions{}

	cmd := &cobra.Command{
		Use:   "read [project-dir ...]",
		Short: "Discover and read the source files of the given projects",
		Long: `Read runs the discovery pipeline over each project directory: it walks
the declared source roots per parse type, hashes file contents, applies
the schema cache against the saved state, and writes the resulting
registry back to the state database.

With no arguments the current directory is read.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			return runRead(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.statePath, "state", ".manifold/state.db", "path to the snapshot state database")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.noSave, "no-save", false, "do not write a new snapshot after reading")

	return cmd
}

func runRead(cmd *cobra.Command, projectDirs []string, opts *readOptions) error {
	ctx := context.Background()
	log := logger.New(os.Stdout, opts.logLevel)

	projects := make([]*project.Project, 0, len(projectDirs))
	for _, dir := range projectDirs {
		p, err := project.Load(dir)
		if err != nil {
			return err
		}
		projects = append(projects, p)
	}

	store, err := snapshot.Open(opts.statePath)
	if err != nil {
		return err
	}
	defer store.Close()

	savedFiles, err := store.Load(ctx)
	if err != nil {
		return err
	}
	if runID, createdAt, ok, err := store.LastRun(ctx); err != nil {
		return err
	} else if ok {
		log.Debugf("loaded snapshot from run %s (%s, %d files)",
			runID, createdAt.Format("2006-01-02 15:04:05"), len(savedFiles))
	}

	fr := reader.New(projects, savedFiles, log)
	if err := fr.ReadFiles(); err != nil {
		return err
	}

	reportCatalog(cmd, fr.ParserFiles)

	if !opts.noSave {
		if err := store.Save(ctx, fr.Files); err != nil {
			return err
		}
		log.Debugf("saved snapshot with %d files to %s", len(fr.Files), opts.statePath)
	}

	return nil
}

// reportCatalog prints per-project, per-parser file counts in a stable
// order.
func reportCatalog(cmd *cobra.Command, catalog filespec.Catalog) {
	projectNames := make([]string, 0, len(catalog))
	for name := range catalog {
		projectNames = append(projectNames, name)
	}
	sort.Strings(projectNames)

	for _, name := range projectNames {
		fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", name)
		parserFiles := catalog[name]

		parsers := make([]string, 0, len(parserFiles))
		for parser := range parserFiles {
			parsers = append(parsers, parser)
		}
		sort.Strings(parsers)

		for _, parser := range parsers {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-24s %d\n", parser, len(parserFiles[parser]))
		}
	}
}
