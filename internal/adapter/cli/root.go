// Package cli wires the unidiff command tree. All collaborators are
// injected so commands stay testable without touching the filesystem,
// a repository, or a real store.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tovrstra/python-unidiff/internal/adapter/input"
	"github.com/tovrstra/python-unidiff/internal/adapter/output/markdown"
	"github.com/tovrstra/python-unidiff/internal/adapter/output/text"
	"github.com/tovrstra/python-unidiff/internal/store"
	"github.com/tovrstra/python-unidiff/internal/unidiff"
)

// ErrVersionRequested indicates the user requested the CLI version and no further work should be done.
var ErrVersionRequested = errors.New("version requested")

// GitDiffer defines the dependency required to read diffs from a repository.
type GitDiffer interface {
	DiffText(ctx context.Context, baseRef, targetRef string) (string, error)
}

// InputOpener opens a named diff file decoded from the given charset.
type InputOpener func(path, charset string) (io.ReadCloser, error)

// Arguments encapsulates IO writers injected from the host process.
type Arguments struct {
	OutWriter io.Writer
	ErrWriter io.Writer
}

// Dependencies captures the collaborators for the CLI.
type Dependencies struct {
	Git             GitDiffer
	OpenInput       InputOpener
	History         store.Store // nil disables the history commands
	Args            Arguments
	DefaultEncoding string
	DefaultFormat   string
	DefaultBaseRef  string
	Colored         bool // render counts with ANSI colors
	Version         string
}

// NewRootCommand constructs the root Cobra command.
func NewRootCommand(deps Dependencies) *cobra.Command {
	versionString := deps.Version
	if versionString == "" {
		versionString = "v0.0.0"
	}
	if deps.OpenInput == nil {
		deps.OpenInput = input.Open
	}

	root := &cobra.Command{
		Use:   "unidiff",
		Short: "Parse and inspect unified diff text",
	}
	root.SilenceUsage = true
	root.SilenceErrors = true

	outWriter := deps.Args.OutWriter
	if outWriter == nil {
		outWriter = os.Stdout
	}
	errWriter := deps.Args.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	root.SetOut(outWriter)
	root.SetErr(errWriter)

	root.AddCommand(statCommand(deps))
	root.AddCommand(filesCommand(deps))
	root.AddCommand(catCommand(deps))
	root.AddCommand(historyCommand(deps))

	var showVersion bool
	root.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version and exit")
	versionHandler := func(cmd *cobra.Command, args []string) error {
		if showVersion {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionString)
			return ErrVersionRequested
		}
		return nil
	}
	root.PersistentPreRunE = versionHandler
	root.PreRunE = versionHandler
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if err := versionHandler(cmd, args); err != nil {
			return err
		}
		return cmd.Help()
	}

	return root
}

// diffFlags are the input-selection flags shared by every parsing command.
type diffFlags struct {
	encoding  string
	baseRef   string
	targetRef string
}

func registerDiffFlags(cmd *cobra.Command, deps Dependencies, flags *diffFlags) {
	cmd.Flags().StringVar(&flags.encoding, "encoding", deps.DefaultEncoding, "IANA charset name used to decode the input (empty for UTF-8)")
	cmd.Flags().StringVar(&flags.baseRef, "base", deps.DefaultBaseRef, "Base reference when reading the diff from a repository")
	cmd.Flags().StringVar(&flags.targetRef, "target", "", "Target reference; set to read the diff from the repository instead of a file")
}

// loadPatchSet resolves the diff input in priority order: a git revision
// range when --target is set, then a file argument, then stdin. It returns
// the parsed set and a label naming where the diff came from.
func loadPatchSet(cmd *cobra.Command, deps Dependencies, args []string, flags diffFlags) (*unidiff.PatchSet, string, error) {
	if flags.targetRef != "" {
		if deps.Git == nil {
			return nil, "", fmt.Errorf("no repository configured; cannot diff %s..%s", flags.baseRef, flags.targetRef)
		}
		diffText, err := deps.Git.DiffText(cmd.Context(), flags.baseRef, flags.targetRef)
		if err != nil {
			return nil, "", fmt.Errorf("read diff from repository: %w", err)
		}
		set, err := unidiff.ParseString(diffText)
		if err != nil {
			return nil, "", err
		}
		return set, fmt.Sprintf("git:%s..%s", flags.baseRef, flags.targetRef), nil
	}

	if len(args) > 0 {
		rc, err := deps.OpenInput(args[0], flags.encoding)
		if err != nil {
			return nil, "", err
		}
		defer rc.Close()
		set, err := unidiff.Parse(rc)
		if err != nil {
			return nil, "", err
		}
		return set, args[0], nil
	}

	decoded, err := input.Reader(cmd.InOrStdin(), flags.encoding)
	if err != nil {
		return nil, "", err
	}
	set, err := unidiff.Parse(decoded)
	if err != nil {
		return nil, "", err
	}
	return set, "stdin", nil
}

func statCommand(deps Dependencies) *cobra.Command {
	var flags diffFlags
	var format string
	var save bool

	cmd := &cobra.Command{
		Use:   "stat [file]",
		Short: "Summarize a diff: per-file line counts and classification",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, source, err := loadPatchSet(cmd, deps, args, flags)
			if err != nil {
				return err
			}

			switch format {
			case "text":
				if err := text.NewWriter(cmd.OutOrStdout(), deps.Colored).Write(set); err != nil {
					return err
				}
			case "markdown":
				_, _ = fmt.Fprint(cmd.OutOrStdout(), markdown.NewWriter().Render(set, source))
			default:
				return fmt.Errorf("unknown format %q (expected text or markdown)", format)
			}

			if save {
				if deps.History == nil {
					return fmt.Errorf("history store is disabled; cannot save run")
				}
				if err := saveRun(cmd.Context(), deps.History, set, source); err != nil {
					return fmt.Errorf("save run: %w", err)
				}
			}
			return nil
		},
	}

	registerDiffFlags(cmd, deps, &flags)
	defaultFormat := deps.DefaultFormat
	if defaultFormat == "" {
		defaultFormat = "text"
	}
	cmd.Flags().StringVar(&format, "format", defaultFormat, "Output format: text or markdown")
	cmd.Flags().BoolVar(&save, "save", false, "Record this parse in the history store")

	return cmd
}

func filesCommand(deps Dependencies) *cobra.Command {
	var flags diffFlags
	var addedOnly, removedOnly, modifiedOnly bool

	cmd := &cobra.Command{
		Use:   "files [file]",
		Short: "List files changed by a diff",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, _, err := loadPatchSet(cmd, deps, args, flags)
			if err != nil {
				return err
			}

			// No filter flags means everything.
			all := !addedOnly && !removedOnly && !modifiedOnly
			var files []*unidiff.PatchedFile
			if all || addedOnly {
				files = append(files, set.AddedFiles()...)
			}
			if all || removedOnly {
				files = append(files, set.RemovedFiles()...)
			}
			if all || modifiedOnly {
				files = append(files, set.ModifiedFiles()...)
			}

			for _, file := range files {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), file.Path())
			}
			return nil
		},
	}

	registerDiffFlags(cmd, deps, &flags)
	cmd.Flags().BoolVar(&addedOnly, "added", false, "List only added files")
	cmd.Flags().BoolVar(&removedOnly, "removed", false, "List only removed files")
	cmd.Flags().BoolVar(&modifiedOnly, "modified", false, "List only modified files")

	return cmd
}

func catCommand(deps Dependencies) *cobra.Command {
	var flags diffFlags

	cmd := &cobra.Command{
		Use:   "cat [file]",
		Short: "Parse a diff and print its normalized form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, _, err := loadPatchSet(cmd, deps, args, flags)
			if err != nil {
				return err
			}
			if set.Len() == 0 {
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), set.String())
			return nil
		},
	}

	registerDiffFlags(cmd, deps, &flags)
	return cmd
}

func historyCommand(deps Dependencies) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously saved parse runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if deps.History == nil {
				return fmt.Errorf("history store is disabled")
			}

			runs, err := deps.History.ListRuns(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}

			for _, run := range runs {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s  %d files  +%d -%d\n",
					run.RunID,
					run.Timestamp.Format(time.RFC3339),
					run.Source,
					run.Files,
					run.Added,
					run.Removed,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	return cmd
}

// saveRun records a parse summary in the history store.
func saveRun(ctx context.Context, history store.Store, set *unidiff.PatchSet, source string) error {
	now := time.Now().UTC()
	run := store.Run{
		RunID:     fmt.Sprintf("run-%s", now.Format("20060102T150405.000000000Z")),
		Timestamp: now,
		Source:    source,
		Files:     set.Len(),
	}

	files := make([]store.FileStat, 0, set.Len())
	for _, file := range set.Files() {
		stat := store.FileStat{
			Path:    file.Path(),
			Status:  fileStatus(file),
			Hunks:   file.Len(),
			Added:   file.Added(),
			Removed: file.Removed(),
		}
		run.Added += stat.Added
		run.Removed += stat.Removed
		files = append(files, stat)
	}

	return history.SaveRun(ctx, run, files)
}

func fileStatus(file *unidiff.PatchedFile) string {
	switch {
	case file.IsAddedFile():
		return store.FileStatusAdded
	case file.IsRemovedFile():
		return store.FileStatusRemoved
	default:
		return store.FileStatusModified
	}
}
