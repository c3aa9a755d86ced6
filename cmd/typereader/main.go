// Package main provides the CLI entrypoint for typereader.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/typereader/internal/chunker"
	"github.com/verte-zerg/typereader/internal/config"
	"github.com/verte-zerg/typereader/internal/document"
	"github.com/verte-zerg/typereader/internal/logging"
	"github.com/verte-zerg/typereader/internal/matcher"
	"github.com/verte-zerg/typereader/internal/model"
	"github.com/verte-zerg/typereader/internal/stats"
	"github.com/verte-zerg/typereader/internal/store"
	"github.com/verte-zerg/typereader/internal/theme"
	"github.com/verte-zerg/typereader/internal/tui"
	"github.com/verte-zerg/typereader/internal/typing"
)

const previewWidth = 40

var (
	practiceMaxLength int
	practiceTheme     string
	practiceASCIIOnly bool
	logDebug          bool
	logFile           string

	chunksMaxLength int
	chunksASCIIOnly bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typereader [file]",
		Short:         "Practice typing by retyping a book",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().IntVar(&practiceMaxLength, "max-length", chunker.DefaultMaxLength, "maximum chunk length in characters")
	rootCmd.Flags().StringVar(&practiceTheme, "theme", theme.Default().Key, "color theme")
	rootCmd.Flags().BoolVar(&practiceASCIIOnly, "ascii-only", false, "drop non-ASCII characters from the book")
	rootCmd.Flags().BoolVar(&logDebug, "debug", false, "write debug logs")
	rootCmd.Flags().StringVar(&logFile, "log-file", config.DefaultLogPath(), "log file path (empty disables logging)")

	rootCmd.AddCommand(newChunksCmd())
	rootCmd.AddCommand(newThemesCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, fileCfg)

	cfg := model.Config{
		MaxLength: practiceMaxLength,
		Theme:     practiceTheme,
		ASCIIOnly: practiceASCIIOnly,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	th, _ := theme.Get(cfg.Theme)

	logger, err := logging.New(logging.Options{Path: logFile, Debug: logDebug})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var book *typing.Book
	if len(args) == 1 {
		book, err = loadBook(args[0], cfg)
		if err != nil {
			logger.Error("failed to load book", zap.String("path", args[0]), zap.Error(err))
			return err
		}
	}

	st, err := store.Open()
	if err != nil {
		return fmt.Errorf("failed to open stats store: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn("failed to close stats store", zap.Error(cerr))
		}
	}()

	startDir, err := os.Getwd()
	if err != nil {
		startDir = "."
	}
	m := tui.NewModel(tui.Options{
		Config:   cfg,
		Theme:    th,
		Store:    st,
		Logger:   logger,
		Book:     book,
		StartDir: startDir,
	})
	logger.Info("starting practice",
		zap.Int("max_length", cfg.MaxLength),
		zap.String("theme", th.Key),
		zap.Bool("ascii_only", cfg.ASCIIOnly))
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	report, err := stats.BuildReport(context.Background(), st)
	if err != nil {
		return err
	}
	return report.Render(cmd.OutOrStdout(), terminalWidth())
}

func loadBook(path string, cfg model.Config) (*typing.Book, error) {
	doc, err := document.Load(path, document.Options{ASCIIOnly: cfg.ASCIIOnly})
	if err != nil {
		return nil, err
	}
	return typing.NewBook(doc.Name, doc.Content, cfg.MaxLength)
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

func newChunksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chunks FILE",
		Short: "Show how a book is split into chunks",
		Args:  cobra.ExactArgs(1),
		RunE:  runChunksCmd,
	}
	cmd.Flags().IntVar(&chunksMaxLength, "max-length", chunker.DefaultMaxLength, "maximum chunk length in characters")
	cmd.Flags().BoolVar(&chunksASCIIOnly, "ascii-only", false, "drop non-ASCII characters from the book")
	return cmd
}

func runChunksCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "max-length", &chunksMaxLength, fileCfg.Practice.MaxLength)
	applyBoolConfig(cmd, "ascii-only", &chunksASCIIOnly, fileCfg.Practice.ASCIIOnly)

	cfg := model.Config{MaxLength: chunksMaxLength, ASCIIOnly: chunksASCIIOnly}
	if cfg.MaxLength <= 0 {
		return fmt.Errorf("--max-length must be > 0")
	}
	book, err := loadBook(args[0], cfg)
	if err != nil {
		return err
	}
	return writeChunkListing(cmd.OutOrStdout(), book.Chunks())
}

func writeChunkListing(w io.Writer, chunks []string) error {
	for i, chunk := range chunks {
		words := len(matcher.TokenizeWords(chunk))
		if _, err := fmt.Fprintf(w, "%4d  %4d chars  %3d words  %s\n", i+1, chunker.Len(chunk), words, preview(chunk)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func preview(chunk string) string {
	flat := strings.Join(strings.Fields(chunk), " ")
	graphemes := matcher.Graphemes(flat)
	if len(graphemes) <= previewWidth {
		return flat
	}
	return strings.Join(graphemes[:previewWidth-1], "") + "…"
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List color themes",
		Args:  cobra.NoArgs,
		RunE:  runThemesCmd,
	}
}

func runThemesCmd(cmd *cobra.Command, _ []string) error {
	for _, key := range theme.Keys() {
		th, _ := theme.Get(key)
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", key, th.Name); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyConfig(cmd *cobra.Command, fileCfg config.FileConfig) {
	applyIntConfig(cmd, "max-length", &practiceMaxLength, fileCfg.Practice.MaxLength)
	applyStringConfig(cmd, "theme", &practiceTheme, fileCfg.Practice.Theme)
	applyBoolConfig(cmd, "ascii-only", &practiceASCIIOnly, fileCfg.Practice.ASCIIOnly)
	applyBoolConfig(cmd, "debug", &logDebug, fileCfg.Log.Debug)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.Path)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typereader configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# max-length = %d         # Maximum chunk length in characters
# theme = %q         # One of: %s
# ascii-only = false      # Drop non-ASCII characters from the book

[log]
# debug = false           # Write debug logs
# path = %q
`,
		chunker.DefaultMaxLength,
		theme.Default().Key,
		strings.Join(theme.Keys(), ", "),
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.MaxLength <= 0 {
		return fmt.Errorf("--max-length must be > 0")
	}
	if _, ok := theme.Get(cfg.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", cfg.Theme, strings.Join(theme.Keys(), ", "))
	}
	return nil
}
