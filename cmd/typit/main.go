// Package main provides the CLI entrypoint for typit.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/typit/internal/config"
	"github.com/verte-zerg/typit/internal/console"
	"github.com/verte-zerg/typit/internal/corpus"
	"github.com/verte-zerg/typit/internal/generator"
	"github.com/verte-zerg/typit/internal/historyui"
	"github.com/verte-zerg/typit/internal/menu"
	"github.com/verte-zerg/typit/internal/model"
	"github.com/verte-zerg/typit/internal/score"
	"github.com/verte-zerg/typit/internal/session"
	"github.com/verte-zerg/typit/internal/stats"
	"github.com/verte-zerg/typit/internal/store"
)

const defaultLevel = "easy"

var (
	corpusDir     string
	scorecardPath string
	dbPath        string

	playLevel string
	playName  string

	scoresPlayer string
	scoresLevel  string
	scoresSince  string
	scoresLast   int
	scoresFormat string

	corpusForce bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typit",
		Short:         "Terminal typing practice and typing-speed game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runMenuCmd,
	}

	rootCmd.PersistentFlags().StringVar(&corpusDir, "corpus-dir", config.DefaultCorpusDir(), "directory with words.txt, easy.txt, medium.txt and hard.txt")
	rootCmd.PersistentFlags().StringVar(&scorecardPath, "scorecard", config.DefaultScorecardPath(), "append-only scorecard file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.DefaultDBPath(), "score history database")

	rootCmd.AddCommand(newPracticeCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newCorpusCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// app bundles the collaborators shared by interactive commands.
type app struct {
	console *console.Console
	board   *score.Board
	runner  *session.Runner
	store   *store.Store
	cfg     model.Config
}

func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	sinks := []score.Sink{score.FileCard{Path: cfg.ScorecardPath}}
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		logErrf("score history disabled: failed to open db: %v\n", err)
	} else {
		sinks = append(sinks, st)
	}

	con := console.New(os.Stdin, os.Stdout)
	board := score.NewBoard(sinks...)
	runner := session.NewRunner(corpus.Dir{Root: cfg.CorpusDir}, con, session.SystemClock{}, generator.New(), board)
	return &app{console: con, board: board, runner: runner, store: st, cfg: cfg}, nil
}

func (a *app) Close() {
	if a.store == nil {
		return
	}
	if cerr := a.store.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func runMenuCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	return menu.New(a.console, a.runner, a.board).Run(context.Background())
}

func newPracticeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "practice",
		Short: "Type one random paragraph and get accuracy and WPM",
		Args:  cobra.NoArgs,
		RunE:  runPracticeCmd,
	}
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	_, err = a.runner.Practice()
	return err
}

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one round of the typing game",
		Args:  cobra.NoArgs,
		RunE:  runPlayCmd,
	}
	cmd.Flags().StringVar(&playLevel, "level", defaultLevel, "difficulty: easy, medium or hard")
	cmd.Flags().StringVar(&playName, "name", "", "player name (prompted when empty)")
	return cmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()
	name := playName
	if !cmd.Flags().Changed("name") {
		name = a.cfg.Player
	}
	if name == "" {
		_, err = a.runner.Play(ctx, playLevel)
	} else {
		_, err = a.runner.PlayAs(ctx, playLevel, name)
	}
	return err
}

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show persisted score history",
		Args:  cobra.NoArgs,
		RunE:  runScoresCmd,
	}
	cmd.Flags().StringVar(&scoresPlayer, "player", "", "player filter")
	cmd.Flags().StringVar(&scoresLevel, "level", "", "difficulty filter")
	cmd.Flags().StringVar(&scoresSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&scoresLast, "last", 0, "limit to last N games")
	cmd.Flags().StringVar(&scoresFormat, "format", "auto", "output: auto, tui, plain or yaml")
	return cmd
}

func runScoresCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	filter := model.HistoryFilter{Player: scoresPlayer, Last: scoresLast}
	if scoresLevel != "" {
		level, err := model.ParseDifficulty(scoresLevel)
		if err != nil {
			return err
		}
		filter.Difficulty = level
	}
	if scoresSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", scoresSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		filter.Since = &parsed
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	format := scoresFormat
	if format == "auto" {
		format = "plain"
		if console.New(os.Stdin, os.Stdout).IsTerminal() {
			format = "tui"
		}
	}
	out := cmd.OutOrStdout()
	switch format {
	case "tui":
		program := tea.NewProgram(historyui.NewModel(st, filter), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run history TUI: %w", err)
		}
		return nil
	case "plain", "yaml":
		report, err := stats.BuildReport(context.Background(), st, filter)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		if format == "yaml" {
			return stats.ExportYAML(out, report.Records)
		}
		return stats.RenderHistory(out, report.Records)
	default:
		return fmt.Errorf("unknown --format %q (expected auto, tui, plain or yaml)", scoresFormat)
	}
}

func newCorpusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Install the bundled practice paragraphs and word lists",
		Args:  cobra.NoArgs,
		RunE:  runCorpusCmd,
	}
	cmd.Flags().BoolVar(&corpusForce, "force", false, "overwrite existing files")
	return cmd
}

func runCorpusCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	written, err := corpus.Install(cfg.CorpusDir, corpusForce)
	for _, path := range written {
		logErrf("Wrote %s\n", path)
	}
	if err != nil {
		return err
	}
	if len(written) == 0 {
		logErrf("Corpora already present in %s (use --force to overwrite)\n", cfg.CorpusDir)
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

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// resolveConfig layers defaults, the config file, TYPIT_* env vars and
// explicitly set flags, in increasing priority.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "corpus-dir", &corpusDir, fileCfg.Paths.CorpusDir)
	applyStringConfig(cmd, "scorecard", &scorecardPath, fileCfg.Paths.Scorecard)
	applyStringConfig(cmd, "db", &dbPath, fileCfg.Paths.DB)

	cfg := model.Config{
		CorpusDir:     corpusDir,
		ScorecardPath: scorecardPath,
		DBPath:        dbPath,
	}
	if fileCfg.Game.Player != nil {
		cfg.Player = *fileCfg.Game.Player
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
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

func validateConfig(cfg model.Config) error {
	if cfg.CorpusDir == "" {
		return fmt.Errorf("--corpus-dir must not be empty")
	}
	if cfg.ScorecardPath == "" {
		return fmt.Errorf("--scorecard must not be empty")
	}
	if cfg.DBPath == "" {
		return fmt.Errorf("--db must not be empty")
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typit configuration
# Uncomment a value to enable it. TYPIT_* environment variables override
# config values and CLI flags override both.

[paths]
# corpus-dir = %q   # words.txt, easy.txt, medium.txt, hard.txt (TYPIT_CORPUS_DIR)
# scorecard = %q    # Append-only scorecard (TYPIT_SCORECARD)
# db = %q           # Score history database (TYPIT_DB)

[game]
# player = ""       # Default player name; prompted when unset (TYPIT_PLAYER)
`,
		config.DefaultCorpusDir(),
		config.DefaultScorecardPath(),
		config.DefaultDBPath(),
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
