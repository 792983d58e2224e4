// Package main provides the CLI entrypoint for trickywords.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/trickywords/internal/config"
	"github.com/verte-zerg/trickywords/internal/groups"
	"github.com/verte-zerg/trickywords/internal/model"
	"github.com/verte-zerg/trickywords/internal/order"
	"github.com/verte-zerg/trickywords/internal/speech"
	"github.com/verte-zerg/trickywords/internal/stats"
	"github.com/verte-zerg/trickywords/internal/store"
	"github.com/verte-zerg/trickywords/internal/tui"
	"github.com/verte-zerg/trickywords/internal/wordlist"
)

const (
	defaultOrder     = order.ModeShuffle
	defaultSliceSize = 10
	defaultLang      = "en"
	defaultGroupBg   = "#4A4A4A"
	defaultGroupFg   = "#F0F0F0"
)

var (
	practiceGroup     string
	practiceOrder     string
	practiceSliceSize int
	practiceSeed      int64
	practiceSpeak     bool
	practiceSpeakCmd  string
	practiceBell      bool

	addFile  string
	addBg    string
	addFg    string
	addLang  string
	addForce bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "trickywords",
		Short:         "Tricky word flashcards for the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceGroup, "group", "", "start with this group selected")
	rootCmd.Flags().StringVar(&practiceOrder, "order", defaultOrder, "word order: shuffle, slice or identity")
	rootCmd.Flags().IntVar(&practiceSliceSize, "slice-size", defaultSliceSize, "words per pass in slice mode (0 = all)")
	rootCmd.Flags().Int64Var(&practiceSeed, "seed", 0, "shuffle seed (0 = random)")
	rootCmd.Flags().BoolVar(&practiceSpeak, "speak", false, "read skipped words aloud")
	rootCmd.Flags().StringVar(&practiceSpeakCmd, "speak-cmd", "", "text-to-speech command (default: first of say, espeak-ng, espeak, spd-say)")
	rootCmd.Flags().BoolVar(&practiceBell, "bell", false, "ring the terminal bell when a pass completes")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newGroupsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "group", &practiceGroup, fileCfg.Practice.Group)
	applyStringConfig(cmd, "order", &practiceOrder, fileCfg.Practice.Order)
	applyIntConfig(cmd, "slice-size", &practiceSliceSize, fileCfg.Practice.SliceSize)
	applyInt64Config(cmd, "seed", &practiceSeed, fileCfg.Practice.Seed)
	applyBoolConfig(cmd, "speak", &practiceSpeak, fileCfg.Practice.Speak)
	applyStringConfig(cmd, "speak-cmd", &practiceSpeakCmd, fileCfg.Practice.SpeakCmd)
	applyBoolConfig(cmd, "bell", &practiceBell, fileCfg.Practice.Bell)

	cfg := model.Config{
		Group:     practiceGroup,
		Order:     practiceOrder,
		SliceSize: practiceSliceSize,
		Seed:      practiceSeed,
		Speak:     practiceSpeak,
		SpeakCmd:  practiceSpeakCmd,
		Bell:      practiceBell,
	}

	orderer, err := order.Parse(cfg.Order, cfg.SliceSize, cfg.Seed)
	if err != nil {
		return fmt.Errorf("invalid --order: %w", err)
	}

	catalog, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}
	if cfg.Group != "" {
		if _, ok := catalog.Lookup(cfg.Group); !ok {
			return fmt.Errorf("unknown group %q (available: %s)", cfg.Group, strings.Join(catalog.Names(), ", "))
		}
	}

	opts := tui.Options{Group: cfg.Group}
	if cfg.Speak {
		command := cfg.SpeakCmd
		if command == "" {
			command = speech.DefaultCommand()
		}
		if command == "" {
			logErrln("no text-to-speech command found; continuing without speech")
		} else {
			opts.Speaker = speech.NewCommandSpeaker(command)
		}
	}
	if cfg.Bell {
		opts.BellOut = os.Stdout
	}

	model := tui.NewModel(catalog, orderer, opts)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// loadCatalog merges the builtin groups with the custom groups in the store.
// A missing or unreadable store only costs the custom groups.
func loadCatalog(ctx context.Context) (*groups.Catalog, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var custom []model.WordGroup
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open group database, using builtin groups only: %v\n", err)
	} else {
		custom, err = st.ListGroups(ctx)
		if err != nil {
			logErrf("failed to load custom groups: %v\n", err)
		}
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}
	merged, shadowed := groups.Merge(groups.Builtin(), custom)
	for _, name := range shadowed {
		logErrf("ignoring custom group %q: name is taken by a builtin group\n", name)
	}
	catalog, err := groups.NewCatalog(merged...)
	if err != nil {
		return nil, fmt.Errorf("failed to build group catalog: %w", err)
	}
	return catalog, nil
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

func newGroupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List and manage word groups",
		Args:  cobra.NoArgs,
		RunE:  runGroupsListCmd,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List builtin and custom groups",
		Args:  cobra.NoArgs,
		RunE:  runGroupsListCmd,
	})

	addCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Import a word file as a custom group",
		Args:  cobra.ExactArgs(1),
		RunE:  runGroupsAddCmd,
	}
	addCmd.Flags().StringVar(&addFile, "file", "", "word file, one word per line")
	addCmd.Flags().StringVar(&addBg, "bg", defaultGroupBg, "background color")
	addCmd.Flags().StringVar(&addFg, "fg", defaultGroupFg, "foreground color")
	addCmd.Flags().StringVar(&addLang, "lang", defaultLang, "language used to filter words")
	addCmd.Flags().BoolVar(&addForce, "force", false, "replace an existing custom group")
	if err := addCmd.MarkFlagRequired("file"); err != nil {
		panic(err)
	}
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "remove NAME",
		Short: "Delete a custom group",
		Args:  cobra.ExactArgs(1),
		RunE:  runGroupsRemoveCmd,
	})
	return cmd
}

func runGroupsListCmd(cmd *cobra.Command, _ []string) error {
	catalog, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}
	rows := make([]stats.GroupRow, 0, catalog.Len())
	for _, g := range catalog.All() {
		rows = append(rows, stats.GroupRow{Group: g, Builtin: groups.IsBuiltin(g.Name)})
	}
	out := cmd.OutOrStdout()
	useColor := false
	if f, ok := out.(*os.File); ok {
		useColor = term.IsTerminal(int(f.Fd()))
	}
	if err := stats.RenderGroupTable(out, rows, useColor); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runGroupsAddCmd(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	if name == "" {
		return fmt.Errorf("group name must not be empty")
	}
	if groups.IsBuiltin(name) {
		return fmt.Errorf("%q is a builtin group; pick another name", name)
	}

	words, err := wordlist.LoadWords(addFile)
	if err != nil {
		return fmt.Errorf("failed to load word list %s: %w", addFile, err)
	}
	kept, rejected := wordlist.Apply(words, wordlist.FilterForLang(addLang))
	for _, word := range rejected {
		logErrf("Skipping %q (not a %s word)\n", word, addLang)
	}
	if len(kept) == 0 {
		return fmt.Errorf("no usable words in %s", addFile)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if !addForce {
		existing, err := st.ListGroups(ctx)
		if err != nil {
			return fmt.Errorf("failed to list groups: %w", err)
		}
		for _, g := range existing {
			if g.Name == name {
				return fmt.Errorf("group already exists: %s (use --force to replace)", name)
			}
		}
	}

	group := model.WordGroup{
		Name:  name,
		Color: model.Color{Background: addBg, Foreground: addFg},
		Words: kept,
	}
	if err := st.SaveGroup(ctx, group); err != nil {
		return fmt.Errorf("failed to save group: %w", err)
	}
	logErrf("Saved %s with %d words\n", name, len(kept))
	return nil
}

func runGroupsRemoveCmd(cmd *cobra.Command, args []string) error {
	name := args[0]
	if groups.IsBuiltin(name) {
		return fmt.Errorf("%q is a builtin group and cannot be removed", name)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	if err := st.DeleteGroup(ctx, name); err != nil {
		if errors.Is(err, store.ErrGroupNotFound) {
			return fmt.Errorf("no custom group named %q", name)
		}
		return fmt.Errorf("failed to remove group: %w", err)
	}
	logErrf("Removed %s\n", name)
	return nil
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

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
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
	return fmt.Sprintf(`# trickywords configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# group = "Blue"          # Start with this group selected
# order = %q         # Word order: shuffle, slice or identity
# slice-size = %d         # Words per pass in slice mode (0 = all)
# seed = 0                # Shuffle seed (0 = random)
# speak = false           # Read skipped words aloud
# speak-cmd = "espeak"    # Text-to-speech command
# bell = false            # Ring the terminal bell when a pass completes
`,
		defaultOrder,
		defaultSliceSize,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
