package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Akashdeep-Patra/listkit/internal/app"
	"github.com/Akashdeep-Patra/listkit/internal/collection"
	"github.com/Akashdeep-Patra/listkit/internal/common"
	"github.com/Akashdeep-Patra/listkit/internal/config"
	"github.com/Akashdeep-Patra/listkit/internal/logging"
	"github.com/Akashdeep-Patra/listkit/internal/ui"
	"github.com/Akashdeep-Patra/listkit/internal/ui/components"
	"github.com/Akashdeep-Patra/listkit/internal/ui/views"
	"github.com/Akashdeep-Patra/listkit/internal/watcher"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	// A TUI spends most of its time waiting on terminal input and the
	// file watcher. Two OS threads cover rendering and message dispatch.
	// An explicit GOMAXPROCS wins.
	if os.Getenv("GOMAXPROCS") == "" {
		runtime.GOMAXPROCS(min(2, runtime.NumCPU()))
	}

	// Collections are small; keep the heap target low.
	debug.SetMemoryLimit(50 * 1024 * 1024) // 50 MiB
}

func main() {
	rootCmd := buildRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "listkit:", err)
		os.Exit(1)
	}
}

// flagKeys binds root flags to config keys so flags override file and env.
var flagKeys = map[string]string{
	"file":        "file",
	"strategy":    "list.selection_strategy",
	"drag":        "list.allow_drag_drop",
	"orientation": "list.orientation",
	"theme":       "theme",
	"log-file":    "log.file",
	"log-level":   "log.level",
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "listkit [FILE]",
		Short: "An interactive list playground for the terminal",
		Long: `listkit shows a collection as a selectable, virtualized list with
drag-and-drop reordering, a horizontal strip, a dropdown and a combobox.

The collection comes from a YAML, TOML, JSON or plain-text file, or from a
built-in sample when no file is given. Reorders can be saved back with ctrl+s.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runApp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"listkit %s\n  commit:  %s\n  built:   %s\n  go:      %s\n  os/arch: %s/%s\n",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	))

	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/listkit/config.yaml)")

	f := rootCmd.Flags()
	f.StringP("file", "f", "", "Collection file (.yaml, .toml, .json or .txt)")
	f.StringP("strategy", "s", "", "Selection strategy: default, deselectable, multiple or extended")
	f.StringP("drag", "d", "", "Drag and drop: off, natural-movement or drop-indicator")
	f.StringP("orientation", "o", "", "List orientation: vertical or horizontal")
	f.String("theme", "", "Colour theme: dark or light")
	f.String("log-file", "", "Write logs to this file")
	f.String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(buildShowCmd())
	rootCmd.AddCommand(buildValidateCmd())
	rootCmd.AddCommand(buildVersionCmd())
	rootCmd.AddCommand(buildCompletionCmd())

	return rootCmd
}

// loadConfig reads the config file and env, with changed flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	v := config.New(path)
	if err := bindFlags(cmd, v); err != nil {
		return nil, err
	}
	cfg, err := config.LoadFrom(v)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	for name, key := range flagKeys {
		fl := cmd.Flags().Lookup(name)
		if fl == nil || !fl.Changed {
			continue
		}
		if err := v.BindPFlag(key, fl); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// openSource resolves the collection: the positional argument, the
// configured file, or the built-in sample. The source is nil for the
// sample.
func openSource(cfg *config.Config, args []string) (*collection.CachedSource, common.Items, string, error) {
	path := cfg.File
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		doc := collection.SampleDocument()
		items, err := collection.ToCollection(doc)
		return nil, items, doc.Title, err
	}

	fs, err := collection.NewFileSource(path)
	if err != nil {
		return nil, nil, "", err
	}
	src := collection.NewCachedSource(fs, cfg.CacheTTL)
	doc, err := src.Load()
	if err != nil {
		return nil, nil, "", err
	}
	items, err := collection.ToCollection(doc)
	if err != nil {
		return nil, nil, "", err
	}
	return src, items, doc.Title, nil
}

func buildViews(items common.Items, opts views.Options) (map[common.TabID]common.View, error) {
	list, err := views.NewListView(items, opts)
	if err != nil {
		return nil, err
	}
	strip, err := views.NewStripView(items, opts)
	if err != nil {
		return nil, err
	}
	dropdown, err := views.NewDropdownView(items, opts)
	if err != nil {
		return nil, err
	}
	combobox, err := views.NewComboboxView(items, opts)
	if err != nil {
		return nil, err
	}
	return map[common.TabID]common.View{
		common.TabList:     list,
		common.TabStrip:    strip,
		common.TabDropdown: dropdown,
		common.TabCombobox: combobox,
	}, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Logging())
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	theme, err := ui.ThemeByName(cfg.Theme)
	if err != nil {
		return err
	}
	styles := ui.NewStyles(theme)

	src, items, title, err := openSource(cfg, args)
	if err != nil {
		return fmt.Errorf("opening collection: %w", err)
	}

	kb := config.DefaultKeyBindings()
	listKeys := components.NewListKeyMap(kb)
	viewMap, err := buildViews(items, views.Options{
		Styles: styles,
		List:   cfg.List,
		Keys:   listKeys,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	opts := app.Options{
		Config:   cfg,
		Items:    items,
		Title:    title,
		Views:    viewMap,
		Styles:   styles,
		Keys:     app.NewKeyMap(kb),
		ListKeys: listKeys,
		Logger:   logger,
	}
	if src != nil {
		opts.Source = src
	}
	model := app.New(opts)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Reload when the file changes on disk, including our own saves.
	if src != nil && cfg.Watch {
		watchCh, stop, watchErr := watcher.Watch(src.Path(), watcher.DefaultDebounce)
		if watchErr != nil {
			logger.Warn("watch disabled", "path", src.Path(), "err", watchErr)
		} else {
			defer stop()
			go func() {
				for range watchCh {
					p.Send(common.ReloadMsg{})
				}
			}()
		}
	}

	_, err = p.Run()
	return err
}

// buildVersionCmd creates the `listkit version` subcommand supporting --json.
func buildVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(_ *cobra.Command, _ []string) error {
			info := map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
				"go":      runtime.Version(),
				"os":      runtime.GOOS,
				"arch":    runtime.GOARCH,
			}
			if jsonOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Printf("listkit %s\n", version)
			fmt.Printf("  commit:  %s\n", commit)
			fmt.Printf("  built:   %s\n", date)
			fmt.Printf("  go:      %s\n", runtime.Version())
			fmt.Printf("  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")

	return cmd
}

// buildCompletionCmd creates the `listkit completion` subcommand for shell completions.
func buildCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for listkit.

Examples:
  # Bash
  listkit completion bash > /etc/bash_completion.d/listkit

  # Zsh (before compinit)
  listkit completion zsh > "${fpath[1]}/_listkit"

  # Fish
  listkit completion fish > ~/.config/fish/completions/listkit.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}

	return cmd
}
