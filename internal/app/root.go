package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/guidectl/internal/builtin"
	"github.com/blackwell-systems/guidectl/internal/codec"
	"github.com/blackwell-systems/guidectl/internal/config"
	"github.com/blackwell-systems/guidectl/internal/host"
	"github.com/blackwell-systems/guidectl/internal/loader"
	"github.com/blackwell-systems/guidectl/internal/logger"
	"github.com/blackwell-systems/guidectl/internal/util"
)

var (
	cfg   *config.Config
	log   *slog.Logger
	names host.NameRegistry
	tr    host.Translator
	ld    *loader.Loader

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagLogLevel      string
	flagNames         string
	flagLang          string
)

var rootCmd = &cobra.Command{
	Use:   "guidectl",
	Short: "Validate, format and inspect guidebook documents",
	Long: `guidectl works with guidebook JSON documents: books made of categories,
entries and pages, where every category, entry and page names its variant
with a discriminator field (categoryType, entryType, pageType).

Item and block names in documents are resolved against a name fixture
(--names, or the built-in vanilla set).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/guidectl/config.yml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagNames, "names", "", "YAML fixture of item and block names")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "JSON lang file used to translate localization keys")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if flagLogLevel != "" {
			cfg.Log.Level = flagLogLevel
		}
		if flagNames != "" {
			cfg.NamesFile = flagNames
		}
		if flagLang != "" {
			cfg.LangFile = flagLang
		}

		log = logger.New(logger.Config{
			Writer: os.Stderr,
			Format: cfg.Log.Format,
			Level:  logger.ParseLevel(cfg.Log.Level),
		})
		return setup()
	}

	rootCmd.AddCommand(
		newInitCmd(),
		newValidateCmd(),
		newInfoCmd(),
		newTreeCmd(),
		newFmtCmd(),
		newSampleCmd(),
		newSearchCmd(),
		newWatchCmd(),
		newBrowseCmd(),
		newVariantsCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
}

// setup wires the host collaborators, registries and loader. The name
// registry is complete before any document is decoded, and every variant is
// registered before the codec is shared.
func setup() error {
	if cfg.HasNames() {
		n, err := host.LoadNames(cfg.NamesFile)
		if err != nil {
			return err
		}
		names = n
	} else {
		names = host.Vanilla()
	}

	if cfg.HasLang() {
		l, err := host.LoadLang(cfg.LangFile)
		if err != nil {
			return err
		}
		tr = l
	} else {
		tr = host.Identity{}
	}

	regs := codec.NewRegistries(log)
	builtin.Register(regs)
	ld = loader.New(codec.New(regs, names), log)
	return nil
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// bad prints a red failure line without exiting.
func bad(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.RedString("✗"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

func printField(label, value string) {
	fmt.Printf("  %-14s %s\n", color.CyanString(label+":"), value)
}
