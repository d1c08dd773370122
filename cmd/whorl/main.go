// Command whorl is the terminal front end: an interactive wheel in the
// terminal, plus a non-interactive SVG export.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chazu/whorl/pkg/dsl"
	"github.com/chazu/whorl/pkg/taxonomy"
)

var (
	taxonomyPath string
	logPath      string
	verbose      bool
	rtl          bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "whorl",
	Short: "whorl - a three-ring feeling selector in your terminal",
	Long: `whorl renders a hierarchical taxonomy as a drill-down selector:
core categories, their subcategories, and finally the specific leaf.

Taxonomies load from YAML (.yaml/.yml) or from the Lisp DSL (.whorl).
Run without a subcommand for the interactive selector.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Stdout belongs to the TUI, so the logger writes to a file.
		config := zap.NewProductionConfig()
		config.OutputPaths = []string{logPath}
		config.ErrorOutputPaths = []string{logPath}
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(taxonomyPath)
		if err != nil {
			return err
		}
		logger.Info("taxonomy loaded",
			zap.String("path", taxonomyPath),
			zap.Int("cores", tree.CoreCount()))

		model := newModel(tree, rtl, func(core, primary, tertiary string) {
			logger.Info("selection complete",
				zap.String("core", core),
				zap.String("primary", primary),
				zap.String("tertiary", tertiary))
		})
		_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	},
}

// loadTree reads a taxonomy from disk, choosing the parser by extension.
func loadTree(path string) (*taxonomy.Tree, error) {
	if strings.HasSuffix(path, ".whorl") || strings.HasSuffix(path, ".lisp") {
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		tree, evalErrs, err := dsl.NewEngine().Evaluate(string(source))
		if err != nil {
			return nil, fmt.Errorf("evaluate %s: %w", path, err)
		}
		if len(evalErrs) > 0 {
			msgs := make([]string, len(evalErrs))
			for i, e := range evalErrs {
				msgs[i] = e.Error()
			}
			return nil, fmt.Errorf("evaluate %s:\n  %s", path, strings.Join(msgs, "\n  "))
		}
		return tree, nil
	}
	return taxonomy.Load(path)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&taxonomyPath, "taxonomy", "t", "examples/feelings.yaml", "taxonomy file (.yaml or .whorl)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "whorl.log", "log file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&rtl, "rtl", false, "right-to-left reading direction")

	rootCmd.AddCommand(renderCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
