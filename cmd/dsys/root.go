package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designsystem/internal/config"
	"github.com/alexisbeaulieu97/designsystem/internal/logger"
	"github.com/alexisbeaulieu97/designsystem/pkg/tokens"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

// appContext bundles the services loaded before every command runs.
type appContext struct {
	flags      *rootFlags
	cfg        *config.Config
	configFile string
	baseDir    string
	log        *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{flags: flags}

	cmd := &cobra.Command{
		Use:           "dsys",
		Short:         "dsys builds, previews and checks the design system",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", config.DefaultFileName, "Path to the workspace configuration")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newStoriesCmd(app))
	cmd.AddCommand(newBuildStorybookCmd(app))
	cmd.AddCommand(newBrowseCmd(app))
	cmd.AddCommand(newTokensCmd(app))
	cmd.AddCommand(newCoverageCmd(app))
	cmd.AddCommand(newPackagesCmd(app))

	return cmd
}

func (a *appContext) load(cmd *cobra.Command) error {
	level := "info"
	if a.flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.log = log

	cfg, err := config.LoadOrDefault(a.flags.configPath)
	if err != nil {
		return newCommandError("load configuration", a.flags.configPath, err, "Fix the reported field or remove the file to use defaults.")
	}
	a.cfg = cfg

	abs, err := filepath.Abs(a.flags.configPath)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	a.configFile = abs
	a.baseDir = filepath.Dir(abs)
	a.log.With("config", abs).Debug("configuration loaded")
	return nil
}

func (a *appContext) reloadConfig() (*config.Config, error) {
	return config.LoadOrDefault(a.configFile)
}

// resolve interprets p relative to the configuration file.
func (a *appContext) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.baseDir, p)
}

// tokens loads the token file named by override, falling back to the
// configured storybook tokens file and then to the placeholder set.
func (a *appContext) tokens(override string) (tokens.Tokens, error) {
	path := override
	if path == "" {
		path = a.resolve(a.cfg.Storybook.TokensFile)
	}
	if path == "" {
		return tokens.Default(), nil
	}
	return tokens.Load(path)
}
