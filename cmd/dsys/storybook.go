package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designsystem/internal/stories"
	"github.com/alexisbeaulieu97/designsystem/internal/storybook"
	"github.com/alexisbeaulieu97/designsystem/pkg/components"
)

type buildStorybookOptions struct {
	outDir string
	watch  bool
}

func newBuildStorybookCmd(app *appContext) *cobra.Command {
	opts := &buildStorybookOptions{}

	cmd := &cobra.Command{
		Use:   "build-storybook",
		Short: "Build the static story documentation site",
		Long: `Build renders every registered story to its own HTML page and writes an
index, the token stylesheet and a manifest. With --watch the site is rebuilt
whenever the token file or the configuration changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildStorybook(cmd, app, *opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Output directory (defaults to storybook.out_dir)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Rebuild when the token file or configuration changes")

	return cmd
}

func runBuildStorybook(cmd *cobra.Command, app *appContext, opts buildStorybookOptions) error {
	outDir := opts.outDir
	if outDir == "" {
		outDir = app.resolve(app.cfg.Storybook.OutDir)
	}

	build := func(ctx context.Context) error {
		tok, err := app.tokens("")
		if err != nil {
			return err
		}
		reg, err := stories.Default(app.log)
		if err != nil {
			return err
		}
		manifest, err := storybook.Build(ctx, storybook.BuildOptions{
			OutDir:   outDir,
			Title:    app.cfg.Storybook.Title,
			Version:  components.Version,
			Registry: reg,
			Tokens:   tok,
			RepoDir:  app.baseDir,
			Logger:   app.log,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Built %d stories into %s\n", len(manifest.Stories), outDir)
		return nil
	}

	if err := build(cmd.Context()); err != nil {
		return newCommandError("build storybook", outDir, err, "Check the token file and output directory permissions.")
	}
	if !opts.watch {
		return nil
	}

	paths := watchPaths(app)
	if len(paths) == 0 {
		return fmt.Errorf("nothing to watch: no configuration or token file found")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Fprintln(cmd.OutOrStdout(), "Watching for changes. Press Ctrl+C to stop.")
	return storybook.Watch(ctx, paths, app.cfg.Storybook.Debounce, func(ctx context.Context) error {
		reloaded, err := app.reloadConfig()
		if err != nil {
			return err
		}
		app.cfg = reloaded
		return build(ctx)
	}, app.log)
}

func watchPaths(app *appContext) []string {
	var paths []string
	for _, p := range []string{app.configFile, app.resolve(app.cfg.Storybook.TokensFile)} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			paths = append(paths, p)
		}
	}
	return paths
}
