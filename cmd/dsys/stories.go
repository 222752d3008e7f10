package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designsystem/internal/preview"
	"github.com/alexisbeaulieu97/designsystem/internal/stories"
	"github.com/alexisbeaulieu97/designsystem/pkg/dom"
)

const (
	formatHTML     = "html"
	formatTerminal = "terminal"
)

type renderOptions struct {
	format string
}

func newStoriesCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stories",
		Short: "List and render component stories",
	}

	cmd.AddCommand(newStoriesListCmd(app))
	cmd.AddCommand(newStoriesRenderCmd(app))
	cmd.AddCommand(newStoriesSnapshotCmd(app))

	return cmd
}

func newStoriesListCmd(app *appContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := stories.Default(app.log)
			if err != nil {
				return err
			}
			if jsonOutput {
				return renderStoriesJSON(cmd, reg.List())
			}
			return renderStoriesTable(cmd, reg.List())
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderStoriesTable(cmd *cobra.Command, entries []stories.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No stories registered.")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTITLE\tNAME\tLAYOUT\tTAGS")
	for _, e := range entries {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			e.Meta.Title,
			e.DisplayName(),
			e.Meta.Layout,
			valueOrFallback(strings.Join(e.Meta.Tags, ","), "-"),
		)
	}
	return writer.Flush()
}

type storyJSON struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Name   string   `json:"name"`
	Layout string   `json:"layout"`
	Tags   []string `json:"tags,omitempty"`
}

func renderStoriesJSON(cmd *cobra.Command, entries []stories.Entry) error {
	payload := make([]storyJSON, len(entries))
	for i, e := range entries {
		payload[i] = storyJSON{
			ID:     e.ID,
			Title:  e.Meta.Title,
			Name:   e.DisplayName(),
			Layout: string(e.Meta.Layout),
			Tags:   e.Meta.Tags,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func newStoriesRenderCmd(app *appContext) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <story-id>",
		Short: "Render a single story as HTML or as a terminal preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRenderOptions(*opts); err != nil {
				return err
			}
			return runStoriesRender(cmd, app, args[0], *opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatHTML, "Output format: html or terminal")

	return cmd
}

func runStoriesRender(cmd *cobra.Command, app *appContext, id string, opts renderOptions) error {
	reg, err := stories.Default(app.log)
	if err != nil {
		return err
	}
	entry, err := reg.Lookup(id)
	if err != nil {
		return newCommandError("render story", id, err, "Run 'dsys stories list' to see available story IDs.")
	}

	node := entry.Node()
	out := cmd.OutOrStdout()
	switch opts.format {
	case formatTerminal:
		fmt.Fprintln(out, preview.Render(node))
		return nil
	default:
		html, err := dom.RenderString(node)
		if err != nil {
			return newCommandError("render story", id, err, "Check the story for unsupported elements or attributes.")
		}
		fmt.Fprintln(out, html)
		return nil
	}
}

func valueOrFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
