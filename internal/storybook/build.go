// Package storybook builds the static visual documentation site: one HTML
// page per story, an index, the token stylesheet and a JSON manifest.
package storybook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/designsystem/internal/logger"
	"github.com/alexisbeaulieu97/designsystem/internal/stories"
	"github.com/alexisbeaulieu97/designsystem/pkg/dom"
	"github.com/alexisbeaulieu97/designsystem/pkg/primitives"
	"github.com/alexisbeaulieu97/designsystem/pkg/tokens"
)

const (
	indexFile    = "index.html"
	manifestFile = "manifest.json"
	tokensFile   = "tokens.css"
)

// BuildOptions configures a storybook build.
type BuildOptions struct {
	OutDir   string
	Title    string
	Version  string
	Registry *stories.Registry
	Tokens   tokens.Tokens
	// RepoDir, when set, is used to stamp the manifest with the HEAD commit.
	RepoDir string
	Logger  *logger.Logger
}

// Manifest describes a finished build.
type Manifest struct {
	Title   string          `json:"title"`
	Version string          `json:"version"`
	Commit  string          `json:"commit,omitempty"`
	Stories []ManifestEntry `json:"stories"`
}

// ManifestEntry is one story page in the manifest.
type ManifestEntry struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Name  string   `json:"name"`
	Tags  []string `json:"tags,omitempty"`
	File  string   `json:"file"`
}

// Build renders every registered story into opts.OutDir. It stops between
// stories when ctx is cancelled.
func Build(ctx context.Context, opts BuildOptions) (*Manifest, error) {
	if strings.TrimSpace(opts.OutDir) == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if opts.Registry == nil {
		return nil, fmt.Errorf("story registry is required")
	}
	if opts.Title == "" {
		opts.Title = "Design System"
	}
	log := opts.Logger.With("out", opts.OutDir)

	manifest := &Manifest{Title: opts.Title, Version: opts.Version}
	if opts.RepoDir != "" {
		commit, err := HeadCommit(opts.RepoDir)
		if err != nil {
			log.Error(err, "could not read repository HEAD")
		}
		manifest.Commit = commit
	}

	entries := opts.Registry.List()
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		file := entry.ID + ".html"
		page, err := renderStoryPage(opts.Title, entry)
		if err != nil {
			return nil, fmt.Errorf("render story %s: %w", entry.ID, err)
		}
		if err := writeFile(filepath.Join(opts.OutDir, file), page); err != nil {
			return nil, err
		}
		log.With("story", entry.ID).Debug("story written")

		manifest.Stories = append(manifest.Stories, ManifestEntry{
			ID:    entry.ID,
			Title: entry.Meta.Title,
			Name:  entry.DisplayName(),
			Tags:  entry.Meta.Tags,
			File:  file,
		})
	}

	index, err := renderIndexPage(opts.Title, entries)
	if err != nil {
		return nil, fmt.Errorf("render index: %w", err)
	}
	if err := writeFile(filepath.Join(opts.OutDir, indexFile), index); err != nil {
		return nil, err
	}
	if err := writeFile(filepath.Join(opts.OutDir, tokensFile), []byte(opts.Tokens.Normalize().CSS())); err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := writeFile(filepath.Join(opts.OutDir, manifestFile), data); err != nil {
		return nil, err
	}

	log.With("stories", len(manifest.Stories)).Info("storybook built")
	return manifest, nil
}

func renderStoryPage(siteTitle string, entry stories.Entry) ([]byte, error) {
	frame := layoutFrame(entry.Meta.Layout, entry.Node())
	frame.SetAttr("data-story", entry.ID)
	return renderPage(entry.Meta.Title+" / "+entry.DisplayName()+" | "+siteTitle, frame)
}

// layoutFrame wraps a story in the frame its Meta asks for. Frames are Boxes
// themselves.
func layoutFrame(layout stories.Layout, content dom.Node) *dom.Element {
	props := primitives.BoxProps{
		ClassName: "sb-layout sb-layout-" + string(layout),
		Children:  []dom.Node{content},
	}
	switch layout {
	case stories.LayoutCentered:
		props.Style = dom.StyleOf(
			dom.Declaration{Property: "display", Value: "flex"},
			dom.Declaration{Property: "justify-content", Value: "center"},
			dom.Declaration{Property: "align-items", Value: "center"},
			dom.Declaration{Property: "min-height", Value: "100vh"},
		)
	case stories.LayoutPadded:
		props.P = primitives.Px(16)
	}
	return primitives.Box(props)
}

func renderIndexPage(siteTitle string, entries []stories.Entry) ([]byte, error) {
	content := []dom.Node{dom.NewElement("h1", dom.Text(siteTitle))}

	var list *dom.Element
	currentTitle := ""
	for _, entry := range entries {
		if entry.Meta.Title != currentTitle || list == nil {
			currentTitle = entry.Meta.Title
			list = dom.NewElement("ul")
			content = append(content, dom.NewElement("h2", dom.Text(currentTitle)), list)
		}
		link := dom.NewElement("a", dom.Text(entry.DisplayName())).SetAttr("href", entry.ID+".html")
		list.Append(dom.NewElement("li", link))
	}

	page := primitives.Box(primitives.BoxProps{As: primitives.KindMain, P: primitives.Px(24), Children: content})
	return renderPage(siteTitle, page)
}

func renderPage(title string, body dom.Node) ([]byte, error) {
	head := dom.NewElement("head",
		dom.NewElement("meta").SetAttr("charset", "utf-8"),
		dom.NewElement("title", dom.Text(title)),
		dom.NewElement("link").SetAttr("rel", "stylesheet").SetAttr("href", tokensFile),
	)
	root := dom.NewElement("html", head, dom.NewElement("body", body)).SetAttr("lang", "en")

	var buf bytes.Buffer
	if err := dom.RenderDocument(&buf, root); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
