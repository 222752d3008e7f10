package snapshot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/designsystem/internal/logger"
	"github.com/alexisbeaulieu97/designsystem/internal/stories"
	"github.com/alexisbeaulieu97/designsystem/pkg/dom"
	"github.com/alexisbeaulieu97/designsystem/pkg/primitives"
)

func testRegistry(t *testing.T, bg string) *stories.Registry {
	t.Helper()

	reg := stories.NewRegistry()
	meta := stories.Meta{
		Title: "Primitives/Box",
		Render: func(a stories.Args) dom.Node {
			return primitives.BoxText("Hi", primitives.BoxProps{Bg: a.String("bg")})
		},
	}
	require.NoError(t, reg.Register(meta,
		stories.Story{Name: "Default", Args: stories.Args{"bg": bg}},
		stories.Story{Name: "Plain"},
	))
	return reg
}

func statuses(r *Report) map[string]Status {
	out := make(map[string]Status)
	for _, o := range r.Outcomes {
		out[o.ID] = o.Status
	}
	return out
}

func TestCheckMissingSnapshotsFail(t *testing.T) {
	t.Parallel()

	report, err := Check(context.Background(), Options{Dir: t.TempDir(), Registry: testRegistry(t, "#fff")})
	require.ErrorIs(t, err, ErrMismatch)
	assert.Equal(t, map[string]Status{
		"primitives-box--default": StatusMissing,
		"primitives-box--plain":   StatusMissing,
	}, statuses(report))
}

func TestCheckUpdateThenMatch(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "__snapshots__")
	report, err := Check(context.Background(), Options{Dir: dir, Registry: testRegistry(t, "#fff"), Update: true, Logger: logger.Nop()})
	require.NoError(t, err)
	assert.Equal(t, StatusWritten, statuses(report)["primitives-box--default"])

	data, err := os.ReadFile(filepath.Join(dir, "primitives-box--default"+Ext))
	require.NoError(t, err)
	assert.Equal(t, `<div style="background-color: #fff; padding: 0; margin: 0; border-radius: 0; box-sizing: border-box">Hi</div>`+"\n", string(data))

	report, err = Check(context.Background(), Options{Dir: dir, Registry: testRegistry(t, "#fff")})
	require.NoError(t, err)
	assert.Empty(t, report.Failed())
	assert.Equal(t, StatusMatched, statuses(report)["primitives-box--plain"])
}

func TestCheckReportsDiff(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := Check(context.Background(), Options{Dir: dir, Registry: testRegistry(t, "#fff"), Update: true})
	require.NoError(t, err)

	report, err := Check(context.Background(), Options{Dir: dir, Registry: testRegistry(t, "#000")})
	require.ErrorIs(t, err, ErrMismatch)
	assert.Contains(t, err.Error(), "primitives-box--default")

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, StatusMismatch, failed[0].Status)
	assert.Contains(t, failed[0].Diff, "-<div style=\"background-color: #fff;")
	assert.Contains(t, failed[0].Diff, "+<div style=\"background-color: #000;")

	report, err = Check(context.Background(), Options{Dir: dir, Registry: testRegistry(t, "#000"), Update: true})
	require.NoError(t, err)
	assert.Equal(t, StatusUpdated, statuses(report)["primitives-box--default"])
}

func TestCheckReportsObsoleteWithoutFailing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := Check(context.Background(), Options{Dir: dir, Registry: testRegistry(t, "#fff"), Update: true})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "primitives-box--removed"+Ext), []byte("<div></div>\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o644))

	report, err := Check(context.Background(), Options{Dir: dir, Registry: testRegistry(t, "#fff")})
	require.NoError(t, err)

	last := report.Outcomes[len(report.Outcomes)-1]
	assert.Equal(t, "primitives-box--removed", last.ID)
	assert.Equal(t, StatusObsolete, last.Status)
	assert.Len(t, report.Outcomes, 3)
}

func TestCheckValidatesOptions(t *testing.T) {
	t.Parallel()

	_, err := Check(context.Background(), Options{Registry: stories.NewRegistry()})
	require.Error(t, err)

	_, err = Check(context.Background(), Options{Dir: t.TempDir()})
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Check(ctx, Options{Dir: t.TempDir(), Registry: testRegistry(t, "#fff")})
	require.True(t, errors.Is(err, context.Canceled))
}
