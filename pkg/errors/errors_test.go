package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	root := stderrors.New("root cause")

	cases := map[string]struct {
		err  error
		want string
	}{
		"parse with line":      {err: NewParseError("tokens.yaml", 3, root), want: "parse error: tokens.yaml:3: root cause"},
		"parse without line":   {err: NewParseError("tokens.yaml", 0, root), want: "parse error: tokens.yaml: root cause"},
		"validation field":     {err: NewValidationError("Coverage.Lines", "must be <= 100", nil), want: "validation error: Coverage.Lines: must be <= 100"},
		"validation bare":      {err: NewValidationError("", "bad", nil), want: "validation error: bad"},
		"render tag":           {err: NewRenderError("blink", "", "unsupported element kind"), want: "render error <blink>: unsupported element kind"},
		"render attribute":     {err: NewRenderError("div", "onclick", "use Element.On"), want: "render error <div onclick>: use Element.On"},
		"story with id":        {err: NewStoryError("primitives-box--default", "duplicate"), want: "story error [primitives-box--default]: duplicate"},
		"story without id":     {err: NewStoryError("", "empty title"), want: "story error: empty title"},
		"coverage":             {err: NewCoverageError([]string{"lines 70.0% < 80.0%", "functions 50.0% < 80.0%"}), want: "coverage below threshold: lines 70.0% < 80.0%, functions 50.0% < 80.0%"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestUnwrapThroughWrapping(t *testing.T) {
	t.Parallel()

	root := stderrors.New("io failure")
	err := fmt.Errorf("load config: %w", NewParseError("designsystem.yaml", 0, root))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, root)

	err = fmt.Errorf("wrap: %w", NewValidationError("x", "y", root))
	assert.ErrorIs(t, err, root)
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	assert.Empty(t, parseErr.Error())
	assert.Nil(t, parseErr.Unwrap())
	assert.Empty(t, validationErr.Error())
	assert.Nil(t, validationErr.Unwrap())
}
