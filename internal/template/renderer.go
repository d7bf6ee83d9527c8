package template

import (
	"fmt"
	"regexp"
)

// placeholderPattern matches the {{UPPER_SNAKE}} tokens the renderer
// substitutes. Substitution is single-pass and literal: there is no
// expression language, and replacement values are never re-scanned.
var placeholderPattern = regexp.MustCompile(`\{\{[A-Z][A-Z0-9_]*\}\}`)

// strayTokenPattern detects any surviving placeholder-like syntax in rendered
// output, including malformed or lowercase tokens the substitution pass would
// not have matched.
var strayTokenPattern = regexp.MustCompile(`\{\{[^{}]*\}\}`)

// Rendered is a fully-materialized output file: no further processing occurs
// downstream, the bytes are written as-is.
type Rendered struct {
	Path    string
	Content []byte
}

// Render produces the final literal content for a selected template file by
// substituting every placeholder token with its context value. An
// unrecognized token fails with ErrUnknownPlaceholder, and any placeholder
// syntax surviving substitution fails with ErrUnexpandedToken: generated
// output must never carry template markers. Render reads and writes no other
// file; it is a pure function of (file, context).
func Render(file File, ctx *Context) (Rendered, error) {
	var renderErr error
	content := placeholderPattern.ReplaceAllFunc(file.Content, func(match []byte) []byte {
		token := string(match[2 : len(match)-2])
		value, ok := ctx.Value(token)
		if !ok {
			if renderErr == nil {
				renderErr = fmt.Errorf("%w: %q in %s", ErrUnknownPlaceholder, token, file.Source)
			}
			return match
		}
		return []byte(value)
	})
	if renderErr != nil {
		return Rendered{}, renderErr
	}

	if stray := strayTokenPattern.Find(content); stray != nil {
		return Rendered{}, fmt.Errorf("%w: %q in %s", ErrUnexpandedToken, string(stray), file.Source)
	}

	return Rendered{Path: file.Path, Content: content}, nil
}
