// Package templates embeds the source template tree the catalog loader
// consumes. Path layout is <type>/<backend>/<feature>/<output path>; see
// internal/template for the tag extraction rules.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed all:common all:minimal all:api_only all:fullstack
var tree embed.FS

// FS returns the embedded template tree.
func FS() fs.FS {
	return tree
}
