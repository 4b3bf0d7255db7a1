package templates

import (
	"embed"
	"io/fs"
)

//go:embed assets
var assetsFS embed.FS

// Embedded returns the built-in asset tree rooted at the directory that holds
// catalog.yaml, catalog.schema.json, base/ and one directory per template.
func Embedded() fs.FS {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}
