// Package views embeds the HTML templates and static assets so the server
// ships as a single binary.
package views

import (
	"embed"
	"io/fs"
)

//go:embed layout.html pages static
var files embed.FS

// FS exposes the embedded template tree (layout.html plus pages/).
func FS() fs.FS {
	return files
}

// Static returns the static asset subtree, rooted so /static/main.css maps
// to static/main.css in the embed.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
