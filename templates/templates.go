// Package templates embeds the server-rendered views so the router can
// load them regardless of working directory.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
