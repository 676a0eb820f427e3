// Package templates embeds the built-in Python output templates.
package templates

import "embed"

//go:embed python/*.tmpl
var FS embed.FS
