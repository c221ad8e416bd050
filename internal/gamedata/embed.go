// Package gamedata provides embedded world data: placeable glyph art and
// level definitions.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
