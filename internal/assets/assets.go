// Package assets embeds the static data the site is driven by.
package assets

import _ "embed"

//go:embed roster.yaml
var Roster []byte

//go:embed tiers.yaml
var Tiers []byte
