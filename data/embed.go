// Package data embeds the default country statistics for compile-time inclusion.
// Each file in v1/ holds one feature: a name and a country -> [rank, value] table,
// taken from CIA World Factbook country comparisons.
//
// Usage:
//
//	dataset.LoadFS(data.FS, "v1")
package data

import "embed"

//go:embed v1/*.json
var FS embed.FS
