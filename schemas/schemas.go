// Package schemas embeds the JSON Schemas used to validate input files.
package schemas

import _ "embed"

// EvidenceSchemaJSON is the JSON Schema for rule evidence bundles.
//
//go:embed evidence.schema.json
var EvidenceSchemaJSON string
