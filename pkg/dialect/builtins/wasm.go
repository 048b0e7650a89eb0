package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// Wasm targets SQL engines compiled to WebAssembly (e.g. a DuckDB-Wasm
// build); ANSI-quoted, lower-case comparison, matching its host engine's
// defaults.
var Wasm *dialect.Dialect

func init() {
	Wasm = dialect.New("wasm").
		Identifiers('"', 0, `""`).
		Normalize(dialect.Lowercase).
		Keywords("QUALIFY").
		ReservedWords("QUALIFY").
		Build()
	dialect.Register(Wasm)
}
