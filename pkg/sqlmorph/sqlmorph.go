// Package sqlmorph is the top-level façade: parse a SQL string in one
// dialect, optionally optimize the resulting AST, and generate SQL text
// back out in the same or a different dialect. It wires together
// pkg/dialect, pkg/parser, pkg/optimizer, and pkg/generator behind the
// handful of entry points spec.md §4.8 names, mirroring the teacher's
// pkg/format.SQL one-shot parse+format helper.
package sqlmorph

import (
	"fmt"

	"github.com/sqlmorph/sqlmorph/pkg/ast"
	"github.com/sqlmorph/sqlmorph/pkg/dialect"
	_ "github.com/sqlmorph/sqlmorph/pkg/dialect/builtins" // registers the 31 built-in dialects
	"github.com/sqlmorph/sqlmorph/pkg/generator"
	"github.com/sqlmorph/sqlmorph/pkg/optimizer"
	_ "github.com/sqlmorph/sqlmorph/pkg/optimizer/rules" // registers the 11 optimizer rules
)

// EngineVersion re-exports pkg/dialect's engine semver, the version a
// RegisterDialect plugin's MinEngineVersion constraint is checked
// against.
const EngineVersion = dialect.EngineVersion

// ConfigError reports a failure to resolve a dialect name.
type ConfigError struct {
	UnknownDialect string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("sqlmorph: unknown dialect %q", e.UnknownDialect)
}

func resolve(dialectName string) (*dialect.Dialect, error) {
	d, ok := dialect.Get(dialectName)
	if !ok {
		return nil, &ConfigError{UnknownDialect: dialectName}
	}
	return d, nil
}

// GetDialect looks up a registered dialect by name (case-insensitive).
func GetDialect(name string) (*dialect.Dialect, error) {
	return resolve(name)
}

// RegisterDialect adds a dialect plugin to the process-wide registry,
// rejecting it if its MinEngineVersion constraint is not satisfied by
// EngineVersion.
func RegisterDialect(d *dialect.Dialect) error {
	return dialect.RegisterDialect(d)
}

// ParseOne parses sql as a single statement under dialectName. On empty
// input or a fatal parse error it returns (nil, nil), matching spec.md's
// "parseOne returns None on empty input or fatal parse error" rather
// than surfacing a trivial-input error to every caller.
func ParseOne(sql string, dialectName string) (ast.Stmt, error) {
	d, err := resolve(dialectName)
	if err != nil {
		return nil, err
	}
	if isBlank(sql) {
		return nil, nil
	}
	p, err := d.NewParser(sql)
	if err != nil {
		return nil, nil
	}
	stmt, err := p.ParseStatement()
	if err != nil {
		return nil, nil
	}
	return stmt, nil
}

// Parse splits sql on top-level statement-terminating semicolons and
// parses each piece independently, skipping pieces that parse to
// nothing (blank trailing fragments, fatal parse errors). It never
// returns a parser error itself; per spec.md, "parse may return an
// empty list in the same circumstances" as parseOne returning None.
func Parse(sql string, dialectName string) ([]ast.Stmt, error) {
	d, err := resolve(dialectName)
	if err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for _, piece := range splitStatements(sql, d) {
		if isBlank(piece) {
			continue
		}
		p, perr := d.NewParser(piece)
		if perr != nil {
			continue
		}
		stmt, serr := p.ParseStatement()
		if serr != nil || stmt == nil {
			continue
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// Generate renders stmt to SQL text under dialectName using cfg.
func Generate(stmt ast.Stmt, dialectName string, cfg generator.Config) (string, error) {
	d, err := resolve(dialectName)
	if err != nil {
		return "", err
	}
	return d.NewGenerator(cfg).Generate(stmt), nil
}

// Format chains ParseOne and Generate with a pretty-printing
// configuration, returning "" if parsing yielded nothing.
func Format(sql string, dialectName string) (string, error) {
	stmt, err := ParseOne(sql, dialectName)
	if err != nil {
		return "", err
	}
	if stmt == nil {
		return "", nil
	}
	return Generate(stmt, dialectName, generator.DefaultConfig())
}

// Optimize runs stmt through a Pipeline built from cfg, under dialectName.
func Optimize(stmt ast.Stmt, dialectName string, cfg optimizer.OptimizerConfig) (ast.Stmt, error) {
	d, err := resolve(dialectName)
	if err != nil {
		return nil, err
	}
	out, _ := optimizer.NewPipeline(cfg).Optimize(stmt, dialectInfo{d})
	return out, nil
}

// dialectInfo adapts *dialect.Dialect to optimizer.DialectInfo. Dialect
// exposes its name as a Name field (matching the teacher's own Dialect
// struct), while DialectInfo requires a Name() method; a field and a
// method of the same name cannot coexist on one type, so the adapter
// lives here rather than on Dialect itself.
type dialectInfo struct {
	*dialect.Dialect
}

func (d dialectInfo) Name() string { return d.Dialect.Name }

// Transpile chains ParseOne(fromDialect) → Generate(toDialect), returning
// "" if parsing yielded nothing.
func Transpile(sql string, fromDialect string, toDialect string) (string, error) {
	stmt, err := ParseOne(sql, fromDialect)
	if err != nil {
		return "", err
	}
	if stmt == nil {
		return "", nil
	}
	return Generate(stmt, toDialect, generator.DefaultConfig())
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' && r != ';' {
			return false
		}
	}
	return true
}
