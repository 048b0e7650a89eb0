package generator

import (
	"bytes"
	"strings"
)

// printer accumulates SQL text with indentation bookkeeping. In non-Pretty
// mode, writeln degrades to a single space and indent/dedent are no-ops,
// so the same formatting calls serve both rendering styles.
type printer struct {
	cfg         Config
	out         bytes.Buffer
	depth       int
	atLineStart bool
}

func newPrinter(cfg Config) *printer {
	return &printer{cfg: cfg, atLineStart: true}
}

func (p *printer) String() string {
	if p.cfg.Pretty {
		return strings.TrimRight(p.out.String(), "\n") + "\n"
	}
	return strings.TrimSpace(p.out.String())
}

func (p *printer) write(s string) {
	if s == "" {
		return
	}
	if p.atLineStart && p.cfg.Pretty {
		p.writeIndent()
	}
	p.out.WriteString(s)
	p.atLineStart = false
}

func (p *printer) writeln() {
	if !p.cfg.Pretty {
		p.space()
		return
	}
	p.out.WriteByte('\n')
	p.atLineStart = true
}

func (p *printer) writeIndent() {
	for i := 0; i < p.depth*p.indentWidth(); i++ {
		p.out.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *printer) indentWidth() int {
	if p.cfg.IndentWidth <= 0 {
		return 2
	}
	return p.cfg.IndentWidth
}

func (p *printer) indent() {
	if p.cfg.Pretty {
		p.depth++
	}
}

func (p *printer) dedent() {
	if p.cfg.Pretty && p.depth > 0 {
		p.depth--
	}
}

func (p *printer) space() {
	p.out.WriteByte(' ')
}

// keyword writes s upper- or lower-cased per cfg.LowerCaseKeywords.
func (p *printer) keyword(s string) {
	if p.cfg.LowerCaseKeywords {
		p.write(strings.ToLower(s))
	} else {
		p.write(strings.ToUpper(s))
	}
}

// formatList calls format(i) for each of count items, writing sep
// (including any trailing space the caller wants on a single line)
// between them, followed by a newline when multiline is set.
func (p *printer) formatList(count int, format func(i int), sep string, multiline bool) {
	for i := 0; i < count; i++ {
		format(i)
		if i < count-1 {
			p.write(sep)
			if multiline {
				p.writeln()
			}
		}
	}
}
