// Package trie provides a case-folded prefix tree for longest-match
// keyword lookup, used by the tokenizer to resolve bare identifiers
// against a dialect's keyword set in O(m) time (m = lexeme length).
package trie

import (
	"strings"

	"github.com/sqlmorph/sqlmorph/pkg/token"
)

type node struct {
	children map[byte]*node
	terminal bool
	tokType  token.TokenType
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// Trie is a case-insensitive keyword lookup structure. A Trie is built
// once (from a dialect's keyword set) and is safe for concurrent lookups
// thereafter; it is never mutated after Build returns.
type Trie struct {
	root *node
}

// Build constructs a Trie from a map of keyword text to token type. Keys
// are folded to upper case on insertion so lookups are case-insensitive.
func Build(entries map[string]token.TokenType) *Trie {
	t := &Trie{root: newNode()}
	for word, tt := range entries {
		t.insert(word, tt)
	}
	return t
}

func (t *Trie) insert(word string, tt token.TokenType) {
	word = strings.ToUpper(word)
	n := t.root
	for i := 0; i < len(word); i++ {
		c := word[i]
		child, ok := n.children[c]
		if !ok {
			child = newNode()
			n.children[c] = child
		}
		n = child
	}
	n.terminal = true
	n.tokType = tt
}

// Lookup returns the token type registered for word, case-insensitively,
// iff the whole word is a terminal node.
func (t *Trie) Lookup(word string) (token.TokenType, bool) {
	word = strings.ToUpper(word)
	n := t.root
	for i := 0; i < len(word); i++ {
		child, ok := n.children[word[i]]
		if !ok {
			return token.IDENTIFIER, false
		}
		n = child
	}
	if n.terminal {
		return n.tokType, true
	}
	return token.IDENTIFIER, false
}

// LookupStream walks the trie over input[offset:offset+maxLen], advancing
// one character at a time, and returns the token type and length of the
// LONGEST registered keyword reached along that walk.
//
// This is genuinely longest-match: it records the best (deepest) terminal
// seen at any point during the descent, not merely the node the walk
// happens to end on. A naive implementation that only checks the final
// node after the walk stops would mis-resolve a keyword that is a strict
// prefix of another registered keyword continuing past maxLen or past a
// non-matching character — e.g. with both "IN" and "INTO" registered,
// walking "INTERVAL" must still report "IN" (length 2), not fail outright
// because "INTERVAL" as a whole isn't a terminal.
func (t *Trie) LookupStream(input string, offset, maxLen int) (token.TokenType, int) {
	end := offset + maxLen
	if end > len(input) {
		end = len(input)
	}

	n := t.root
	bestType := token.IDENTIFIER
	bestLen := 0

	for i := offset; i < end; i++ {
		c := upperByte(input[i])
		child, ok := n.children[c]
		if !ok {
			break
		}
		n = child
		if n.terminal {
			bestType = n.tokType
			bestLen = i - offset + 1
		}
	}

	return bestType, bestLen
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
