package token

import "sync/atomic"

// nextDynamicID is the next available dynamic token ID. Dynamic tokens
// start right after maxBuiltin (999).
var nextDynamicID = int32(maxBuiltin)

var (
	dynamicNames  = make(map[TokenType]string)
	dynamicByName = make(map[string]TokenType)
)

// Register allocates a new dynamic token type for a dialect-specific
// keyword or operator (e.g. QUALIFY, ILIKE, ::). Dialect package init()
// functions call it. Only the ID counter is atomic: the name maps are
// written without a lock, so Register is not safe to call concurrently
// with itself or with LookupDynamic or a TokenType's String.
func Register(name string) TokenType {
	id := atomic.AddInt32(&nextDynamicID, 1)
	t := TokenType(id)
	dynamicNames[t] = name
	dynamicByName[name] = t
	return t
}

func dynamicName(t TokenType) (string, bool) {
	name, ok := dynamicNames[t]
	return name, ok
}

// IsDynamic reports whether t was allocated via Register.
func IsDynamic(t TokenType) bool {
	return t > maxBuiltin
}

// LookupDynamic returns the token type registered for name, if any.
func LookupDynamic(name string) (TokenType, bool) {
	t, ok := dynamicByName[name]
	return t, ok
}
