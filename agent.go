package clfparse

import (
	"strings"
)

// Characters RFC 2616 disallows in a product token. "/" stays legal as the
// product/version separator, and "[" and "]" stay legal because some agents
// carry a locale tag like [en].
const productDisallowed = "(),:;<=>?@{}"

type tokenKind int

const (
	kindNone tokenKind = iota
	kindProduct
	kindComment
)

// validAgent checks a User-Agent value against the shape of product tokens
// optionally followed by parenthesized, nestable comments:
//
//	Opera/9.80 (Windows NT 5.1; U; MRA 5.6 (build 03278); ru) Presto/2.6.30
//
// Real-world agents are a hot mess, so the check is deliberately permissive:
// a product token may contain anything outside productDisallowed, and comment
// content is arbitrary. A comment must be opened before any ")" appears, must
// be closed by end of input, and cannot lead the string, since the first
// token is always expected to be a product.
func validAgent(agent string) bool {
	last := kindNone
	depth := 0
	for _, token := range strings.Fields(agent) {
		expectProduct := last == kindNone ||
			(last != kindNone && depth == 0 && !strings.HasPrefix(token, "("))
		if expectProduct {
			if strings.ContainsAny(token, productDisallowed) {
				return false
			}
			last = kindProduct
			continue
		}
		for i := 0; i < len(token); i++ {
			switch token[i] {
			case '(':
				depth++
				last = kindComment
			case ')':
				if depth == 0 {
					return false
				}
				depth--
				last = kindComment
			}
		}
	}
	return depth == 0
}
