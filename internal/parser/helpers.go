package parser

import "github.com/golox-lang/golox/internal/token"

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

// consume advances past the current token if it has the expected kind;
// otherwise it reports message at the current token and returns a
// parseError to unwind the enclosing declaration.
func (p *Parser) consume(kind token.Kind, message string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, p.errorAt(p.peek(), message)
}

// errorAt reports message anchored to tok and returns the sentinel used to
// unwind to declaration()'s synchronize call.
func (p *Parser) errorAt(tok token.Token, message string) error {
	p.reporter.ReportAt(tok, message)
	return parseError{}
}

// reportAtCurrent reports a diagnostic (argument/parameter overflow) without
// unwinding parsing, since the grammar production containing it still
// completes normally.
func (p *Parser) reportAtCurrent(message string) {
	p.reporter.ReportAt(p.peek(), message)
}
