package css

import "strconv"

// Parser builds a Stylesheet of qualified rules from a CSS token
// stream, per spec §4.3.
type Parser struct {
	tok  *Tokenizer
	peek *Token
}

// NewParser creates a parser over input.
func NewParser(input string) *Parser {
	return &Parser{tok: NewTokenizer(input)}
}

// Parse parses a stylesheet, consuming it to end of input.
func Parse(input string) Stylesheet {
	return NewParser(input).Parse()
}

func (p *Parser) next() Token {
	if p.peek != nil {
		t := *p.peek
		p.peek = nil
		return t
	}
	return p.tok.Next()
}

func (p *Parser) peekToken() Token {
	if p.peek == nil {
		t := p.tok.Next()
		p.peek = &t
	}
	return *p.peek
}

// Parse consumes the whole stylesheet.
func (p *Parser) Parse() Stylesheet {
	var sheet Stylesheet
	for {
		t := p.peekToken()
		if t.Kind == EOFToken {
			return sheet
		}
		if t.Kind == AtKeyword {
			p.next()
			p.skipAtRule()
			continue
		}
		if rule, ok := p.parseRule(); ok {
			sheet.Rules = append(sheet.Rules, rule)
		}
	}
}

// skipAtRule discards an at-rule's prelude and block (if any), up to
// the matching '}', per spec §4.3's "consumed and discarded" rule.
func (p *Parser) skipAtRule() {
	for {
		t := p.next()
		switch t.Kind {
		case EOFToken:
			return
		case Semicolon:
			return
		case OpenCurly:
			p.skipBlock()
			return
		}
	}
}

func (p *Parser) skipBlock() {
	depth := 1
	for depth > 0 {
		t := p.next()
		switch t.Kind {
		case EOFToken:
			return
		case OpenCurly:
			depth++
		case CloseCurly:
			depth--
		}
	}
}

// parseRule parses a single selector and its declaration block.
// Malformed selectors (pseudo-classes, anything unrecognized) still
// consume their rule so parsing can continue, but yield
// UnknownSelector, which never matches at cascade time.
func (p *Parser) parseRule() (Rule, bool) {
	sel, ok := p.parseSelector()
	if !ok {
		return Rule{}, false
	}

	if p.peekToken().Kind != OpenCurly {
		return Rule{}, false
	}
	p.next() // consume '{'

	decls := p.parseDeclarations()
	return Rule{Selector: sel, Declarations: decls}, true
}

func (p *Parser) parseSelector() (Selector, bool) {
	t := p.next()
	switch t.Kind {
	case Hash:
		return Selector{Kind: IDSelector, Name: t.Str}, true
	case Ident:
		return Selector{Kind: TypeSelector, Name: t.Str}, true
	case Delim:
		if t.Rune == '.' {
			name := p.next()
			if name.Kind == Ident {
				return Selector{Kind: ClassSelector, Name: name.Str}, true
			}
			return Selector{Kind: UnknownSelector}, true
		}
		return Selector{Kind: UnknownSelector}, true
	case Colon:
		// Pseudo-class: consumed and ignored up to '{'.
		for {
			pk := p.peekToken()
			if pk.Kind == OpenCurly || pk.Kind == EOFToken {
				break
			}
			p.next()
		}
		return Selector{Kind: UnknownSelector}, true
	case EOFToken:
		return Selector{}, false
	default:
		return Selector{Kind: UnknownSelector}, true
	}
}

func (p *Parser) parseDeclarations() []Declaration {
	var decls []Declaration
	for {
		t := p.peekToken()
		if t.Kind == CloseCurly || t.Kind == EOFToken {
			if t.Kind == CloseCurly {
				p.next()
			}
			return decls
		}
		if d, ok := p.parseDeclaration(); ok {
			decls = append(decls, d)
		}
	}
}

// parseDeclaration parses "Ident ':' ComponentValue ';'?". A missing
// colon aborts just this declaration; parsing resumes after the next
// ';' or at '}'.
func (p *Parser) parseDeclaration() (Declaration, bool) {
	name := p.next()
	if name.Kind != Ident {
		p.skipToDeclarationEnd()
		return Declaration{}, false
	}
	if p.peekToken().Kind != Colon {
		p.skipToDeclarationEnd()
		return Declaration{}, false
	}
	p.next() // consume ':'

	value := p.parseComponentValue()

	if p.peekToken().Kind == Semicolon {
		p.next()
	}
	return Declaration{Property: name.Str, Value: value}, true
}

func (p *Parser) skipToDeclarationEnd() {
	for {
		t := p.peekToken()
		if t.Kind == Semicolon {
			p.next()
			return
		}
		if t.Kind == CloseCurly || t.Kind == EOFToken {
			return
		}
		p.next()
	}
}

// parseComponentValue reads the value tokens of a declaration up to
// ';' or '}', rendering them back to a value string. Only Ident, Hash,
// Number and StringToken tokens render; anything else is dropped.
func (p *Parser) parseComponentValue() string {
	var out string
	first := true
	for {
		t := p.peekToken()
		if t.Kind == Semicolon || t.Kind == CloseCurly || t.Kind == EOFToken {
			return out
		}
		p.next()
		if !first {
			out += " "
		}
		first = false
		switch t.Kind {
		case Ident:
			out += t.Str
		case Hash:
			out += "#" + t.Str
		case Number:
			out += strconv.FormatFloat(t.Num, 'g', -1, 64)
		case StringToken:
			out += t.Str
		}
	}
}
