package js

// Parser is a top-down parser over the Lexer's token stream, with a
// single token of lookahead (peek).
type Parser struct {
	lex    *Lexer
	peeked *Token
}

// NewParser creates a parser over src.
func NewParser(src string) *Parser {
	return &Parser{lex: NewLexer(src)}
}

// ParseProgram parses src to a Program, per spec §4.4:
// Program := SourceElement*.
func ParseProgram(src string) *Program {
	p := NewParser(src)
	var body []*Node
	for {
		n := p.sourceElement()
		if n == nil {
			return &Program{Body: body}
		}
		body = append(body, n)
	}
}

func (p *Parser) next() Token {
	if p.peeked != nil {
		t := *p.peeked
		p.peeked = nil
		return t
	}
	return p.lex.Next()
}

func (p *Parser) peek() Token {
	if p.peeked == nil {
		t := p.lex.Next()
		p.peeked = &t
	}
	return *p.peeked
}

func (p *Parser) peekIsPunc(r rune) bool {
	t := p.peek()
	return t.Kind == Punctuator && t.Punc == r
}

func (p *Parser) peekIsKeyword(word string) bool {
	t := p.peek()
	return t.Kind == Keyword && t.Str == word
}

// sourceElement parses SourceElement := FunctionDeclaration | Statement.
func (p *Parser) sourceElement() *Node {
	if p.peek().Kind == EOF {
		return nil
	}
	if p.peekIsKeyword("function") {
		return p.functionDeclaration()
	}
	return p.statement()
}

func (p *Parser) functionDeclaration() *Node {
	p.next() // 'function'
	id := p.identifier()

	var params []*Node
	if p.peekIsPunc('(') {
		p.next()
		for !p.peekIsPunc(')') {
			params = append(params, p.identifier())
			if p.peekIsPunc(',') {
				p.next()
			}
		}
		p.next() // ')'
	}

	body := p.blockStatement()
	return &Node{Kind: FunctionDeclarationNode, ID: id, Params: params, Body: body.Body}
}

func (p *Parser) identifier() *Node {
	t := p.next()
	if t.Kind != Identifier {
		return nil
	}
	return &Node{Kind: IdentifierNode, StrValue: t.Str}
}

func (p *Parser) blockStatement() *Node {
	if !p.peekIsPunc('{') {
		return &Node{Kind: BlockStatementNode}
	}
	p.next() // '{'
	var body []*Node
	for !p.peekIsPunc('}') && p.peek().Kind != EOF {
		n := p.sourceElement()
		if n == nil {
			break
		}
		body = append(body, n)
	}
	if p.peekIsPunc('}') {
		p.next()
	}
	return &Node{Kind: BlockStatementNode, Body: body}
}

// statement parses Statement := VariableDeclaration ';'? |
// ReturnStatement ';'? | ExpressionStatement ';'?.
func (p *Parser) statement() *Node {
	var node *Node
	switch {
	case p.peekIsKeyword("var"):
		node = p.variableDeclaration()
	case p.peekIsKeyword("return"):
		node = p.returnStatement()
	default:
		node = &Node{Kind: ExpressionStatementNode, Expression: p.assignmentExpression()}
	}

	if p.peekIsPunc(';') {
		p.next()
	}
	return node
}

// variableDeclaration parses 'var' Identifier ('=' AssignmentExpression)?.
func (p *Parser) variableDeclaration() *Node {
	p.next() // 'var'
	id := p.identifier()

	var init *Node
	if p.peekIsPunc('=') {
		p.next()
		init = p.assignmentExpression()
	}

	decl := &Node{Kind: VariableDeclaratorNode, ID: id, Init: init}
	return &Node{Kind: VariableDeclarationNode, Declarations: []*Node{decl}}
}

func (p *Parser) returnStatement() *Node {
	p.next() // 'return'
	var arg *Node
	if !p.peekIsPunc(';') && p.peek().Kind != EOF && !p.peekIsPunc('}') {
		arg = p.assignmentExpression()
	}
	return &Node{Kind: ReturnStatementNode, Argument: arg}
}

// assignmentExpression parses AdditiveExpression ('=' AssignmentExpression)?,
// right-associative.
func (p *Parser) assignmentExpression() *Node {
	left := p.additiveExpression()

	if p.peekIsPunc('=') {
		p.next()
		right := p.assignmentExpression()
		return &Node{Kind: AssignmentExpressionNode, Operator: '=', Left: left, Right: right}
	}
	return left
}

// additiveExpression parses LeftHandSide (('+'|'-') AssignmentExpression)?,
// right-associative per spec §9's resolved open question.
func (p *Parser) additiveExpression() *Node {
	left := p.leftHandSideExpression()

	t := p.peek()
	if t.Kind == Punctuator && (t.Punc == '+' || t.Punc == '-') {
		p.next()
		right := p.assignmentExpression()
		return &Node{Kind: AdditiveExpressionNode, Operator: t.Punc, Left: left, Right: right}
	}
	return left
}

// leftHandSideExpression parses MemberExpression ('(' Arguments ')')?.
func (p *Parser) leftHandSideExpression() *Node {
	member := p.memberExpression()

	if p.peekIsPunc('(') {
		p.next()
		var args []*Node
		for !p.peekIsPunc(')') {
			args = append(args, p.assignmentExpression())
			if p.peekIsPunc(',') {
				p.next()
			}
		}
		p.next() // ')'
		return &Node{Kind: CallExpressionNode, Callee: member, Arguments: args}
	}
	return member
}

// memberExpression parses PrimaryExpression ('.' Identifier)*.
func (p *Parser) memberExpression() *Node {
	object := p.primaryExpression()

	for p.peekIsPunc('.') {
		p.next()
		prop := p.identifier()
		object = &Node{Kind: MemberExpressionNode, Object: object, Property: prop}
	}
	return object
}

// primaryExpression parses Identifier | StringLiteral | NumericLiteral.
func (p *Parser) primaryExpression() *Node {
	t := p.next()
	switch t.Kind {
	case Identifier:
		return &Node{Kind: IdentifierNode, StrValue: t.Str}
	case StringLiteral:
		return &Node{Kind: StringLiteralNode, StrValue: t.Str}
	case Number:
		return &Node{Kind: NumericLiteralNode, NumValue: t.Num}
	default:
		return nil
	}
}
