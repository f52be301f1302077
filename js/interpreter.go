package js

import (
	"fmt"

	"github.com/pinhole-web/pinhole/dom"
)

// function is one registered FunctionDeclaration: name, parameter
// identifier nodes, and body statements.
type function struct {
	id     string
	params []*Node
	body   []*Node
}

// Runtime evaluates a Program against a DOM document, per spec §4.4.
// Functions are a linearly-scanned table (a later declaration with the
// same name shadows an earlier one only by appearing later in the
// scan, per spec §9's resolved open question); there is no hoisting.
type Runtime struct {
	document  *dom.Node
	functions []function
	env       *Environment
}

// NewRuntime creates a runtime bound to document; document.getElementById
// calls resolve against it.
func NewRuntime(document *dom.Node) *Runtime {
	return &Runtime{document: document, env: NewEnvironment(nil)}
}

// Execute evaluates program.Body in source order against the runtime's
// top-level environment, discarding each statement's result.
func (r *Runtime) Execute(program *Program) {
	for _, n := range program.Body {
		r.eval(n, r.env)
	}
}

// eval evaluates node in env. A nil return means "no value" (the
// original's None), distinct from a Value zero-value.
func (r *Runtime) eval(node *Node, env *Environment) *Value {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case ExpressionStatementNode:
		return r.eval(node.Expression, env)

	case AdditiveExpressionNode:
		left := r.eval(node.Left, env)
		right := r.eval(node.Right, env)
		if left == nil || right == nil {
			return nil
		}
		var result Value
		if node.Operator == '+' {
			result = Add(*left, *right)
		} else {
			result = Sub(*left, *right)
		}
		return &result

	case AssignmentExpressionNode:
		if node.Operator != '=' {
			return nil
		}
		if node.Left.Kind == IdentifierNode {
			newValue := r.eval(node.Right, env)
			if newValue != nil {
				env.UpdateVariable(node.Left.StrValue, *newValue)
			}
			return nil
		}
		leftValue := r.eval(node.Left, env)
		if leftValue != nil && leftValue.Kind == HtmlElementValue && leftValue.HasProperty && leftValue.Property == "textContent" {
			rightValue := r.eval(node.Right, env)
			text := ""
			if rightValue != nil {
				text = rightValue.Text()
			}
			setTextContent(leftValue.Element, text)
		}
		return nil

	case MemberExpressionNode:
		objVal := r.eval(node.Object, env)
		propVal := r.eval(node.Property, env)
		if objVal == nil || propVal == nil {
			return nil
		}
		if objVal.Kind == HtmlElementValue && !objVal.HasProperty {
			result := Value{Kind: HtmlElementValue, Element: objVal.Element, Property: propVal.Text(), HasProperty: true}
			return &result
		}
		result := Value{Kind: StringValue, Str: objVal.Text() + "." + propVal.Text()}
		return &result

	case NumericLiteralNode:
		result := Value{Kind: NumberValue, Num: node.NumValue}
		return &result

	case VariableDeclarationNode:
		for _, d := range node.Declarations {
			r.eval(d, env)
		}
		return nil

	case VariableDeclaratorNode:
		if node.ID != nil {
			init := r.eval(node.Init, env)
			var v Value
			if init != nil {
				v = *init
			}
			env.AddVariable(node.ID.StrValue, v)
		}
		return nil

	case IdentifierNode:
		if v, ok := env.GetVariable(node.StrValue); ok {
			return &v
		}
		// Unbound identifiers become their own name as a string — this
		// is how bare names like "document" resolve to callee strings.
		result := Value{Kind: StringValue, Str: node.StrValue}
		return &result

	case StringLiteralNode:
		result := Value{Kind: StringValue, Str: node.StrValue}
		return &result

	case BlockStatementNode:
		var result *Value
		for _, stmt := range node.Body {
			result = r.eval(stmt, env)
		}
		return result

	case ReturnStatementNode:
		return r.eval(node.Argument, env)

	case FunctionDeclarationNode:
		idVal := r.eval(node.ID, env)
		if idVal != nil && idVal.Kind == StringValue {
			r.functions = append(r.functions, function{id: idVal.Str, params: node.Params, body: node.Body})
		}
		return nil

	case CallExpressionNode:
		return r.evalCall(node, env)
	}
	return nil
}

// evalCall implements CallExpression per spec §4.4: a fresh scope
// whose outer is the caller's env, the document.getElementById DOM
// binding, and linear function-table dispatch for everything else.
func (r *Runtime) evalCall(node *Node, env *Environment) *Value {
	newEnv := NewEnvironment(env)

	calleeVal := r.eval(node.Callee, newEnv)
	if calleeVal == nil {
		return nil
	}

	if calleeVal.Kind == StringValue && calleeVal.Str == "document.getElementById" {
		if len(node.Arguments) == 0 {
			return nil
		}
		argVal := r.eval(node.Arguments[0], newEnv)
		if argVal == nil {
			return nil
		}
		win := dom.NewWindow(r.document)
		el := win.GetElementByID(argVal.Text())
		if el == nil {
			return nil
		}
		result := Value{Kind: HtmlElementValue, Element: el}
		return &result
	}

	var fn *function
	for i := range r.functions {
		if r.functions[i].id == calleeVal.Str {
			fn = &r.functions[i]
		}
	}
	if fn == nil {
		panic(fmt.Sprintf("function %q doesn't exist", calleeVal.Str))
	}

	if len(node.Arguments) != len(fn.params) {
		panic(fmt.Sprintf("function %q called with %d arguments, wants %d", fn.id, len(node.Arguments), len(fn.params)))
	}

	for i, argNode := range node.Arguments {
		paramVal := r.eval(fn.params[i], newEnv)
		argVal := r.eval(argNode, newEnv)
		if paramVal != nil && paramVal.Kind == StringValue && argVal != nil {
			newEnv.AddVariable(paramVal.Str, *argVal)
		}
	}

	return r.evalBody(fn.body, newEnv)
}

func (r *Runtime) evalBody(body []*Node, env *Environment) *Value {
	var result *Value
	for _, stmt := range body {
		result = r.eval(stmt, env)
	}
	return result
}

// setTextContent replaces el's children with a single Text node
// holding text, the DOM mutation textContent assignment performs.
func setTextContent(el *dom.Node, text string) {
	if el == nil {
		return
	}
	el.FirstChild = nil
	el.LastChild = nil
	el.AppendChild(dom.NewText(text))
}
