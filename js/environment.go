package js

// variableBinding is one (name, value) entry in an Environment's
// linear variable list.
type variableBinding struct {
	name  string
	value Value
	bound bool
}

// Environment is a scope frame: a flat list of variable bindings plus
// a link to the enclosing scope. Lookup is a linear scan of the local
// list, falling back to outer on miss — there is no hash map, matching
// the original runtime's Vec<(name, value)> design.
type Environment struct {
	variables []variableBinding
	outer     *Environment
}

// NewEnvironment creates a scope whose enclosing scope is outer (nil
// for the top-level/global scope).
func NewEnvironment(outer *Environment) *Environment {
	return &Environment{outer: outer}
}

// GetVariable resolves name in this scope, then recursively in outer
// scopes. ok is false if name is bound nowhere in the chain.
func (e *Environment) GetVariable(name string) (Value, bool) {
	for _, v := range e.variables {
		if v.name == name {
			return v.value, v.bound
		}
	}
	if e.outer != nil {
		return e.outer.GetVariable(name)
	}
	return Value{}, false
}

// AddVariable binds name in this scope, replacing any existing binding
// of the same name in this scope and otherwise appending a new one —
// this is how VariableDeclaration binds names in the current frame,
// shadowing outer bindings without touching them.
func (e *Environment) AddVariable(name string, value Value) {
	for i, v := range e.variables {
		if v.name == name {
			e.variables[i] = variableBinding{name: name, value: value, bound: true}
			return
		}
	}
	e.variables = append(e.variables, variableBinding{name: name, value: value, bound: true})
}

// UpdateVariable rebinds name in the nearest enclosing frame that
// already holds it, searching outward through outer scopes. It does
// nothing if name is unbound anywhere in the chain.
func (e *Environment) UpdateVariable(name string, value Value) {
	for i, v := range e.variables {
		if v.name == name {
			e.variables[i] = variableBinding{name: name, value: value, bound: true}
			return
		}
	}
	if e.outer != nil {
		e.outer.UpdateVariable(name, value)
	}
}
