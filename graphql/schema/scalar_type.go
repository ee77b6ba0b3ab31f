package schema

type ScalarType struct {
	Name        string
	Description string
	Directives  []*Directive
	Extensions  map[string]interface{}

	// Should return nil if coercion is impossible.
	VariableValueCoercion func(interface{}) interface{}

	// Should return nil if coercion is impossible.
	ResultCoercion func(interface{}) interface{}
}

func (t *ScalarType) String() string {
	return t.Name
}

func (t *ScalarType) IsInputType() bool {
	return true
}

func (t *ScalarType) IsOutputType() bool {
	return true
}

func (t *ScalarType) IsSubTypeOf(other Type) bool {
	return t.IsSameType(other)
}

func (t *ScalarType) IsSameType(other Type) bool {
	return t == other
}

func (t *ScalarType) TypeName() string {
	return t.Name
}

func IsScalarType(t Type) bool {
	_, ok := t.(*ScalarType)
	return ok
}
