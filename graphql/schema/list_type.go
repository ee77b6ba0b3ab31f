package schema

type ListType struct {
	Type Type
}

func NewListType(t Type) *ListType {
	return &ListType{
		Type: t,
	}
}

func (t *ListType) String() string {
	return "[" + t.Type.String() + "]"
}

func (t *ListType) IsInputType() bool {
	return t.Type.IsInputType()
}

func (t *ListType) IsOutputType() bool {
	return t.Type.IsOutputType()
}

func (t *ListType) IsSubTypeOf(other Type) bool {
	if list, ok := other.(*ListType); ok {
		return t.Type.IsSubTypeOf(list.Type)
	}
	return false
}

func (t *ListType) IsSameType(other Type) bool {
	if list, ok := other.(*ListType); ok {
		return t.Type.IsSameType(list.Type)
	}
	return false
}

func (t *ListType) Unwrap() Type {
	return t.Type
}

func IsListType(t Type) bool {
	_, ok := t.(*ListType)
	return ok
}
