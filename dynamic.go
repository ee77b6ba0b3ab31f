package schemafu

// Stage indicates why a definition is being run. Definitions run once while their types are being
// discovered and again when they're built.
type Stage int

const (
	StageWalk Stage = iota + 1
	StageBuild
)

func (s Stage) String() string {
	switch s {
	case StageWalk:
		return "walk"
	case StageBuild:
		return "build"
	}
	return "unknown"
}

type DynamicOutputMethodContext struct {
	// The block the method was invoked on, including any wrapping applied by its chain methods.
	Block    *OutputDefinitionBlock
	TypeName string
	Args     []interface{}
	Builder  Lens
	Stage    Stage
}

type DynamicOutputMethodConfig struct {
	Name    string
	Factory func(DynamicOutputMethodContext) error
}

// DynamicOutputMethodDef makes a method available to output definition blocks via Dynamic.
type DynamicOutputMethodDef struct {
	config DynamicOutputMethodConfig
}

func (d *DynamicOutputMethodDef) Kind() Kind { return KindDynamicOutputMethod }

func DynamicOutputMethod(cfg DynamicOutputMethodConfig) *DynamicOutputMethodDef {
	return &DynamicOutputMethodDef{config: cfg}
}

type DynamicInputMethodContext struct {
	Block    *InputDefinitionBlock
	TypeName string
	Args     []interface{}
	Builder  Lens
	Stage    Stage
}

type DynamicInputMethodConfig struct {
	Name    string
	Factory func(DynamicInputMethodContext) error
}

// DynamicInputMethodDef makes a method available to input definition blocks via Dynamic.
type DynamicInputMethodDef struct {
	config DynamicInputMethodConfig
}

func (d *DynamicInputMethodDef) Kind() Kind { return KindDynamicInputMethod }

func DynamicInputMethod(cfg DynamicInputMethodConfig) *DynamicInputMethodDef {
	return &DynamicInputMethodDef{config: cfg}
}

type DynamicOutputPropertyContext struct {
	Block    *OutputDefinitionBlock
	TypeName string
	Builder  Lens
	Stage    Stage
}

type DynamicOutputPropertyConfig struct {
	Name    string
	Factory func(DynamicOutputPropertyContext) (interface{}, error)
}

// DynamicOutputPropertyDef makes a value available to output definition blocks via Property.
type DynamicOutputPropertyDef struct {
	config DynamicOutputPropertyConfig
}

func (d *DynamicOutputPropertyDef) Kind() Kind { return KindDynamicOutputProperty }

func DynamicOutputProperty(cfg DynamicOutputPropertyConfig) *DynamicOutputPropertyDef {
	return &DynamicOutputPropertyDef{config: cfg}
}

// dynamicMethod is an entry in one of the dynamic method tables. Scalars with an AsMethod register
// entries that only carry the scalar's name.
type dynamicOutputMethod struct {
	def    *DynamicOutputMethodDef
	scalar string
}

type dynamicInputMethod struct {
	def    *DynamicInputMethodDef
	scalar string
}
