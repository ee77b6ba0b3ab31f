package schemafu

// ArgConfig configures a field argument.
type ArgConfig struct {
	Type        TypeRef
	Default     interface{}
	Description string
	Deprecation string
	Extensions  map[string]interface{}
}

// ArgDef is an argument definition. It can be wrapped like any other type reference, in which case
// the wrapping applies to the argument's type.
type ArgDef struct {
	config ArgConfig
}

func (d *ArgDef) Kind() Kind { return KindArg }

func (d *ArgDef) Config() ArgConfig {
	return d.config
}

func Arg(cfg ArgConfig) *ArgDef {
	return &ArgDef{config: cfg}
}

func typedArg(name string, cfg []ArgConfig) *ArgDef {
	var c ArgConfig
	if len(cfg) > 0 {
		c = cfg[0]
	}
	c.Type = Ref(name)
	return &ArgDef{config: c}
}

func StringArg(cfg ...ArgConfig) *ArgDef  { return typedArg("String", cfg) }
func IntArg(cfg ...ArgConfig) *ArgDef     { return typedArg("Int", cfg) }
func FloatArg(cfg ...ArgConfig) *ArgDef   { return typedArg("Float", cfg) }
func IDArg(cfg ...ArgConfig) *ArgDef      { return typedArg("ID", cfg) }
func BooleanArg(cfg ...ArgConfig) *ArgDef { return typedArg("Boolean", cfg) }

// FinalArgConfig is an argument as it's about to be built. OnAddArg hooks may replace it.
type FinalArgConfig struct {
	ParentType string
	FieldName  string
	ArgName    string
	ArgConfig
}
