package schemafu

// ExtendTypeConfig adds fields and interfaces to an object or interface defined elsewhere. If the
// type is never defined, an object with only the extension's fields is created.
type ExtendTypeConfig struct {
	Type       string
	Definition func(t *ObjectDefinitionBlock)
}

type ExtendTypeDef struct {
	config ExtendTypeConfig
}

func ExtendType(cfg ExtendTypeConfig) *ExtendTypeDef {
	return &ExtendTypeDef{config: cfg}
}

func (d *ExtendTypeDef) Kind() Kind { return KindExtendObject }

// ExtendInputTypeConfig adds fields to an input object defined elsewhere.
type ExtendInputTypeConfig struct {
	Type       string
	Definition func(t *InputDefinitionBlock)
}

type ExtendInputTypeDef struct {
	config ExtendInputTypeConfig
}

func ExtendInputType(cfg ExtendInputTypeConfig) *ExtendInputTypeDef {
	return &ExtendInputTypeDef{config: cfg}
}

func (d *ExtendInputTypeDef) Kind() Kind { return KindExtendInputObject }
