package schemafu

// Lens is the view of a build that plugins and dynamic members get. It only allows inspecting and
// adding types and reading and writing config options.
type Lens struct {
	HasType         func(name string) bool
	AddType         func(def Def) error
	HasConfigOption func(key string) bool
	GetConfigOption func(key string) interface{}
	SetConfigOption func(key string, value interface{}) error
}

func (b *Builder) newLens() Lens {
	return Lens{
		HasType: b.HasType,
		AddType: b.AddType,
		HasConfigOption: func(key string) bool {
			_, ok := b.finalConfig.Option(key)
			return ok
		},
		GetConfigOption: func(key string) interface{} {
			v, _ := b.finalConfig.Option(key)
			return v
		},
		SetConfigOption: func(key string, value interface{}) error {
			cfg, err := b.finalConfig.WithOption(key, value)
			if err != nil {
				return err
			}
			b.finalConfig = cfg
			return nil
		},
	}
}
