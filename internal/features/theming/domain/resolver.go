package domain

// Config is a string-keyed set of configuration values.
// A missing key means undefined and a nil value means null.
type Config map[string]any

// Lookup reports the value a configuration layer holds for a field.
type Lookup func(field string) (any, bool)

// Grouped is the lookup for a grouped configuration object.
// A field counts as set only when present, non-nil and not the empty string.
func Grouped(grouped Config) Lookup {
	return func(field string) (any, bool) {
		if grouped == nil {
			return nil, false
		}
		v, ok := grouped[field]
		if !ok || v == nil {
			return nil, false
		}
		if s, isString := v.(string); isString && s == "" {
			return nil, false
		}
		return v, true
	}
}

// Individual is the lookup for individually-named values.
// Any present key is returned, even when its value is nil.
func Individual(values Config) Lookup {
	return func(field string) (any, bool) {
		v, ok := values[field]
		return v, ok
	}
}

// Cascade evaluates the lookups in priority order and returns the first value found.
// When no layer holds the field the result is nil.
func Cascade(field string, lookups ...Lookup) any {
	for _, lookup := range lookups {
		if v, ok := lookup(field); ok {
			return v
		}
	}
	return nil
}

// Resolve returns the grouped value for field when it is set, otherwise individual.
func Resolve(field string, grouped Config, individual any) any {
	if v, ok := Grouped(grouped)(field); ok {
		return v
	}
	return individual
}

// Layers bundles the two host-supplied configuration sources.
type Layers struct {
	Grouped    Config `json:"bannerConfig,omitempty"`
	Individual Config `json:"values,omitempty"`
}

// Resolve looks field up through the grouped layer, then the individual layer.
func (l Layers) Resolve(field string) any {
	return Cascade(field, Grouped(l.Grouped), Individual(l.Individual))
}
