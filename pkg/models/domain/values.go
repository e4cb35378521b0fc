package domain

// NamedValue is a single labeled quantity in a report table. A nil Value
// means the quantity could not be resolved from the solved problem.
type NamedValue struct {
	Name  string
	Value *float64
	Unit  string
}

// NamedValues is an ordered label -> (value, unit) table. Insertion order is
// preserved for rendering; setting an existing label overwrites it in place.
type NamedValues struct {
	entries []NamedValue
	index   map[string]int
}

func (nv *NamedValues) Set(name string, value *float64, unit string) {
	if nv.index == nil {
		nv.index = make(map[string]int)
	}
	if i, ok := nv.index[name]; ok {
		nv.entries[i].Value = value
		nv.entries[i].Unit = unit
		return
	}
	nv.index[name] = len(nv.entries)
	nv.entries = append(nv.entries, NamedValue{Name: name, Value: value, Unit: unit})
}

func (nv *NamedValues) Get(name string) (NamedValue, bool) {
	i, ok := nv.index[name]
	if !ok {
		return NamedValue{}, false
	}
	return nv.entries[i], true
}

// Items returns the entries in insertion order.
func (nv *NamedValues) Items() []NamedValue {
	return nv.entries
}

func (nv *NamedValues) Len() int {
	return len(nv.entries)
}

// Float64 returns a pointer to v, for building NamedValues literals.
func Float64(v float64) *float64 {
	return &v
}
