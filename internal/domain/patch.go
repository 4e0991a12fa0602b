package domain

// PatchField is a single attribute assignment in a Patch.
type PatchField struct {
	Name  string
	Value any
}

// Patch is a sparse, ordered set of attribute updates. Fields keep the order
// in which they were first set; setting a name again replaces its value in place.
type Patch struct {
	fields []PatchField
}

// Set assigns value to name.
func (p *Patch) Set(name string, value any) {
	for i := range p.fields {
		if p.fields[i].Name == name {
			p.fields[i].Value = value
			return
		}
	}
	p.fields = append(p.fields, PatchField{Name: name, Value: value})
}

// Get returns the value set for name.
func (p Patch) Get(name string) (any, bool) {
	for _, f := range p.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Has reports whether name is set.
func (p Patch) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Len returns the number of fields.
func (p Patch) Len() int { return len(p.fields) }

// IsEmpty reports whether the patch carries no fields.
func (p Patch) IsEmpty() bool { return len(p.fields) == 0 }

// Fields returns a copy of the fields in insertion order.
func (p Patch) Fields() []PatchField {
	out := make([]PatchField, len(p.fields))
	copy(out, p.fields)
	return out
}
