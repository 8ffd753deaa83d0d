package domain

import "strings"

// StructDef is either a Struct type declaration (BoundVariable empty) or an
// instance of that type bound to a variable.
type StructDef struct {
	TypeName      string
	Fields        []string
	BoundVariable string
	Values        []string
}

// IsInstance reports whether the definition is bound to a variable.
func (s StructDef) IsInstance() bool {
	return s.BoundVariable != ""
}

// Instantiate returns an instance of the declared type bound to variable.
func (s StructDef) Instantiate(variable string, values []string) StructDef {
	return StructDef{
		TypeName:      s.TypeName,
		Fields:        s.Fields,
		BoundVariable: variable,
		Values:        values,
	}
}

// JSON renders the instance as {"field":value,...} in field order.
// Values are emitted verbatim. Fields and values are paired by index up to the
// shorter of the two lists.
func (s StructDef) JSON() string {
	n := min(len(s.Fields), len(s.Values))

	var b strings.Builder
	b.WriteByte('{')
	for i := range n {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.TrimPrefix(s.Fields[i], ":"))
		b.WriteString(`":`)
		b.WriteString(s.Values[i])
	}
	b.WriteByte('}')
	return b.String()
}
