package domain

// StructBacked is the placeholder value of a variable bound to a Struct instance.
// The symbol table replaces it with the rendered Struct.
const StructBacked = "\x00struct"

// Variable is a key/value assignment declared in the rakefile.
type Variable struct {
	Key   string
	Value string
}

// IsStructBacked reports whether the variable still holds the Struct placeholder.
func (v Variable) IsStructBacked() bool {
	return v.Value == StructBacked
}
