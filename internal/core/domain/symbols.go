package domain

// SymbolTable maps variable keys to their effective values.
type SymbolTable map[string]string

// Lookup returns the value of key, or the empty string when it is not defined.
func (t SymbolTable) Lookup(key string) string {
	return t[key]
}
