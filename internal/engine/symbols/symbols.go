// Package symbols builds the variable table of a rakefile and substitutes
// placeholder tokens in command parameters.
package symbols

import (
	"slices"
	"strings"

	"go.trai.ch/rake/internal/core/domain"
)

// Build collapses variable emissions into a table where the last declaration
// of a key wins. Struct-backed variables take the JSON rendering of the last
// struct instance bound to them.
func Build(vars []domain.Variable, structs []domain.StructDef) domain.SymbolTable {
	table := make(domain.SymbolTable, len(vars))
	for _, v := range slices.Backward(vars) {
		if _, seen := table[v.Key]; seen {
			continue
		}
		table[v.Key] = v.Value
	}

	for key, value := range table {
		if value != domain.StructBacked {
			continue
		}
		table[key] = renderBound(key, structs)
	}

	return table
}

func renderBound(key string, structs []domain.StructDef) string {
	for _, def := range slices.Backward(structs) {
		if def.BoundVariable == key {
			return def.JSON()
		}
	}
	return ""
}

const (
	placeholderPrefix = "#{"
	placeholderSuffix = "}"
)

// Substitute replaces every whole space-separated token of the form #{name}
// with its table value. Unknown names render as the empty string.
func Substitute(params string, table domain.SymbolTable) string {
	if !strings.Contains(params, placeholderPrefix) {
		return params
	}

	tokens := strings.Split(params, " ")
	for i, tok := range tokens {
		if name, ok := placeholderName(tok); ok {
			tokens[i] = table.Lookup(name)
		}
	}
	return strings.Join(tokens, " ")
}

// SubstituteAll returns a copy of tasks with every parameter string substituted.
func SubstituteAll(tasks []domain.Task, table domain.SymbolTable) []domain.Task {
	out := make([]domain.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.WithParams(Substitute(t.Params, table))
	}
	return out
}

func placeholderName(tok string) (string, bool) {
	if len(tok) <= len(placeholderPrefix)+len(placeholderSuffix) {
		return "", false
	}
	if !strings.HasPrefix(tok, placeholderPrefix) || !strings.HasSuffix(tok, placeholderSuffix) {
		return "", false
	}
	name := tok[len(placeholderPrefix) : len(tok)-len(placeholderSuffix)]
	if strings.ContainsAny(name, "{}") {
		return "", false
	}
	return name, true
}
