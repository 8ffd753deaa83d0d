// Package classifier turns rakefile lines into structured facts and folds them
// into the variables, structs and task records of a domain.Rakefile.
package classifier

import (
	"regexp"
	"strings"

	"go.trai.ch/rake/internal/core/domain"
)

// Kind identifies the line shape a Fact was produced from.
type Kind int

const (
	// KindComment is a line starting with '#'.
	KindComment Kind = iota
	// KindBlockEnd is a line that is exactly "end".
	KindBlockEnd
	// KindStructType is "<name> = ...Struct.new(<fields>)".
	KindStructType
	// KindAssign is `<key> = ..."<value>"`.
	KindAssign
	// KindStructInstance is "<var> = <Type>.new(<values>)".
	KindStructInstance
	// KindTaskHeader is "task :<name> do".
	KindTaskHeader
	// KindDepHeader is "task :<name> => [:<dep>] do".
	KindDepHeader
	// KindBareDepHeader is "task :<name> => [:<dep>]" without a body.
	KindBareDepHeader
	// KindIgnoreHeader is "task :<name> do #[ignore]".
	KindIgnoreHeader
	// KindStatement is a built-in command statement.
	KindStatement
	// KindPlatformGuard is "if OS.<platform>? then".
	KindPlatformGuard
)

var kindNames = map[Kind]string{
	KindComment:        "comment",
	KindBlockEnd:       "block-end",
	KindStructType:     "struct-type",
	KindAssign:         "assign",
	KindStructInstance: "struct-instance",
	KindTaskHeader:     "task-header",
	KindDepHeader:      "dep-header",
	KindBareDepHeader:  "bare-dep-header",
	KindIgnoreHeader:   "ignore-header",
	KindStatement:      "statement",
	KindPlatformGuard:  "platform-guard",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Fact is one recognized shape of a line.
//
// Name holds the variable key, struct type, bound variable or task name.
// Value holds the assigned value, the instantiated type or the dependency.
// Items holds struct fields or values. Verb and Params describe a statement.
type Fact struct {
	Kind   Kind
	Name   string
	Value  string
	Items  []string
	Verb   domain.Verb
	Params string
}

var (
	structTypeRe     = regexp.MustCompile(`^\s*([A-Za-z_]\w*)\s*=\s*.*\bStruct\.new\s*(\(.*\))`)
	structInstanceRe = regexp.MustCompile(`^\s*([A-Za-z_]\w*)\s*=\s*([A-Z]\w*)\.new\s*(\(.*\))`)
	assignRe         = regexp.MustCompile(`^\s*([A-Za-z_]\w*)\s*=(?:[^=>~].*)?"(.*)"`)

	taskHeaderRe  = regexp.MustCompile(`^\s*task\s+:(\w+)\s+do\b`)
	depHeaderRe   = regexp.MustCompile(`^\s*task\s+:(\w+)\s*=>\s*\[?\s*:?(\w+)(?:\s*,\s*:?\w+)*\s*\]?\s*do\b`)
	bareDepRe     = regexp.MustCompile(`^\s*task\s+:(\w+)\s*=>\s*\[?\s*:?(\w+)(?:\s*,\s*:?\w+)*\s*\]?\s*$`)
	ignoreRe      = regexp.MustCompile(`^\s*task\s+:(\w+)\b.*\bdo\s*#\[ignore\]`)
	platformGuard = regexp.MustCompile(`^\s*if\s+OS\.\w+\?\s+then\b`)

	putsTextRe   = regexp.MustCompile(`^\s*puts\s*\(?\s*"(.*)"`)
	putsBareRe   = regexp.MustCompile(`^\s*puts\s*$`)
	putsJSONRe   = regexp.MustCompile(`^\s*puts\s*\(?\s*(\w+)\.to_h\.to_json\b`)
	sleepRe      = regexp.MustCompile(`^\s*sleep\s*\(?\s*([^\s()]+)\s*\)?\s*$`)
	pwdRe        = regexp.MustCompile(`^\s*(?:puts\s*\(?\s*)?Dir\.pwd\b`)
	chdirLitRe   = regexp.MustCompile(`^\s*Dir\.chdir\s*\(?\s*"(.*)"`)
	chdirExprRe  = regexp.MustCompile(`^\s*Dir\.chdir\s*\(\s*(\w+)\s*\)`)
	shRe         = regexp.MustCompile(`^\s*sh\s*\(?\s*"(.*)"`)
	rubyRe       = regexp.MustCompile(`^\s*ruby\s*\(?\s*"(.*)"`)
	deleteLitRe  = regexp.MustCompile(`^\s*File\.delete\b.*"(.*)"`)
	deleteExprRe = regexp.MustCompile(`^\s*File\.delete\s*\(\s*(\w+)\s*\)`)
	copyRe       = regexp.MustCompile(`^\s*FileUtils\.(?:copy|cp)\s*\(\s*([^,]+?)\s*,\s*([^)]+?)\s*\)`)
	writeRe      = regexp.MustCompile(`^\s*File\.write\s*\((.*)\)`)
)

// Classify returns every shape the line matches, in a fixed order.
// A line may match several shapes; a comment line matches nothing else.
func Classify(line string) []Fact {
	line = strings.TrimRight(line, " \t\r")
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}
	if strings.HasPrefix(trimmed, "#") {
		return []Fact{{Kind: KindComment}}
	}

	var facts []Fact

	if line == "end" {
		facts = append(facts, Fact{Kind: KindBlockEnd})
	}

	structShape := false
	if m := structTypeRe.FindStringSubmatch(line); m != nil {
		structShape = true
		facts = append(facts, Fact{Kind: KindStructType, Name: m[1], Items: parseList(m[2])})
	}
	if m := structInstanceRe.FindStringSubmatch(line); m != nil && m[2] != "Struct" {
		structShape = true
		facts = append(facts, Fact{Kind: KindStructInstance, Name: m[1], Value: m[2], Items: parseList(m[3])})
	}
	if !structShape {
		if m := assignRe.FindStringSubmatch(line); m != nil {
			facts = append(facts, Fact{Kind: KindAssign, Name: m[1], Value: strings.TrimSpace(m[2])})
		}
	}

	facts = append(facts, classifyHeader(line)...)
	facts = append(facts, classifyStatements(line)...)

	if platformGuard.MatchString(line) {
		facts = append(facts, Fact{Kind: KindPlatformGuard})
	}

	return facts
}

func classifyHeader(line string) []Fact {
	var facts []Fact
	if m := taskHeaderRe.FindStringSubmatch(line); m != nil {
		facts = append(facts, Fact{Kind: KindTaskHeader, Name: m[1]})
	}
	if m := depHeaderRe.FindStringSubmatch(line); m != nil {
		facts = append(facts, Fact{Kind: KindDepHeader, Name: m[1], Value: m[2]})
	}
	if m := bareDepRe.FindStringSubmatch(line); m != nil {
		facts = append(facts, Fact{Kind: KindBareDepHeader, Name: m[1], Value: m[2]})
	}
	if m := ignoreRe.FindStringSubmatch(line); m != nil {
		facts = append(facts, Fact{Kind: KindIgnoreHeader, Name: m[1]})
	}
	return facts
}

func classifyStatements(line string) []Fact {
	var facts []Fact
	stmt := func(verb domain.Verb, params string) {
		facts = append(facts, Fact{Kind: KindStatement, Verb: verb, Params: params})
	}

	putsText := false
	if m := putsTextRe.FindStringSubmatch(line); m != nil {
		putsText = true
		stmt(domain.VerbPrintText, m[1])
	}
	if !putsText && putsBareRe.MatchString(line) {
		stmt(domain.VerbPrintText, "")
	}
	if m := putsJSONRe.FindStringSubmatch(line); m != nil {
		stmt(domain.VerbPrintText, placeholder(m[1]))
	}
	if m := sleepRe.FindStringSubmatch(line); m != nil {
		stmt(domain.VerbSleepMillis, m[1])
	}
	if pwdRe.MatchString(line) {
		stmt(domain.VerbPrintWorkingDir, "")
	}
	if m := chdirLitRe.FindStringSubmatch(line); m != nil {
		stmt(domain.VerbChangeWorkingDir, m[1])
	} else if m := chdirExprRe.FindStringSubmatch(line); m != nil {
		stmt(domain.VerbChangeWorkingDir, placeholder(m[1]))
	}
	if m := shRe.FindStringSubmatch(line); m != nil {
		stmt(domain.VerbRunShell, m[1])
	}
	if m := rubyRe.FindStringSubmatch(line); m != nil {
		stmt(domain.VerbRunShell, "ruby "+m[1])
	}
	if m := deleteLitRe.FindStringSubmatch(line); m != nil {
		stmt(domain.VerbDeleteFile, m[1])
	} else if m := deleteExprRe.FindStringSubmatch(line); m != nil {
		stmt(domain.VerbDeleteFile, placeholder(m[1]))
	}
	if m := copyRe.FindStringSubmatch(line); m != nil {
		stmt(domain.VerbCopyFile, copyOperand(m[1])+" "+copyOperand(m[2]))
	}
	if m := writeRe.FindStringSubmatch(line); m != nil {
		stmt(domain.VerbWriteFile, strings.TrimSpace(m[1]))
	}
	return facts
}

// parseList splits a parenthesized, comma-separated argument list.
// Parens are stripped from the first and last items, quotes from every item,
// and blank items are dropped.
func parseList(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if i == 0 {
			p = strings.TrimSpace(strings.TrimPrefix(p, "("))
		}
		if i == len(parts)-1 {
			p = strings.TrimSpace(strings.TrimSuffix(p, ")"))
		}
		p = unquote(p)
		if p == "" {
			continue
		}
		items = append(items, p)
	}
	return items
}

func copyOperand(arg string) string {
	if len(arg) >= 2 && arg[0] == '"' && arg[len(arg)-1] == '"' {
		return unquote(arg)
	}
	return placeholder(arg)
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func placeholder(name string) string {
	return "#{" + name + "}"
}
