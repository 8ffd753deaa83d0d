package classifier

import (
	"strings"

	"go.trai.ch/rake/internal/core/domain"
	"go.trai.ch/rake/internal/core/ports"
)

// Scanner folds the facts of every line into a domain.Rakefile.
type Scanner struct {
	platform ports.Platform
}

// NewScanner creates a Scanner. The platform decides whether the conditional
// block guard opens a block.
func NewScanner(platform ports.Platform) *Scanner {
	return &Scanner{platform: platform}
}

type scanState struct {
	rf       *domain.Rakefile
	platform ports.Platform

	name     string
	depends  string
	inBlock  bool
	ignoring bool

	known map[string]bool
	types map[string]domain.StructDef
}

// Scan classifies src top to bottom. It never fails: lines that match no
// shape are skipped.
func (s *Scanner) Scan(src *domain.Source) *domain.Rakefile {
	st := &scanState{
		rf: &domain.Rakefile{
			Path:   src.Path,
			Digest: src.Digest,
		},
		platform: s.platform,
		known:    make(map[string]bool),
		types:    make(map[string]domain.StructDef),
	}

	for i, line := range strings.Split(src.Text, "\n") {
		for _, f := range Classify(line) {
			st.apply(i, f)
		}
	}

	return st.rf
}

func (st *scanState) apply(line int, f Fact) {
	switch f.Kind {
	case KindComment:
	case KindBlockEnd:
		if st.inBlock {
			st.setBlock(line, false)
		}
		st.ignoring = false
	case KindStructType:
		def := domain.StructDef{TypeName: f.Name, Fields: f.Items}
		st.types[f.Name] = def
		st.rf.Structs = append(st.rf.Structs, def)
	case KindAssign:
		st.rf.Variables = append(st.rf.Variables, domain.Variable{Key: f.Name, Value: f.Value})
		st.known[f.Name] = true
	case KindStructInstance:
		st.instantiate(f)
	case KindTaskHeader, KindIgnoreHeader:
		st.name = f.Name
		st.depends = ""
		if f.Kind == KindIgnoreHeader {
			st.ignoring = true
		}
	case KindDepHeader:
		st.name = f.Name
		st.depends = f.Value
	case KindBareDepHeader:
		st.name = f.Name
		st.depends = f.Value
		st.emit(line, domain.VerbNone, "")
	case KindStatement:
		st.emit(line, f.Verb, f.Params)
	case KindPlatformGuard:
		st.setBlock(line, !st.platform.Recognized())
	}
}

// instantiate binds a variable to an instance of a declared Struct type.
// The variable is registered with the struct-backed placeholder unless it is
// already known; inside a conditional block it is always registered.
func (st *scanState) instantiate(f Fact) {
	def, ok := st.types[f.Value]
	if !ok {
		return
	}
	st.rf.Structs = append(st.rf.Structs, def.Instantiate(f.Name, f.Items))
	if !st.known[f.Name] || st.inBlock {
		st.rf.Variables = append(st.rf.Variables, domain.Variable{Key: f.Name, Value: domain.StructBacked})
		st.known[f.Name] = true
	}
}

func (st *scanState) emit(line int, verb domain.Verb, params string) {
	if st.ignoring {
		return
	}
	st.rf.Tasks = append(st.rf.Tasks, domain.Task{
		Name:       st.name,
		Depends:    st.depends,
		Command:    verb,
		Params:     params,
		SourceLine: line,
	})
}

func (st *scanState) setBlock(line int, inBlock bool) {
	st.inBlock = inBlock
	st.rf.Blocks = append(st.rf.Blocks, domain.BlockTransition{Line: line, InBlock: inBlock})
}
