package domain

// CandidateRakefiles lists the file names searched for when no rakefile is given.
var CandidateRakefiles = []string{"rakefile", "Rakefile", "rakefile.rb", "Rakefile.rb"}

// DefaultTask is requested when no task names are given.
const DefaultTask = "default"

// Source is the raw content of a located rakefile.
type Source struct {
	Path   string
	Digest string
	Text   string
}

// BlockTransition records a change of the conditional block flag.
type BlockTransition struct {
	Line    int
	InBlock bool
}

// Rakefile holds everything the classifier extracted from a task file, in file order.
type Rakefile struct {
	Path      string
	Digest    string
	Variables []Variable
	Structs   []StructDef
	Tasks     []Task
	Blocks    []BlockTransition
}

// TaskNames returns the distinct task names in order of first appearance.
func (r *Rakefile) TaskNames() []string {
	seen := make(map[string]bool, len(r.Tasks))
	names := make([]string, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		if t.Name == "" || seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		names = append(names, t.Name)
	}
	return names
}

// DependencyOf returns the first declared dependency of the named task.
func (r *Rakefile) DependencyOf(name string) string {
	for _, t := range r.Tasks {
		if t.Name == name && t.HasDependency() {
			return t.Depends
		}
	}
	return ""
}
