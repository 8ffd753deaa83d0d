package domain

// Verb identifies the built-in command a task record dispatches to.
type Verb string

const (
	// VerbNone marks the record emitted for a bare dependency header. It does nothing.
	VerbNone Verb = ""
	// VerbPrintText writes its parameters to standard output.
	VerbPrintText Verb = "print-text"
	// VerbRunShell spawns an external process.
	VerbRunShell Verb = "run-shell"
	// VerbSleepMillis suspends execution for a number of milliseconds.
	VerbSleepMillis Verb = "sleep-millis"
	// VerbPrintWorkingDir writes the current working directory.
	VerbPrintWorkingDir Verb = "print-working-dir"
	// VerbChangeWorkingDir changes the working directory.
	VerbChangeWorkingDir Verb = "change-working-dir"
	// VerbDeleteFile removes a file if it exists.
	VerbDeleteFile Verb = "delete-file"
	// VerbCopyFile copies a file.
	VerbCopyFile Verb = "copy-file"
	// VerbWriteFile is reserved and has no effect.
	VerbWriteFile Verb = "write-file"
)

// String returns the verb name.
func (v Verb) String() string {
	if v == VerbNone {
		return "none"
	}
	return string(v)
}

// Task is a single command record of a task body.
// A task with several statements is represented by several records sharing Name and Depends.
type Task struct {
	Name       string
	Depends    string
	Command    Verb
	Params     string
	SourceLine int
}

// HasDependency reports whether the record declares a dependency.
func (t Task) HasDependency() bool {
	return t.Depends != ""
}

// WithParams returns a copy of the record with its parameters replaced.
func (t Task) WithParams(params string) Task {
	t.Params = params
	return t
}
