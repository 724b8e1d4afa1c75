package gate

// Variant is the closed set of things shnote can be asked to do.
// Each implementation carries exactly the fields its execution needs.
type Variant interface {
	// Name is the subcommand that produced the variant.
	Name() string
	variant()
}

// Interpreter distinguishes the two script runtimes.
type Interpreter int

const (
	Python Interpreter = iota
	Node
)

func (i Interpreter) String() string {
	if i == Node {
		return "node"
	}
	return "python"
}

// Shell runs Command through the configured shell.
type Shell struct {
	Command []string
}

// ScriptInline runs Code passed on the command line (py -c / node -c).
type ScriptInline struct {
	Interpreter Interpreter
	Code        string
	Args        []string
}

// ScriptFile runs an existing, readable script file (py -f / node -f).
type ScriptFile struct {
	Interpreter Interpreter
	Path        string
	Args        []string
}

// ScriptStdin runs program text captured from standard input (py --stdin / node --stdin).
type ScriptStdin struct {
	Interpreter Interpreter
	Script      []byte
	Args        []string
}

// PipPassthrough forwards Args to `python -m pip`.
type PipPassthrough struct {
	Args []string
}

// NpmPassthrough forwards Args to npm.
type NpmPassthrough struct {
	Args []string
}

// NpxPassthrough forwards Args to npx.
type NpxPassthrough struct {
	Args []string
}

// PueuePassthrough forwards Args to pueue or pueued.
type PueuePassthrough struct {
	Binary string
	Args   []string
}

// NonExecution is a management command that never spawns user programs.
type NonExecution struct {
	Command string
}

func (Shell) Name() string            { return "run" }
func (v ScriptInline) Name() string   { return scriptName(v.Interpreter) }
func (v ScriptFile) Name() string     { return scriptName(v.Interpreter) }
func (v ScriptStdin) Name() string    { return scriptName(v.Interpreter) }
func (PipPassthrough) Name() string   { return "pip" }
func (NpmPassthrough) Name() string   { return "npm" }
func (NpxPassthrough) Name() string   { return "npx" }
func (PueuePassthrough) Name() string { return "run" }
func (v NonExecution) Name() string   { return v.Command }

func (Shell) variant()            {}
func (ScriptInline) variant()     {}
func (ScriptFile) variant()       {}
func (ScriptStdin) variant()      {}
func (PipPassthrough) variant()   {}
func (NpmPassthrough) variant()   {}
func (NpxPassthrough) variant()   {}
func (PueuePassthrough) variant() {}
func (NonExecution) variant()     {}

func scriptName(i Interpreter) string {
	if i == Node {
		return "node"
	}
	return "py"
}
