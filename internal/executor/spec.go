package executor

// StdinSource selects what the child reads as standard input.
type StdinSource int

const (
	// StdinInherit hands the parent's stdin to the child unchanged.
	StdinInherit StdinSource = iota
	// StdinPiped feeds ChildSpec.Input to the child.
	StdinPiped
	// StdinNull connects the child to the null device.
	StdinNull
)

func (s StdinSource) String() string {
	switch s {
	case StdinInherit:
		return "inherit"
	case StdinPiped:
		return "piped"
	case StdinNull:
		return "null"
	default:
		return "unknown"
	}
}

// ChildSpec is everything needed to spawn one child process.
type ChildSpec struct {
	// Program is the resolved executable path.
	Program string
	Args    []string
	// Env holds KEY=VALUE entries added on top of the parent's environment.
	Env   []string
	Stdin StdinSource
	// Input is the program text for StdinPiped.
	Input []byte
	// Tool names the resolved tool in error messages (python3, npm, bash...).
	Tool string
}
