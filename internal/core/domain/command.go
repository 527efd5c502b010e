package domain

// Command is an external process invocation, such as a compiler call.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds overrides applied on top of the system environment.
	Env map[string]string
}
