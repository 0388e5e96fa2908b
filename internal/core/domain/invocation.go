package domain

import "strings"

// Invocation describes one external command: where it runs, with which environment,
// and what it runs. A nil Env means the ambient environment, unmodified.
type Invocation struct {
	Dir     string
	Env     *ToolchainEnvironment
	Command []string
}

// String renders the command line for logs.
func (i Invocation) String() string {
	return strings.Join(i.Command, " ")
}

// ExecContext carries the working directory and environment threaded through
// orchestration steps. It is a value; In returns a copy.
type ExecContext struct {
	Dir string
	Env *ToolchainEnvironment
}

// In returns a copy of the context rooted at dir.
func (c ExecContext) In(dir string) ExecContext {
	c.Dir = dir
	return c
}

// Command builds an Invocation for the given command line.
func (c ExecContext) Command(name string, args ...string) Invocation {
	cmd := make([]string, 0, len(args)+1)
	cmd = append(cmd, name)
	cmd = append(cmd, args...)
	return Invocation{Dir: c.Dir, Env: c.Env, Command: cmd}
}
