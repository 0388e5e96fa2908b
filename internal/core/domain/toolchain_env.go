package domain

import (
	"slices"
	"strings"
)

// ToolchainEnvironment is the set of variables that points the legacy build at the
// native toolchain. It is immutable once built; accessors return copies.
type ToolchainEnvironment struct {
	vars       map[string]string
	forwardVar string
	forwarded  []string
	searchPath []string
}

// ToolchainVar is a single variable selection in a ToolchainEnvironment.
type ToolchainVar struct {
	Name  string
	Value string
	// Forward marks the variable for the cross-boundary forwarding directive.
	Forward bool
}

// NewToolchainEnvironment builds a ToolchainEnvironment.
//
// forwardVar names the directive variable (for example WSLENV) and flag is the
// translation suffix appended to each forwarded name ("u" yields "CC/u"). Variables
// with an empty name or value are dropped. searchPath entries are appended to PATH
// for commands that run with this environment.
func NewToolchainEnvironment(vars []ToolchainVar, forwardVar, flag string, searchPath []string) *ToolchainEnvironment {
	env := &ToolchainEnvironment{
		vars:       make(map[string]string, len(vars)+1),
		forwardVar: forwardVar,
	}

	for _, v := range vars {
		if v.Name == "" || v.Value == "" {
			continue
		}
		if _, dup := env.vars[v.Name]; !dup && v.Forward {
			env.forwarded = append(env.forwarded, v.Name)
		}
		env.vars[v.Name] = v.Value
	}

	if forwardVar != "" && len(env.forwarded) > 0 {
		entries := make([]string, len(env.forwarded))
		for i, name := range env.forwarded {
			entries[i] = name
			if flag != "" {
				entries[i] += "/" + flag
			}
		}
		env.vars[forwardVar] = strings.Join(entries, ":")
	}

	for _, dir := range searchPath {
		if dir != "" {
			env.searchPath = append(env.searchPath, dir)
		}
	}

	return env
}

// Get returns the value selected for name.
func (e *ToolchainEnvironment) Get(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	v, ok := e.vars[name]
	return v, ok
}

// Forwarded returns the names listed in the forwarding directive, in declaration order.
func (e *ToolchainEnvironment) Forwarded() []string {
	if e == nil {
		return nil
	}
	return slices.Clone(e.forwarded)
}

// ForwardVar returns the name of the forwarding directive variable.
func (e *ToolchainEnvironment) ForwardVar() string {
	if e == nil {
		return ""
	}
	return e.forwardVar
}

// SearchPath returns the directories appended to PATH.
func (e *ToolchainEnvironment) SearchPath() []string {
	if e == nil {
		return nil
	}
	return slices.Clone(e.searchPath)
}

// Pairs returns the variables as sorted "KEY=VALUE" strings.
// PATH is not included; see SearchPath.
func (e *ToolchainEnvironment) Pairs() []string {
	if e == nil {
		return nil
	}
	pairs := make([]string, 0, len(e.vars))
	for k, v := range e.vars {
		pairs = append(pairs, k+"="+v)
	}
	slices.Sort(pairs)
	return pairs
}
