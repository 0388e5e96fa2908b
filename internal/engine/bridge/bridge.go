// Package bridge builds the environment that makes the POSIX-compatibility layer
// drive the native toolchain.
package bridge

import "go.trai.ch/bochsbuild/internal/core/domain"

// Bridge derives a ToolchainEnvironment from the toolchain and shell configuration.
type Bridge struct {
	toolchain domain.Toolchain
	shell     domain.Shell
}

// New creates a new Bridge.
func New(toolchain domain.Toolchain, shell domain.Shell) *Bridge {
	return &Bridge{toolchain: toolchain, shell: shell}
}

// Build returns the environment for commands that run inside or target the legacy build.
//
// Without CC/CXX/LD/AR the configure probe picks up the compatibility layer's own
// compiler and records the wrong fundamental type sizes (for example an 8 byte long).
// Every selected variable is also named in the forwarding directive so it survives the
// crossing into the compatibility layer.
func (b *Bridge) Build() *domain.ToolchainEnvironment {
	vars := []domain.ToolchainVar{
		{Name: "CC", Value: b.toolchain.CC, Forward: true},
		{Name: "CXX", Value: b.toolchain.CXX, Forward: true},
		{Name: "LD", Value: b.toolchain.LD, Forward: true},
		{Name: "AR", Value: b.toolchain.AR, Forward: true},
	}
	return domain.NewToolchainEnvironment(vars, b.toolchain.ForwardVar, b.toolchain.ForwardFlag, b.shell.SearchPath)
}
