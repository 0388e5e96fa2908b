package domain

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds everything an invocation needs to drive both builds.
type Config struct {
	Root        string
	Layout      Layout
	Toolchain   Toolchain
	Shell       Shell
	PackageTool PackageTool
	Make        Make
}

// Layout names the directories and files the orchestrator owns or reads.
// Relative paths are resolved against Config.Root.
type Layout struct {
	BuildDir        string
	SupervisorDir   string
	ConfigureScript string
	// Marker is relative to BuildDir.
	Marker string
}

// Toolchain selects and verifies the native compiler toolchain.
type Toolchain struct {
	Compiler    string
	Query       []string
	Product     string
	Arch        string
	CC          string
	CXX         string
	LD          string
	AR          string
	ForwardVar  string
	ForwardFlag string
}

// Shell is the POSIX-compatibility shell used for the legacy build.
type Shell struct {
	Path       string
	SearchPath []string
}

// PackageTool is the native package tool that builds the supervisor.
type PackageTool struct {
	Command   string
	BuildArgs []string
	CleanArgs []string
}

// Make controls the legacy build's make invocation.
type Make struct {
	Jobs        int
	Silent      bool
	Timed       bool
	CleanTarget string
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Root: ".",
		Layout: Layout{
			BuildDir:        BuildDirName,
			SupervisorDir:   SupervisorDirName,
			ConfigureScript: ConfigureScriptName,
			Marker:          MarkerName,
		},
		Toolchain: Toolchain{
			Compiler:    "cl.exe",
			Query:       []string{"/?"},
			Product:     "Microsoft (R) C/C++ Optimizing Compiler",
			Arch:        "for x64",
			CC:          "cl.exe",
			CXX:         "cl.exe",
			LD:          "link.exe",
			AR:          "lib.exe",
			ForwardVar:  "WSLENV",
			ForwardFlag: "u",
		},
		Shell: Shell{
			Path:       `C:\msys64\usr\bin\bash.exe`,
			SearchPath: []string{`C:\cygwin64\bin`, `C:\msys64\usr\bin`},
		},
		PackageTool: PackageTool{
			Command:   "cargo",
			BuildArgs: []string{"build", "--release"},
			CleanArgs: []string{"clean"},
		},
		Make: Make{
			Jobs:        DefaultJobs,
			Silent:      true,
			Timed:       true,
			CleanTarget: "all-clean",
		},
	}
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// BuildDir returns the resolved legacy build directory.
func (c *Config) BuildDir() string {
	return c.resolve(c.Layout.BuildDir)
}

// SupervisorDir returns the resolved supervisor source tree.
func (c *Config) SupervisorDir() string {
	return c.resolve(c.Layout.SupervisorDir)
}

// ConfigureScript returns the resolved configure script path.
func (c *Config) ConfigureScript() string {
	return c.resolve(c.Layout.ConfigureScript)
}

// MarkerPath returns the resolved configuration marker path.
func (c *Config) MarkerPath() string {
	if filepath.IsAbs(c.Layout.Marker) {
		return c.Layout.Marker
	}
	return filepath.Join(c.BuildDir(), c.Layout.Marker)
}

// MakeCommand renders the inline make command handed to the POSIX shell.
func (m Make) MakeCommand() string {
	parts := make([]string, 0, 4)
	if m.Timed {
		parts = append(parts, "time")
	}
	parts = append(parts, "make")
	if m.Silent {
		parts = append(parts, "-s")
	}
	if m.Jobs > 0 {
		parts = append(parts, "-j"+strconv.Itoa(m.Jobs))
	}
	return strings.Join(parts, " ")
}

// CleanCommand renders the inline make clean command handed to the POSIX shell.
func (m Make) CleanCommand() string {
	if m.CleanTarget == "" {
		return "make clean"
	}
	return "make " + m.CleanTarget
}
