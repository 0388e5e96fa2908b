package domain

// BuildMode selects what a single invocation does.
type BuildMode int

const (
	// ModeDefault verifies the toolchain and builds both components.
	ModeDefault BuildMode = iota
	// ModeClean runs the legacy clean target and the package tool's clean.
	ModeClean
	// ModeBochsClean removes the legacy build directory only.
	ModeBochsClean
	// ModeDeepClean removes the legacy build directory and runs the package tool's clean.
	ModeDeepClean
)

var modeNames = map[BuildMode]string{
	ModeDefault:    "default",
	ModeClean:      "clean",
	ModeBochsClean: "bochsclean",
	ModeDeepClean:  "deepclean",
}

// String returns the token that selects the mode on the command line.
func (m BuildMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseMode maps a command line token to a BuildMode.
//
// An empty token selects ModeDefault. Any token that does not name a cleanup mode
// also selects ModeDefault, and recognized is false so callers can report it.
func ParseMode(token string) (mode BuildMode, recognized bool) {
	switch token {
	case "":
		return ModeDefault, true
	case "clean":
		return ModeClean, true
	case "bochsclean":
		return ModeBochsClean, true
	case "deepclean":
		return ModeDeepClean, true
	default:
		return ModeDefault, false
	}
}

// RemovesBuildDir reports whether the mode deletes the legacy build directory.
func (m BuildMode) RemovesBuildDir() bool {
	return m == ModeBochsClean || m == ModeDeepClean
}

// CleansSupervisor reports whether the mode runs the package tool's clean operation.
func (m BuildMode) CleansSupervisor() bool {
	return m == ModeClean || m == ModeDeepClean
}
