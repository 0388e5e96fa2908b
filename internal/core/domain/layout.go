package domain

const (
	// ConfigFileName is the name of the optional orchestrator configuration file.
	ConfigFileName = "bochsbuild.yaml"

	// BuildDirName is the default legacy build directory.
	BuildDirName = "bochs_build"

	// SupervisorDirName is the default supervisor source tree.
	SupervisorDirName = "bochservisor"

	// ConfigureScriptName is the default configure wrapper script, relative to the root.
	ConfigureScriptName = "bochs_config"

	// MarkerName is the default configuration marker, relative to the build directory.
	MarkerName = "bochs_configured"

	// DefaultJobs is the default make parallelism.
	DefaultJobs = 16

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
