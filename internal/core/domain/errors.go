package domain

import "go.trai.ch/zerr"

var (
	// ErrSetupFailed classifies every toolchain prerequisite failure.
	ErrSetupFailed = zerr.New("toolchain setup check failed")

	// ErrToolchainMissing is returned when the native compiler cannot be started.
	ErrToolchainMissing = zerr.New("native compiler not found")

	// ErrToolchainMismatch is returned when the compiler banner does not name the expected product.
	ErrToolchainMismatch = zerr.New("native compiler is not the expected product")

	// ErrToolchainArch is returned when the compiler does not target the expected architecture.
	ErrToolchainArch = zerr.New("native compiler does not target the expected architecture")

	// ErrCommandFailed is returned when an external command exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrEmptyCommand is returned when an invocation carries no command.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrBuildExecutionFailed is returned when any step of a build or clean run fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrConfigureScriptMissing is returned when the legacy configure script cannot be found.
	ErrConfigureScriptMissing = zerr.New("configure script not found")

	// ErrMarkerStatFailed is returned when the configuration marker cannot be inspected.
	ErrMarkerStatFailed = zerr.New("failed to stat configuration marker")

	// ErrMarkerWriteFailed is returned when the configuration marker cannot be written.
	ErrMarkerWriteFailed = zerr.New("failed to write configuration marker")

	// ErrBuildDirCreateFailed is returned when the legacy build directory cannot be created.
	ErrBuildDirCreateFailed = zerr.New("failed to create build directory")

	// ErrBuildDirRemoveFailed is returned when the legacy build directory cannot be removed.
	ErrBuildDirRemoveFailed = zerr.New("failed to remove build directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrInvalidConfig is returned when a loaded config fails validation.
	ErrInvalidConfig = zerr.New("invalid config")
)
