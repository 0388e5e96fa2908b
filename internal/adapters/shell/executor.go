// Package shell provides the executor that runs external build commands.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/bochsbuild/internal/core/domain"
	"go.trai.ch/bochsbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates a new Executor streaming child output to the process's
// stdout and stderr.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithOutput redirects child output. Used for testing.
func (e *Executor) WithOutput(stdout, stderr io.Writer) *Executor {
	e.stdout = stdout
	e.stderr = stderr
	return e
}

// Run executes the invocation and waits for it to exit.
//
// Output goes straight to the configured writers. With the defaults the child
// inherits the terminal, so cargo and make keep their progress display and colors.
func (e *Executor) Run(ctx context.Context, inv domain.Invocation) error {
	cmd, err := command(ctx, inv)
	if err != nil {
		return err
	}

	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	e.logger.Info("running " + inv.String())

	if err := cmd.Run(); err != nil {
		return commandError(err, inv)
	}
	return nil
}

// Output executes the invocation and returns its combined output.
func (e *Executor) Output(ctx context.Context, inv domain.Invocation) ([]byte, error) {
	cmd, err := command(ctx, inv)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return buf.Bytes(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to start "+inv.Command[0]), "command", inv.String())
	}
	return buf.Bytes(), nil
}

func command(ctx context.Context, inv domain.Invocation) (*exec.Cmd, error) {
	if len(inv.Command) == 0 {
		return nil, domain.ErrEmptyCommand
	}

	name := inv.Command[0]
	args := inv.Command[1:]

	env := os.Environ()
	if inv.Env != nil {
		env = resolveEnvironment(env, inv.Env)
	}

	// Resolve against the child's PATH so the shell search path applies.
	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // commands come from the build config

	// Keep the name as invoked in Args[0].
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}

	cmd.Dir = inv.Dir
	cmd.Env = env
	return cmd, nil
}

func commandError(err error, inv domain.Invocation) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	wrapped := zerr.With(zerr.Wrap(err, inv.String()), "exit_code", exitCode)
	if inv.Dir != "" {
		wrapped = zerr.With(wrapped, "dir", inv.Dir)
	}
	return errors.Join(domain.ErrCommandFailed, wrapped)
}

// resolveEnvironment overlays the toolchain environment on the system environment.
// The toolchain's search path is appended to PATH.
func resolveEnvironment(sysEnv []string, tc *domain.ToolchainEnvironment) []string {
	envMap := make(map[string]string, len(sysEnv))
	pathKey := "PATH"
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		// Windows spells it "Path".
		if strings.EqualFold(k, "PATH") {
			pathKey = k
		}
		envMap[k] = v
	}

	for _, entry := range tc.Pairs() {
		k, v, _ := strings.Cut(entry, "=")
		envMap[k] = v
	}

	if extra := tc.SearchPath(); len(extra) > 0 {
		parts := make([]string, 0, len(extra)+1)
		if sysPath := envMap[pathKey]; sysPath != "" {
			parts = append(parts, sysPath)
		}
		parts = append(parts, extra...)
		envMap[pathKey] = strings.Join(parts, string(os.PathListSeparator))
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		k, v, ok := strings.Cut(e, "=")
		if ok && strings.EqualFold(k, "PATH") {
			path = v
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	m := d.Mode()
	if m.IsDir() {
		return os.ErrPermission
	}
	if runtime.GOOS == "windows" || m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
