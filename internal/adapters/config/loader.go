// Package config provides the configuration loader for bochsbuild.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bochsbuild/internal/core/domain"
	"go.trai.ch/bochsbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration at path and overlays it on the defaults.
// Relative layout paths resolve against the directory holding the file.
func (l *Loader) Load(path string, required bool) (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	cfg.Root = filepath.Dir(path)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "cannot load configuration"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	apply(cfg, &file)

	if err := validate(cfg); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.logger.Info("loaded configuration from " + path)
	return cfg, nil
}

func apply(cfg *domain.Config, f *File) {
	if f.Root != "" {
		if filepath.IsAbs(f.Root) {
			cfg.Root = f.Root
		} else {
			cfg.Root = filepath.Join(cfg.Root, f.Root)
		}
	}

	if l := f.Layout; l != nil {
		setString(&cfg.Layout.BuildDir, l.BuildDir)
		setString(&cfg.Layout.SupervisorDir, l.SupervisorDir)
		setString(&cfg.Layout.ConfigureScript, l.ConfigureScript)
		setString(&cfg.Layout.Marker, l.Marker)
	}

	if t := f.Toolchain; t != nil {
		setString(&cfg.Toolchain.Compiler, t.Compiler)
		setString(&cfg.Toolchain.Product, t.Product)
		setString(&cfg.Toolchain.Arch, t.Arch)
		if t.Query != nil {
			cfg.Toolchain.Query = t.Query
		}
		// Pointers so that an explicit empty string clears a selection.
		setOptional(&cfg.Toolchain.CC, t.CC)
		setOptional(&cfg.Toolchain.CXX, t.CXX)
		setOptional(&cfg.Toolchain.LD, t.LD)
		setOptional(&cfg.Toolchain.AR, t.AR)
		setOptional(&cfg.Toolchain.ForwardVar, t.ForwardVar)
		setOptional(&cfg.Toolchain.ForwardFlag, t.ForwardFlag)
	}

	if s := f.Shell; s != nil {
		setString(&cfg.Shell.Path, s.Path)
		if s.SearchPath != nil {
			cfg.Shell.SearchPath = s.SearchPath
		}
	}

	if p := f.PackageTool; p != nil {
		setString(&cfg.PackageTool.Command, p.Cmd)
		if p.Build != nil {
			cfg.PackageTool.BuildArgs = p.Build
		}
		if p.Clean != nil {
			cfg.PackageTool.CleanArgs = p.Clean
		}
	}

	if m := f.Make; m != nil {
		if m.Jobs != nil {
			cfg.Make.Jobs = *m.Jobs
		}
		if m.Silent != nil {
			cfg.Make.Silent = *m.Silent
		}
		if m.Timed != nil {
			cfg.Make.Timed = *m.Timed
		}
		setOptional(&cfg.Make.CleanTarget, m.CleanTarget)
	}
}

func validate(cfg *domain.Config) error {
	switch {
	case cfg.Layout.BuildDir == "" || cfg.Layout.SupervisorDir == "" ||
		cfg.Layout.ConfigureScript == "" || cfg.Layout.Marker == "":
		return zerr.Wrap(domain.ErrInvalidConfig, "layout entries must not be empty")
	case cfg.Toolchain.Compiler == "":
		return zerr.Wrap(domain.ErrInvalidConfig, "toolchain.compiler must not be empty")
	case cfg.Shell.Path == "":
		return zerr.Wrap(domain.ErrInvalidConfig, "shell.path must not be empty")
	case cfg.PackageTool.Command == "":
		return zerr.Wrap(domain.ErrInvalidConfig, "package_tool.cmd must not be empty")
	case cfg.Make.Jobs < 0:
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "make.jobs must not be negative"), "jobs", cfg.Make.Jobs)
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setOptional(dst, v *string) {
	if v != nil {
		*dst = *v
	}
}
