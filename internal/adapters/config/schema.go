package config

// File represents the structure of the bochsbuild.yaml configuration file.
// Every field is optional; unset fields keep their defaults.
type File struct {
	Version     string          `yaml:"version"`
	Root        string          `yaml:"root"`
	Layout      *LayoutDTO      `yaml:"layout"`
	Toolchain   *ToolchainDTO   `yaml:"toolchain"`
	Shell       *ShellDTO       `yaml:"shell"`
	PackageTool *PackageToolDTO `yaml:"package_tool"`
	Make        *MakeDTO        `yaml:"make"`
}

// LayoutDTO represents the directory layout section.
type LayoutDTO struct {
	BuildDir        string `yaml:"build_dir"`
	SupervisorDir   string `yaml:"supervisor_dir"`
	ConfigureScript string `yaml:"configure_script"`
	Marker          string `yaml:"marker"`
}

// ToolchainDTO represents the native toolchain section.
type ToolchainDTO struct {
	Compiler    string   `yaml:"compiler"`
	Query       []string `yaml:"query"`
	Product     string   `yaml:"product"`
	Arch        string   `yaml:"arch"`
	CC          *string  `yaml:"cc"`
	CXX         *string  `yaml:"cxx"`
	LD          *string  `yaml:"ld"`
	AR          *string  `yaml:"ar"`
	ForwardVar  *string  `yaml:"forward_var"`
	ForwardFlag *string  `yaml:"forward_flag"`
}

// ShellDTO represents the POSIX-compatibility shell section.
type ShellDTO struct {
	Path       string   `yaml:"path"`
	SearchPath []string `yaml:"search_path"`
}

// PackageToolDTO represents the supervisor package tool section.
type PackageToolDTO struct {
	Cmd   string   `yaml:"cmd"`
	Build []string `yaml:"build"`
	Clean []string `yaml:"clean"`
}

// MakeDTO represents the legacy make section.
type MakeDTO struct {
	Jobs        *int    `yaml:"jobs"`
	Silent      *bool   `yaml:"silent"`
	Timed       *bool   `yaml:"timed"`
	CleanTarget *string `yaml:"clean_target"`
}
