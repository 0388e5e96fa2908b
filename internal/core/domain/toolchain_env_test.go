package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/bochsbuild/internal/core/domain"
)

func TestNewToolchainEnvironment(t *testing.T) {
	env := domain.NewToolchainEnvironment([]domain.ToolchainVar{
		{Name: "CC", Value: "cl.exe", Forward: true},
		{Name: "CXX", Value: "cl.exe", Forward: true},
		{Name: "LD", Value: "link.exe", Forward: true},
		{Name: "MSYS", Value: "winsymlinks:nativestrict"},
	}, "WSLENV", "u", []string{`C:\cygwin64\bin`, "", `C:\msys64\usr\bin`})

	cc, ok := env.Get("CC")
	assert.True(t, ok)
	assert.Equal(t, "cl.exe", cc)

	assert.Equal(t, []string{"CC", "CXX", "LD"}, env.Forwarded())
	assert.Equal(t, []string{`C:\cygwin64\bin`, `C:\msys64\usr\bin`}, env.SearchPath())
	assert.Equal(t, []string{
		"CC=cl.exe",
		"CXX=cl.exe",
		"LD=link.exe",
		"MSYS=winsymlinks:nativestrict",
		"WSLENV=CC/u:CXX/u:LD/u",
	}, env.Pairs())
}

func TestNewToolchainEnvironment_DropsEmpty(t *testing.T) {
	env := domain.NewToolchainEnvironment([]domain.ToolchainVar{
		{Name: "CC", Value: "", Forward: true},
		{Name: "", Value: "cl.exe", Forward: true},
	}, "WSLENV", "u", nil)

	assert.Empty(t, env.Pairs())
	assert.Empty(t, env.Forwarded())
	_, ok := env.Get("WSLENV")
	assert.False(t, ok)
}

func TestNewToolchainEnvironment_DuplicateForwardedOnce(t *testing.T) {
	env := domain.NewToolchainEnvironment([]domain.ToolchainVar{
		{Name: "CC", Value: "gcc", Forward: true},
		{Name: "CC", Value: "cl.exe", Forward: true},
	}, "WSLENV", "", nil)

	cc, _ := env.Get("CC")
	assert.Equal(t, "cl.exe", cc)
	directive, _ := env.Get("WSLENV")
	assert.Equal(t, "CC", directive)
}

func TestToolchainEnvironment_Nil(t *testing.T) {
	var env *domain.ToolchainEnvironment

	_, ok := env.Get("CC")
	assert.False(t, ok)
	assert.Nil(t, env.Forwarded())
	assert.Nil(t, env.SearchPath())
	assert.Nil(t, env.Pairs())
	assert.Empty(t, env.ForwardVar())
}
