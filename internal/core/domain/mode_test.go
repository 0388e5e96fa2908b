package domain_test

import (
	"testing"

	"go.trai.ch/bochsbuild/internal/core/domain"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		token      string
		want       domain.BuildMode
		recognized bool
	}{
		{"", domain.ModeDefault, true},
		{"clean", domain.ModeClean, true},
		{"bochsclean", domain.ModeBochsClean, true},
		{"deepclean", domain.ModeDeepClean, true},
		{"rebuild", domain.ModeDefault, false},
		{"CLEAN", domain.ModeDefault, false},
		{"default", domain.ModeDefault, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, recognized := domain.ParseMode(tt.token)
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.token, got, tt.want)
			}
			if recognized != tt.recognized {
				t.Errorf("ParseMode(%q) recognized = %t, want %t", tt.token, recognized, tt.recognized)
			}
		})
	}
}

func TestBuildMode_Effects(t *testing.T) {
	tests := []struct {
		mode             domain.BuildMode
		removesBuildDir  bool
		cleansSupervisor bool
	}{
		{domain.ModeDefault, false, false},
		{domain.ModeClean, false, true},
		{domain.ModeBochsClean, true, false},
		{domain.ModeDeepClean, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := tt.mode.RemovesBuildDir(); got != tt.removesBuildDir {
				t.Errorf("RemovesBuildDir() = %t, want %t", got, tt.removesBuildDir)
			}
			if got := tt.mode.CleansSupervisor(); got != tt.cleansSupervisor {
				t.Errorf("CleansSupervisor() = %t, want %t", got, tt.cleansSupervisor)
			}
		})
	}
}

func TestBuildMode_StringRoundTrip(t *testing.T) {
	for _, mode := range []domain.BuildMode{domain.ModeClean, domain.ModeBochsClean, domain.ModeDeepClean} {
		got, ok := domain.ParseMode(mode.String())
		if !ok || got != mode {
			t.Errorf("ParseMode(%q) = %v, %t", mode.String(), got, ok)
		}
	}
	if s := domain.BuildMode(42).String(); s != "unknown" {
		t.Errorf("String() = %q, want unknown", s)
	}
}
