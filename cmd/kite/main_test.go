package main

import (
	"testing"
)

func TestParseFlags(t *testing.T) {
	opts, code, done := parseFlags([]string{"-c", "/etc/kite.toml", "-log-level", "debug", "-tab-stop", "2", "main.c"})
	if done {
		t.Fatalf("unexpected exit with code %d", code)
	}
	if opts.ConfigPath != "/etc/kite.toml" {
		t.Errorf("ConfigPath = %q", opts.ConfigPath)
	}
	if opts.LogLevel != "debug" || opts.TabStop != 2 {
		t.Errorf("unexpected options %+v", opts)
	}
	if opts.File != "main.c" {
		t.Errorf("File = %q, want main.c", opts.File)
	}
	if opts.Version != version {
		t.Errorf("Version = %q, want %q", opts.Version, version)
	}
}

func TestParseFlagsNoFile(t *testing.T) {
	opts, _, done := parseFlags(nil)
	if done {
		t.Fatal("unexpected exit")
	}
	if opts.File != "" {
		t.Errorf("File = %q, want empty", opts.File)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"bad log level", []string{"-log-level", "loud"}, 1},
		{"two files", []string{"a.c", "b.c"}, 2},
		{"unknown flag", []string{"-nope"}, 2},
		{"help", []string{"-h"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, code, done := parseFlags(tt.args)
			if !done {
				t.Fatal("expected exit")
			}
			if code != tt.code {
				t.Errorf("code = %d, want %d", code, tt.code)
			}
		})
	}
}
