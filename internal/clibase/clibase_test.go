package clibase

import (
	"bufio"
	"bytes"
	"flag"
	"strings"
	"testing"

	"gbkit/internal/config"
)

func TestRegisterAndConfigOverride(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var c Common
	Register(fs, &c, true)
	if err := fs.Parse([]string{"--log-level", "warn"}); err != nil {
		t.Fatal(err)
	}
	ApplyConfig(SetFlags(fs), &c, &config.Config{LogLevel: "debug", LogFormat: "json"})
	if c.LogLevel != "warn" {
		t.Fatalf("explicit flag must win, got %q", c.LogLevel)
	}
	if c.LogFormat != "json" {
		t.Fatalf("config should fill unset flag, got %q", c.LogFormat)
	}
	if err := Validate(&c); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	if err := Validate(&Common{LogLevel: "info", LogFormat: "xml"}); err == nil {
		t.Fatalf("want format error")
	}
	if err := Validate(&Common{LogLevel: "chatty", LogFormat: "text"}); err == nil {
		t.Fatalf("want level error")
	}
}

func TestUsageHeader(t *testing.T) {
	fs := flag.NewFlagSet("tool", flag.ContinueOnError)
	var c Common
	Register(fs, &c, false)
	var b bytes.Buffer
	fs.SetOutput(&b)
	UsageCommon(fs, "tool", "does things", nil)
	fs.Usage()
	out := b.String()
	if !strings.HasPrefix(out, "tool - does things") || strings.Contains(out, "--config") {
		t.Fatalf("usage:\n%s", out)
	}
}

func TestFinish(t *testing.T) {
	var b bytes.Buffer
	w := bufio.NewWriter(&b)
	_, _ = w.WriteString("x")
	if code := Finish(w, &bytes.Buffer{}, 7); code != 7 || b.String() != "x" {
		t.Fatalf("code=%d out=%q", code, b.String())
	}
}
