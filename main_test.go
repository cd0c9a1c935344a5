package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApp_Help(t *testing.T) {
	app := newApp()
	var buf bytes.Buffer
	app.Writer = &buf

	if err := app.Run([]string{"beamburst", "--help"}); err != nil {
		t.Fatalf("Running --help: %v", err)
	}

	for _, want := range []string{"render", "describe", "serve", "--version", "-vv"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("Help output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestApp_Version(t *testing.T) {
	app := newApp()
	var buf bytes.Buffer
	app.Writer = &buf

	if err := app.Run([]string{"beamburst", "--version"}); err != nil {
		t.Fatalf("Running --version: %v", err)
	}
	if !strings.Contains(buf.String(), "2.0.0") {
		t.Errorf("Expected version in output, got %q", buf.String())
	}
}

func TestApp_RenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")

	app := newApp()
	var buf bytes.Buffer
	app.Writer = &buf

	err := app.Run([]string{
		"beamburst", "render",
		"--width", "32", "--height", "32",
		"--out", out,
	})
	if err != nil {
		t.Fatalf("Running render: %v", err)
	}

	file, err := os.Open(out)
	if err != nil {
		t.Fatalf("Opening rendered frame: %v", err)
	}
	defer file.Close()

	cfg, err := png.DecodeConfig(file)
	if err != nil {
		t.Fatalf("Decoding rendered frame: %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 32 {
		t.Errorf("Expected 32x32 frame, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestApp_RenderMissingSceneFile(t *testing.T) {
	app := newApp()
	var buf bytes.Buffer
	app.Writer = &buf

	err := app.Run([]string{"beamburst", "render", "--scene", "/nonexistent/scene.json"})
	if err == nil {
		t.Error("Expected error for missing scene file, got nil")
	}
}
