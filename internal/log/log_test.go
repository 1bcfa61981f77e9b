package log

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"WARN":    slog.LevelWarn,
		"verbose": slog.LevelInfo, // unknown falls back to info
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInit_ReInitAdjustsLevel(t *testing.T) {
	ctx := context.Background()

	Init("debug")
	if !L().Enabled(ctx, slog.LevelDebug) {
		t.Fatal("debug disabled after Init(debug)")
	}

	// The handler is built once; a second Init still moves the level.
	Init("error")
	if L().Enabled(ctx, slog.LevelDebug) {
		t.Error("debug still enabled after Init(error)")
	}
	if !L().Enabled(ctx, slog.LevelError) {
		t.Error("error disabled after Init(error)")
	}
}
