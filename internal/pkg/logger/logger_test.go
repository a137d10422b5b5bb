package logger

import (
	"errors"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerWritesFieldsAndError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewWithCore(core)

	log.Info("habit added", map[string]interface{}{"habit": "yoga"})
	log.Error("store failed", errors.New("boom"), map[string]interface{}{"habit": "yoga", "op": "append"})

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "habit added" || entries[0].ContextMap()["habit"] != "yoga" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	ctx := entries[1].ContextMap()
	if ctx["error"] != "boom" || ctx["op"] != "append" {
		t.Fatalf("unexpected error entry context: %+v", ctx)
	}
}

func TestNewQuietDiscards(t *testing.T) {
	log := New(false, "debug")
	if log.log.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("non-verbose logger should not be enabled at any level")
	}
}

func TestNewVerboseHonoursLevel(t *testing.T) {
	if !New(true, "debug").log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("verbose logger at debug level should emit debug entries")
	}
	if New(true, "warn").log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("verbose logger at warn level should drop info entries")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":      zapcore.DebugLevel,
		"debug": zapcore.DebugLevel,
		"INFO":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
