package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestTraceWritesOnlyWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})
	if got := Path(); got != path {
		t.Fatalf("expected path %q, got %q", path, got)
	}

	SetTraceEnabled(false)
	Trace("editor.submit", map[string]interface{}{"line": "hidden"})
	SetTraceEnabled(true)
	Trace("editor.submit", map[string]interface{}{"line": "echo hi"})
	Error(errors.New("boom"))
	Error(nil)

	entries := readEntries(t, path)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(entries), entries)
	}
	if entries[0]["event"] != "editor.submit" {
		t.Fatalf("expected trace event, got %v", entries[0])
	}
	payload, ok := entries[0]["payload"].(map[string]interface{})
	if !ok || payload["line"] != "echo hi" {
		t.Fatalf("unexpected payload %v", entries[0]["payload"])
	}
	if entries[1]["level"] != "error" || entries[1]["msg"] != "boom" {
		t.Fatalf("unexpected error entry %v", entries[1])
	}
}

func TestSessionTagsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.log")
	Configure(path)
	t.Cleanup(func() {
		mu.Lock()
		sessionID = ""
		mu.Unlock()
		Configure("")
	})
	SetSession("abc-123")
	Error(errors.New("tagged"))

	entries := readEntries(t, path)
	if len(entries) != 1 || entries[0]["session"] != "abc-123" {
		t.Fatalf("expected session tag, got %v", entries)
	}
}
