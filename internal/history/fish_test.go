package history

import "testing"

func TestParseFish(t *testing.T) {
	content := "- cmd: git status\n" +
		"  when: 1702400000\n" +
		"  paths:\n" +
		"    - ~/projects\n" +
		"- cmd: cargo build\n" +
		"  when: 1702400060\n"

	records := parseFish(content)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Command != "git" || records[1].Command != "cargo" {
		t.Errorf("commands = %q, %q", records[0].Command, records[1].Command)
	}
	if records[0].Timestamp == nil || records[0].Timestamp.Unix() != 1702400000 {
		t.Error("when not parsed")
	}
}

func TestParseFishMissingWhen(t *testing.T) {
	records := parseFish("- cmd: ls\n- cmd: pwd\n  when: 1702400000\n")
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Timestamp != nil {
		t.Error("entry without when should carry nil timestamp")
	}
	if records[1].Timestamp == nil {
		t.Error("entry with when should carry a timestamp")
	}
}

func TestParseFishEscapes(t *testing.T) {
	records := parseFish("- cmd: echo hello\\nworld\n  when: 1702400000\n")
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Command != "echo" {
		t.Errorf("command = %q, want echo", records[0].Command)
	}
}

func TestParseFishIgnoresStrayKeys(t *testing.T) {
	content := "paths:\n  when: 1702400000\n- cmd: ls\n"
	records := parseFish(content)
	if len(records) != 1 || records[0].Command != "ls" {
		t.Fatalf("stray keys before the first entry should be ignored, got %v", records)
	}
	if records[0].Timestamp != nil {
		t.Error("when before any cmd must not attach to a later entry")
	}
}
