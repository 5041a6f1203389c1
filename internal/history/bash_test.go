package history

import "testing"

func TestParseBashPlain(t *testing.T) {
	records := parseBash("git status\nls -la\nmake\n")
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for i, r := range records {
		if r.Timestamp != nil {
			t.Errorf("record %d has a timestamp without markers", i)
		}
	}
	if records[2].Command != "make" {
		t.Errorf("third command = %q, want make", records[2].Command)
	}
}

func TestParseBashTimestampMarkers(t *testing.T) {
	content := "#1702400000\ngit status\n#1702400060\nls\nuntimed\n"
	records := parseBash(content)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].Timestamp == nil || records[0].Timestamp.Unix() != 1702400000 {
		t.Error("marker not attached to following command")
	}
	if records[2].Timestamp != nil {
		t.Error("marker must not leak past the command it precedes")
	}
}

func TestParseBashCommentsSkipped(t *testing.T) {
	records := parseBash("# remember to fix this\ngit log\n")
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Command != "git" {
		t.Errorf("command = %q, want git", records[0].Command)
	}
}
