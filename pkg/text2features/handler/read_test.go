package handler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadTextDropsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")
	if err := os.WriteFile(path, []byte("caf\xe9 menu\xff"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := readText(path)
	if err != nil {
		t.Fatalf("readText: %v", err)
	}
	if got != "caf menu" {
		t.Errorf("readText = %q, want %q", got, "caf menu")
	}
}

func TestReadTextHTML(t *testing.T) {
	page := `<!doctype html>
<html><head><title>Ranking</title><style>p { color: red }</style></head>
<body>
<h1>Graph ranking</h1><p>Vertices vote for each other.</p>
<script>var keywords = ["ignored"];</script>
<ul><li>first</li><li>second</li></ul>
</body></html>`

	for _, ext := range []string{".html", ".HTM"} {
		path := filepath.Join(t.TempDir(), "page"+ext)
		if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
			t.Fatal(err)
		}
		got, err := readText(path)
		if err != nil {
			t.Fatalf("readText: %v", err)
		}

		for _, want := range []string{"Ranking", "Graph ranking", "Vertices vote for each other.", "first", "second"} {
			if !strings.Contains(got, want) {
				t.Errorf("%s: missing %q in %q", ext, want, got)
			}
		}
		for _, unwanted := range []string{"color", "ignored", "<p>"} {
			if strings.Contains(got, unwanted) {
				t.Errorf("%s: unexpected %q in %q", ext, unwanted, got)
			}
		}
		if strings.Contains(got, "firstsecond") || strings.Contains(got, "rankingVertices") {
			t.Errorf("%s: blocks ran together: %q", ext, got)
		}
	}
}

func TestReadTextPlainKeepsMarkup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("<b>bold</b>"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := readText(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "<b>bold</b>" {
		t.Errorf("plain text altered: %q", got)
	}
}
