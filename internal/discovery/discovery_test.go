package discovery

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// TestFileType_String tests the String method for all FileType constants
func TestFileType_String(t *testing.T) {
	tests := []struct {
		name     string
		fileType FileType
		want     string
	}{
		{"YAML", FileTypeYAML, "yaml"},
		{"JSON", FileTypeJSON, "json"},
		{"Markdown", FileTypeMarkdown, "markdown"},
		{"Unknown", FileTypeUnknown, "unknown"},
		{"Invalid", FileType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fileType.String(); got != tt.want {
				t.Errorf("FileType.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectFileType(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    FileType
		wantErr string
	}{
		{"yaml", "data/basin.yaml", FileTypeYAML, ""},
		{"yml uppercase", "DATA.YML", FileTypeYAML, ""},
		{"json", "scores.json", FileTypeJSON, ""},
		{"no extension", "README", FileTypeUnknown, "no extension"},
		{"markdown", "notes.md", FileTypeMarkdown, ""},
		{"text", "notes.txt", FileTypeUnknown, "unsupported file type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFileType(tt.path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("DetectFileType(%q) error = %v, want containing %q", tt.path, err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("DetectFileType(%q) unexpected error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("DetectFileType(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestValidateFilePath(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "ok.yaml", "title: ok\n")
	writeFile(t, tmpDir, "empty.yaml", "")
	writeFile(t, tmpDir, "binary.json", "{\x00}")

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"valid file", filepath.Join(tmpDir, "ok.yaml"), ""},
		{"missing file", filepath.Join(tmpDir, "missing.yaml"), "file not found"},
		{"directory", tmpDir, "is a directory"},
		{"empty file", filepath.Join(tmpDir, "empty.yaml"), "file is empty"},
		{"binary file", filepath.Join(tmpDir, "binary.json"), "binary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateFilePath(tt.path)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !filepath.IsAbs(got) {
					t.Errorf("ValidateFilePath returned relative path %q", got)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "basin.yml", "title: Basin\n")

	f, err := ReadFile(filepath.Join(tmpDir, "basin.yml"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if f.Type != FileTypeYAML {
		t.Errorf("Type = %v, want yaml", f.Type)
	}
	if f.RelPath != "basin.yml" {
		t.Errorf("RelPath = %q, want basin.yml", f.RelPath)
	}
	if string(f.Contents) != "title: Basin\n" {
		t.Errorf("Contents = %q", f.Contents)
	}

	writeFile(t, tmpDir, "notes.txt", "hello")
	if _, err := ReadFile(filepath.Join(tmpDir, "notes.txt")); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestNewFileDiscovery_DefaultPatterns(t *testing.T) {
	fd := NewFileDiscovery("/tmp/data", nil, false)
	if len(fd.patterns) != len(DefaultPatterns) {
		t.Errorf("patterns = %v, want defaults", fd.patterns)
	}
	fd = NewFileDiscovery("/tmp/data", []string{"*.json"}, false)
	if len(fd.patterns) != 1 || fd.patterns[0] != "*.json" {
		t.Errorf("patterns = %v, want [*.json]", fd.patterns)
	}
}

func TestDiscoverFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "weights.yaml", "weights: {}\n")
	writeFile(t, tmpDir, "countries/laos.yml", "scorecards: []\n")
	writeFile(t, tmpDir, "countries/cambodia.json", "{}")
	writeFile(t, tmpDir, "notes.txt", "not data")
	writeFile(t, tmpDir, "recommendations/wee.md", "---\nid: r-wee\n---\n")
	if err := os.MkdirAll(filepath.Join(tmpDir, "dir.yaml"), 0755); err != nil {
		t.Fatal(err)
	}

	fd := NewFileDiscovery(tmpDir, nil, false)
	files, err := fd.DiscoverFiles()
	if err != nil {
		t.Fatalf("DiscoverFiles failed: %v", err)
	}

	var got []string
	for _, f := range files {
		got = append(got, f.RelPath)
	}
	want := []string{"countries/cambodia.json", "countries/laos.yml", "recommendations/wee.md", "weights.yaml"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("DiscoverFiles() = %v, want %v", got, want)
	}
	if files[0].Type != FileTypeJSON {
		t.Errorf("cambodia.json type = %v, want json", files[0].Type)
	}
}

func TestDiscoverFiles_OverlappingPatterns(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "basin.yaml", "title: x\n")

	fd := NewFileDiscovery(tmpDir, []string{"*.yaml", "**/*.yaml"}, false)
	files, err := fd.DiscoverFiles()
	if err != nil {
		t.Fatalf("DiscoverFiles failed: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("expected 1 file, got %d", len(files))
	}
}

func TestDiscoverFiles_InvalidPattern(t *testing.T) {
	fd := NewFileDiscovery(t.TempDir(), []string{"[invalid"}, false)
	if _, err := fd.DiscoverFiles(); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestDiscoverFiles_EmptyDirectory(t *testing.T) {
	files, err := NewFileDiscovery(t.TempDir(), nil, false).DiscoverFiles()
	if err != nil {
		t.Fatalf("DiscoverFiles failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %d", len(files))
	}
}

func TestDiscoverFiles_Symlinks(t *testing.T) {
	tmpDir := t.TempDir()
	outside := t.TempDir()
	writeFile(t, tmpDir, "real.yaml", "title: real\n")
	writeFile(t, outside, "elsewhere.yaml", "title: outside\n")

	if err := os.Symlink(filepath.Join(tmpDir, "real.yaml"), filepath.Join(tmpDir, "link.yaml")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink(filepath.Join(outside, "elsewhere.yaml"), filepath.Join(tmpDir, "escape.yaml")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	count := func(follow bool) int {
		files, err := NewFileDiscovery(tmpDir, []string{"*.yaml"}, follow).DiscoverFiles()
		if err != nil {
			t.Fatalf("DiscoverFiles failed: %v", err)
		}
		return len(files)
	}

	if got := count(false); got != 1 {
		t.Errorf("without following symlinks: %d files, want 1", got)
	}
	// The in-root link is followed; the escaping one is not.
	if got := count(true); got != 2 {
		t.Errorf("following symlinks: %d files, want 2", got)
	}
}
