// Package discovery locates dataset documents on disk.
package discovery

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns are the globs used when no patterns are configured.
var DefaultPatterns = []string{"**/*.yaml", "**/*.yml", "**/*.json", "**/*.md"}

// File represents a discovered dataset document
type File struct {
	Path     string
	RelPath  string
	Size     int64
	Type     FileType
	Contents []byte
}

// FileType is the encoding of a dataset document.
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeYAML
	FileTypeJSON
	FileTypeMarkdown
)

// String returns the human-readable name of the file type.
func (ft FileType) String() string {
	switch ft {
	case FileTypeYAML:
		return "yaml"
	case FileTypeJSON:
		return "json"
	case FileTypeMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// DetectFileType maps a file extension to its encoding.
func DetectFileType(path string) (FileType, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FileTypeYAML, nil
	case ".json":
		return FileTypeJSON, nil
	case ".md":
		return FileTypeMarkdown, nil
	case "":
		return FileTypeUnknown, fmt.Errorf(
			"unsupported file: %s has no extension. basin reads .yaml, .yml, .json and .md files only", filepath.Base(path))
	default:
		return FileTypeUnknown, fmt.Errorf(
			"unsupported file type: %s. basin reads .yaml, .yml, .json and .md files only", ext)
	}
}

// ValidateFilePath checks that path names a readable, non-empty text file
// and returns its absolute path. Symlinks are resolved.
func ValidateFilePath(path string) (absPath string, err error) {
	absPath, err = filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}

	info, err := os.Lstat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", absPath)
		}
		if os.IsPermission(err) {
			return "", fmt.Errorf("permission denied: %s", absPath)
		}
		return "", fmt.Errorf("cannot access file: %s: %w", absPath, err)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		realPath, evalErr := filepath.EvalSymlinks(absPath)
		if evalErr != nil {
			return "", fmt.Errorf("cannot resolve symlink %s: %w", absPath, evalErr)
		}
		absPath = realPath
		info, err = os.Stat(absPath)
		if err != nil {
			return "", fmt.Errorf("symlink target inaccessible: %s: %w", absPath, err)
		}
	}

	if info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a file: %s", absPath)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("file is empty: %s", absPath)
	}

	f, err := os.Open(absPath)
	if err != nil {
		return "", fmt.Errorf("cannot read file: %s: %w", absPath, err)
	}
	defer f.Close()

	// Read first 512 bytes for binary detection
	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil {
		return "", fmt.Errorf("cannot read file: %s: %w", absPath, err)
	}
	if bytes.Contains(buf[:n], []byte{0}) {
		return "", fmt.Errorf("file appears to be binary, not text: %s", absPath)
	}

	return absPath, nil
}

// ReadFile validates and reads a single dataset document.
func ReadFile(path string) (File, error) {
	absPath, err := ValidateFilePath(path)
	if err != nil {
		return File{}, err
	}
	ft, err := DetectFileType(absPath)
	if err != nil {
		return File{}, err
	}
	contents, err := os.ReadFile(absPath)
	if err != nil {
		return File{}, fmt.Errorf("cannot read file: %s: %w", absPath, err)
	}
	return File{
		Path:     absPath,
		RelPath:  filepath.Base(absPath),
		Size:     int64(len(contents)),
		Type:     ft,
		Contents: contents,
	}, nil
}

// FileDiscovery manages file discovery operations
type FileDiscovery struct {
	rootPath       string
	patterns       []string
	followSymlinks bool
}

// NewFileDiscovery creates a new FileDiscovery instance. Empty patterns
// fall back to DefaultPatterns.
func NewFileDiscovery(rootPath string, patterns []string, followSymlinks bool) *FileDiscovery {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	return &FileDiscovery{
		rootPath:       rootPath,
		patterns:       patterns,
		followSymlinks: followSymlinks,
	}
}

// DiscoverFiles finds every dataset document under the root. Results are
// ordered by relative path so fragment merging is deterministic; a file
// matched by several patterns appears once.
func (fd *FileDiscovery) DiscoverFiles() ([]File, error) {
	files, err := fd.findFilesByPattern(fd.patterns)
	if err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// findFilesByPattern finds files matching the given glob patterns
func (fd *FileDiscovery) findFilesByPattern(patterns []string) ([]File, error) {
	var files []File
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		// Use doublestar for glob matching with ** patterns
		matches, err := doublestar.Glob(os.DirFS(fd.rootPath), pattern)
		if err != nil {
			return nil, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			f, ok := fd.processMatch(match)
			if ok {
				seen[match] = true
				files = append(files, f)
			}
		}
	}

	return files, nil
}

// processMatch converts a glob match into a File, returning false if the match should be skipped.
func (fd *FileDiscovery) processMatch(match string) (File, bool) {
	fullPath := filepath.Join(fd.rootPath, match)

	linfo, err := os.Lstat(fullPath)
	if err != nil {
		return File{}, false
	}
	if linfo.Mode()&os.ModeSymlink != 0 {
		resolved, ok := fd.resolveSymlink(fullPath)
		if !ok {
			return File{}, false
		}
		fullPath = resolved
	}

	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		return File{}, false
	}

	ft, err := DetectFileType(match)
	if err != nil {
		return File{}, false
	}

	contents, err := os.ReadFile(fullPath)
	if err != nil {
		return File{}, false
	}

	return File{
		Path:     fullPath,
		RelPath:  filepath.ToSlash(match),
		Size:     info.Size(),
		Type:     ft,
		Contents: contents,
	}, true
}

// resolveSymlink follows a symlink if configured. Targets outside the root
// are skipped.
func (fd *FileDiscovery) resolveSymlink(fullPath string) (string, bool) {
	if !fd.followSymlinks {
		return "", false
	}

	realPath, err := filepath.EvalSymlinks(fullPath)
	if err != nil {
		return "", false
	}

	root, err := filepath.EvalSymlinks(fd.rootPath)
	if err != nil {
		return "", false
	}
	if realPath != root && !strings.HasPrefix(realPath, root+string(filepath.Separator)) {
		return "", false
	}

	return realPath, true
}
