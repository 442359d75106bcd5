package localfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
)

// DataLocation resolves a configured location to the files that hold its data.
// A location is either a single file or a directory whose entries are
// filtered by a pattern. DataLocation is immutable after construction and
// safe for concurrent use; every Files call rescans the filesystem.
type DataLocation struct {
	location string
	pattern  Pattern
	compiled *regexp.Regexp // nil unless location is a directory
}

// NewDataLocation validates location and pattern and returns a DataLocation.
//
// A missing location is created as a directory, parents included, when a
// pattern is supplied. A pattern may only be used with a directory. A
// directory without a pattern stores MatchAll.
func NewDataLocation(location string, pattern Pattern) (*DataLocation, error) {
	if location == "" {
		return nil, invalidArgument("location is null")
	}

	info, err := os.Stat(location)
	if errors.Is(err, fs.ErrNotExist) && pattern.IsPresent() {
		// Partial creation is left in place on failure.
		if mkErr := os.MkdirAll(location, 0o755); mkErr != nil {
			return nil, fmt.Errorf("%w: location does not exist: %w", ErrInvalidArgument, mkErr)
		}
		info, err = os.Stat(location)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: location does not exist: %w", ErrInvalidArgument, err)
	}

	if pattern.IsPresent() && !info.IsDir() {
		return nil, invalidArgument("pattern may be specified only if location is a directory")
	}

	l := &DataLocation{location: location, pattern: pattern}
	if info.IsDir() {
		if !pattern.IsPresent() {
			l.pattern = PatternOf(MatchAll)
		}
		expr := pattern.OrElse(MatchAll)
		compiled, err := compileFullMatch(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid pattern %q: %w", ErrInvalidArgument, expr, err)
		}
		l.compiled = compiled
	}
	return l, nil
}

// readDir is swapped in tests to simulate listing failures.
var readDir = os.ReadDir

// compileFullMatch anchors expr so it must match an entire name.
func compileFullMatch(expr string) (*regexp.Regexp, error) {
	if _, err := regexp.Compile(expr); err != nil {
		return nil, err
	}
	return regexp.Compile(`^(?:` + expr + `)$`)
}

// Location returns the configured path.
func (l *DataLocation) Location() string {
	return l.location
}

// Pattern returns the stored pattern. Directory locations configured without
// a pattern report MatchAll; file locations report NoPattern.
func (l *DataLocation) Pattern() Pattern {
	return l.pattern
}

// Files lists the data files of this location, most recently modified first.
//
// A file location yields just itself. A directory location yields every
// entry whose name fully matches the pattern. Entries with equal modification
// times keep directory listing order. The returned slice is owned by the caller.
func (l *DataLocation) Files() ([]*Path, error) {
	info, err := os.Stat(l.location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, illegalState("location %s doesn't exist", l.location)
		}
		return nil, newError(LocalFileErrorCode, err, "failed to stat %s", l.location)
	}

	if !l.pattern.IsPresent() {
		return []*Path{NewPath(l.location, info)}, nil
	}

	if !info.IsDir() || l.compiled == nil {
		return nil, illegalState("location %s is not a directory", l.location)
	}

	entries, err := readDir(l.location)
	if err != nil {
		return nil, newError(LocalFileErrorCode, err, "failed to list files at %s", l.location)
	}

	files := make([]*Path, 0, len(entries))
	for _, entry := range entries {
		if !l.compiled.MatchString(entry.Name()) {
			continue
		}
		path := filepath.Join(l.location, entry.Name())
		entryInfo, err := entry.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, newError(LocalFileErrorCode, err, "failed to stat %s", path)
		}
		if entry.Type()&fs.ModeSymlink == 0 {
			files = append(files, NewPath(path, entryInfo))
			continue
		}

		// Links sort by their target. A dangling link has no modification time.
		target, err := os.Stat(path)
		if err != nil {
			files = append(files, newDanglingPath(path, entryInfo))
			continue
		}
		files = append(files, NewPath(path, target))
	}

	slices.SortStableFunc(files, func(a, b *Path) int {
		return b.ModTime().Compare(a.ModTime())
	})
	return files, nil
}

func (l *DataLocation) String() string {
	return fmt.Sprintf("DataLocation{location=%s, pattern=%s}", l.location, l.pattern)
}

type dataLocationJSON struct {
	Location *string `json:"location"`
	Pattern  Pattern `json:"pattern"`
}

// MarshalJSON encodes the stored location and pattern.
func (l *DataLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(dataLocationJSON{Location: &l.location, Pattern: l.pattern})
}

// UnmarshalJSON decodes {"location": ..., "pattern": ...} and validates it
// with NewDataLocation, including its filesystem side effects.
func (l *DataLocation) UnmarshalJSON(data []byte) error {
	var raw dataLocationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding data location: %w", err)
	}
	if raw.Location == nil {
		return invalidArgument("location is null")
	}
	decoded, err := NewDataLocation(*raw.Location, raw.Pattern)
	if err != nil {
		return err
	}
	*l = *decoded
	return nil
}
