package localfile

import (
	"io/fs"
	"path/filepath"
	"time"
)

// Path is a file or directory produced by a DataLocation listing, together
// with the metadata that was read when the listing ran.
type Path struct {
	path    string
	isDir   bool
	modTime time.Time
	info    fs.FileInfo
}

// NewPath creates a Path from its components. For a symbolic link, info
// should describe the link target.
func NewPath(path string, info fs.FileInfo) *Path {
	p := &Path{path: path, info: info}
	if info != nil {
		p.isDir = info.IsDir()
		p.modTime = info.ModTime()
	}
	return p
}

// newDanglingPath keeps the link's own info but reports no modification time,
// so broken links sort after everything else.
func newDanglingPath(path string, linkInfo fs.FileInfo) *Path {
	return &Path{path: path, info: linkInfo}
}

// String returns the path as it was joined from the data location.
func (p *Path) String() string {
	return p.path
}

// Name returns the last element of the path.
func (p *Path) Name() string {
	return filepath.Base(p.path)
}

// IsDir returns true if this path pointed to a directory when it was listed.
func (p *Path) IsDir() bool {
	return p.isDir
}

// Info returns the cached file info from when the path was listed.
func (p *Path) Info() fs.FileInfo {
	return p.info
}

// ModTime returns the cached modification time, or the zero time if no
// metadata was captured or the path is a dangling link.
func (p *Path) ModTime() time.Time {
	return p.modTime
}
