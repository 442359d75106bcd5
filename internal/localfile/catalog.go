package localfile

import (
	"slices"
	"sync"
)

// Catalog holds the named data locations loaded from configuration.
type Catalog struct {
	mu        sync.RWMutex
	locations map[string]*DataLocation
	logger    Logger
}

// NewCatalog creates an empty catalog. A nil logger discards output.
func NewCatalog(logger Logger) *Catalog {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Catalog{
		locations: make(map[string]*DataLocation),
		logger:    logger,
	}
}

// Add registers loc under name. Names must be non-empty and unique.
func (c *Catalog) Add(name string, loc *DataLocation) error {
	if name == "" {
		return invalidArgument("location name is empty")
	}
	if loc == nil {
		return invalidArgument("location %s is nil", name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.locations[name]; ok {
		return invalidArgument("duplicate location name %q", name)
	}
	c.locations[name] = loc
	c.logger.Debug("location added", "name", name, "location", loc.Location(), "pattern", loc.Pattern().String())
	return nil
}

// Get returns the location registered under name.
func (c *Catalog) Get(name string) (*DataLocation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	loc, ok := c.locations[name]
	return loc, ok
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.locations))
	for name := range c.locations {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Files lists the files of the location registered under name.
func (c *Catalog) Files(name string) ([]*Path, error) {
	loc, ok := c.Get(name)
	if !ok {
		return nil, invalidArgument("unknown location %q", name)
	}

	files, err := loc.Files()
	if err != nil {
		c.logger.Warn("listing location failed", "name", name, "location", loc.Location(), "error", err)
		return nil, err
	}
	c.logger.Debug("location listed", "name", name, "files", len(files))
	return files, nil
}
