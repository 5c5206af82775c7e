package clfparse

// pathTotal accumulates hits and cumulative response bytes for one path.
type pathTotal struct {
	count uint64
	bytes int64
}

// Tally holds the running per-client and per-path counts for a single run.
// It trusts its caller to have validated everything it records, and it is
// not safe for concurrent use: one run has one writer.
type Tally struct {
	clients map[string]uint64
	paths   map[string]*pathTotal
}

// NewTally returns an empty Tally ready to record lines.
func NewTally() *Tally {
	return &Tally{
		clients: map[string]uint64{},
		paths:   map[string]*pathTotal{},
	}
}

// Record counts one validated line: a hit for addr, and size bytes against
// path. Counts only ever increase.
func (t *Tally) Record(addr, path string, size int64) {
	t.clients[addr]++
	pt := t.paths[path]
	if pt == nil {
		pt = &pathTotal{}
		t.paths[path] = pt
	}
	pt.count++
	pt.bytes += size
}
