package clfparse

import (
	"math"
	"sort"
)

// ClientCount is one entry in the ranked client listing.
type ClientCount struct {
	Addr  string
	Count uint64
}

// PathAverage is one entry in the ranked path listing. KiB is the average
// response size in kibibytes, rounded to two decimal places.
type PathAverage struct {
	Path string
	KiB  float64
}

// TopClients ranks the recorded clients by hit count descending and returns
// at most max entries. Equal counts are ordered by address, since map
// iteration order would otherwise make the result nondeterministic. A max
// of zero or less gives an empty ranking.
func (t *Tally) TopClients(max int) ClientRanking {
	if max < 0 {
		max = 0
	}
	ranked := make(ClientRanking, 0, len(t.clients))
	for addr, count := range t.clients {
		ranked = append(ranked, ClientCount{Addr: addr, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count == ranked[j].Count {
			return ranked[i].Addr < ranked[j].Addr
		}
		return ranked[i].Count > ranked[j].Count
	})
	if max < len(ranked) {
		ranked = ranked[:max]
	}
	return ranked
}

// TopPaths ranks the recorded paths by average response size descending and
// returns at most max entries. Equal averages are ordered by path. Averages
// are rounded only after truncation, so rounding cannot change which paths
// survive the cut. A max of zero or less gives an empty ranking.
func (t *Tally) TopPaths(max int) PathRanking {
	if max < 0 {
		max = 0
	}
	ranked := make(PathRanking, 0, len(t.paths))
	for path, pt := range t.paths {
		avg := float64(pt.bytes) / float64(pt.count) / 1024.0
		ranked = append(ranked, PathAverage{Path: path, KiB: avg})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].KiB == ranked[j].KiB {
			return ranked[i].Path < ranked[j].Path
		}
		return ranked[i].KiB > ranked[j].KiB
	})
	if max < len(ranked) {
		ranked = ranked[:max]
	}
	for i := range ranked {
		ranked[i].KiB = math.Round(ranked[i].KiB*100) / 100
	}
	return ranked
}
