package protein

import (
	"sort"
)

// bondSet is an undirected graph. Every edge is stored in both directions.
type bondSet map[atomID]map[atomID]struct{}

func (bs bondSet) add(a, b atomID) {
	if a == b {
		return
	}
	if bs[a] == nil {
		bs[a] = make(map[atomID]struct{})
	}
	if bs[b] == nil {
		bs[b] = make(map[atomID]struct{})
	}
	bs[a][b] = struct{}{}
	bs[b][a] = struct{}{}
}

func (bs bondSet) has(a, b atomID) bool {
	_, ok := bs[a][b]
	return ok
}

// union adds every edge of o.
func (bs bondSet) union(o bondSet) {
	for a, nbrs := range o {
		for b := range nbrs {
			bs.add(a, b)
		}
	}
}

// remove takes an atom and all its edges out of the graph.
func (bs bondSet) remove(a atomID) {
	for b := range bs[a] {
		delete(bs[b], a)
		if len(bs[b]) == 0 {
			delete(bs, b)
		}
	}
	delete(bs, a)
}

// nEdge counts each bond once.
func (bs bondSet) nEdge() int {
	n := 0
	for _, nbrs := range bs {
		n += len(nbrs)
	}
	return n / 2
}

// filter returns the subgraph where both ends satisfy keep.
func (bs bondSet) filter(keep func(atomID) bool) bondSet {
	ret := make(bondSet)
	for a, nbrs := range bs {
		if !keep(a) {
			continue
		}
		for b := range nbrs {
			if keep(b) {
				ret.add(a, b)
			}
		}
	}
	return ret
}

// neighbours returns the bonded atoms, sorted so callers see the same
// order every time.
func (bs bondSet) neighbours(a atomID) []atomID {
	ret := make([]atomID, 0, len(bs[a]))
	for b := range bs[a] {
		ret = append(ret, b)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}
