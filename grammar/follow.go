package grammar

import "fmt"

// followEntry is the FOLLOW set of a non-terminal. The end marker is
// tracked separately from the symbol map.
type followEntry struct {
	symbols map[symbol]struct{}
	eof     bool
}

func newFollowEntry() *followEntry {
	return &followEntry{
		symbols: map[symbol]struct{}{},
		eof:     false,
	}
}

func (e *followEntry) add(sym symbol) bool {
	if _, ok := e.symbols[sym]; ok {
		return false
	}
	e.symbols[sym] = struct{}{}
	return true
}

func (e *followEntry) addEOF() bool {
	if !e.eof {
		e.eof = true
		return true
	}
	return false
}

func (e *followEntry) merge(fst *firstEntry, flw *followEntry) bool {
	changed := false

	if fst != nil {
		for sym := range fst.symbols {
			added := e.add(sym)
			if added {
				changed = true
			}
		}
	}

	if flw != nil {
		for sym := range flw.symbols {
			added := e.add(sym)
			if added {
				changed = true
			}
		}
		if flw.eof {
			added := e.addEOF()
			if added {
				changed = true
			}
		}
	}

	return changed
}

type followSet struct {
	set map[symbol]*followEntry
}

func newFollowSet(prods *productionSet) *followSet {
	flw := &followSet{
		set: map[symbol]*followEntry{},
	}
	for _, prod := range prods.getAllProductions() {
		if _, ok := flw.set[prod.lhs]; ok {
			continue
		}
		flw.set[prod.lhs] = newFollowEntry()
	}
	return flw
}

func (flw *followSet) find(sym symbol) (*followEntry, error) {
	e, ok := flw.set[sym]
	if !ok {
		return nil, fmt.Errorf("an entry of FOLLOW was not found; symbol: %s", sym)
	}
	return e, nil
}

// genFollowSet computes FOLLOW for every non-terminal as a least fixed
// point. The end marker is seeded into the FOLLOW set of the original
// start symbol, not the augmented one.
func genFollowSet(prods *productionSet, first *firstSet, startSym symbol) (*followSet, error) {
	flw := newFollowSet(prods)

	if e, err := flw.find(startSym); err != nil {
		return nil, err
	} else {
		e.addEOF()
	}

	for {
		more := false
		for ntsym := range flw.set {
			e, err := flw.find(ntsym)
			if err != nil {
				return nil, err
			}
			for _, prod := range prods.getAllProductions() {
				for i, sym := range prod.rhs {
					if sym != ntsym {
						continue
					}
					fst, err := first.find(prod, i+1)
					if err != nil {
						return nil, err
					}
					changed := e.merge(fst, nil)
					if changed {
						more = true
					}
					if fst.empty {
						lhsFlw, err := flw.find(prod.lhs)
						if err != nil {
							return nil, err
						}
						changed := e.merge(nil, lhsFlw)
						if changed {
							more = true
						}
					}
				}
			}
		}
		if !more {
			break
		}
	}

	return flw, nil
}
