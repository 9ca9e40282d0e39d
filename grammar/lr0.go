package grammar

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
)

// transition is one edge of the canonical collection: goto(from, sym) = to.
type transition struct {
	from stateNum
	sym  symbol
	to   stateNum
}

func stateComparator(a, b interface{}) int {
	return a.(*lrState).num.Int() - b.(*lrState).num.Int()
}

type lr0Automaton struct {
	initialState kernelID
	states       map[kernelID]*lrState

	// ordered holds the states sorted by state number; transitions holds
	// the edges sorted by (source state, symbol). Both orders are what
	// the table builder and the report walk.
	ordered     *treeset.Set
	transitions *arraylist.List
}

func (a *lr0Automaton) stateCount() int {
	return len(a.states)
}

func (a *lr0Automaton) eachState(fn func(s *lrState)) {
	a.ordered.Each(func(_ int, v interface{}) {
		fn(v.(*lrState))
	})
}

func (a *lr0Automaton) eachTransition(fn func(tr *transition)) {
	a.transitions.Each(func(_ int, v interface{}) {
		fn(v.(*transition))
	})
}

func genLR0Automaton(prods *productionSet, startSym symbol) (*lr0Automaton, error) {
	if !startSym.isStart() {
		return nil, fmt.Errorf("passed symbol is not a start symbol")
	}

	automaton := &lr0Automaton{
		states:      map[kernelID]*lrState{},
		ordered:     treeset.NewWith(stateComparator),
		transitions: arraylist.New(),
	}

	currentState := stateNumInitial
	knownKernels := map[kernelID]struct{}{}
	uncheckedKernels := []*kernel{}

	// Generate an initial kernel.
	{
		startProds, _ := prods.findByLHS(startSym)
		initialItem, err := newLR0Item(startProds[0], 0)
		if err != nil {
			return nil, err
		}

		k, err := newKernel([]*lrItem{initialItem})
		if err != nil {
			return nil, err
		}

		automaton.initialState = k.id
		knownKernels[k.id] = struct{}{}
		uncheckedKernels = append(uncheckedKernels, k)
	}

	for len(uncheckedKernels) > 0 {
		nextUncheckedKernels := []*kernel{}
		for _, k := range uncheckedKernels {
			state, neighbours, err := genStateAndNeighbourKernels(k, prods)
			if err != nil {
				return nil, err
			}
			state.num = currentState
			currentState = currentState.next()

			automaton.states[state.id] = state
			automaton.ordered.Add(state)

			for _, k := range neighbours {
				if _, known := knownKernels[k.id]; known {
					continue
				}
				knownKernels[k.id] = struct{}{}
				nextUncheckedKernels = append(nextUncheckedKernels, k)
			}
		}
		uncheckedKernels = nextUncheckedKernels
	}

	automaton.eachState(func(s *lrState) {
		syms := make([]symbol, 0, len(s.next))
		for sym := range s.next {
			syms = append(syms, sym)
		}
		sort.Slice(syms, func(i, j int) bool {
			return syms[i] < syms[j]
		})
		for _, sym := range syms {
			automaton.transitions.Add(&transition{
				from: s.num,
				sym:  sym,
				to:   automaton.states[s.next[sym]].num,
			})
		}
	})

	return automaton, nil
}

func genStateAndNeighbourKernels(k *kernel, prods *productionSet) (*lrState, []*kernel, error) {
	items, err := genClosure(k, prods)
	if err != nil {
		return nil, nil, err
	}
	neighbours, err := genNeighbourKernels(items, prods)
	if err != nil {
		return nil, nil, err
	}

	next := map[symbol]kernelID{}
	kernels := []*kernel{}
	for _, n := range neighbours {
		next[n.symbol] = n.kernel.id
		kernels = append(kernels, n.kernel)
	}

	reducibleSet := map[productionNum]struct{}{}
	for _, item := range items {
		if item.reducible {
			reducibleSet[item.prodNum] = struct{}{}
		}
	}
	reducible := make([]productionNum, 0, len(reducibleSet))
	for num := range reducibleSet {
		reducible = append(reducible, num)
	}
	sort.Slice(reducible, func(i, j int) bool {
		return reducible[i] < reducible[j]
	})

	sort.Slice(items, func(i, j int) bool {
		if items[i].prodNum != items[j].prodNum {
			return items[i].prodNum < items[j].prodNum
		}
		return items[i].dot < items[j].dot
	})

	return &lrState{
		kernel:    k,
		items:     items,
		next:      next,
		reducible: reducible,
	}, kernels, nil
}

func genClosure(k *kernel, prods *productionSet) ([]*lrItem, error) {
	items := []*lrItem{}
	knownItems := map[lrItemID]struct{}{}
	uncheckedItems := []*lrItem{}
	for _, item := range k.items {
		items = append(items, item)
		knownItems[item.id] = struct{}{}
		uncheckedItems = append(uncheckedItems, item)
	}
	for len(uncheckedItems) > 0 {
		nextUncheckedItems := []*lrItem{}
		for _, item := range uncheckedItems {
			if item.dottedSymbol.isNil() || item.dottedSymbol.isTerminal() {
				continue
			}

			ps, _ := prods.findByLHS(item.dottedSymbol)
			for _, prod := range ps {
				item, err := newLR0Item(prod, 0)
				if err != nil {
					return nil, err
				}
				if _, exist := knownItems[item.id]; exist {
					continue
				}
				items = append(items, item)
				knownItems[item.id] = struct{}{}
				nextUncheckedItems = append(nextUncheckedItems, item)
			}
		}
		uncheckedItems = nextUncheckedItems
	}

	return items, nil
}

type neighbourKernel struct {
	symbol symbol
	kernel *kernel
}

func genNeighbourKernels(items []*lrItem, prods *productionSet) ([]*neighbourKernel, error) {
	kItemMap := map[symbol][]*lrItem{}
	for _, item := range items {
		if item.dottedSymbol.isNil() {
			continue
		}
		prod, ok := prods.findByID(item.prod)
		if !ok {
			return nil, fmt.Errorf("a production was not found: %v", item.prod)
		}
		kItem, err := newLR0Item(prod, item.dot+1)
		if err != nil {
			return nil, err
		}
		kItemMap[item.dottedSymbol] = append(kItemMap[item.dottedSymbol], kItem)
	}

	nextSyms := []symbol{}
	for sym := range kItemMap {
		nextSyms = append(nextSyms, sym)
	}
	sort.Slice(nextSyms, func(i, j int) bool {
		return nextSyms[i] < nextSyms[j]
	})

	kernels := []*neighbourKernel{}
	for _, sym := range nextSyms {
		k, err := newKernel(kItemMap[sym])
		if err != nil {
			return nil, err
		}
		kernels = append(kernels, &neighbourKernel{
			symbol: sym,
			kernel: k,
		})
	}

	return kernels, nil
}
