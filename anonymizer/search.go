package anonymizer

import "github.com/johnruth96/kanonymity/encode"

// searchPhase is the resume point of one stack frame in the explicit
// work-stack simulation of the recursive kano(H, T) search (spec.md
// §4.2.2, reshaped per spec.md §9's "explicit work stack" design note
// to bound stack depth at |σ| instead of relying on Go's call stack).
type searchPhase int

const (
	// phaseEnter: frame just pushed, steps 1-4 of kano not yet run.
	phaseEnter searchPhase = iota
	// phaseReady: tail is current (freshly pruned or freshly refreshed);
	// pick the next candidate, if any.
	phaseReady
	// phaseAwait: a child call was just pushed for the frame's current
	// head; when control returns here the child has finished and tail
	// must be re-pruned before picking the next candidate.
	phaseAwait
)

// searchFrame is one activation record of kano(head, tail).
type searchFrame struct {
	head  []int
	tail  []int
	phase searchPhase
}

// search runs the full branch-and-bound over σ, mutating a.bestHead and
// a.bestCost in place. It never recurses: the frame stack IS the call
// stack, bounded by |σ| frames.
func (a *Anonymizer) search() {
	stack := []*searchFrame{{head: nil, tail: append([]int(nil), a.domain.Sigma...)}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		switch top.phase {
		case phaseEnter:
			c := a.costOfHead(top.head)
			if c < a.bestCost {
				a.bestCost = c
				a.bestHead = append([]int(nil), top.head...)
			}
			top.tail = a.prune(top.head, top.tail, a.bestCost)
			top.phase = phaseReady

		case phaseAwait:
			top.tail = a.prune(top.head, top.tail, a.bestCost)
			top.phase = phaseReady

		case phaseReady:
			if len(top.tail) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			v := top.tail[0]
			childTail := encode.RemoveValue(top.tail, v)
			childHead := encode.SortedUnion(top.head, []int{v})
			top.tail = childTail
			top.phase = phaseAwait
			stack = append(stack, &searchFrame{
				head:  childHead,
				tail:  append([]int(nil), childTail...),
				phase: phaseEnter,
			})
		}
	}
}
