package statements

// Tensor is a dense actor × concept × qualifier-level presence indicator.
// A cell is 1 iff at least one statement maps to it. Tensors are immutable
// once returned by Build or FromDense.
type Tensor struct {
	actors   int
	concepts int
	levels   int
	cells    []uint8
}

func newTensor(actors, concepts, levels int) *Tensor {
	return &Tensor{
		actors:   actors,
		concepts: concepts,
		levels:   levels,
		cells:    make([]uint8, actors*concepts*levels),
	}
}

// FromDense builds a tensor from nested [actor][concept][level] data. Every
// actor must have the same number of concepts and every concept the same
// number of levels; cells must be 0 or 1.
func FromDense(data [][][]int) (*Tensor, error) {
	actors := len(data)
	concepts, levels := 0, 0
	if actors > 0 {
		concepts = len(data[0])
		if concepts > 0 {
			levels = len(data[0][0])
		}
	}

	t := newTensor(actors, concepts, levels)
	for a, byConcept := range data {
		if len(byConcept) != concepts {
			return nil, ErrRaggedTensor
		}
		for c, byLevel := range byConcept {
			if len(byLevel) != levels {
				return nil, ErrRaggedTensor
			}
			for q, v := range byLevel {
				switch v {
				case 0:
				case 1:
					t.set(a, c, q)
				default:
					return nil, ErrInvalidCell
				}
			}
		}
	}
	return t, nil
}

func (t *Tensor) offset(actor, concept, level int) int {
	return (actor*t.concepts+concept)*t.levels + level
}

func (t *Tensor) set(actor, concept, level int) {
	t.cells[t.offset(actor, concept, level)] = 1
}

// Shape returns the tensor dimensions.
func (t *Tensor) Shape() (actors, concepts, levels int) {
	return t.actors, t.concepts, t.levels
}

// Actors returns the size of the actor axis.
func (t *Tensor) Actors() int { return t.actors }

// Concepts returns the size of the concept axis.
func (t *Tensor) Concepts() int { return t.concepts }

// Levels returns the size of the qualifier axis.
func (t *Tensor) Levels() int { return t.levels }

// At returns the cell value. Out-of-range coordinates read as 0.
func (t *Tensor) At(actor, concept, level int) int {
	if actor < 0 || actor >= t.actors ||
		concept < 0 || concept >= t.concepts ||
		level < 0 || level >= t.levels {
		return 0
	}
	return int(t.cells[t.offset(actor, concept, level)])
}

// ActorTotal counts the 1-cells in an actor's concept × level slice.
func (t *Tensor) ActorTotal(actor int) int {
	total := 0
	for _, v := range t.actorCells(actor) {
		total += int(v)
	}
	return total
}

// ActorSlice returns a copy of an actor's [concept][level] slice.
func (t *Tensor) ActorSlice(actor int) [][]int {
	if actor < 0 || actor >= t.actors {
		return nil
	}
	cells := t.actorCells(actor)
	out := make([][]int, t.concepts)
	for c := range out {
		out[c] = make([]int, t.levels)
		for q := range out[c] {
			out[c][q] = int(cells[c*t.levels+q])
		}
	}
	return out
}

// EachInActor calls fn for every 1-cell of the actor's slice in
// concept-major order.
func (t *Tensor) EachInActor(actor int, fn func(concept, level int)) {
	cells := t.actorCells(actor)
	for i, v := range cells {
		if v != 0 {
			fn(i/t.levels, i%t.levels)
		}
	}
}

// Nonzero counts all 1-cells.
func (t *Tensor) Nonzero() int {
	n := 0
	for _, v := range t.cells {
		n += int(v)
	}
	return n
}

func (t *Tensor) actorCells(actor int) []uint8 {
	if actor < 0 || actor >= t.actors {
		return nil
	}
	width := t.concepts * t.levels
	return t.cells[actor*width : (actor+1)*width]
}
