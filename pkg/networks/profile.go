package networks

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/dd0wney/discourse-networks/pkg/statements"
)

// profile is an actor's slice of the tensor as a set of occupied positions
// concept*levels + level.
type profile struct {
	cells   *roaring.Bitmap
	flipped *roaring.Bitmap
	total   int
}

// buildProfiles indexes every actor once. flipped holds the same cells with
// the qualifier axis reversed (level q -> levels-1-q) and is only populated
// when withFlipped is set.
func buildProfiles(t *statements.Tensor, withFlipped bool) []profile {
	levels := t.Levels()
	profiles := make([]profile, t.Actors())

	for a := range profiles {
		p := profile{cells: roaring.New()}
		if withFlipped {
			p.flipped = roaring.New()
		}

		t.EachInActor(a, func(concept, level int) {
			p.cells.Add(uint32(concept*levels + level))
			if withFlipped {
				p.flipped.Add(uint32(concept*levels + (levels - 1 - level)))
			}
		})
		p.total = int(p.cells.GetCardinality())
		profiles[a] = p
	}
	return profiles
}

// congruenceScore counts (concept, level) cells both actors occupy.
func congruenceScore(i, j profile) int {
	return int(i.cells.AndCardinality(j.cells))
}

// conflictScore counts cells of i that j occupies on the opposite level.
func conflictScore(i, j profile) int {
	return int(i.cells.AndCardinality(j.flipped))
}
