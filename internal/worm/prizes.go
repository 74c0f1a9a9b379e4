package worm

import (
	"fmt"
	"math"

	"github.com/alexchandel/gravity-worm/internal/config"
	"github.com/alexchandel/gravity-worm/internal/core"
)

// Rand is the randomness source used for prize spawning.
// *math/rand.Rand satisfies it; tests can supply scripted sources.
type Rand interface {
	Intn(n int) int
}

// Prize is a collectible token scrolling left with the cave.
type Prize struct {
	Col int // Column in blocks; spawns at the right edge (the column count)
	Row int // Row in blocks, strictly inside the cave gap at spawn time
}

// PrizeField handles spawning, scrolling, culling and collection of prizes.
type PrizeField struct {
	prizes   []Prize
	rng      Rand
	spawnCol int
	cfg      config.PrizeConfig
}

// NewPrizeField creates an empty prize field spawning at column spawnCol.
func NewPrizeField(rng Rand, spawnCol int, cfg config.PrizeConfig) *PrizeField {
	return &PrizeField{
		prizes:   make([]Prize, 0, 8),
		rng:      rng,
		spawnCol: spawnCol,
		cfg:      cfg,
	}
}

// Spawn rolls for a new prize at the right edge between the given wall rows.
// Returns true if a prize was added.
// Panics if the chosen row is not strictly inside (top, bottom): that means the
// cave geometry is broken, not that the player did anything wrong.
func (f *PrizeField) Spawn(top, bottom int) bool {
	if f.rng.Intn(f.cfg.SpawnOneIn) != f.cfg.SpawnOneIn-1 {
		return false
	}
	if bottom-top < 2 {
		panic(fmt.Sprintf("worm: no room for a prize between rows %d and %d", top, bottom))
	}

	row := top + 1 + f.rng.Intn(bottom-top-1)
	if row <= top || row >= bottom {
		panic(fmt.Sprintf("worm: prize row %d outside gap (%d, %d)", row, top, bottom))
	}

	f.prizes = append(f.prizes, Prize{Col: f.spawnCol, Row: row})
	return true
}

// Scroll moves every prize one column left and drops those past the left edge.
func (f *PrizeField) Scroll() {
	for i := range f.prizes {
		f.prizes[i].Col--
	}

	valid := f.prizes[:0]
	for _, p := range f.prizes {
		if p.Col >= 0 {
			valid = append(valid, p)
		}
	}
	f.prizes = valid
}

// Collect removes prizes within reach of the given column and height on both
// axes independently. Returns the number removed.
func (f *PrizeField) Collect(col int, height float64) int {
	reach := f.cfg.Reach
	kept := f.prizes[:0]
	collected := 0
	for _, p := range f.prizes {
		if core.Abs(p.Col-col) < reach && math.Abs(float64(p.Row)-height) < float64(reach) {
			collected++
			continue
		}
		kept = append(kept, p)
	}
	f.prizes = kept
	return collected
}

// Prizes returns the current prizes.
func (f *PrizeField) Prizes() []Prize {
	return f.prizes
}
