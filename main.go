// Command gonuts runs a short NUTS chain over an example log-density,
// showing a progress bar as it goes and printing summary diagnostics
// once the chain is done. It exists to exercise the
// sampler package end to end; see the package docs for library use.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/samuelfneumann/gonuts/experiment/tracker"
	"github.com/samuelfneumann/gonuts/logpmodels"
	"github.com/samuelfneumann/gonuts/nutsstat"
	"github.com/samuelfneumann/gonuts/sampler"
	"github.com/samuelfneumann/gonuts/utils/progressbar"
)

func main() {
	var (
		draws    = flag.Int("draws", 1000, "number of draws to take")
		dim      = flag.Int("dim", 10, "dimension of the target density")
		seed     = flag.Uint64("seed", 0, "PRNG seed")
		stepSize = flag.Float64("step-size", 0.1, "leapfrog step size")
		maxDepth = flag.Uint64("max-depth", 10, "maximum tree doubling depth")
		save     = flag.String("save", "", "if set, gob-encode the drawn chain to this file")
	)
	flag.Parse()

	logp := logpmodels.NewNormal(*dim, 0)

	s, err := sampler.New(logp, *seed, *maxDepth, *stepSize)
	if err != nil {
		log.Fatalf("gonuts: %v", err)
	}

	q0 := make([]float64, *dim)
	if err := s.SetPosition(q0); err != nil {
		log.Fatalf("gonuts: %v", err)
	}

	moments := nutsstat.NewMoments(*dim)
	depths := nutsstat.NewDepthHistogram()
	chain := tracker.NewPositionTracker()

	bar := progressbar.NewManualProgressBar(40, *draws)
	for i := 0; i < *draws; i++ {
		position, info, stats, err := s.Draw()
		if err != nil {
			log.Fatalf("gonuts: draw %d: %v", i, err)
		}

		moments.Record(position)
		depths.Record(info.Depth, info.Divergence != nil)
		chain.Track(tracker.DrawRecord{Position: position, Info: info})

		bar.Increment()
		bar.Display()
		_ = stats
	}
	fmt.Println()

	fmt.Printf("draws:            %d\n", moments.NumDraws())
	fmt.Printf("mean:             %v\n", moments.Mean())
	fmt.Printf("stddev:           %v\n", moments.StdDev())
	fmt.Printf("max tree depth:   %d\n", depths.MaxDepth())
	fmt.Printf("divergence rate:  %.4f\n", depths.DivergenceRate())

	if *save != "" {
		if err := chain.Save(*save); err != nil {
			log.Fatalf("gonuts: saving chain: %v", err)
		}
	}
}
