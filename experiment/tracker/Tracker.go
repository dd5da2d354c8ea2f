// Package tracker implements Trackers, which record draws produced by
// a sampler.Sampler and persist them after a run has finished.
package tracker

import (
	"encoding/gob"
	"log"
	"os"

	"github.com/samuelfneumann/gonuts/sampler"
)

// DrawRecord is a single recorded draw: the sampled position and the
// per-draw diagnostics the driver produced alongside it.
type DrawRecord struct {
	Position []float64
	Info     sampler.SampleInfo
}

// Tracker keeps track of the draws produced over a sampling run and
// saves them once the run has finished.
type Tracker interface {
	Track(record DrawRecord)
	Save(filename string) error
}

// PositionTracker is a Tracker that keeps every draw's position in
// memory, in draw order, and discards the per-draw diagnostics. It
// is the tracker main.go's demo uses to gob-encode a chain for later
// offline analysis with nutsstat.
type PositionTracker struct {
	positions [][]float64
}

// NewPositionTracker returns an empty PositionTracker.
func NewPositionTracker() *PositionTracker {
	return &PositionTracker{}
}

// Track appends record's position to the tracked chain.
func (t *PositionTracker) Track(record DrawRecord) {
	t.positions = append(t.positions, record.Position)
}

// Positions returns the tracked chain, in draw order. Callers must
// not mutate the result.
func (t *PositionTracker) Positions() [][]float64 {
	return t.positions
}

// Save gob-encodes the tracked chain to filename.
func (t *PositionTracker) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return gob.NewEncoder(file).Encode(t.positions)
}

// LoadFData loads and returns the data saved by a Tracker as a []float64
func LoadFData(filename string) []float64 {
	// Open file
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("could not open data file: %v", err)
	}
	defer file.Close()

	// Create the decoder and the variable to store the data in
	dec := gob.NewDecoder(file)
	var data []float64

	// Decode the data
	err = dec.Decode(&data)
	if err != nil {
		log.Fatalf("could not decode data: %v", err)
	}

	return data
}

// LoadIData loads and returns the data saved by a Tracker as a []int
func LoadIData(filename string) []int {
	// Open file
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("could not open data file: %v", err)
	}
	defer file.Close()

	// Create the decoder and the variable to store the data in
	dec := gob.NewDecoder(file)
	var data []int

	// Decode the data
	err = dec.Decode(&data)
	if err != nil {
		log.Fatalf("could not decode data: %v", err)
	}

	return data
}

// LoadPositions loads and returns the chain saved by a PositionTracker.
func LoadPositions(filename string) [][]float64 {
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("could not open data file: %v", err)
	}
	defer file.Close()

	dec := gob.NewDecoder(file)
	var data [][]float64

	if err := dec.Decode(&data); err != nil {
		log.Fatalf("could not decode data: %v", err)
	}

	return data
}
