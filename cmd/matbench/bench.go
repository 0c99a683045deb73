// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/dualmat/matrix"
	"github.com/katalvlaran/dualmat/stopwatch"
)

var (
	errBadSize = errors.New("matbench: size must be positive")
	errBadReps = errors.New("matbench: reps must be positive")
	errBadType = errors.New("matbench: unsupported element type")
	errDiverge = errors.New("matbench: kernels disagree")
)

type config struct {
	N    int
	Reps int
	Type string
	Seed int64
}

type report struct {
	N        int     `json:"n"`
	Type     string  `json:"type"`
	Reps     int     `json:"reps"`
	Storage  uint64  `json:"storage_bytes"`
	NaiveMs  float64 `json:"naive_ms"`
	FastMs   float64 `json:"fast_ms"`
	Speedup  float64 `json:"speedup"`
	Inverted bool    `json:"inverted"`
	RoundOK  bool    `json:"round_trip_ok"`
}

func (c config) validate() error {
	if c.N <= 0 {
		return fmt.Errorf("%w: %d", errBadSize, c.N)
	}
	if c.Reps <= 0 {
		return fmt.Errorf("%w: %d", errBadReps, c.Reps)
	}

	return nil
}

func run(c config) (report, error) {
	if err := c.validate(); err != nil {
		return report{}, err
	}
	switch c.Type {
	case "float64":
		return runTyped[float64](c)
	case "float32":
		return runTyped[float32](c)
	default:
		return report{}, fmt.Errorf("%w: %q", errBadType, c.Type)
	}
}

func randomSquare[T matrix.Float](n int, rng *rand.Rand) (*matrix.Matrix[T], error) {
	data := make([]T, n*n)
	for i := range data {
		data[i] = T(rng.Float64()*2 - 1)
	}

	return matrix.NewFromRowMajor(n, n, data)
}

// bestOf runs f reps times and returns the fastest wall time in milliseconds.
func bestOf(reps int, f func() error) (float64, error) {
	sw := stopwatch.New()
	best := -1.0
	for i := 0; i < reps; i++ {
		sw.Start()
		err := f()
		ms, _ := sw.Stop()
		if err != nil {
			return 0, err
		}
		if best < 0 || ms < best {
			best = ms
		}
	}

	return best, nil
}

func runTyped[T matrix.Float](c config) (report, error) {
	rng := rand.New(rand.NewSource(c.Seed))
	a, err := randomSquare[T](c.N, rng)
	if err != nil {
		return report{}, err
	}
	b, err := randomSquare[T](c.N, rng)
	if err != nil {
		return report{}, err
	}

	var zero T
	rep := report{
		N:    c.N,
		Type: c.Type,
		Reps: c.Reps,
		// Each operand holds two n×n buffers.
		Storage: uint64(2 * 2 * c.N * c.N * int(unsafe.Sizeof(zero))),
	}
	log.WithFields(log.Fields{
		"n":       c.N,
		"type":    c.Type,
		"storage": humanize.Bytes(rep.Storage),
	}).Debug("operands ready")

	var naive, fast *matrix.Matrix[T]
	if rep.NaiveMs, err = bestOf(c.Reps, func() (err error) {
		naive, err = matrix.MulNaive(a, b)
		return err
	}); err != nil {
		return report{}, err
	}
	if rep.FastMs, err = bestOf(c.Reps, func() (err error) {
		fast, err = matrix.MulFast(a, b)
		return err
	}); err != nil {
		return report{}, err
	}
	if rep.FastMs > 0 {
		rep.Speedup = rep.NaiveMs / rep.FastMs
	}

	same, err := matrix.Equal(naive, fast)
	if err != nil {
		return report{}, err
	}
	if !same {
		return report{}, errDiverge
	}

	rep.Inverted, rep.RoundOK, err = inversionRoundTrip[T]()
	if err != nil {
		return report{}, err
	}

	return rep, nil
}

// inversionRoundTrip inverts a fixed well-conditioned 3×3 matrix and checks
// that M·M⁻¹ is the identity.
func inversionRoundTrip[T matrix.Float]() (bool, bool, error) {
	m, err := matrix.NewFromRowMajor(3, 3, []T{
		4, 7, 2,
		3, 6, 1,
		2, 5, 3,
	})
	if err != nil {
		return false, false, err
	}
	inv, ok, err := matrix.Invert3x3(m)
	if err != nil || !ok {
		return ok, false, err
	}
	prod, err := matrix.MulFast(m, inv)
	if err != nil {
		return true, false, err
	}
	id, err := matrix.NewIdentity[T](3)
	if err != nil {
		return true, false, err
	}
	// float32 needs a looser bound than DefaultTolerance.
	near, err := matrix.AllClose(prod, id, 1e-5, 1e-5)
	if err != nil {
		return true, false, err
	}
	log.WithField("inverse", inv.String()).Debug("3x3 inverse")

	return true, near, nil
}

func logReport(r report) {
	log.WithFields(log.Fields{
		"n":       r.N,
		"type":    r.Type,
		"reps":    r.Reps,
		"storage": humanize.Bytes(r.Storage),
		"mul-add": humanize.Comma(int64(r.N) * int64(r.N) * int64(r.N)),
	}).Info("matrix product")
	log.Infof("naive %.3fms fast %.3fms speedup x%.2f", r.NaiveMs, r.FastMs, r.Speedup)
	log.WithFields(log.Fields{
		"inverted":   r.Inverted,
		"round_trip": r.RoundOK,
	}).Info("3x3 inverse")
}

func writeJSON(w io.Writer, r report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}
