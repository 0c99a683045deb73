// SPDX-License-Identifier: MIT
// Command matbench times MulNaive against MulFast on random square matrices,
// checks that both kernels agree and runs a 3×3 inversion round trip.
package main

import (
	"flag"
	"os"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

var (
	size       = flag.Int("n", 256, "Side of the square operands.")
	reps       = flag.Int("reps", 3, "Timed repetitions per kernel; the best run is reported.")
	elemType   = flag.String("type", "float64", "Element type: float64 or float32.")
	seed       = flag.Int64("seed", 1, "Seed for the random operands.")
	profileDir = flag.String("profile", "", "If filled, write a CPU profile to this directory.")
	jsonOut    = flag.Bool("json", false, "Print the report as JSON on stdout.")
	logDebug   = flag.Bool("debug", false, "Enable debug logs.")
)

func main() {
	flag.Parse()

	if *logDebug {
		log.SetLevel(log.DebugLevel)
	}

	if *profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir)).Stop()
	}

	cfg := config{
		N:    *size,
		Reps: *reps,
		Type: *elemType,
		Seed: *seed,
	}

	rep, err := run(cfg)
	if err != nil {
		log.WithError(err).Error("benchmark failed")
		os.Exit(1)
	}

	if *jsonOut {
		if err := writeJSON(os.Stdout, rep); err != nil {
			log.WithError(err).Error("can't encode report")
			os.Exit(1)
		}
		return
	}
	logReport(rep)
}
