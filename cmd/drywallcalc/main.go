// DrywallCalc computes material and labor budgets for drywall and painting jobs
//
// Reads rooms from a job file (YAML), a spreadsheet (CSV or Excel) or a
// floor plan (DXF), estimates the purchase list and prints the budget.
//
// Build:
//   go build -o drywallcalc ./cmd/drywallcalc
//
// Environment:
//   DRYWALLCALC_DATA_DIR   data directory (default ~/.drywallcalc)
//   DRYWALLCALC_STORE      project store backend: json or sqlite
//   DRYWALLCALC_MAX_ROOMS  maximum rooms per budget
//   DRYWALLCALC_VERBOSE    log every step to stderr

package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("[DRYWALLCALC] ")

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
