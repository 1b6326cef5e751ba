package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/cnogueira/cnsat/internal/dimacs"
	"github.com/cnogueira/cnsat/internal/sat"
)

var flagGzip = flag.Bool(
	"gzip",
	false,
	"treat the instance file as gzip compressed",
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

type config struct {
	instanceFile string
	gzipped      bool
	memProfile   bool
	cpuProfile   bool
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		gzipped:      *flagGzip,
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
	}, nil
}

// run parses the instance, solves it and prints a DIMACS-flavored report.
// A parse failure is reported and treated as a normal (non-fatal) exit, since
// a malformed instance is a user error, not a solver bug.
func run(cfg *config) error {
	s := sat.NewSolver()
	if err := dimacs.LoadDIMACS(cfg.instanceFile, cfg.gzipped, s); err != nil {
		return fmt.Errorf("could not load instance: %s", err)
	}

	fmt.Printf("c variables:  %d\n", s.NumVariables())
	fmt.Printf("c clauses:    %d\n", s.NumClauses())

	t := time.Now()
	status := s.Solve()
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d (%.2f /sec)\n", s.TotalConflicts, float64(s.TotalConflicts)/elapsed.Seconds())

	switch status {
	case sat.True:
		fmt.Println("SAT")
		fmt.Println(s.ModelString())
	case sat.False:
		fmt.Println("UNSAT")
	}

	return nil
}

func usage() {
	fmt.Println("usage: cnsat [flags] <instance.cnf>")
	flag.PrintDefaults()
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		usage()
		return
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			fmt.Println(err)
			return
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		fmt.Println(err)
		return
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			fmt.Println(err)
			return
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
