// Command dssgo runs an OpenDSS script described by a YAML run file and
// prints a short summary of the solved circuit, or the circuit as JSON.
//
//	dssgo [-log-format text|json] [-log-level info] run.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"slices"

	"github.com/dss-extensions/dss-go/dss"
	"github.com/dss-extensions/dss-go/dssconfig"
	"github.com/dss-extensions/dss-go/logging"
)

func main() {
	logFormat := flag.String("log-format", "text", "log format: text or json")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	output := flag.String("o", "", "override the run file output: summary or json")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dssgo [flags] run.yaml")
		flag.PrintDefaults()
		os.Exit(2)
	}

	h, err := logging.NewHandler(os.Stderr, *logFormat, *logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.New(slog.New(h))

	run, err := dssconfig.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error reading run file: %v", err)
	}
	if *output != "" {
		run.Output = *output
		if err := run.Validate(); err != nil {
			log.Fatal(err)
		}
	}

	engine, err := dss.New(run.Engine, dss.WithLogger(logger))
	if err != nil {
		log.Fatalf("Error configuring engine: %v", err)
	}
	if err := execute(engine, run); err != nil {
		log.Fatal(err)
	}
	if err := report(os.Stdout, engine, run); err != nil {
		log.Fatal(err)
	}
}

func execute(engine *dss.IDSS, run *dssconfig.RunFile) error {
	ctx := context.Background()
	log := engine.Logger()

	if run.Script != "" {
		log.Info(ctx, "compiling", "script", run.Script)
		if err := engine.Text.Set_Command("redirect " + run.Script); err != nil {
			return fmt.Errorf("redirect %s: %w", run.Script, err)
		}
	}
	if len(run.Commands) > 0 {
		log.Debug(ctx, "running commands", "count", len(run.Commands))
		if err := engine.Text.Commands(run.Commands); err != nil {
			return err
		}
	}
	if !run.Solve {
		return nil
	}

	solution := &engine.ActiveCircuit.Solution
	mode, _ := run.SolveMode()
	if err := solution.Set_Mode(mode); err != nil {
		return err
	}
	if err := solution.Solve(); err != nil {
		return err
	}
	converged, err := solution.Get_Converged()
	if err != nil {
		return err
	}
	log.Info(ctx, "solved", "mode", mode.String(), "converged", converged)
	return nil
}

func report(w io.Writer, engine *dss.IDSS, run *dssconfig.RunFile) error {
	circuit := &engine.ActiveCircuit
	if run.Output == dssconfig.OutputJSON {
		flags, _ := run.Flags()
		js, err := circuit.ToJSON(int32(flags))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, js)
		return err
	}
	return summarize(w, circuit)
}

func summarize(w io.Writer, circuit *dss.ICircuit) error {
	name, err := circuit.Name()
	if err != nil {
		return err
	}
	numBuses, err := circuit.NumBuses()
	if err != nil {
		return err
	}
	numNodes, err := circuit.NumNodes()
	if err != nil {
		return err
	}
	converged, err := circuit.Solution.Get_Converged()
	if err != nil {
		return err
	}
	iterations, err := circuit.Solution.Iterations()
	if err != nil {
		return err
	}
	power, err := circuit.TotalPower()
	if err != nil {
		return err
	}
	losses, err := circuit.Losses()
	if err != nil {
		return err
	}
	vpu, err := circuit.AllBusVmagPu()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Circuit:     %s\n", name)
	fmt.Fprintf(w, "Buses:       %d (%d nodes)\n", numBuses, numNodes)
	fmt.Fprintf(w, "Converged:   %v after %d iterations\n", converged, iterations)
	fmt.Fprintf(w, "Total power: %.3f kW, %.3f kvar\n", real(power), imag(power))
	fmt.Fprintf(w, "Losses:      %.3f kW, %.3f kvar\n", real(losses)/1000, imag(losses)/1000)
	if len(vpu) > 0 {
		fmt.Fprintf(w, "Voltage:     %.4f pu min, %.4f pu max\n", slices.Min(vpu), slices.Max(vpu))
	}
	return nil
}
