package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"ubench/internal/format"
	"ubench/internal/history"
	"ubench/internal/report"
	"ubench/internal/runner"
	"ubench/internal/stats"
	"ubench/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runExecCommand allows mocking the benchmarked process in tests.
var runExecCommand = exec.Command

func newRunCmd() *cobra.Command {
	var (
		rounds      int
		verbose     bool
		pretty      bool
		units       string
		listTimings bool
		signDigits  int
		jsonOut     bool
		save        bool
		label       string
		useShell    bool
	)

	cmd := &cobra.Command{
		Use:   "run [flags] -- <command> [args...]",
		Short: "Benchmark a command over a fixed number of rounds",
		Long: `Executes the given command once per round, strictly sequentially, timing
each invocation with the monotonic clock. Reports mean, min, max and
population standard deviation over all rounds.

A failing command aborts the benchmark immediately with that command's
own error; completed rounds are discarded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags left at their defaults fall back to the config.
			if !cmd.Flags().Changed("rounds") {
				rounds = viper.GetInt("rounds")
			}
			if !cmd.Flags().Changed("sign-digits") {
				signDigits = viper.GetInt("sign_digits")
			}
			if !cmd.Flags().Changed("units") {
				units = viper.GetString("units")
			}
			if !cmd.Flags().Changed("verbose") {
				verbose = viper.GetBool("verbose")
			}

			// Reject bad configuration before any round executes.
			unit, err := format.ParseUnit(units)
			if err != nil {
				return err
			}
			if rounds < 1 {
				return fmt.Errorf("rounds must be at least 1, got %d", rounds)
			}
			if signDigits < 0 {
				return fmt.Errorf("sign-digits must not be negative, got %d", signDigits)
			}

			name, cmdArgs := args[0], args[1:]
			if useShell {
				name, cmdArgs = "sh", []string{"-c", strings.Join(args, " ")}
			}

			out := cmd.OutOrStdout()

			// The benchmarked command's own output is discarded so it
			// cannot interleave with progress or the report.
			workload := func() error {
				c := runExecCommand(name, cmdArgs...)
				c.Stdout = io.Discard
				c.Stderr = io.Discard
				return c.Run()
			}

			r := runner.New()
			if verbose {
				r = r.WithProgress(func(round, total int) {
					fmt.Fprintf(out, "\r%d / %d", round, total)
				})
			}

			samples, err := r.Run(workload, rounds)
			if verbose {
				fmt.Fprintln(out)
			}
			if err != nil {
				return err
			}

			st, err := stats.Summarize(samples)
			if err != nil {
				return err
			}

			rep := report.Build(st, samples, report.Options{
				Unit:        unit,
				SignDigits:  signDigits,
				Pretty:      pretty,
				ListTimings: listTimings,
			})

			switch {
			case jsonOut:
				data, err := json.MarshalIndent(rep, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			case rep.Record == nil:
				fmt.Fprintln(out, ui.Summary(rep.Summary))
			default:
				ui.RenderRecord(out, rep.Record)
			}

			if save {
				path := viper.GetString("history_file")
				store, err := newStoreFunc(path)
				if err != nil {
					return fmt.Errorf("failed to open history store: %w", err)
				}
				defer store.Close()

				id, err := store.Save(history.Run{
					Label:   label,
					Command: strings.Join(args, " "),
					Rounds:  rounds,
					MeanNs:  st.Mean,
					MinNs:   st.Min,
					MaxNs:   st.Max,
					StdNs:   st.Std,
				})
				if err != nil {
					return fmt.Errorf("failed to save run: %w", err)
				}
				fmt.Fprintf(out, "\nSaved run %d to %s\n", id, path)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&rounds, "rounds", "n", 50, "number of sequential executions")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print per-round progress")
	cmd.Flags().BoolVar(&pretty, "pretty", false, `print a single "<mean> +/- <std>" line`)
	cmd.Flags().StringVar(&units, "units", "", "fixed output unit (ns, us, ms, sec, min)")
	cmd.Flags().BoolVar(&listTimings, "list-timings", false, "include raw per-round timings (ignored with --pretty)")
	cmd.Flags().IntVar(&signDigits, "sign-digits", 4, "significant digits kept when rounding aggregates, 0 disables")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the report as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "record the run in the history store")
	cmd.Flags().StringVar(&label, "label", "", "label for the saved run")
	cmd.Flags().BoolVar(&useShell, "shell", false, "run the command through 'sh -c'")

	return cmd
}
