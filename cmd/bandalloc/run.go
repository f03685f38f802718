package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	bandalloc "github.com/Anoushka222/DAA-Project"
	"github.com/Anoushka222/DAA-Project/httpapi"
	"github.com/Anoushka222/DAA-Project/internal/logging"
	"github.com/Anoushka222/DAA-Project/types"
)

type cmdRun struct {
	Capacity int64  `long:"capacity" short:"c" default:"200" description:"Total bandwidth budget (MBps)"`
	Demands  string `long:"demands" short:"d" default:"50,40,30,60,20" description:"Comma-separated demand list"`
	Strategy string `long:"strategy" short:"s" default:"auto" description:"Strategy: auto, greedy, dp, backtracking, or random"`
	Seed     uint64 `long:"seed" description:"Seed the Random strategy for reproducible output (0 uses real entropy)"`
	Verbose  bool   `long:"verbose" short:"v" description:"Enable debug logging"`
}

func (cmd *cmdRun) Execute([]string) error {
	name, err := types.ParseStrategyName(cmd.Strategy)
	if err != nil {
		return err
	}

	demands := httpapi.ParseDemands(cmd.Demands)
	if len(demands) == 0 {
		return fmt.Errorf("no valid demand values in %q (expected e.g. 30,40,50)", cmd.Demands)
	}

	engine, err := newEngine(cmd.Seed, cmd.Verbose)
	if err != nil {
		return err
	}

	resp, err := engine.Run(context.Background(), bandalloc.Request{
		Capacity: cmd.Capacity,
		Demands:  demands,
		Strategy: name,
	})
	if err != nil {
		return err
	}

	if resp.Report != nil {
		printReport(resp.Report, cmd.Capacity)
	} else {
		printAllocation(resp.Allocation, cmd.Capacity)
	}

	return nil
}

func newEngine(seed uint64, verbose bool) (*bandalloc.Engine, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewSlog(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	opts := []bandalloc.Option{bandalloc.WithLogger(logger)}
	if seed != 0 {
		opts = append(opts, bandalloc.WithRandomSeed(seed))
	}

	cfg := bandalloc.DefaultConfig()

	return bandalloc.New(&cfg, opts...)
}

// printReport renders the Auto-Select comparison as a table, best first row
// marked, with unavailable strategies and their reasons at the bottom.
func printReport(report *bandalloc.Report, capacity int64) {
	fmt.Printf("Best strategy: %s (%s / %s MBps)\n\n",
		report.Best,
		humanize.Comma(report.BestTotal),
		humanize.Comma(capacity),
	)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Strategy", "Achieved", "Utilization", ""})

	for _, name := range types.EvaluationOrder() {
		total, ok := report.Totals[name]
		if !ok {
			continue
		}

		marker := ""
		if name == report.Best {
			marker = "best"
		}
		table.Append([]string{
			string(name),
			humanize.Comma(total),
			utilization(total, capacity),
			marker,
		})
	}
	for name, reason := range report.Unavailable {
		table.Append([]string{string(name), "-", "-", reason})
	}
	table.Render()
}

// printAllocation renders one strategy's per-grant breakdown.
func printAllocation(alloc *bandalloc.Allocation, capacity int64) {
	fmt.Printf("%s allocated %s / %s MBps\n\n",
		alloc.Strategy,
		humanize.Comma(alloc.Total),
		humanize.Comma(capacity),
	)

	header := "Allocated"
	if alloc.Semantics == bandalloc.SubsetSelect {
		header = "Selected Demand"
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"User", header})
	for i, grant := range alloc.Grants {
		table.Append([]string{
			fmt.Sprintf("User %d", i+1),
			humanize.Comma(grant),
		})
	}
	table.Render()
}

func utilization(total, capacity int64) string {
	if capacity <= 0 {
		return "100%"
	}

	return fmt.Sprintf("%.0f%%", float64(total)/float64(capacity)*100)
}
