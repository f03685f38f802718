// Command bandalloc runs the bandwidth allocation optimizer from the command
// line, either as a one-shot comparison (`bandalloc run`) or as an HTTP
// service (`bandalloc serve`).
package main

import (
	"errors"
	"os"

	"github.com/jessevdk/go-flags"
)

func main() {
	parser := flags.NewParser(nil, flags.Default)

	mustAddCommand(parser, "run", "Run the optimizer once",
		`Allocate a bandwidth budget across a list of demands and print the result.

Demands are comma-separated free text; empty and non-numeric tokens are
dropped before the engine runs, e.g.:

    bandalloc run --capacity 200 --demands "50,40,30,60,20" --strategy auto
`, &cmdRun{})

	mustAddCommand(parser, "serve", "Serve the allocation HTTP API",
		`Serve the allocation engine over HTTP.

The allocate endpoint accepts GET query parameters or a POST form:

    curl 'localhost:8080/v1/allocate?capacity=100&demands=50,40,30,60,20&strategy=auto'

Prometheus metrics are exposed on /metrics.
`, &cmdServe{})

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

func mustAddCommand(parser *flags.Parser, name, short, long string, data any) {
	if _, err := parser.AddCommand(name, short, long, data); err != nil {
		panic(err)
	}
}
