// Command finmath evaluates the fixed point primitives from the command line:
// rounding user input, normalizing oracle prices, computing schedule releases,
// interest rates and building or checking merkle allow-lists.
//
//  finmath [-config finmath.yaml] <command> [flags] [args]
//
// Results are written to stdout, one per line. Structured logs go to stderr.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

// Usage is a malformed command line.
var Usage = errs.Class("usage")

const usage = `usage: finmath [-config path] <command> [flags] [args]

commands:
  round [-wide] [-check] -precision sf:N|dp:N <value>
  normalize (-decimals N | -denom D) <price>
  released -grants path [-denom D] -from T -to T
  rate -curve path <utilization>
  merkle root <allow-list>
  merkle proof <allow-list> <leaf>
  merkle verify -root hex <leaf> [proof...]

Times are unix seconds or RFC 3339.
`

// App holds what every command needs.
type App struct {
	Config Config
	Log    *zap.Logger
	Out    io.Writer
}

type command func(a *App, args []string) error

var commands = map[string]command{
	"round":     (*App).Round,
	"normalize": (*App).Normalize,
	"released":  (*App).Released,
	"rate":      (*App).Rate,
	"merkle":    (*App).Merkle,
}

// Run dispatches args[0] to its command.
func (a *App) Run(args []string) error {
	if len(args) == 0 {
		return Usage.New("missing command")
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return Usage.New("unknown command %q", args[0])
	}

	return cmd(a, args[1:])
}

func main() {
	fs := flag.NewFlagSet("finmath", flag.ExitOnError)
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }
	configPath := fs.String("config", "", "configuration file (default ./finmath.yaml when present)")

	_ = fs.Parse(os.Args[1:])

	cfg, err := LoadConfig(viper.New(), *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(2)
	}

	logger, err := cfg.Logger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(2)
	}

	app := &App{
		Config: cfg,
		Log:    logger,
		Out:    os.Stdout,
	}

	err = app.Run(fs.Args())
	if err != nil {
		if Usage.Has(err) {
			fmt.Fprint(os.Stderr, usage)
		}

		logger.Error("failed", zap.Error(err))
	}

	_ = logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}
