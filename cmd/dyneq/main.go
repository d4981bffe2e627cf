// Command dyneq inspects the knee-curve and filter-response engines.
//
// Usage:
//
//	dyneq [flags] <command> [command-flags]
//
// Commands:
//
//	knee      print the static compression curve
//	response  print the summed magnitude response of one or more bands
//	verify    check the analytic response against the FFT of the impulse response
//	simulate  run a control goroutine against a block-pulling consumer
//
// Examples:
//
//	dyneq knee --threshold=-24 --ratio=4 --knee=6 --curve=0.5
//	dyneq response --band lowshelf:120:4:0.707:2 --band peak:2500:-3:1.4:2
//	dyneq verify --band lowpass:1000:0:0.707:8 --tolerance 0.001
//	dyneq simulate --blocks 2000 --block-size 256
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

var version = "0.1.0"

// runContext is bound into every command's Run method.
type runContext struct {
	log *slog.Logger
	out io.Writer
}

// CLI defines the command-line interface.
type CLI struct {
	LogLevel string           `help:"Log level (${enum})." enum:"debug,info,warn,error" default:"info" env:"DYNEQ_LOG_LEVEL"`
	Version  kong.VersionFlag `short:"v" help:"Show version information."`

	Knee     KneeCmd     `cmd:"" help:"Print the static compression curve."`
	Response ResponseCmd `cmd:"" help:"Print the summed magnitude response of the given bands."`
	Verify   VerifyCmd   `cmd:"" help:"Compare the analytic response with the FFT of the impulse response."`
	Simulate SimulateCmd `cmd:"" help:"Publish parameter bursts while a consumer pulls once per block."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dyneq"),
		kong.Description("Inspect the dynamics knee and parametric filter response engines"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	logger, err := newLogger(os.Stderr, cli.LogLevel)
	if err != nil {
		printError(err.Error())
		os.Exit(1)
	}

	err = ctx.Run(&runContext{log: logger, out: os.Stdout})
	ctx.FatalIfErrorf(err)
}
