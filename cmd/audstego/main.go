// SPDX-License-Identifier: EPL-2.0

// Command audstego hides encrypted messages in WAV files and evaluates how
// well they survive.
//
//	audstego encode     -alg basic -in carrier.wav -out stego.wav -m "text"
//	audstego decode     -alg basic -in stego.wav
//	audstego evaluate   -alg advanced -in carrier.wav -out stego.wav -m "text"
//	audstego robustness -alg basic -in stego.wav -m "text" -bitrates 320,128,64,32
//	audstego info       -in carrier.wav
//	audstego prepare    -in song.mp3 -out carrier.wav -rate 44100 -channels 2
//	audstego keygen
//
// Settings come from AUDSTEGO_* environment variables and an optional .env
// file in the working directory.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ik5/audstego/internal/config"
	"github.com/ik5/audstego/internal/logger"
)

type command struct {
	name    string
	summary string
	run     func(env *environment, args []string) error
}

var commands = []command{
	{"encode", "hide a message in a WAV carrier", runEncode},
	{"decode", "recover a hidden message", runDecode},
	{"evaluate", "encode, decode and score accuracy, PSNR and BER", runEvaluate},
	{"robustness", "measure BER after lossy transcoding at several bitrates", runRobustness},
	{"info", "show carrier format and capacity", runInfo},
	{"prepare", "convert wav, mp3, ogg or aiff into a PCM WAV carrier", runPrepare},
	{"keygen", "create the AES key file if it does not exist", runKeygen},
}

// environment is what every subcommand gets.
type environment struct {
	cfg    config.Config
	log    *slog.Logger
	stdout io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "help" {
		usage(stderr)
		return 2
	}

	var cmd *command
	for i := range commands {
		if commands[i].name == args[0] {
			cmd = &commands[i]
		}
	}
	if cmd == nil {
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(stderr, "config:", err)
		return 1
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "logger:", err)
		return 1
	}

	env := &environment{cfg: cfg, log: log, stdout: stdout}
	if err := cmd.run(env, args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			return 2
		}
		log.Error(cmd.name+" failed", logger.Error(err))
		return 1
	}

	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: audstego <command> [flags]")
	fmt.Fprintln(w)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-11s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "run audstego <command> -h for the flags of a command")
}
