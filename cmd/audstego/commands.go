// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ik5/audstego"
	"github.com/ik5/audstego/cipher"
	"github.com/ik5/audstego/formats/wav"
	"github.com/ik5/audstego/internal/logger"
	"github.com/ik5/audstego/lsb"
	"github.com/ik5/audstego/transcode"
)

var errUsage = errors.New("usage")

// algFlag is a flag.Value holding an lsb.Algorithm.
type algFlag struct{ alg lsb.Algorithm }

func (f *algFlag) String() string { return f.alg.String() }

func (f *algFlag) Set(s string) error {
	a, err := lsb.ParseAlgorithm(s)
	if err != nil {
		return err
	}
	f.alg = a
	return nil
}

func newFlagSet(env *environment, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.stdout)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	return nil
}

func (env *environment) outputFor(alg lsb.Algorithm) string {
	if alg == lsb.Advanced {
		return env.cfg.AdvancedOutput
	}
	return env.cfg.BasicOutput
}

func (env *environment) pipeline(opts ...audstego.Option) (*audstego.Pipeline, error) {
	key, err := cipher.KeyFile{Path: env.cfg.KeyFile}.LoadOrCreate()
	if err != nil {
		return nil, err
	}

	c, err := cipher.New(key)
	if err != nil {
		return nil, err
	}

	opts = append([]audstego.Option{audstego.WithLogger(env.log)}, opts...)

	return audstego.New(c, opts...), nil
}

func runEncode(env *environment, args []string) error {
	fs := newFlagSet(env, "encode")
	alg := &algFlag{alg: lsb.Basic}
	fs.Var(alg, "alg", "algorithm: basic or advanced")
	in := fs.String("in", env.cfg.InputPath, "carrier WAV")
	out := fs.String("out", "", "stego WAV (default depends on -alg)")
	msg := fs.String("m", "", "message to hide")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *out == "" {
		*out = env.outputFor(alg.alg)
	}

	p, err := env.pipeline()
	if err != nil {
		return err
	}

	if err := p.EncodeFile(*in, *out, *msg, alg.alg); err != nil {
		return err
	}

	fmt.Fprintf(env.stdout, "%s: message hidden in %s\n", alg.alg.Name(), *out)
	return nil
}

func runDecode(env *environment, args []string) error {
	fs := newFlagSet(env, "decode")
	alg := &algFlag{alg: lsb.Basic}
	fs.Var(alg, "alg", "algorithm: basic or advanced")
	in := fs.String("in", "", "stego WAV (default depends on -alg)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *in == "" {
		*in = env.outputFor(alg.alg)
	}

	p, err := env.pipeline()
	if err != nil {
		return err
	}

	carrier, err := wav.ReadPCMFile(*in)
	if err != nil {
		return err
	}

	rec := p.Recover(carrier, alg.alg)
	if !rec.OK() {
		fmt.Fprintf(env.stdout, "decoding failed: %s\n", rec.Outcome)
		return rec.Err
	}

	fmt.Fprintf(env.stdout, "decoded message (%s): %s\n", alg.alg.Name(), rec.Message)
	return nil
}

func runEvaluate(env *environment, args []string) error {
	fs := newFlagSet(env, "evaluate")
	alg := &algFlag{alg: lsb.Basic}
	fs.Var(alg, "alg", "algorithm: basic or advanced")
	in := fs.String("in", env.cfg.InputPath, "carrier WAV")
	out := fs.String("out", "", "stego WAV (default depends on -alg)")
	msg := fs.String("m", "", "original message")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *out == "" {
		*out = env.outputFor(alg.alg)
	}

	p, err := env.pipeline()
	if err != nil {
		return err
	}

	t := p.Evaluate(*msg, alg.alg, *in, *out)
	fmt.Fprintf(env.stdout, "%s -> %s\n", alg.alg.Name(), t)
	return nil
}

func runRobustness(env *environment, args []string) error {
	fs := newFlagSet(env, "robustness")
	alg := &algFlag{alg: lsb.Basic}
	fs.Var(alg, "alg", "algorithm: basic or advanced")
	in := fs.String("in", "", "stego WAV (default depends on -alg)")
	msg := fs.String("m", "", "original message")
	codecName := fs.String("codec", env.cfg.LossyCodec, "lossy codec: mp3, ogg or aiff")
	rates := fs.String("bitrates", joinInts(env.cfg.Bitrates), "comma separated bitrates in kbps")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *in == "" {
		*in = env.outputFor(alg.alg)
	}

	codec, err := transcode.ParseCodec(*codecName)
	if err != nil {
		return err
	}

	bitrates, err := splitInts(*rates)
	if err != nil {
		return err
	}

	p, err := env.pipeline(
		audstego.WithTranscoder(transcode.NewFFmpeg(env.cfg.FFmpeg, codec, env.log)),
		audstego.WithWorkDir(env.cfg.WorkDir),
	)
	if err != nil {
		return err
	}

	report, err := p.EvaluateRobustness(*msg, alg.alg, *in, bitrates)
	if err != nil {
		return err
	}

	for _, pt := range report.Points {
		line := fmt.Sprintf("%s - Bitrate: %dk, BER: %.6f", alg.alg.Name(), pt.BitrateKbps, pt.BER)
		if pt.Err != nil {
			line += " (" + pt.Err.Error() + ")"
		}
		fmt.Fprintln(env.stdout, line)
	}
	for _, r := range report.Regressions() {
		fmt.Fprintf(env.stdout, "warning: BER fell from %.6f at %dk to %.6f at %dk\n",
			r.Higher.BER, r.Higher.BitrateKbps, r.Lower.BER, r.Lower.BitrateKbps)
	}

	return nil
}

func runInfo(env *environment, args []string) error {
	fs := newFlagSet(env, "info")
	in := fs.String("in", env.cfg.InputPath, "carrier WAV")
	if err := parse(fs, args); err != nil {
		return err
	}

	carrier, err := wav.ReadPCMFile(*in)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.stdout, "%s\n", *in)
	fmt.Fprintf(env.stdout, "  format:   %s\n", carrier.Format)
	fmt.Fprintf(env.stdout, "  frames:   %d\n", carrier.Frames())
	fmt.Fprintf(env.stdout, "  capacity: %d bits\n", carrier.Capacity())
	fmt.Fprintf(env.stdout, "  message:  up to %d bytes\n", max(audstego.Capacity(carrier), 0))
	return nil
}

func runPrepare(env *environment, args []string) error {
	fs := newFlagSet(env, "prepare")
	in := fs.String("in", "", "source audio: wav, mp3, ogg or aiff")
	out := fs.String("out", env.cfg.InputPath, "carrier WAV to write")
	rate := fs.Int("rate", 0, "sample rate (default: keep)")
	channels := fs.Int("channels", 0, "channel count (default: keep)")
	bits := fs.Int("bits", 16, "bit depth: 8, 16, 24 or 32")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *in == "" {
		fmt.Fprintln(env.stdout, "prepare: -in is required")
		return errUsage
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(*in), "."))
	switch ext {
	case "aif":
		ext = "aiff"
	case "oga":
		ext = "ogg"
	}

	dec, ok := transcode.DefaultRegistry().Get(ext)
	if !ok {
		return fmt.Errorf("unsupported format %q", ext)
	}

	f, err := os.Open(*in)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return err
	}
	defer src.Close()

	target := wav.Format{SampleRate: src.SampleRate(), BitDepth: *bits, Channels: src.Channels()}
	if *rate > 0 {
		target.SampleRate = *rate
	}
	if *channels > 0 {
		target.Channels = *channels
	}

	carrier, err := transcode.Conform(src, target, -1)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return err
	}
	if err := wav.WritePCMFile(*out, carrier); err != nil {
		return err
	}

	env.log.Info("carrier prepared", logger.Path(*out), logger.Count("frames", carrier.Frames()))
	fmt.Fprintf(env.stdout, "wrote %s (%s, %d frames)\n", *out, carrier.Format, carrier.Frames())
	return nil
}

func runKeygen(env *environment, args []string) error {
	fs := newFlagSet(env, "keygen")
	path := fs.String("key", env.cfg.KeyFile, "key file")
	if err := parse(fs, args); err != nil {
		return err
	}

	if _, err := (cipher.KeyFile{Path: *path}).LoadOrCreate(); err != nil {
		return err
	}

	fmt.Fprintf(env.stdout, "key ready at %s\n", *path)
	return nil
}

func splitInts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(part, "k"))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("bad bitrate %q", part)
		}
		out = append(out, n)
	}

	return out, nil
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, ",")
}
