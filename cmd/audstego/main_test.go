// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audstego/formats/wav"
	"github.com/ik5/audstego/internal/audiotest"
)

func writeCarrier(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "carrier.wav")
	format := wav.Format{SampleRate: 8000, BitDepth: 16, Channels: 1}
	carrier := wav.NewPCMFromFloat(format, make([]float32, 4000))
	require.NoError(t, wav.WritePCMFile(path, carrier))

	return path
}

func setupEnv(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("AUDSTEGO_KEY_FILE", filepath.Join(dir, "key.bin"))
	t.Setenv("AUDSTEGO_LOG_LEVEL", "error")
	t.Setenv("AUDSTEGO_BASIC_OUTPUT", filepath.Join(dir, "out", "basic.wav"))
	t.Setenv("AUDSTEGO_ADVANCED_OUTPUT", filepath.Join(dir, "out", "advanced.wav"))

	return dir
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "usage: audstego")

	stderr.Reset()
	assert.Equal(t, 2, run([]string{"frobnicate"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `unknown command "frobnicate"`)
}

func TestRun_EncodeDecode(t *testing.T) {
	dir := setupEnv(t)
	in := writeCarrier(t, dir)

	for _, alg := range []string{"basic", "advanced"} {
		t.Run(alg, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run([]string{"encode", "-alg", alg, "-in", in, "-m", "meet at dawn"}, &stdout, &stderr)
			require.Equal(t, 0, code, stderr.String())

			stdout.Reset()
			code = run([]string{"decode", "-alg", alg}, &stdout, &stderr)
			require.Equal(t, 0, code, stderr.String())
			assert.Contains(t, stdout.String(), "meet at dawn")
		})
	}
}

func TestRun_DecodeClean(t *testing.T) {
	dir := setupEnv(t)
	in := writeCarrier(t, dir)

	var stdout, stderr bytes.Buffer
	code := run([]string{"decode", "-in", in}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "decoding failed: no message")
}

func TestRun_Info(t *testing.T) {
	dir := setupEnv(t)
	in := writeCarrier(t, dir)

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"info", "-in", in}, &stdout, &stderr), stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "8000 Hz, 16-bit, 1 ch")
	assert.Contains(t, out, "frames:   4000")
	assert.Contains(t, out, "capacity: 8000 bits")
	assert.Contains(t, out, "up to 975 bytes")
}

func TestRun_Prepare(t *testing.T) {
	dir := setupEnv(t)
	src := filepath.Join(dir, "src.wav")
	require.NoError(t, wav.WritePCMFile(src, &wav.PCM{
		Format: wav.Format{SampleRate: 8000, BitDepth: 16, Channels: 2},
		Data:   audiotest.SinePCM16(8000, 2, 800, 440),
	}))

	out := filepath.Join(dir, "prepared", "carrier.wav")

	var stdout, stderr bytes.Buffer
	code := run([]string{"prepare", "-in", src, "-out", out, "-channels", "1"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	got, err := wav.ReadPCMFile(out)
	require.NoError(t, err)
	assert.Equal(t, wav.Format{SampleRate: 8000, BitDepth: 16, Channels: 1}, got.Format)
	assert.Equal(t, 800, got.Frames())
}

func TestRun_PrepareUnsupported(t *testing.T) {
	setupEnv(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"prepare", "-in", "song.flac"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
}

func TestSplitInts(t *testing.T) {
	t.Parallel()

	got, err := splitInts("320, 128k,,64")
	require.NoError(t, err)
	assert.Equal(t, []int{320, 128, 64}, got)
	assert.Equal(t, "320,128,64", joinInts(got))

	_, err = splitInts("320,fast")
	assert.Error(t, err)

	_, err = splitInts("-5")
	assert.Error(t, err)
}
