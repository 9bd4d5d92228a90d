// SPDX-License-Identifier: EPL-2.0

// Package config loads audstego settings from the environment, optionally
// seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	KeyFile    string `env:"AUDSTEGO_KEY_FILE" envDefault:"aes_key.bin"`
	WorkDir    string `env:"AUDSTEGO_WORK_DIR"`
	FFmpeg     string `env:"AUDSTEGO_FFMPEG" envDefault:"ffmpeg"`
	LossyCodec string `env:"AUDSTEGO_LOSSY_CODEC" envDefault:"mp3"`
	Bitrates   []int  `env:"AUDSTEGO_BITRATES" envDefault:"320,128,64,32" envSeparator:","`
	LogLevel   string `env:"AUDSTEGO_LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"AUDSTEGO_LOG_FORMAT" envDefault:"text"`

	// Default carrier locations used by the CLI.
	InputPath      string `env:"AUDSTEGO_INPUT" envDefault:"input/original_sample.wav"`
	BasicOutput    string `env:"AUDSTEGO_BASIC_OUTPUT" envDefault:"output/basic_lsb_encoded.wav"`
	AdvancedOutput string `env:"AUDSTEGO_ADVANCED_OUTPUT" envDefault:"output/enhanced_lsb_encoded.wav"`
}

// Load reads the given .env files (missing ones are skipped), then the
// process environment, which wins on conflicts.
func Load(envFiles ...string) (Config, error) {
	environ := make(map[string]string)

	for _, f := range envFiles {
		vars, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("reading %s: %w", f, err)
		}
		for k, v := range vars {
			environ[k] = v
		}
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			environ[k] = v
		}
	}

	return parse(environ)
}

func parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.KeyFile == "" {
		return fmt.Errorf("%w: empty key file path", ErrInvalidConfig)
	}

	for _, b := range c.Bitrates {
		if b <= 0 {
			return fmt.Errorf("%w: bitrate %d", ErrInvalidConfig, b)
		}
	}

	return nil
}
