package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const FileName = "config.yaml"

// Duration is time.Duration with YAML support for values like "250ms".
// Bare numbers are read as nanoseconds, matching time.Duration's zero-config
// encoding.
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) MarshalYAML() (any, error) { return time.Duration(d).String(), nil }

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(n)
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("invalid duration %q", node.Value)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// Timing holds the settle delays applied after each gesture and the
// per-adb-command timeout.
type Timing struct {
	Tap               Duration `yaml:"tap"`
	DoubleTap         Duration `yaml:"double_tap"`
	DoubleTapInterval Duration `yaml:"double_tap_interval"`
	LongPress         Duration `yaml:"long_press"`
	Swipe             Duration `yaml:"swipe"`
	Back              Duration `yaml:"back"`
	Home              Duration `yaml:"home"`
	Launch            Duration `yaml:"launch"`
	CommandTimeout    Duration `yaml:"command_timeout"`
}

// Config is the full droidctl configuration.
type Config struct {
	ADBPath string            `yaml:"adb_path"`
	Timing  Timing            `yaml:"timing"`
	Apps    map[string]string `yaml:"apps"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Timing: Timing{
			Tap:               Duration(500 * time.Millisecond),
			DoubleTap:         Duration(500 * time.Millisecond),
			DoubleTapInterval: Duration(150 * time.Millisecond),
			LongPress:         Duration(time.Second),
			Swipe:             Duration(time.Second),
			Back:              Duration(time.Second),
			Home:              Duration(time.Second),
			Launch:            Duration(3 * time.Second),
			CommandTimeout:    Duration(30 * time.Second),
		},
		Apps: map[string]string{
			"Settings": "com.android.settings",
			"Chrome":   "com.android.chrome",
			"Camera":   "com.android.camera2",
			"WeChat":   "com.tencent.mm",
			"DingTalk": "com.alibaba.android.rimet",
			"Taobao":   "com.taobao.taobao",
			"Alipay":   "com.eg.android.AlipayGphone",
		},
	}
}

// DefaultHome returns ~/.droidctl.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".droidctl"), nil
}

// Load reads config.yaml from home over the defaults. A missing file is
// fine; a malformed one is not.
func Load(home string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(home, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to home/config.yaml, creating home first.
func (c *Config) Save(home string) error {
	if err := os.MkdirAll(home, 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(filepath.Join(home, FileName), data, 0o600)
}
