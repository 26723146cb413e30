package config

import (
	"encoding/json"
	"io/ioutil"
	"runtime"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/cpu"
)

// Config carries the search parameters and the ambient knobs of the cli.
type Config struct {
	Base       string `json:"Base"`
	Difficulty uint32 `json:"Difficulty"`
	Workers    uint32 `json:"Workers"`

	LogLvl string `json:"LogLvl"`
	LogDir string `json:"LogDir"`

	Metrics   bool `json:"Metrics"`
	PProf     bool `json:"PProf"`
	PProfPort uint `json:"PProfPort"`
}

// Default returns a config with one worker per logical CPU and info-level
// logging.
func Default() *Config {
	return &Config{
		Workers: defaultWorkerCount(),
		LogLvl:  "info",
	}
}

// Load reads a JSON config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	text, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s read error", path)
	}
	if err := json.Unmarshal(text, cfg); err != nil {
		return nil, errors.Wrapf(err, "config file %s unmarshal error", path)
	}
	if cfg.Workers == 0 {
		cfg.Workers = defaultWorkerCount()
	}
	if cfg.LogLvl == "" {
		cfg.LogLvl = "info"
	}
	return cfg, nil
}

func defaultWorkerCount() uint32 {
	count, err := cpu.Counts(true)
	if err != nil || count < 1 {
		count = runtime.NumCPU()
	}
	return uint32(count)
}
