package auxengine

import (
	"fmt"
	"strconv"
	"strings"
)

// KV is one setoption pair, kept ordered because setoption commands are
// sent to the helper in the order configured.
type KV struct {
	Key   string
	Value string
}

// Config is the typed form of the option table in SPEC_FULL.md §6. Zero
// value has AuxEngineFile empty, which disables the subsystem.
type Config struct {
	File        string
	Instances   int
	Options     []KV
	OptionsRoot []KV
	TimeMs      int
	MaxDepth    int
	Verbosity   int
	SyzygyPath  string
}

const (
	defaultInstances = 1
	defaultTimeMs    = 1000
	defaultMaxDepth  = 20
)

// Enabled reports whether the subsystem should run at all.
func (c Config) Enabled() bool {
	return c.File != ""
}

// ParseOptions builds a Config from the flat setoption-style map a UCI
// front-end hands the subsystem. Missing or empty values fall back to
// defaults rather than erroring, matching how the consulted engine's own
// option table treats absent keys.
func ParseOptions(opts map[string]string) (Config, error) {
	var c = Config{
		Instances: defaultInstances,
		TimeMs:    defaultTimeMs,
		MaxDepth:  defaultMaxDepth,
	}
	c.File = opts["AuxEngineFile"]
	if v, ok := opts["AuxEngineInstances"]; ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse AuxEngineInstances %q: %w", v, err)
		}
		c.Instances = n
	}
	if v, ok := opts["AuxEngineTime"]; ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse AuxEngineTime %q: %w", v, err)
		}
		c.TimeMs = n
	}
	if v, ok := opts["AuxEngineMaxDepth"]; ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse AuxEngineMaxDepth %q: %w", v, err)
		}
		c.MaxDepth = n
	}
	if v, ok := opts["AuxEngineVerbosity"]; ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse AuxEngineVerbosity %q: %w", v, err)
		}
		c.Verbosity = n
	}
	c.Options = parseKVList(opts["AuxEngineOptions"])
	c.OptionsRoot = parseKVList(opts["AuxEngineOptionsOnRoot"])
	c.SyzygyPath = opts["SyzygyPath"]
	if c.Instances < 1 {
		c.Instances = 1
	}
	return c, nil
}

// RootInfinite reports whether worker 0 should run in root-infinite mode,
// per SPEC_FULL.md §4.5: a non-empty root-options string.
func (c Config) RootInfinite() bool {
	return len(c.OptionsRoot) > 0
}

func parseKVList(s string) []KV {
	if s == "" {
		return nil
	}
	var result []KV
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		var eq = strings.IndexByte(pair, '=')
		if eq < 0 {
			continue
		}
		result = append(result, KV{
			Key:   strings.TrimSpace(pair[:eq]),
			Value: strings.TrimSpace(pair[eq+1:]),
		})
	}
	return result
}
