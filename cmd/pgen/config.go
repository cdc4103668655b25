package main

import (
	"strconv"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// cliConfig is the application configuration, filled from command line flags.
// It implements schuko.Configuration.
type cliConfig map[string]string

func (c cliConfig) InitDefaults() {
	if _, ok := c["tracing.adapter"]; !ok {
		c["tracing.adapter"] = "go"
	}
}

func (c cliConfig) IsSet(key string) bool {
	_, ok := c[key]
	return ok
}

func (c cliConfig) GetString(key string) string {
	return c[key]
}

func (c cliConfig) GetInt(key string) int {
	n, _ := strconv.Atoi(c[key])
	return n
}

func (c cliConfig) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c[key])
	return b
}

func (c cliConfig) IsInteractive() bool {
	return c.GetBool("interactive")
}

// setupConfig initializes the global configuration and tracing. All tracing
// keys of pgen's packages share one Go logger.
func setupConfig(c cliConfig, level string) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	c["tracingsyntax"] = level
	gconf.Initialize(c)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(level))
	tracer().Infof("Trace level is %s", level)
}
