// Command aurum builds the Aurum Atelier site from the content store in
// the current directory into dist/.
package main

import (
	"fmt"
	"os"

	"github.com/sunwei/aurum-atelier/common/loggers"
	"github.com/sunwei/aurum-atelier/config"
	"github.com/sunwei/aurum-atelier/deps"
	"github.com/sunwei/aurum-atelier/site"
	"github.com/sunwei/aurum-atelier/sitefs"
)

func main() {
	os.Exit(build())
}

func build() int {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	cfg, err := config.LoadConfig(config.SourceDescriptor{Fs: sitefs.Os, WorkingDir: wd})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: load config:", err)
		return 1
	}

	threshold, err := loggers.ParseThreshold(cfg.GetString("logLevel"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	logger := loggers.NewDefault(threshold)

	d, err := deps.New(deps.DepsCfg{Logger: logger, Cfg: cfg})
	if err != nil {
		logger.Errorf("%s", err)
		return 1
	}

	s := site.New(d)
	if err := s.Build(); err != nil {
		logger.Errorf("build: %s", err)
		return 1
	}

	return 0
}
