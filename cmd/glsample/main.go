package main

import (
	"flag"
	stdlog "log"
	"runtime"

	"github.com/fosdem/glsample/lib/app"
	"github.com/fosdem/glsample/lib/config"
	"github.com/fosdem/glsample/lib/log"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	flag.Usage = func() {
		stdlog.Printf("Usage: %s [config file]", flag.CommandLine.Name())
		flag.PrintDefaults()
	}
	logLevel := flag.String("log-level", "", "Override the log level from the config")
	flag.Parse()

	cfg := config.Default()
	if flag.NArg() > 0 {
		var err error
		cfg, err = config.Parse(flag.Arg(0))
		if err != nil {
			stdlog.Fatal(err)
		}
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		stdlog.Fatal(err)
	}
	log.Setup(level)

	err = app.MakeWindowAndRender(cfg)
	if err != nil {
		stdlog.Fatal(err)
	}
}
