package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fosdem/glsample/lib/config"
)

func main() {
	quiet := flag.Bool("q", false, "Only report through the exit status")
	flag.Parse()
	if flag.NArg() < 1 {
		log.Fatalf("Usage: %s [-q] <config file>", os.Args[0])
	}

	cfg, err := config.Parse(flag.Arg(0))
	if err != nil {
		if !*quiet {
			fmt.Printf("Config invalid: %s\n", err)
		}
		os.Exit(1)
	}
	if *quiet {
		return
	}

	fmt.Print("Config valid!\n\n")
	fmt.Print(cfg)
}
