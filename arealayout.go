// Solves area layout trees described in yaml files.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmigpin/arealayout/core"
)

func main() {
	log.SetFlags(log.Llongfile)

	opt := &core.Options{}
	flag.BoolVar(&opt.Dump, "dump", false, "write the description with the solved geometries")
	flag.BoolVar(&opt.Spew, "spew", false, "debug dump of the parsed description")
	flag.StringVar(&opt.PNG, "png", "", "render the solved tree to a png file")
	flag.Float64Var(&opt.Scale, "scale", 1, "png scale factor")
	flag.BoolVar(&opt.Watch, "watch", false, "solve again when the file changes")
	flag.IntVar(&opt.MaxIter, "maxiter", 0, "solver iteration limit per loop, 0 uses the defaults")
	flag.Var(&opt.Outputs, "nodes", "comma separated names of the nodes to print")
	version := flag.Bool("version", false, "output version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] file.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Printf("version: %v\n", core.Version())
		return
	}

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(2)
	}
	opt.Filename = args[0]

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	tool := core.NewTool(opt, os.Stdout)
	if err := tool.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
