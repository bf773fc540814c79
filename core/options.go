package core

import (
	"fmt"
	"strings"
)

type Options struct {
	Filename string

	Dump    bool    // write the description with the solved geometries
	Spew    bool    // debug dump of the description
	PNG     string  // render the solved tree to this file
	Scale   float64 // png scale factor, 0 or 1 keeps the tree size
	Watch   bool    // solve again when the file changes
	MaxIter int     // solver iteration limit, 0 uses the defaults

	Outputs OutputsOpt
}

//----------

// Implements flag.Value interface. Names of the nodes to print, all if empty.
type OutputsOpt struct {
	names []string
}

func (o *OutputsOpt) Set(s string) error {
	for _, n := range strings.Split(s, ",") {
		n = strings.TrimSpace(n)
		if n == "" {
			return fmt.Errorf("empty node name: %q", s)
		}
		o.names = append(o.names, n)
	}
	return nil
}

func (o *OutputsOpt) String() string {
	return strings.Join(o.names, ",")
}

func (o *OutputsOpt) has(name string) bool {
	if len(o.names) == 0 {
		return true
	}
	for _, n := range o.names {
		if n == name {
			return true
		}
	}
	return false
}
