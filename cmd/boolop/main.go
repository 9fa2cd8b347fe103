package main

import (
	"fmt"

	"github.com/tdewolff/argp"
	"github.com/vecstudio/pathops"
)

type Main struct {
	Op        string  `short:"p" default:"union" desc:"Boolean operation: union, subtract, intersect, exclude"`
	Tolerance float64 `short:"t" default:"0.01" desc:"Curve flattening tolerance"`
	Area      bool    `short:"a" desc:"Print the area of each result path"`
	Subject   string  `index:"0" desc:"Subject path in SVG path data notation"`
	Clip      string  `index:"1" desc:"Clip path in SVG path data notation"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Boolean operations on SVG paths")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	if cmd.Subject == "" || cmd.Clip == "" {
		return argp.ShowUsage
	}

	var op pathops.Op
	switch cmd.Op {
	case "union":
		op = pathops.OpUnion
	case "subtract":
		op = pathops.OpSubtract
	case "intersect":
		op = pathops.OpIntersect
	case "exclude":
		op = pathops.OpExclude
	default:
		return fmt.Errorf("unknown operation: %s", cmd.Op)
	}

	subject, err := pathops.ParseSVGPath(cmd.Subject)
	if err != nil {
		return fmt.Errorf("subject: %w", err)
	}
	clip, err := pathops.ParseSVGPath(cmd.Clip)
	if err != nil {
		return fmt.Errorf("clip: %w", err)
	}

	opts := &pathops.Options{FlattenTolerance: cmd.Tolerance}
	result, err := pathops.ComputeBooleanOperation(op, []*pathops.Path{subject}, []*pathops.Path{clip}, opts)
	if err != nil {
		return err
	}

	for _, p := range result.Paths {
		fmt.Println(p)
		if cmd.Area {
			fmt.Printf("  area: %g\n", p.Area())
		}
	}
	return nil
}
