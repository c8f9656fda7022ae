// Package main provides the CLI entrypoint for component-generator.
//
// component-generator reads a component file, computes the framework field
// (name and type) that a generated container stores for each binding, and
// prints them:
//
//	component-generator -spec examples/coffee/component.yaml -load
//	component-generator -spec component.yaml -format yaml
//
// Flag defaults can be set through COMPONENT_GENERATOR_FORMAT,
// COMPONENT_GENERATOR_LOAD and COMPONENT_GENERATOR_STRICT, also read from a
// .env file in the working directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"component-generator/internal/analyze"
	"component-generator/internal/component"
	"component-generator/internal/plan"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "warning: %v\n", err)
	}

	fs := flag.NewFlagSet("component-generator", flag.ContinueOnError)
	fs.SetOutput(stderr)

	specPath := fs.String("spec", "", "path to the component YAML file")
	format := fs.String("format", cfg.Format, "output format: text or yaml")
	load := fs.Bool("load", cfg.Load, "load the component's packages to resolve symbol references")
	strict := fs.Bool("strict", cfg.Strict, "fail when planning reports warnings")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *specPath == "" {
		return errors.New("missing -spec")
	}

	if *format != formatText && *format != formatYAML {
		return fmt.Errorf("unknown format %q: use %s or %s", *format, formatText, formatYAML)
	}

	cf, err := component.LoadFile(*specPath)
	if err != nil {
		return err
	}

	var graph *analyze.TypeGraph

	if *load {
		if cf.Packages.IsEmpty() {
			return fmt.Errorf("-load: %s lists no packages", *specPath)
		}

		graph, err = analyze.NewAnalyzer().LoadPackages(cf.Packages...)
		if err != nil {
			return err
		}
	}

	p, err := plan.NewPlanner(cf, graph, plan.Config{StrictMode: *strict}).Build()
	if p != nil {
		for _, w := range p.Diagnostics.Warnings {
			fmt.Fprintf(stderr, "%s: %s\n", w.Severity, w)
		}
	}

	if err != nil {
		return err
	}

	switch *format {
	case formatYAML:
		data, err := plan.ExportYAML(p)
		if err != nil {
			return fmt.Errorf("exporting plan: %w", err)
		}

		_, err = stdout.Write(data)

		return err

	default:
		_, err := fmt.Fprint(stdout, plan.ExportText(p))
		return err
	}
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}

		os.Exit(1)
	}
}
