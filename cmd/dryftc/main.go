/* Command dryftc compiles dryft source into target-language text for an
external toolchain to assemble: a freestanding C99 translation unit, a
NASM64 assembly file, or both.

dryftc performs no invocation of an external compiler or assembler itself
(spec §1: "out of scope"); it only emits source text next to the input
file (or to -out), ready for one.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dryftlang/dryft/internal/backend"
	"github.com/dryftlang/dryft/internal/backend/c99"
	"github.com/dryftlang/dryft/internal/backend/nasm64"
	"github.com/dryftlang/dryft/internal/compiler"
	"github.com/dryftlang/dryft/internal/flushio"
	"github.com/dryftlang/dryft/internal/logio"
	"github.com/dryftlang/dryft/internal/panicerr"
)

func main() {
	var (
		emitC   bool
		emitAsm bool
		out     string
		trace   bool
		noTypes bool
		dump    bool
	)
	flag.BoolVar(&emitC, "emit-c", true, "emit a C99 translation unit")
	flag.BoolVar(&emitAsm, "emit-asm", false, "emit NASM64 assembly")
	flag.StringVar(&out, "out", "", "output file path stem (defaults to the input's, minus .dry)")
	flag.BoolVar(&trace, "trace", false, "log each token's dispatch")
	flag.BoolVar(&noTypes, "no-types", false, "disable the static type checker")
	flag.BoolVar(&dump, "dump", false, "print the compiled function/action table before emitting")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer os.Exit(log.ExitCode())

	if flag.NArg() != 1 {
		log.Errorf("usage: dryftc [flags] <source.dry>")
		return
	}
	srcPath := flag.Arg(0)
	if _, err := os.Stat(srcPath); err != nil {
		log.Errorf("%v", err)
		return
	}

	if out == "" {
		out = strings.TrimSuffix(srcPath, filepath.Ext(srcPath))
	}

	dir := filepath.Dir(srcPath)

	type target struct {
		b    backend.Backend
		want bool
	}
	targets := []target{
		{c99.New(), emitC},
		{nasm64.New(), emitAsm},
	}

	var g errgroup.Group
	for _, t := range targets {
		t := t
		if !t.want {
			continue
		}
		g.Go(func() error {
			return compileOne(&log, srcPath, out, t.b, compiler.Options{
				Files:   os.DirFS(dir),
				NoTypes: noTypes,
			}, trace, dump)
		})
	}

	log.ErrorIf(g.Wait())
}

// compileOne runs a single backend's compile pass inside a recovered
// goroutine boundary (mirrors the teacher's isolate.go: a bug in the
// compiler surfaces as an error from this function, not a crashed
// process), so that one bad backend target doesn't take the others
// down with it under the errgroup fan-out in main.
func compileOne(log *logio.Logger, srcPath, outStem string, b backend.Backend, opts compiler.Options, trace, dump bool) error {
	return panicerr.Recover("compile "+srcPath+" ("+b.FileExtension()+")", func() error {
		f, err := os.Open(srcPath)
		if err != nil {
			return err
		}
		defer f.Close()

		opts.Backend = b
		if trace {
			opts.Trace = log.Leveledf("TRACE")
		}

		c := compiler.New(opts)
		out, err := c.Run(filepath.Base(srcPath), f)
		if err != nil {
			return err
		}

		outPath := outStem + b.FileExtension()
		outFile, err := os.Create(outPath)
		if err != nil {
			return err
		}
		wf := flushio.NewWriteFlusher(outFile)
		if _, err := io.WriteString(wf, out); err != nil {
			outFile.Close()
			return err
		}
		if err := wf.Flush(); err != nil {
			outFile.Close()
			return err
		}
		if err := outFile.Close(); err != nil {
			return err
		}
		log.Printf("", "wrote %v", outPath)

		if dump {
			dumpSymbols(outPath, c)
		}
		return nil
	})
}

// dumpSymbols prints the compiled function/action table, adapted from
// the teacher's vmDumper in spirit: report what got defined rather than
// a raw memory image, since there is no VM memory here to format.
func dumpSymbols(outPath string, c *compiler.Compiler) {
	fmt.Fprintf(os.Stderr, "-- %v --\n", outPath)
	for _, kind := range [2]string{"fun", "act"} {
		table := c.Functions()
		if kind == "act" {
			table = c.Actions()
		}
		for name, def := range table {
			if def.Linkin {
				fmt.Fprintf(os.Stderr, "%s %s: linkin\n", kind, name)
				continue
			}
			fmt.Fprintf(os.Stderr, "%s %s: %s -> %s\n%s\n", kind, name, def.Sig.Consumes, def.Sig.Produces, def.Body)
		}
	}
}
