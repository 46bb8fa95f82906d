package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jcodec/encode"
	"github.com/signadot/jcodec/ir"
	"github.com/signadot/jcodec/parse"
)

func jcMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if cfg.Indent < 0 {
		return fmt.Errorf("%w: -indent must not be negative", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// readInput reads file, or in when file is "-".
func (cfg *MainConfig) readInput(in io.Reader, file string) ([]byte, error) {
	var r io.Reader = in
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	if cfg.Verbose {
		theLog.Info("read input", "file", file, "bytes", len(d), "format", cfg.inFormat())
	}
	return d, nil
}

// eachInput calls f with the contents of each file in turn, or of in
// when there are none.
func (cfg *MainConfig) eachInput(in io.Reader, files []string, f func(file string, d []byte) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		d, err := cfg.readInput(in, file)
		if err != nil {
			return err
		}
		if err := f(file, d); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func (cfg *MainConfig) readDoc(in io.Reader, file string) (*ir.Node, error) {
	d, err := cfg.readInput(in, file)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return node, nil
}

var docSep = []byte("\n---\n")

// splitDocs splits in into the documents separated by "---" lines.
func splitDocs(in []byte) [][]byte {
	return bytes.Split(in, docSep)
}

// eachDoc parses each document of in and calls f with it.
func (cfg *MainConfig) eachDoc(in []byte, f func(i int, node *ir.Node) error) error {
	for i, doc := range splitDocs(in) {
		node, err := parse.Parse(doc, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		if err := f(i, node); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *MainConfig) writeNode(w io.Writer, node *ir.Node, sep bool) error {
	if sep {
		if _, err := w.Write(docSep[1:]); err != nil {
			return fmt.Errorf("error writing separator: %w", err)
		}
	}
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
