package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/kobzarvs/sevenguis/internal/app"
	"github.com/kobzarvs/sevenguis/internal/config"
	"github.com/kobzarvs/sevenguis/internal/logger"
	"github.com/kobzarvs/sevenguis/internal/raster"
	"github.com/kobzarvs/sevenguis/internal/textfield"
)

const usage = "usage: sevenguis [counter|flight|temperature]\n       sevenguis render-field <text> <out.png>"

func main() {
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if err := run(args); err != nil {
		fmt.Fprintln(os.Stderr, "sevenguis:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "-h", "--help", "help":
			fmt.Println(usage)
			return nil
		case "render-field":
			return renderField(args[1:])
		}
	}
	if len(args) > 1 {
		return errors.New(usage)
	}
	return app.New(args).Run()
}

// renderField paints a focused field holding text, caret at the end, with
// the pixel font and writes it as PNG.
func renderField(args []string) error {
	if len(args) != 2 {
		return errors.New(usage)
	}
	logger.Nop()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	f := textfield.New(nil)
	f.SetContent(args[0])
	f.Focus()
	if _, err := f.Do(textfield.ActionEnd); err != nil {
		return err
	}

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	r := raster.New(nil, raster.NewPalette(cfg.Theme))
	st := f.State()
	if err := r.EncodePNG(out, st, raster.Options{Focused: true, Revision: f.Revision()}); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", args[1], err)
	}
	return out.Close()
}
