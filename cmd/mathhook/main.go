// Command mathhook is the interactive front end for the mathhook kernel.
//
// Usage:
//
//	mathhook                 start the REPL
//	mathhook repl            same
//	mathhook eval EXPR...    print the canonical form of each expression
//	mathhook plot -expr E -var x -from A -to B -o out.png
//
// Environment:
//
//	MATHHOOK_PROMPT    REPL prompt (default ">> ")
//	MATHHOOK_HISTFILE  history file (default ~/.mathhook_history)
//	MATHHOOK_MAXPOW    exact integer-power bound (default 4096)
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	mathhook "github.com/AhmedMashour/mathhook"
	"github.com/peterh/liner"
	"github.com/xyproto/env/v2"
)

const banner = "mathhook: canonical symbolic expressions. :quit to exit, :latex to toggle LaTeX."

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		return cmdRepl()
	}
	switch args[0] {
	case "repl":
		return cmdRepl()
	case "eval":
		return cmdEval(args[1:])
	case "plot":
		return cmdPlot(args[1:])
	case "-h", "--help", "help":
		fmt.Println("usage: mathhook [repl|eval EXPR...|plot -expr E -var V -from A -to B -o FILE]")
		return 0
	}
	fmt.Fprintf(os.Stderr, "mathhook: unknown command %q\n", args[0])
	return 2
}

func newEngine() *mathhook.Engine {
	en := mathhook.NewEngine(mathhook.DefaultRegistry())
	en.MaxExactPower = int64(env.Int("MATHHOOK_MAXPOW", 4096))
	return en
}

func cmdEval(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "mathhook eval: no expression given")
		return 2
	}
	en := newEngine()
	for _, src := range args {
		e, err := Parse(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return 1
		}
		fmt.Println(en.Simplify(e).String())
	}
	return 0
}

func cmdRepl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := env.Str("MATHHOOK_HISTFILE", filepath.Join(home, ".mathhook_history"))
	prompt := env.Str("MATHHOOK_PROMPT", ">> ")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	en := newEngine()
	latex := false

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return 1
		}

		src := strings.TrimSpace(line)
		if src == "" {
			continue
		}
		if strings.HasPrefix(src, ":") {
			switch strings.ToLower(src) {
			case ":quit", ":q":
				return 0
			case ":latex":
				latex = !latex
				fmt.Printf("latex output %v\n", latex)
			default:
				fmt.Println("unknown command. :quit to exit, :latex to toggle LaTeX.")
			}
			continue
		}

		e, err := Parse(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			continue
		}
		res := en.Simplify(e)
		if latex {
			fmt.Println(res.LaTeX())
		} else {
			fmt.Println(res.String())
		}
		ln.AppendHistory(src)
	}
}
