// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ezrec/lmcpp/cpu"
	"github.com/ezrec/lmcpp/emulator"
	"github.com/ezrec/lmcpp/translate"
)

var f = translate.From

// promptName reads the program name from the console.
func promptName(in *bufio.Reader, interactive bool) (name string, err error) {
	if interactive {
		fmt.Printf("%v %v", f("[INP]"), f("Enter the program to run: "))
	}

	line, err := in.ReadString('\n')
	if fields := strings.Fields(line); len(fields) != 0 {
		name = fields[0]
		err = nil
	}

	if interactive {
		fmt.Println()
	}

	return
}

func main() {
	var config string
	var paths string
	var input string
	var output string
	var watch string
	var list bool
	var verbose bool

	flag.StringVar(&config, "c", "", ".yaml configuration file")
	flag.StringVar(&paths, "p", "", "Comma separated image search paths")
	flag.StringVar(&input, "i", "-", "Console input")
	flag.StringVar(&output, "o", "-", "Console output")
	flag.StringVar(&watch, "w", "", "Stop when the watch expression is true")
	flag.BoolVar(&list, "l", false, "List the program, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	cfg := &Config{}
	if len(config) != 0 {
		var err error
		cfg, err = LoadConfig(config)
		if err != nil {
			log.Fatalf("%v: %v", config, err)
		}
	}

	// Flags override the configuration file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "p":
			cfg.Paths = SplitPaths(paths)
		case "w":
			cfg.Watch = watch
		case "v":
			cfg.Verbose = verbose
		}
	})

	stdin := bufio.NewReader(os.Stdin)
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	name := flag.Arg(0)
	if len(name) == 0 {
		var err error
		name, err = promptName(stdin, interactive)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	}

	rom, found, err := loadRom(name, cfg, func(name string, err error) {
		fmt.Printf("%v %v\n", f("[ERR]"), f("Unable to load %v", name))
	})
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	if interactive {
		fmt.Printf("%v %v\n\n", f("[INF]"), f("Loaded %v successfully.", found))
	}

	prog := cpu.NewProgram(rom.Data)

	if list {
		for ip, code := range prog.Listing() {
			fmt.Printf("%04x: %08x  %v\n", ip, uint32(code), code)
		}
		return
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = cfg.Verbose

	if input == "-" {
		emu.Tape.Input = stdin
		emu.Tape.Prompt = interactive
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	err = emu.SetWatch(cfg.Watch)
	if err != nil {
		log.Fatalf("%v: %v", cfg.Watch, err)
	}

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", found, err)
	}

	err = emu.Run()
	if errors.Is(err, emulator.ErrBreakpoint) {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if code, ok := emu.Program.Debug(emu.Ip()); ok {
			fmt.Fprintf(os.Stderr, "%04x: %v\n", emu.Ip(), code)
		}
		fmt.Fprintf(os.Stderr, "%v", emu.Cpu.String())
		return
	}
	if err != nil {
		log.Fatal(err)
	}
}
