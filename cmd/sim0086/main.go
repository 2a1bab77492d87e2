package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/k0kubun/pp"
	"github.com/mattn/go-isatty"

	"cjting.me/perfaware/decoder"
)

var debugFlag *bool
var outFlag *string

// check disassemble result by comparing reassemble binary with original binary
var checkFlag *bool

func main() {
	checkFlag = flag.Bool("check", false, "enable check mode")
	debugFlag = flag.Bool("debug", false, "enable debug mode")
	outFlag = flag.String("o", "", "write the listing to this file instead of stdout")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ./sim0086 [-check] [-debug] [-o out.asm] <binary>")
		os.Exit(1)
	}

	file := flag.Arg(0)

	result, err := disassembleFile(file, *debugFlag)
	if err != nil {
		log.Fatalln(err)
	}

	if *outFlag != "" {
		if err := os.WriteFile(*outFlag, []byte(result), 0644); err != nil {
			log.Fatalf("could not write result into %s: %v\n", *outFlag, err)
		}
	} else {
		fmt.Println(result)
	}

	// use `nasm` to assemble our disassemble file
	// and then compare it to origin binary
	// source: a
	// our disassemble: a.sim0086.asm
	// nasm reassemble: a.sim0086
	// then compare a and a.sim0086
	if *checkFlag {
		same, err := check(file, result)
		if err != nil {
			log.Fatalln(err)
		}

		if !same {
			fmt.Println("=== Error, not the same")
		} else {
			fmt.Println("=== Ok")
		}
	}
}

func disassembleFile(fp string, debug bool) (string, error) {
	f, err := os.Open(fp)
	if err != nil {
		return "", fmt.Errorf("could not read file: %w", err)
	}
	defer f.Close()

	var opts []decoder.Option
	if debug {
		pp.ColoringEnabled = isatty.IsTerminal(os.Stderr.Fd())
		opts = append(opts, decoder.WithTrace(os.Stderr))
	}

	return decoder.New(opts...).Decode(bufio.NewReader(f))
}

func check(file, result string) (bool, error) {
	base := filepath.Base(file)
	tmpPath := fmt.Sprintf("%s.sim0086.asm", base)

	if err := os.WriteFile(tmpPath, []byte(result), 0644); err != nil {
		return false, fmt.Errorf("could not write result into %s: %w", tmpPath, err)
	}

	if err := nasmAssembleFile(tmpPath); err != nil {
		return false, fmt.Errorf("nasm error: %w", err)
	}

	nasmPath := fmt.Sprintf("%s.sim0086", base)

	same, err := compareTwoFiles(file, nasmPath)
	if err != nil {
		return false, fmt.Errorf("could not compare %s and %s: %w", file, nasmPath, err)
	}

	return same, nil
}
