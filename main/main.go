/*
File    : mlang/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the interpreter. It provides two
modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
2. File Mode: Execute a source file given on the command line

The interpreter uses a lexer-parser-evaluator pipeline to process source code.
*/
package main

import (
	"os"

	"github.com/akashmaji946/mlang/eval"
	"github.com/akashmaji946/mlang/objects"
	"github.com/akashmaji946/mlang/parser"
	"github.com/akashmaji946/mlang/repl"
	"github.com/fatih/color"
)

// VERSION represents the current version of the interpreter
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "mlang >>> "

// BANNER is the ASCII art logo displayed when starting the REPL
var BANNER = `
    ▄▄▄▄                       ▄▄▄  ▄▄▄     ██
  ██▀▀▀▀█                      ███  ███     ▀▀
 ██         ▄████▄             ████████   ████     ▀██  ██▀
 ██  ▄▄▄▄  ██▀  ▀██   	       ██ ██ ██     ██       ████
 ██  ▀▀██  ██    ██   █████    ██ ▀▀ ██     ██       ▄██▄
  ██▄▄▄██  ▀██▄▄██▀            ██    ██  ▄▄▄██▄▄▄   ▄█▀▀█▄
    ▀▀▀▀     ▀▀▀▀              ▀▀    ▀▀  ▀▀▀▀▀▀▀▀  ▀▀▀  ▀▀▀
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for file execution output
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main is the entry point of the interpreter. It determines the
// operating mode based on command-line arguments:
//
// Usage:
//
//	mlang              - Start in REPL (interactive) mode
//	mlang <filename>   - Execute the specified source file
//	mlang --help       - Display help information
//	mlang --version    - Display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

// showHelp displays the help information for the interpreter
func showHelp() {
	cyanColor.Println("mlang - An Interpreted Expression Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  mlang                    Start interactive REPL mode")
	yellowColor.Println("  mlang <path-to-file>     Execute a source file")
	yellowColor.Println("  mlang --help             Display this help message")
	yellowColor.Println("  mlang --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                     Exit the REPL")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println("  mlang                    # Start REPL")
	yellowColor.Println("  mlang samples/factorial.ml")
}

// showVersion displays the version information for the interpreter
func showVersion() {
	cyanColor.Println("mlang - An Interpreted Expression Language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a source file.
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	executeFileWithRecovery(string(fileContent))
}

// executeFileWithRecovery parses and evaluates a whole source file. Unlike
// the REPL, any error here — parse failure, evaluation failure, or a
// recovered panic — ends the process with a non-zero status after
// reporting the problem.
func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	p := parser.New(source)
	program := p.Parse()

	if program.HasErrors() {
		for _, perr := range program.Errors {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", perr)
		}
		os.Exit(1)
	}

	evaluator := eval.New(os.Stdout)
	result, err := evaluator.Eval(program)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[EVAL ERROR] %s\n", err)
		os.Exit(1)
	}

	if result == nil {
		return
	}
	if result.Kind() == objects.UnitKind {
		return
	}
	text, err := objects.Str(result)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[EVAL ERROR] %s\n", err)
		os.Exit(1)
	}
	yellowColor.Fprintf(os.Stdout, "%s\n", text)
}
