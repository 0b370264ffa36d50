package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/brunokim/truth-table/expr"
	"github.com/brunokim/truth-table/solver"
	"github.com/brunokim/truth-table/table"

	"github.com/chzyer/readline"
)

var (
	query       = flag.String("query", "", "Initial input to evaluate")
	interactive = flag.Bool("interactive", true, "Whether the REPL is interactive")
	history     = flag.String("history-file", "/tmp/truth-table-history", "File to keep input history")
	maxVars     = flag.Int("max-vars", 16, "Largest number of distinct variables to tabulate")
)

type inputState int

const (
	readingQuery inputState = iota
	enumerateSolutions
)

type ctx struct {
	interrupt chan os.Signal
	readline  *readline.Instance
}

func main() {
	flag.Parse()
	if !*interactive && len(*query) == 0 {
		log.Fatal("No query provided for non-interactive REPL")
	}

	ctx := ctx{}
	ctx.interrupt = make(chan os.Signal, 1)
	signal.Notify(ctx.interrupt, syscall.SIGINT)

	if !*interactive {
		runBatch(*query)
		return
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 "> ",
		HistoryFile:            *history,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()
	ctx.readline = rl

	ctx.mainLoop()
}

// parseInput splits a line into the expression and whether solutions were
// requested with a leading '?'.
func parseInput(line string) (string, bool, error) {
	line = strings.TrimSpace(line)
	isSolve := strings.HasPrefix(line, "?")
	if isSolve {
		line = strings.TrimSpace(line[1:])
	}
	if err := expr.Validate(line); err != nil {
		return "", false, err
	}
	if err := table.CheckLimit(line, *maxVars); err != nil {
		return "", false, err
	}
	return line, isSolve, nil
}

func runBatch(line string) {
	text, isSolve, err := parseInput(line)
	if err != nil {
		log.Fatal(err)
	}
	if !isSolve {
		printTable(text)
		return
	}
	s, err := solver.New(text)
	if err != nil {
		log.Fatal(err)
	}
	solutions, _ := s.Query()
	hasSolutions := false
	for result := range solutions {
		if result.Err != nil {
			log.Fatal(result.Err)
		}
		hasSolutions = true
		printSolution(result.Solution, true)
	}
	if !hasSolutions {
		printSolution(nil, false)
	}
}

func printTable(text string) {
	t, err := table.Compute(text)
	if err != nil {
		log.Print(err)
		return
	}
	fmt.Print(t)
}

func (ctx ctx) mainLoop() {
	state := readingQuery
	var solutions <-chan solver.Result
	var cancel func()
	pending := *query
	for {
		switch state {
		default:
			log.Print("Invalid state:", state)
			return
		case readingQuery:
			line := pending
			pending = ""
			if line == "" {
				var isClose bool
				line, isClose = ctx.readQuery()
				if isClose {
					return
				}
			}
			text, isSolve, err := parseInput(line)
			if err != nil {
				log.Print(err)
				continue
			}
			if !isSolve {
				printTable(text)
				continue
			}
			s, err := solver.New(text)
			if err != nil {
				log.Print(err)
				continue
			}
			solutions, cancel = s.Query()
			state = enumerateSolutions
		case enumerateSolutions:
			if isClose := ctx.solutionState(solutions, cancel); isClose {
				state = readingQuery
			}
		}
	}
}

func (ctx ctx) readQuery() (string, bool) {
	ctx.readline.SetPrompt("> ")
	for {
		line, err := ctx.readline.Readline()
		if err != nil {
			return "", true
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		ctx.readline.SaveHistory(line)
		return line, false
	}
}

func (ctx ctx) solutionState(solutions <-chan solver.Result, cancel func()) bool {
	select {
	case result, ok := <-solutions:
		if ok && result.Err != nil {
			log.Print(result.Err)
			cancel()
			return true
		}
		if isClose := printSolution(result.Solution, ok); isClose {
			return true
		}
		if isClose := ctx.readCommand(); isClose {
			cancel()
			return true
		}
		return false
	case <-ctx.interrupt:
		cancel()
		return true
	}
}

func printSolution(solution solver.Solution, ok bool) bool {
	if !ok {
		fmt.Println("false.")
		return true
	}
	if len(solution) == 0 {
		fmt.Println("true")
	} else {
		fmt.Println(solution)
	}
	return false
}

func (ctx ctx) readCommand() bool {
	for {
		ctx.readline.SetPrompt("")
		line, err := ctx.readline.Readline()
		if err != nil {
			return true
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if line == ";" {
			return false
		}
		if line == "." {
			return true
		}
		log.Print("Expecting '.' or ';'")
	}
}
