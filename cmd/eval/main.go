package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/graeme-hill/exprstuff-go/lib"
)

// Reads expressions from stdin, one per line, and prints one result per
// line. Set EXPR_HISTORY to a sqlite file path to record evaluations.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var history *lib.History
	runID := ""

	if path := os.Getenv("EXPR_HISTORY"); path != "" {
		h, err := lib.OpenHistory(path)
		if err != nil {
			return err
		}
		defer h.Close()

		runID, err = h.Begin()
		if err != nil {
			return err
		}
		history = h
	}

	scanner := bufio.NewScanner(os.Stdin)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		result, err := lib.EvalLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}

		if history != nil {
			if err := history.Record(runID, lineNum, line, result); err != nil {
				return err
			}
		}

		fmt.Println(result)
	}
	return scanner.Err()
}
