package lib

import (
	"io/ioutil"
	"strconv"
	"strings"
)

// RunFile evaluates every line of the input file and writes one decimal
// integer per line, newline-terminated, in input order, to the output
// file. A malformed line aborts the run before anything is written.
func RunFile(inPath string, outPath string) error {
	bytes, err := ioutil.ReadFile(inPath)
	if err != nil {
		return err
	}

	results, err := EvalLines(string(bytes))
	if err != nil {
		return err
	}

	var sb strings.Builder
	for _, result := range results {
		sb.WriteString(strconv.FormatInt(result, 10))
		sb.WriteString("\n")
	}

	return ioutil.WriteFile(outPath, []byte(sb.String()), 0644)
}
