package main

import (
	"os"

	"github.com/graeme-hill/exprstuff-go/lib"
)

func main() {
	inPath, outPath := "in.txt", "out.txt"
	if len(os.Args) == 3 {
		inPath, outPath = os.Args[1], os.Args[2]
	}

	err := lib.RunFile(inPath, outPath)
	if err != nil {
		panic(err)
	}
}
