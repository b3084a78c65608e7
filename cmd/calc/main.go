package main

import (
	"fmt"
	"os"

	"github.com/shunting-yard/calc"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprint(os.Stderr, "\nUsage: calc \"expression\"\n\n")
		os.Exit(2)
	}
	r, err := calc.EvalString(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n%v\n\n", err)
		os.Exit(1)
	}
	fmt.Printf("Result: %v\n", r)
}
