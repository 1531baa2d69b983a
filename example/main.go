package main

import (
	"fmt"
	"log"
	"os"

	"github.com/l-donovan/grammarian"
	"github.com/l-donovan/grammarian/common"
	"github.com/l-donovan/grammarian/grammars"
)

func main() {
	description, err := os.ReadFile("example/lisp.grammar")

	if err != nil {
		log.Fatalln(err)
	}

	lisp, err := grammarian.Compile(string(description))

	if err != nil {
		log.Fatalln(err)
	}

	fmt.Print(grammarian.Verify(lisp))

	contents, err := os.ReadFile("example/demo.lisp")

	if err != nil {
		log.Fatalln(err)
	}

	tree, err := lisp.ParseAll("Program", string(contents))

	if err != nil {
		if parseErr, ok := err.(grammarian.ParseError); ok {
			parseErr.PrintContext(os.Stderr, 2, false)
		}

		log.Fatalln(err)
	}

	out, err := common.Serialize(tree, false, 2)

	if err != nil {
		log.Fatalln(err)
	}

	fmt.Printf("Output: %s\n", out)
	fmt.Printf("Leaves: %q\n", common.Leaves(tree))

	fmt.Println(grammars.Arithmetic.Parse("Exp", "3*x + f(a, 2)"))
}
