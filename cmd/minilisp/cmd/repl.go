package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/xyproto/env/v2"
)

const replHelp = `Basic expressions:
  42                 number literal
  x                  identifier
  (+ 2 3)            addition
  (× x 5)            multiplication

Nested expressions:
  (+ (× 2 3) 4)      nested arithmetic
  (? (= x 0) 1 0)    conditional

Function expressions:
  (λ x x)            lambda (identity function)
  (≜ y 10 y)         let binding
  ((λ x (+ x 1)) 5)  function application

Unicode operators (exact code points):
  × (U+00D7) for multiplication, not the letter x
  − (U+2212) for minus, not the ASCII dash -
  λ (U+03BB) for lambda
  ≜ (U+225C) for let`

// runREPL reads expressions line by line and prints the parse tree or the
// error for each one.
func runREPL() error {
	prompt := promptStyle.Render(env.Str("MINILISP_PROMPT", "> "))

	fmt.Println(headingStyle.Render("MiniLisp LL(1) parser"))
	fmt.Println(mutedStyle.Render(`Type "help" for examples, "exit" to quit.`))
	fmt.Println()

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt)

		if !in.Scan() {
			fmt.Println()
			return in.Err()
		}

		line := strings.TrimSpace(in.Text())
		switch {
		case line == "":
			continue
		case strings.EqualFold(line, "exit"), strings.EqualFold(line, "quit"):
			return nil
		case strings.EqualFold(line, "help"):
			fmt.Println(replHelp)
			continue
		}

		out, err := render(line)
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			continue
		}
		fmt.Println(out)
	}
}
