package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"

	"github.com/xiam/minilisp/ast"
	"github.com/xiam/minilisp/lexer"
	"github.com/xiam/minilisp/parser"
)

var (
	showTokens bool
	compact    bool
)

var rootCmd = &cobra.Command{
	Use:   "minilisp [expression]",
	Short: "Parse MiniLisp expressions into JSON parse trees",
	Long: `minilisp tokenizes and parses a MiniLisp expression and prints its
parse tree as JSON. With no argument it starts an interactive session.

MiniLisp uses exact Unicode operators:
  × (U+00D7) for multiplication, not the letter x
  − (U+2212) for minus, not the ASCII dash -
  λ (U+03BB) for lambda
  ≜ (U+225C) for let`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runREPL()
		}

		out, err := render(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVar(&showTokens, "tokens", false, "print the token stream before the parse tree")
	rootCmd.Flags().BoolVar(&compact, "compact", env.Bool("MINILISP_COMPACT"), "print compact JSON instead of pretty-printed")
}

// render runs one expression through the lexer and parser and returns the
// requested output. Errors are surfaced verbatim.
func render(input string) (string, error) {
	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if showTokens {
		for _, tok := range tokens {
			if tok.Is(lexer.TokenEOF) {
				continue
			}
			sb.WriteString(tok.String())
			sb.WriteString("\n")
		}
	}

	tree, err := parser.New(tokens).Parse()
	if err != nil {
		return "", err
	}

	if compact {
		sb.Write(ast.Encode(tree))
	} else {
		sb.Write(ast.EncodeIndent(tree))
	}
	return sb.String(), nil
}
