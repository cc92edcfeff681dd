package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nativeutils/sn-demangle/demangle"
)

var (
	outputFile string
	output     io.Writer

	qualified bool
	strict    bool
)

var errColor = color.New(color.FgRed)

var rootCmd = &cobra.Command{
	Use:   "snfilt [identifiers...]",
	Short: "Demangle Scala Native symbol names",
	Long: `snfilt decodes mangled Scala Native identifiers into human-readable
symbol names, in the manner of c++filt.

With identifier arguments it demangles each one; with none it reads
lines from standard input and echoes them with every mangled
identifier replaced by its demangled form.`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			output = f
		} else {
			output = os.Stdout
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if f, ok := output.(*os.File); ok && f != os.Stdout {
			f.Close()
		}
	},
	RunE:          runFilter,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	rootCmd.Flags().BoolVarP(&qualified, "qualified", "q", false, "keep fully-qualified scala.* and java.lang.* type names")
	rootCmd.Flags().BoolVarP(&strict, "strict", "s", false, "fail on malformed identifiers instead of echoing them")
}

func runFilter(cmd *cobra.Command, args []string) error {
	opts := demangle.Options{Qualified: qualified}

	if len(args) > 0 {
		for _, id := range args {
			out, err := demangleToken(id, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(output, out)
		}
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line, err := filterLine(scanner.Text(), opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(output, line)
	}
	return scanner.Err()
}

// filterLine rewrites every mangled token on a line, leaving surrounding
// text untouched.
func filterLine(line string, opts demangle.Options) (string, error) {
	tokens := strings.Split(line, " ")
	for i, tok := range tokens {
		if !demangle.IsMangled(tok) {
			continue
		}
		out, err := demangleToken(tok, opts)
		if err != nil {
			return "", err
		}
		tokens[i] = out
	}
	return strings.Join(tokens, " "), nil
}

// demangleToken demangles one identifier, echoing it unchanged on failure
// unless --strict is set.
func demangleToken(id string, opts demangle.Options) (string, error) {
	out, err := demangle.DemangleWithOptions(id, opts)
	if err != nil {
		if strict {
			return "", err
		}
		return id, nil
	}
	return out, nil
}
