// Program yecc lexes one or more C source files and writes one line per
// token to standard output; diagnostics go to standard error.
//
// Usage: yecc [flags] FILE...
//
// With no FILE arguments, source is read from standard input.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pborman/getopt"

	"github.com/Yeint-herp/yecc/pkg/cctx"
	"github.com/Yeint-herp/yecc/pkg/diag"
	"github.com/Yeint-herp/yecc/pkg/indent"
	"github.com/Yeint-herp/yecc/pkg/intern"
	"github.com/Yeint-herp/yecc/pkg/lexer"
	"github.com/Yeint-herp/yecc/pkg/token"
)

var stop = os.Exit

func main() {
	std := "c17"
	var gnu, pedantic, trigraphs, werror, help bool
	wcharBits := 32
	floatMode := "full"
	maxErrors := 64

	getopt.StringVarLong(&std, "std", 0, "language standard: c89, c99, c11, c17, or c23", "STD")
	getopt.BoolVarLong(&gnu, "gnu", 0, "enable GNU extensions")
	getopt.BoolVarLong(&pedantic, "pedantic", 0, "enable pedantic extension diagnostics")
	getopt.BoolVarLong(&trigraphs, "trigraphs", 0, "translate ISO trigraphs and digraphs")
	getopt.IntVarLong(&wcharBits, "wchar-bits", 0, "wide character width: 8, 16, or 32", "BITS")
	getopt.StringVarLong(&floatMode, "float-mode", 0, "floating literal support: full, soft, or disabled", "MODE")
	getopt.BoolVarLong(&werror, "Werror", 0, "treat warnings as errors")
	getopt.IntVarLong(&maxErrors, "max-errors", 0, "stop reporting after this many errors (0 = unlimited)", "N")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("FILE...")

	if err := getopt.Getopt(func(getopt.Option) bool { return true }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		stop(1)
	}

	if help {
		printHelp()
		stop(0)
	}

	ctx, err := buildContext(std, floatMode, wcharBits, gnu, pedantic, trigraphs, werror, maxErrors)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop(1)
	}

	files := getopt.Args()
	hadError := false

	if len(files) == 0 {
		if !lexOne(ctx, "<stdin>", os.Stdin) {
			hadError = true
		}
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			hadError = true
			continue
		}
		ok := lexOne(ctx, name, f)
		f.Close()
		if !ok {
			hadError = true
		}
	}

	if hadError {
		stop(1)
	}
}

// buildContext maps the CLI flags of §6.2 onto a fresh cctx.Context,
// validating the enumerated flag values and rejecting unknown spellings.
func buildContext(std, floatMode string, wcharBits int, gnu, pedantic, trigraphs, werror bool, maxErrors int) (*cctx.Context, error) {
	ctx := cctx.New()

	switch std {
	case "c89":
		ctx.LangStd = cctx.C89
	case "c99":
		ctx.LangStd = cctx.C99
	case "c11":
		ctx.LangStd = cctx.C11
	case "c17":
		ctx.LangStd = cctx.C17
	case "c23":
		ctx.LangStd = cctx.C23
	default:
		return nil, fmt.Errorf("--std: invalid standard %q (want c89, c99, c11, c17, or c23)", std)
	}

	switch wcharBits {
	case 8:
		ctx.WCharBits = cctx.WChar8
	case 16:
		ctx.WCharBits = cctx.WChar16
	case 32:
		ctx.WCharBits = cctx.WChar32
	default:
		return nil, fmt.Errorf("--wchar-bits: invalid width %d (want 8, 16, or 32)", wcharBits)
	}

	switch floatMode {
	case "full":
		ctx.FloatMode = cctx.FloatFull
	case "soft":
		ctx.FloatMode = cctx.FloatSoft
	case "disabled":
		ctx.FloatMode = cctx.FloatDisabled
	default:
		return nil, fmt.Errorf("--float-mode: invalid mode %q (want full, soft, or disabled)", floatMode)
	}

	ctx.GNUExtensions = gnu
	ctx.Pedantic = pedantic
	ctx.EnableTrigraphs = trigraphs
	ctx.WarningsAsErrors = werror
	ctx.MaxErrors = maxErrors
	return ctx, nil
}

// lexOne lexes the entirety of r under name, writing one line per token
// to stdout and letting the lexer's own sink report diagnostics to
// stderr. It reports whether the file lexed without any ERROR-level
// diagnostic.
func lexOne(ctx *cctx.Context, name string, r io.Reader) bool {
	data, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return false
	}

	sink := diag.NewSink(os.Stderr)
	sink.SetMaxErrors(ctx.MaxErrors)
	l := lexer.NewFromBytes(name, data, ctx, intern.New(), sink)
	defer l.Close()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for {
		tok := l.Next()
		fmt.Fprintf(out, "%-20s %-24s %s\n", tok.Kind.String(), tokenText(tok), tok.Span.Start.String())
		if tok.Kind == token.EOF {
			break
		}
	}
	return l.ErrorCount() == 0
}

// tokenText renders a token's payload for the dump format of §6.2: the
// decoded spelling or value a human would want to see next to its kind,
// or "-" for punctuation that carries no payload beyond its kind.
func tokenText(t *token.Token) string {
	switch t.Kind {
	case token.IDENTIFIER, token.HEADER_NAME:
		return quoteSpelling(t.Value.Spelling.String())
	case token.INTEGER_CONSTANT:
		return fmt.Sprintf("%d(%s)", t.Value.Int.Unsigned, baseName(t.Value.Int.Base))
	case token.FLOATING_CONSTANT:
		return strconv.FormatFloat(t.Value.Float.Bits, 'g', -1, 64)
	case token.CHARACTER_CONSTANT:
		return fmt.Sprintf("U+%04X", t.Value.Char)
	case token.STRING_LITERAL:
		return stringPreview(t.Value.Str)
	case token.ERROR:
		return t.Value.ErrorMsg.String()
	case token.EOF:
		return "-"
	default:
		if t.Value.Spelling != nil {
			return quoteSpelling(t.Value.Spelling.String())
		}
		return "-"
	}
}

func quoteSpelling(s string) string { return strconv.Quote(s) }

func baseName(b token.IntBase) string {
	switch b {
	case token.Base2:
		return "bin"
	case token.Base8:
		return "oct"
	case token.Base16:
		return "hex"
	default:
		return "dec"
	}
}

// stringPreview summarizes a decoded string literal by its populated
// encoding slice, without the NUL terminator every slice carries.
func stringPreview(s token.StringValue) string {
	switch {
	case s.Bytes != nil:
		n := len(s.Bytes)
		if n > 0 {
			n--
		}
		return strconv.Quote(string(s.Bytes[:n]))
	case s.Units16 != nil:
		return fmt.Sprintf("<%d UTF-16 units>", max(len(s.Units16)-1, 0))
	case s.Units32 != nil:
		return fmt.Sprintf("<%d UTF-32 units>", max(len(s.Units32)-1, 0))
	default:
		return `""`
	}
}

// printHelp prints usage followed by the enumerated values each flag
// accepts, indented under its own heading with pkg/indent so a long
// list of choices reads as nested under the flag it belongs to.
func printHelp() {
	getopt.CommandLine.PrintUsage(os.Stderr)
	fmt.Fprintln(os.Stderr, "\nEnumerated flag values:")
	w := indent.NewWriter(os.Stderr, "  ")
	fmt.Fprintln(w, "--std:        c89, c99, c11, c17, c23")
	fmt.Fprintln(w, "--wchar-bits: 8, 16, 32")
	fmt.Fprintln(w, "--float-mode: full, soft, disabled")
}
