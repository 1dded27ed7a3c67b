package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hmoreno/miniclex-go/lib"
)

func main() {
	os.Exit(run())
}

func run() int {
	format := flag.String("format", "text", "output format: text, json or yaml")
	flag.Parse()

	source, err := readSource(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	tokens, errs := lib.Lex(source)
	report := lib.NewReport(tokens, errs)

	out, err := render(report, *format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	fmt.Print(out)

	if len(errs) > 0 {
		return 1
	}
	return 0
}

func readSource(path string) (string, error) {
	if path == "" {
		bytes, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(bytes), nil
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(bytes), nil
}

func render(report lib.Report, format string) (string, error) {
	switch format {
	case "text":
		return report.Text(), nil
	case "json":
		payload, err := report.JSON()
		if err != nil {
			return "", err
		}
		return string(payload) + "\n", nil
	case "yaml":
		payload, err := report.YAML()
		if err != nil {
			return "", err
		}
		return string(payload), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
