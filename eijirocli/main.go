package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	eijiro "github.com/alpha-kai-net/eijiro-go"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage of %s:
	%s [-r file] [-d distance] [-o file] [word]

Looks up word in the dictionary. Without a word argument, reads
queries interactively until ":exit".

Options:
`, os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}

	var (
		settingfile string
		distance    uint
		outputfile  string
	)
	flag.StringVar(&settingfile, "r", "", "read settings from file")
	flag.UintVar(&distance, "d", 0, "maximum edit distance")
	flag.StringVar(&outputfile, "o", "", "output to file")

	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	config, err := eijiro.ParseSettings(settingfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fail to parse settings: %s\n", err)
		os.Exit(1)
	}

	maxDist := config.MaxDistance
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "d" {
			maxDist = uint32(distance)
		}
	})

	var output io.Writer = os.Stdout
	if outputfile != "" {
		outputfd, err := os.OpenFile(outputfile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", outputfile, err)
			os.Exit(1)
		}
		defer outputfd.Close()
		bufiooutput := bufio.NewWriter(outputfd)
		defer bufiooutput.Flush()
		output = bufiooutput
	}

	dict, err := eijiro.NewDict(config, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if flag.NArg() > 0 {
		if err := lookupWord(output, dict, flag.Arg(0), maxDist); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("=> ")
		if !scanner.Scan() {
			break
		}
		word := strings.TrimRight(scanner.Text(), " \t")
		if word == ":exit" {
			break
		}
		if err := lookupWord(output, dict, word, maxDist); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func lookupWord(output io.Writer, dict *eijiro.Dict, word string, maxDist uint32) error {
	fmt.Fprintf(output, "<Search word: [%s]>\n", word)
	matches, err := dict.Lookup(word, maxDist)
	if err != nil {
		return err
	}
	for _, m := range matches {
		fmt.Fprintf(output, "■%s\n", m.Headword)
		for _, f := range m.Fields {
			fmt.Fprintln(output, formatField(f))
		}
	}
	return nil
}

func formatField(f *eijiro.Field) string {
	var sb strings.Builder
	if f.Ident != "" {
		fmt.Fprintf(&sb, "{%s} : ", f.Ident)
	}
	sb.WriteString(f.Explanation.Body)
	for _, c := range f.Explanation.Complements {
		sb.WriteString("◆")
		sb.WriteString(c)
	}
	for _, e := range f.Examples {
		sb.WriteString("\n        ")
		sb.WriteString(e)
	}
	return sb.String()
}
