package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	eijiro "github.com/alpha-kai-net/eijiro-go"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage of %s:
	%s [-o file] cachefile

Re-emits every dictionary entry in corpus line form.

Options:
`, os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}

	var outputfile string
	flag.StringVar(&outputfile, "o", "", "output to file")

	flag.Parse()

	if len(flag.Args()) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	output := bufio.NewWriter(os.Stdout)
	if outputfile != "" {
		outputfd, err := os.OpenFile(outputfile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", outputfile, err)
			os.Exit(1)
		}
		defer outputfd.Close()
		output = bufio.NewWriter(outputfd)
	}
	defer output.Flush()

	d, err := eijiro.ReadCache(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for i := 0; i < d.Size(); i++ {
		for _, f := range d.Fields(i) {
			fmt.Fprintln(output, corpusLine(d.Key(i), f))
		}
	}
}

func corpusLine(headword string, f *eijiro.Field) string {
	var sb strings.Builder
	sb.WriteString("■")
	sb.WriteString(headword)
	if f.Ident != "" {
		fmt.Fprintf(&sb, "  {%s}", f.Ident)
	}
	sb.WriteString(" : ")
	sb.WriteString(f.Explanation.Body)
	for _, c := range f.Explanation.Complements {
		sb.WriteString("◆")
		sb.WriteString(c)
	}
	for _, e := range f.Examples {
		sb.WriteString("■・")
		sb.WriteString(e)
	}
	return sb.String()
}
