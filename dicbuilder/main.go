package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	eijiro "github.com/alpha-kai-net/eijiro-go"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage of %s:
	%s -o file [-e encoding] [-s] corpusfile

Parses the corpus and writes the dictionary cache.

Options:
`, os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}

	var (
		outputpath string
		encoding   string
		strict     bool
	)
	flag.StringVar(&outputpath, "o", "", "output to file")
	flag.StringVar(&encoding, "e", eijiro.EncodingUTF8, "corpus encoding (utf8, sjis or utf16le)")
	flag.BoolVar(&strict, "s", false, "abort on the first malformed line")

	flag.Parse()

	if outputpath == "" || len(flag.Args()) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	corpuspath := flag.Arg(0)

	config := &eijiro.BaseConfig{
		Corpus:   corpuspath,
		Encoding: encoding,
		Strict:   strict,
	}

	p := message.NewPrinter(language.English)

	fmt.Fprint(os.Stderr, "reading the corpus...")
	d, err := build(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n%s: %s\n", corpuspath, err)
		os.Exit(1)
	}
	p.Fprintf(os.Stderr, " %d headwords\n", d.Size())

	fmt.Fprint(os.Stderr, "writing the cache...")
	err = eijiro.WriteCache(outputpath, d)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nfail to write the cache: %s\n", err)
		os.Exit(1)
	}
	finfo, err := os.Stat(outputpath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	p.Fprintf(os.Stderr, " %d bytes\n", finfo.Size())
}

func build(config *eijiro.BaseConfig) (*eijiro.Dictionary, error) {
	corpusReader, err := os.OpenFile(config.Corpus, os.O_RDONLY, 0644)
	if err != nil {
		return nil, err
	}
	defer corpusReader.Close()

	r, err := eijiro.DecodeReader(corpusReader, config.Encoding)
	if err != nil {
		return nil, err
	}

	entries, perrs, err := eijiro.ParseCorpus(r, config.Strict)
	if err != nil {
		return nil, err
	}
	for _, perr := range perrs {
		fmt.Fprintf(os.Stderr, "\n%s", perr)
	}
	if len(perrs) > 0 {
		fmt.Fprintln(os.Stderr)
	}

	return eijiro.BuildDictionary(entries)
}
