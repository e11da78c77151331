package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	eijiro "github.com/alpha-kai-net/eijiro-go"
	"github.com/alpha-kai-net/eijiro-go/internal/mmap"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage of %s:
	%s file
`, os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if len(flag.Args()) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	err := printHeader(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printHeader(cachefile string) error {
	cachefd, err := os.OpenFile(cachefile, os.O_RDONLY, 0644)
	if err != nil {
		return err
	}
	defer cachefd.Close()

	finfo, err := cachefd.Stat()
	if err != nil {
		return err
	}

	bytebuffer, err := mmap.Mmap(cachefd, false, 0, finfo.Size())
	if err != nil {
		return err
	}
	defer mmap.Munmap(bytebuffer)

	ch := eijiro.ParseCacheHeader(bytebuffer)

	fmt.Println("filename:", cachefile)

	if ch == nil || ch.Version != eijiro.CacheVersion {
		fmt.Println("invalid file")
		os.Exit(1)
	}

	ctime := time.Unix(ch.CreateTime, 0)
	zone, _ := ctime.Zone()
	fmt.Printf("createTime: %s[%s]\n", ctime.Format(time.RFC3339), zone)
	fmt.Println("description:", ch.Description)

	return nil
}
