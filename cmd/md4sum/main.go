// Command md4sum prints MD4 checksums of files, standard input or strings.
//
// Usage:
//
//	md4sum [-q] [FILE...]
//	md4sum -s [-q] STRING...
//	md4sum --extend DIGEST --length N EXTRA
//
// With no FILE, or when FILE is -, md4sum reads standard input.
//
// The --extend form performs a length extension: given the digest of an
// unknown message and that message's length in bytes, it prints the digest
// of message || glue || EXTRA followed by the glue padding in hex.
package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	flag "github.com/spf13/pflag"
	"jayconrod.com/md4/md4"
)

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

var (
	stringFlag = flag.BoolP("string", "s", false, "hash arguments as strings instead of file names")
	quietFlag  = flag.BoolP("quiet", "q", false, "print only digests")
	extendFlag = flag.String("extend", "", "digest of an unknown message to extend")
	lengthFlag = flag.Uint64("length", 0, "length in bytes of the message behind --extend")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: md4sum [-q] [FILE...]\n")
	fmt.Fprintf(os.Stderr, "       md4sum -s [-q] STRING...\n")
	fmt.Fprintf(os.Stderr, "       md4sum --extend DIGEST --length N EXTRA\n\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("md4sum: ")
	flag.Usage = usage
	flag.CommandLine.SortFlags = false
	flag.Parse()
	os.Exit(run(os.Stdout, os.Stdin, flag.Args()))
}

func run(stdout io.Writer, stdin io.Reader, args []string) int {
	if *extendFlag != "" {
		if len(args) != 1 {
			usage()
			return exitUsage
		}
		if err := extend(stdout, *extendFlag, *lengthFlag, args[0]); err != nil {
			log.Print(err)
			return exitUsage
		}
		return exitSuccess
	}

	if *stringFlag {
		for _, arg := range args {
			printSum(stdout, md4.Sum([]byte(arg)), fmt.Sprintf("%q", arg))
		}
		return exitSuccess
	}

	if len(args) == 0 {
		args = []string{"-"}
	}
	code := exitSuccess
	for _, name := range args {
		sum, err := sumFile(name, stdin)
		if err != nil {
			log.Print(err)
			code = exitFailure
			continue
		}
		printSum(stdout, sum, name)
	}
	return code
}

func sumFile(name string, stdin io.Reader) ([md4.Size]byte, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = ioutil.ReadAll(stdin)
	} else {
		data, err = ioutil.ReadFile(name)
	}
	if err != nil {
		return [md4.Size]byte{}, err
	}
	return md4.Sum(data), nil
}

func printSum(w io.Writer, sum [md4.Size]byte, name string) {
	if *quietFlag {
		fmt.Fprintf(w, "%x\n", sum)
	} else {
		fmt.Fprintf(w, "%x  %s\n", sum, name)
	}
}

func extend(w io.Writer, digest string, length uint64, extra string) error {
	s, err := md4.ParseSum(digest)
	if err != nil {
		return err
	}
	forged, glue := md4.Extend(s.Sum(), length, []byte(extra))
	fmt.Fprintf(w, "%x\n", forged)
	if !*quietFlag {
		fmt.Fprintf(w, "%x\n", glue)
	}
	return nil
}
