// Command permute prints every permutation of its arguments, or just how many
// there are.
//
//	permute [-c] [-a algorithm] [-distinct] [-sep s] [-config file] elements...
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/reallyasi9/permutations/internal/perm"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("permute: ")

	err := run(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func algorithmList() string {
	names := make([]string, 0)
	for _, a := range perm.Algorithms() {
		names = append(names, a.String())
	}
	return strings.Join(names, ", ")
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("permute", flag.ContinueOnError)

	var count, distinct, verbose bool
	var algorithm, sep, configFile string
	fs.BoolVar(&count, "c", false, "Print the number of permutations only.")
	fs.BoolVar(&count, "count", false, "Same as -c.")
	fs.StringVar(&algorithm, "a", "std", "Permutation `algorithm`: std, 1, 2, 3, 4 or one of "+algorithmList()+".")
	fs.StringVar(&algorithm, "algorithm", "std", "Same as -a.")
	fs.BoolVar(&distinct, "distinct", false, "Print the number of distinct permutations only.")
	fs.StringVar(&sep, "sep", " ", "`separator` printed between elements")
	fs.StringVar(&configFile, "config", "", "YAML `file` with default settings")
	fs.BoolVar(&verbose, "v", false, "Log progress to stderr.")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: permute [options] elements...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	conf := defaultConfig()
	if configFile != "" {
		c, err := loadConfig(configFile)
		if err != nil {
			return err
		}
		conf = c
		if verbose {
			log.Printf("loaded config %q: %+v", configFile, conf)
		}
	}

	// flags given on the command line win over the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "c", "count":
			conf.Count = count
		case "a", "algorithm":
			conf.Algorithm = algorithm
		case "distinct":
			conf.Distinct = distinct
		case "sep":
			conf.Separator = sep
		}
	})

	elems := fs.Args()
	if len(elems) == 0 {
		return errors.New("no elements to permute")
	}

	alg, err := perm.ParseAlgorithm(conf.Algorithm)
	if err != nil {
		return err
	}
	permute, err := perm.For[string](alg)
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("algorithm %v, %d elements, %v permutations", alg, len(elems), perm.Count(len(elems)))
	}

	w := bufio.NewWriter(stdout)
	printing := !conf.Count && !conf.Distinct

	var n int64
	var seen *distinctCounter
	if conf.Distinct {
		seen = newDistinctCounter()
	}
	err = permute(elems, func(p []string) error {
		n++
		if seen != nil {
			seen.Add(p)
		}
		if printing {
			_, err := fmt.Fprintln(w, strings.Join(p, conf.Separator))
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%v: %w", alg, err)
	}

	if conf.Count {
		fmt.Fprintln(w, n)
	}
	if seen != nil {
		fmt.Fprintln(w, seen.Len())
	}
	return w.Flush()
}
