// Command rail evaluates the concatenated positional arguments as source
// (spec.md §6: "rail — evaluate the concatenated positional arguments as
// source").
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jcorbin/rail"
	"github.com/jcorbin/rail/interp"
)

func main() {
	var (
		noStdlib bool
		libList  string
	)
	flag.BoolVar(&noStdlib, "no-stdlib", false, "skip loading the standard library")
	flag.StringVar(&libList, "l", "", "load an additional library list before evaluating")
	flag.Parse()

	conventions := rail.DefaultConventions()
	conventions.Executable = "rail"

	stdout := bufio.NewWriter(os.Stdout)
	opts := []interp.Option{
		interp.WithConventions(conventions),
		interp.WithOutput(stdout),
		interp.WithLog(os.Stderr),
	}
	if noStdlib {
		opts = append(opts, interp.WithNoStdlib())
	}
	if libList != "" {
		opts = append(opts, interp.WithLibraryLists(libList))
	}

	ip, err := interp.New(opts...)
	if err != nil {
		stdout.Flush()
		fmt.Fprintf(os.Stderr, "%s: %s %+v\n", conventions.Executable, conventions.FatalPrefix, err)
		os.Exit(1)
	}

	src := strings.Join(flag.Args(), " ")
	err = ip.Eval(src)
	stdout.Flush()
	if err != nil {
		ip.Log.Error("%+v", err)
		fmt.Fprintln(os.Stderr, ip.State.String())
		os.Exit(1)
	}

	os.Exit(ip.Log.Log.ExitCode())
}
