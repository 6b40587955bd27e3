// Package main implements the datakit command line tool, a front end for
// the string metrics, statistics, word frequency, email heuristic and user
// record packages.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
