// Package main provides transcriptctl, a command line tool for running the
// transcript parsers against local files without the REST service. It exists
// for debugging extraction problems: feed it the PDF (or already-extracted
// text) a case worker flagged and inspect exactly what the parser saw.
package main

func main() {
	Execute()
}
