package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"freight-dispatch-service/internal/services"
	"io"
	"log"
	"os"
)

// dispatch plans one scenario document and prints the movement log.
//
//	dispatch [-format json|text] [file]
//
// The document is read from stdin when no file is given.
func main() {
	format := flag.String("format", "text", "json|text")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("dispatch: ")

	if *format != "json" && *format != "text" {
		log.Fatalf("unknown format %q", *format)
	}

	var in io.Reader = os.Stdin
	if path := flag.Arg(0); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	if err := run(in, os.Stdout, *format); err != nil {
		log.Fatal(err)
	}
}

func run(r io.Reader, w io.Writer, format string) error {
	input, err := services.LoadScenario(r)
	if err != nil {
		return err
	}

	entries, err := services.RouteSchedule(input)
	if err != nil {
		return err
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for _, e := range entries {
		if _, err := fmt.Fprintln(w, services.FormatLogEntry(e)); err != nil {
			return err
		}
	}
	return nil
}
