package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ivoronin/fillfile/internal/color"
	"github.com/ivoronin/fillfile/internal/size"
)

// printErrors writes all messages as one red block, one message per line.
func printErrors(w io.Writer, p color.Painter, msgs []string) {
	fmt.Fprintln(w, p.Paint(color.Red, strings.Join(msgs, "\n")))
}

// printSuccess writes "Success: <path> (<N> bytes)" with a green label and brown size.
func printSuccess(w io.Writer, p color.Painter, path string, n uint64) {
	fmt.Fprintf(w, "%s%s (%s)\n", p.Paint(color.Green, "Success: "), path, p.Paint(color.Brown, size.Format(n)))
}
