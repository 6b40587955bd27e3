// Package render turns results from the core packages into terminal output:
// colorized headings and labels, tables, or indented JSON documents for
// scripting. It is the only package that knows about colors and layout.
package render
