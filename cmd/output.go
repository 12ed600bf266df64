// Package cmd provides output formatting utilities for deployctl CLI.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"gopkg.in/yaml.v3"
)

// PrintOutput formats and prints data according to the specified output format.
// Text output expects data to be a list of key/value rows.
func PrintOutput(w io.Writer, format string, data interface{}) error {
	switch strings.ToLower(format) {
	case "json":
		return printJSON(w, data)
	case "yaml", "yml":
		return printYAML(w, data)
	case "text":
		return printText(w, data)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// printJSON outputs data as JSON.
func printJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// printYAML outputs data as YAML.
func printYAML(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	defer func() {
		_ = encoder.Close()
	}()
	return encoder.Encode(data)
}

// KeyValue is a single row of text output.
type KeyValue struct {
	Key   string
	Value string
}

// printText outputs key/value rows as a table; anything else is printed verbatim.
func printText(w io.Writer, data interface{}) error {
	rows, ok := data.([]KeyValue)
	if !ok {
		_, err := fmt.Fprintf(w, "%+v\n", data)
		return err
	}

	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()
	tbl := table.New("Setting", "Value").WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

	for _, row := range rows {
		tbl.AddRow(row.Key, row.Value)
	}

	tbl.Print()
	return nil
}
