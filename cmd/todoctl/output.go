package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/adanyl0v/go-todo-local/internal/tasks"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func writeViews(w io.Writer, format string, views []tasks.View) error {
	switch format {
	case formatTable:
		return writeTable(w, views)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func writeTable(w io.Writer, views []tasks.View) error {
	if len(views) == 0 {
		_, err := fmt.Fprintln(w, "No tasks yet.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTOPIC\tPRIORITY\tSTATUS\tDONE")
	for _, v := range views {
		done := ""
		if v.Completed {
			done = "x"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", v.ID, v.Topic, v.PriorityLabel, v.StatusLabel, done)
	}
	return tw.Flush()
}
