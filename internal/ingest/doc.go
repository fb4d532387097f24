// Package ingest orchestrates CSV-to-archive imports end to end: parse
// the source, decide the output location, and dispatch to directory or
// zip output.
//
// Observability is injected: the Manager pushes ProgressEvent values into
// a caller-supplied callback instead of logging. The CLI prints them, the
// TUI renders them in a log pane.
//
//	manager := ingest.NewManager(settings, func(ev ingest.ProgressEvent) {
//	    fmt.Println(ev.Message)
//	})
//	outputPath, err := manager.Run(ctx, "items.csv", ingest.Options{})
package ingest
