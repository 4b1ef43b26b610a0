// segdump prints the segmentation of documents, for tuning precision and
// inspecting marker detection without running a full analysis.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/liang-qiu/clausecheck/constants"
	"github.com/liang-qiu/clausecheck/internal/extract"
	"github.com/liang-qiu/clausecheck/internal/normalize"
	"github.com/liang-qiu/clausecheck/internal/ocr"
	"github.com/liang-qiu/clausecheck/internal/segment"
)

func main() {
	var (
		precision = flag.String("precision", "MEDIUM", "LOOSE, MEDIUM or STRICT")
		keepPre   = flag.Bool("keep-preamble", false, "keep text before the first marker as clause zero")
		full      = flag.Bool("full", false, "print full clause bodies instead of the first 120 runes")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: segdump [flags] file...")
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	extractor := extract.NewExtractor(ocr.NewExtractor(ocr.Config{}, logger), logger)
	segmenter := segment.NewSegmenter(logger)
	opts := segment.Options{
		Precision:    constants.ParsePrecision(*precision),
		KeepPreamble: *keepPre,
	}

	ctx := context.Background()
	for _, path := range flag.Args() {
		res, err := extractor.Extract(ctx, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			continue
		}
		sr := segmenter.Segment(normalize.Normalize(res.Text), uuid.New(), opts)

		fmt.Printf("%s: %d clauses, family=%s, degraded=%v\n", path, len(sr.Clauses), sr.Family, sr.Degraded)
		for _, d := range sr.Diagnostics {
			fmt.Printf("  ! %s: %s\n", d.Code, d.Message)
		}
		for _, c := range sr.Clauses {
			body := c.Body
			if !*full {
				if r := []rune(body); len(r) > 120 {
					body = string(r[:120]) + "…"
				}
			}
			fmt.Printf("  [%s] %s\n", c.DisplayLabel(), body)
		}
		if len(sr.Discarded) > 0 {
			fmt.Printf("  discarded %d short fragment(s)\n", len(sr.Discarded))
		}
	}
}
