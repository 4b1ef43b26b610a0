// Package segment reconstructs clause records from normalized document text.
package segment

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/liang-qiu/clausecheck/constants"
	"github.com/liang-qiu/clausecheck/internal/entity"
)

// Repair thresholds: a marker-based split that yields fewer than repairMinClauses
// clauses from a text longer than repairMinText bytes is treated as a probable
// mis-segmentation and retried with the paragraph splitter.
const (
	repairMinClauses = 3
	repairMinText    = 500
)

// acceptMin is the cascade acceptance predicate: a marker family is chosen
// once it anchors at least this many boundaries.
const acceptMin = 2

// Options control one segmentation pass.
type Options struct {
	Precision    constants.Precision
	KeepPreamble bool // emit text before the first marker as an unlabeled clause
}

// Diagnostic is a non-fatal quality signal surfaced alongside the clauses.
type Diagnostic struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result is the outcome of one segmentation pass. Segmentation never fails
// for string input; everything degraded shows up here instead.
type Result struct {
	Clauses     []entity.Clause `json:"clauses"`
	Family      string          `json:"family,omitempty"` // chosen marker family, "" for paragraph fallback
	Degraded    bool            `json:"degraded"`
	Diagnostics []Diagnostic    `json:"diagnostics,omitempty"`
	// Discarded collects inter-clause text dropped by the minimum-length
	// filter, for content-coverage accounting.
	Discarded []string `json:"-"`
}

type Segmenter struct {
	logger *slog.Logger
}

func NewSegmenter(logger *slog.Logger) *Segmenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Segmenter{logger: logger}
}

// Segment splits normalized text into clauses for the given document.
// The input is expected to have passed through normalize.Normalize; the only
// whitespace runs left are single spaces, newlines, and "\f" page markers.
func (s *Segmenter) Segment(text string, docID uuid.UUID, opts Options) Result {
	if opts.Precision == "" {
		opts.Precision = constants.PrecisionMedium
	}
	if strings.TrimSpace(text) == "" {
		return Result{
			Degraded:    true,
			Diagnostics: []Diagnostic{{Code: "empty-input", Message: "no text to segment"}},
		}
	}

	text = stitchPages(text)

	family, marks := s.pickFamily(text, opts.Precision)
	if family == nil {
		s.logger.Debug("segment.fallback", "doc_id", docID, "reason", "no marker family accepted")
		res := s.splitParagraphs(text, docID, opts)
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Code:    "no-markers",
			Message: "no numbering markers found; paragraph split applied",
		})
		return res
	}

	res := s.splitAtMarkers(text, docID, family, marks, opts)
	if len(res.Clauses) < repairMinClauses && len(text) > repairMinText {
		s.logger.Warn("segment.repair",
			"doc_id", docID, "family", family.name,
			"clauses", len(res.Clauses), "text_bytes", len(text),
		)
		fallback := s.splitParagraphs(text, docID, opts)
		fallback.Degraded = true
		fallback.Diagnostics = append(fallback.Diagnostics, Diagnostic{
			Code: "sparse-markers",
			Message: fmt.Sprintf("family %s produced only %d clauses from %d bytes; paragraph split applied",
				family.name, len(res.Clauses), len(text)),
		})
		return fallback
	}

	s.logger.Debug("segment.ok", "doc_id", docID, "family", family.name, "clauses", len(res.Clauses))
	return res
}

// pickFamily walks the cascade in priority order and returns the first family
// whose anchored matches satisfy the acceptance predicate.
func (s *Segmenter) pickFamily(text string, p constants.Precision) (*markerFamily, [][]int) {
	for i := range families {
		f := &families[i]
		if f.loose && p == constants.PrecisionStrict {
			continue
		}
		marks := f.re.FindAllStringSubmatchIndex(text, -1)
		if len(marks) >= acceptMin {
			return f, marks
		}
	}
	return nil, nil
}

// splitAtMarkers builds clauses whose bodies span from the end of one marker
// to the start of the next (or end of text).
func (s *Segmenter) splitAtMarkers(text string, docID uuid.UUID, f *markerFamily, marks [][]int, opts Options) Result {
	res := Result{Family: f.name}
	minLen := opts.Precision.MinBodyLen()
	ordinal := 0

	emit := func(label, marker, body string) {
		body = strings.TrimSpace(body)
		if len(body) < minLen {
			if body != "" {
				res.Discarded = append(res.Discarded, marker+body)
				res.Diagnostics = append(res.Diagnostics, Diagnostic{
					Code:    "short-clause-dropped",
					Message: fmt.Sprintf("dropped %q: body below %d bytes", marker+body, minLen),
				})
			}
			return
		}
		res.Clauses = append(res.Clauses, entity.Clause{
			Label:            label,
			Marker:           marker,
			Body:             body,
			SourceDocumentID: docID,
			Ordinal:          ordinal,
		})
		ordinal++
	}

	// Leading text before the first marker.
	if pre := strings.TrimSpace(text[:marks[0][2]]); pre != "" {
		if opts.KeepPreamble {
			emit("", "", pre)
		} else {
			res.Discarded = append(res.Discarded, pre)
		}
	}

	for i, m := range marks {
		markerStart, markerEnd := m[2], m[3]
		bodyEnd := len(text)
		if i+1 < len(marks) {
			bodyEnd = marks[i+1][2]
		}
		marker := text[markerStart:markerEnd]
		emit(f.canon(marker), marker, text[markerEnd:bodyEnd])
	}
	return res
}

// splitParagraphs is the structure-free fallback: newline-separated fragments,
// tagged with their ordinal position instead of a label.
func (s *Segmenter) splitParagraphs(text string, docID uuid.UUID, opts Options) Result {
	res := Result{}
	minLen := opts.Precision.MinBodyLen()
	ordinal := 0
	for _, frag := range strings.Split(text, "\n") {
		frag = strings.TrimSpace(strings.ReplaceAll(frag, "\f", " "))
		if frag == "" {
			continue
		}
		if len(frag) < minLen {
			res.Discarded = append(res.Discarded, frag)
			continue
		}
		res.Clauses = append(res.Clauses, entity.Clause{
			Body:             frag,
			SourceDocumentID: docID,
			Ordinal:          ordinal,
		})
		ordinal++
	}
	if len(res.Clauses) == 0 {
		res.Degraded = true
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Code:    "empty-result",
			Message: "paragraph split produced no clauses above the length threshold",
		})
	}
	return res
}

// stitchPages repairs clauses split mid-sentence by a page break: a "\f"
// marker is replaced by a newline when the following fragment opens with its
// own numbering marker, and by a plain space (merging the fragments) when it
// does not. Best effort; see the matcher for how duplicates are tolerated.
func stitchPages(text string) string {
	if !strings.Contains(text, "\f") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	rest := text
	for {
		i := strings.IndexByte(rest, '\f')
		if i < 0 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:i])
		rest = rest[i+1:]
		if opensWithMarker(rest) {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
}

// opensWithMarker reports whether text begins with a marker from any family.
func opensWithMarker(text string) bool {
	head := strings.TrimLeft(text, " \n")
	for i := range families {
		if loc := families[i].re.FindStringIndex(head); loc != nil && loc[0] == 0 {
			return true
		}
	}
	return false
}
