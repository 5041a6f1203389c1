// Package render turns a mood signature into stylized terminal output.
//
// Rendering is deterministic: all variation comes from the supplied
// chaos stream, and a nil document or unknown mood produces a fixed
// neutral template without consuming a single draw.
package render

import (
	"fmt"
	"strings"

	"github.com/absurdtty/ttymood/internal/chaos"
	"github.com/absurdtty/ttymood/internal/errors"
	"github.com/absurdtty/ttymood/internal/mood"
	"github.com/absurdtty/ttymood/internal/signature"
)

// Kind selects which output the renderer produces.
type Kind string

const (
	KindStatus     Kind = "status"
	KindUptime     Kind = "uptime"
	KindLs         Kind = "ls"
	KindExplain    Kind = "explain"
	KindDoctor     Kind = "doctor"
	KindPatchnotes Kind = "patchnotes"
	KindForm       Kind = "form"
)

// Kinds lists every render kind.
func Kinds() []Kind {
	return []Kind{
		KindStatus, KindUptime, KindLs, KindExplain,
		KindDoctor, KindPatchnotes, KindForm,
	}
}

// ParseKind validates a kind string.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", errors.NewInvalidRequest(
		fmt.Sprintf("unknown render kind %q (use status, uptime, ls, explain, doctor, patchnotes, or form)", s))
}

// Context carries formatting-only inputs. It never contains history
// content: everything here is either user-supplied or derived from the
// render target itself.
type Context struct {
	Path          string   // directory shown by ls
	Args          []string // command words queried by explain
	Verbose       bool
	Template      string // form template name
	ChangelogPath string // optional markdown changelog for patchnotes
	Uptime        string // preformatted system uptime
	Entries       []Entry
}

// Entry is one directory entry for the ls kind.
type Entry struct {
	Name  string
	IsDir bool
}

// view is the slice of a document the templates actually read.
type view struct {
	caseID     string
	id         mood.ID
	label      string
	confidence float64
	notes      []string
	tone       mood.Tone
	filed      string
}

// Render produces output for one kind. A nil doc or an unknown mood
// takes the neutral path; everything else dispatches per mood through
// the chaos stream.
func Render(doc *signature.Document, kind Kind, ch *chaos.Chaos, ctx Context) (string, error) {
	v, ok := viewOf(doc)

	switch kind {
	case KindStatus:
		return renderStatus(v, ok, ch), nil
	case KindUptime:
		return renderUptime(v, ok, ch, ctx), nil
	case KindLs:
		return renderLs(v, ok, ch, ctx), nil
	case KindExplain:
		return renderExplain(v, ok, ch, ctx), nil
	case KindDoctor:
		return renderDoctor(v, ok, ch, ctx), nil
	case KindPatchnotes:
		return renderPatchnotes(v, ok, ch, ctx), nil
	case KindForm:
		return renderForm(v, ok, ch, ctx), nil
	}
	return "", errors.NewInvalidRequest(fmt.Sprintf("unknown render kind %q", kind))
}

// viewOf reduces a document to the fields templates use. ok is false
// for nil documents and unknown moods; callers then render neutrally.
func viewOf(doc *signature.Document) (view, bool) {
	if doc == nil || doc.Mood.ID == mood.Unknown || !mood.Valid(doc.Mood.ID) {
		return view{tone: mood.NeutralTone}, false
	}
	return view{
		caseID:     doc.CaseID,
		id:         doc.Mood.ID,
		label:      doc.Mood.ID.Label(),
		confidence: doc.Mood.Confidence,
		notes:      doc.Notes,
		tone:       mood.ToneFor(doc.Mood.ID),
		filed:      doc.GeneratedAt.Format("2006-01-02"),
	}, true
}

// rangeInt draws an integer in [lo, hi].
func rangeInt(ch *chaos.Chaos, lo, hi int) int {
	return lo + ch.IntN(hi-lo+1)
}
