package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TextOptions controls terminal rendering.
type TextOptions struct {
	// Locale is a BCP 47 tag used for number formatting.
	Locale string
	// MaxRows caps the rows printed for the results and face-count sheets.
	// Negative values are treated as 0.
	MaxRows int
}

// WriteText renders r as aligned plain-text tables.
//
// Postcondition: Returns the first write error, if any.
func WriteText(w io.Writer, r Report, opts TextOptions) error {
	tag, err := language.Parse(opts.Locale)
	if err != nil {
		return fmt.Errorf("parsing locale %q: %w", opts.Locale, err)
	}
	p := message.NewPrinter(tag)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	p.Fprintf(tw, "dice set\t%s\n", r.DiceSet)
	p.Fprintf(tw, "session\t%s\n", r.SessionID)
	p.Fprintf(tw, "rolls\t%d\n", r.Rolls)
	p.Fprintf(tw, "dice\t%d\n", r.Dice)
	p.Fprintf(tw, "jackpots\t%d (%.2f%%)\n", r.Jackpots, 100*r.JackpotRate())
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, s := range r.Sheets {
		limit := len(s.Rows)
		if s.Name == SheetResults || s.Name == SheetFaceCounts {
			limit = min(limit, max(opts.MaxRows, 0))
		}
		if err := writeSheet(w, p, s, limit); err != nil {
			return err
		}
	}
	return nil
}

func writeSheet(w io.Writer, p *message.Printer, s Sheet, limit int) error {
	if _, err := p.Fprintf(w, "\n%s (%d rows)\n", s.Name, len(s.Rows)); err != nil {
		return err
	}
	if limit == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, h := range s.Header {
		fmt.Fprintf(tw, "%s\t", h)
	}
	fmt.Fprintln(tw)
	for _, row := range s.Rows[:limit] {
		for i, cell := range row {
			// Faces print verbatim; only counts and roll numbers are localized.
			if v, ok := cell.(int); ok && !s.IsFaceColumn(i) {
				p.Fprintf(tw, "%d\t", v)
				continue
			}
			fmt.Fprintf(tw, "%v\t", cell)
		}
		fmt.Fprintln(tw)
	}
	if limit < len(s.Rows) {
		p.Fprintf(tw, "... %d more\t\n", len(s.Rows)-limit)
	}
	return tw.Flush()
}
