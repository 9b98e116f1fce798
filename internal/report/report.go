// Package report renders pipeline results as text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/danielpatrickdp/eres666/internal/check"
	"github.com/danielpatrickdp/eres666/internal/pipeline"
)

const rule = "--------------------------------------------------------------------------------"

// #region options
// Options selects optional sections.
type Options struct {
	Mapping bool // conceptual mapping and trinity table
	Check   *check.Result
}

// #endregion options

// #region write
// Write renders the full text report for one run.
func Write(w io.Writer, s pipeline.Scenario, res pipeline.Result, opts Options) error {
	p := &printer{w: w}

	p.line(strings.Repeat("=", 80))
	p.line("666 INTERLOCKING MATH × ERES TRIUNE FRAMEWORK")
	p.line("Integration Analysis & Cross-Validation")
	p.line(strings.Repeat("=", 80))

	if opts.Mapping {
		writeMapping(p)
	}
	writeMeasurements(p, s, res)
	writeFormulas(p, s, res)
	writeCipher(p, res)
	writeQuality(p, res)
	if opts.Mapping {
		writeTrinity(p)
	}
	if opts.Check != nil {
		writeCheck(p, *opts.Check)
	}
	return p.err
}

// WriteJSON writes the result, and the check outcome when present, as indented JSON.
func WriteJSON(w io.Writer, res pipeline.Result, chk *check.Result) error {
	payload := struct {
		Result pipeline.Result `json:"result"`
		Check  *check.Result   `json:"check,omitempty"`
	}{res, chk}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// #endregion write

// #region sections
func writeMapping(p *printer) {
	p.section("CONCEPTUAL MAPPING: 666 → ERES Trinity")
	for _, m := range mappings {
		p.f("\n%s:\n", m.Component)
		p.f("  ERES Formula: %s\n", m.Formula)
		p.f("  Role: %s\n", m.Role)
		p.f("  Function: %s\n", m.Function)
		p.f("  Physical Basis: %s\n", m.PhysicalBasis)
		p.f("  Measurement: %s\n", m.Measurement)
	}
}

func writeMeasurements(p *printer, s pipeline.Scenario, res pipeline.Result) {
	p.section("MEASURE via 666 Framework")
	r := res.Readings
	p.f("  Atomic 6 (Matter): %g kg → %.2f M units\n", s.MassKg, r[0].Value)
	p.f("  Harmonic 6 (Energy): Bio-strength %g → %.4f E units\n", s.BioSignalStrength, r[1].Value)
	p.f("  Chromatic 6 (Resonance): H=%g°, V=%g, C=%g → %.4f R units\n", s.HueDeg, s.Value, s.Chroma, r[2].Value)
}

func writeFormulas(p *printer, s pipeline.Scenario, res pipeline.Result) {
	in, out := res.Inputs, res.Formulas

	p.section("COMPUTE ERES Formulas")
	p.line("Formula 1 (C = R × P / M)")
	p.f("  C = (%g × %g) / %g\n", s.Resources, s.Purpose, s.Merit)
	p.f("  C = %.2f governance units\n", out.Cybernetics)

	p.line("Formula 2 (M × E + C = R)")
	p.f("  R = (%.2f × %.4f) + %.2f\n", in.Matter, in.Energy, out.Intervention)
	p.f("  R = %.2f resonance units\n", out.Resonance)

	p.line("Formula 3 (REAL score)")
	p.f("  REAL = (%.4f × %.2f × %.4f) / (%.2e × %g)\n", in.Energy, in.Matter, in.Chromatic, in.Time, in.Space)
	p.f("  REAL = %.2e sustainability units\n", out.Real)
}

func writeCipher(p *printer, res pipeline.Result) {
	p.section("VERIFY via 666 Cipher (Trace calculation)")
	p.f("  666 Cipher Resonance: Trace(F₆ × R₆ × I₆) = %.4f\n", res.Cipher.TraceMagnitude)
	p.f("  Modulo 216: %.4f\n", res.Cipher.Mod216)
	p.f("  Signature: %s\n", res.Signature)
}

func writeQuality(p *printer, res pipeline.Result) {
	p.section("INTEGRATION QUALITY ASSESSMENT")
	p.line("Integration Quality Scores (0-10 scale):")
	for _, c := range res.Categories {
		p.f("  %s %.1f/10 %s\n", padDots(c.Name, 35), c.Score, Bar(c.Score))
	}
	p.f("\n  OVERALL INTEGRATION RATING: %.1f/10\n", res.Quality)
}

func writeTrinity(p *printer) {
	p.section("TRINITY STRUCTURE ANALYSIS")
	row := func(r [5]string) {
		p.f("  %-12s | %-20s | %-18s | %-12s | %s\n", r[0], r[1], r[2], r[3], r[4])
	}
	row(trinityHeader)
	p.line("  " + strings.Repeat("-", 75))
	for _, r := range trinityRows {
		row(r)
	}

	p.line("\nComplete Control Loop:")
	for i, step := range controlLoop {
		p.f("  %d. %s\n", i+1, step)
	}

	p.line("\n666 Framework Numbers:")
	p.f("  Product: 6 × 6 × 6 = %d (tensor elements)\n", 6*6*6)
	p.f("  Sum: 6 + 6 + 6 = %d (trinity)\n", 6+6+6)
	p.f("  Compound: 666 = 6 × %d (trinity of unity)\n", 666/6)
}

func writeCheck(p *printer, c check.Result) {
	p.section("CROSS-VALIDATION")
	for _, m := range c.Metrics {
		mark := "✓"
		if !m.Pass {
			mark = "✗"
		}
		p.f("  %s %-24s %.6g\n", mark, m.Name, m.Value)
	}
	p.f("  → %s\n", c.Reason)
}

// #endregion sections

// #region helpers
// Bar draws a ten-cell bar with one filled cell per whole point of score.
func Bar(score float64) string {
	n := int(score)
	if n < 0 {
		n = 0
	}
	if n > 10 {
		n = 10
	}
	return strings.Repeat("█", n) + strings.Repeat("░", 10-n)
}

func padDots(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(".", n)
	}
	return s
}

// printer remembers the first write error so sections need not check it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) f(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) line(s string) { p.f("%s\n", s) }

func (p *printer) section(title string) {
	p.f("\n[%s]\n%s\n", title, rule)
}

// #endregion helpers
