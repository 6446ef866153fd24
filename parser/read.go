package parser

import (
	"fmt"
	"io"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Decode reads all of r as text. A UTF-8 or UTF-16 byte-order mark selects
// the encoding (UTF-8 without BOM otherwise), the mark itself is dropped, and
// the result is normalized to NFC so that decomposed Vietnamese keywords match
// the grammar.
func Decode(r io.Reader) (string, error) {
	t := transform.Chain(xunicode.BOMOverride(xunicode.UTF8.NewDecoder()), norm.NFC)
	b, err := io.ReadAll(transform.NewReader(r, t))
	if err != nil {
		return "", fmt.Errorf("parser: read input: %w", err)
	}

	return string(b), nil
}

// ReadUnweighted decodes r and parses it with ParseUnweighted.
// The only possible error is an I/O error from r.
func ReadUnweighted(r io.Reader) (Problem, error) {
	text, err := Decode(r)
	if err != nil {
		return Problem{}, err
	}

	return ParseUnweighted(text), nil
}

// ReadHeuristic decodes r and parses it with ParseHeuristic.
func ReadHeuristic(r io.Reader, d Dialect) (HeuristicProblem, error) {
	text, err := Decode(r)
	if err != nil {
		return HeuristicProblem{}, err
	}

	return ParseHeuristic(text, d)
}
