// Package parser turns the two text dialects into core graph models.
//
// What:
//
//   - Unweighted dialect (DFS): adjacency lines "A: B, C" plus Start/Goal
//     lines in English or Vietnamese. ParseUnweighted never fails; Validate
//     reports problems as a soft ValidationResult with a message.
//   - Heuristic dialect (BNB and HC): node declarations "A: B(1), C(4) | h=3"
//     (weighted, BNB) or "A: B, C | h=3" (bare IDs, HC) plus four start and
//     four goal forms. ParseHeuristic validates while parsing and fails with
//     a coded *ParseError.
//
// Matching:
//
//	Each dialect keeps an ordered table of labeled patterns. A line is
//	tried against the table top to bottom and the first match wins, so the
//	precedence between, say, a node declaration and a start form is the
//	table order. Classify exposes the label a line matched, which is handy
//	when a file does not parse the way its author expected.
//
// Error model:
//
//	The two dialects report failures differently on purpose: the unweighted
//	dialect returns a validity flag plus message, the heuristic dialect
//	returns an error with a stable Code and a Context map. ValidationResult.Err
//	bridges the first into an error for callers wanting a single channel.
//
//	  Code                 Context         Dialect
//	  MISSING_START        –               BNB, HC
//	  MISSING_GOAL         –               BNB, HC
//	  NO_NODES             –               HC
//	  START_UNDECLARED     start           BNB
//	  START_NOT_IN_GRAPH   start           HC
//	  MISSING_H_NODE       node            BNB, HC
//	  NEIGHBOR_UNDECLARED  from, node      HC
//	  BAD_EDGE_TOKEN       token, line     BNB
//
// Input text:
//
//	The string entry points normalize to Unicode NFC and drop a leading
//	byte-order mark. ReadUnweighted/ReadHeuristic additionally detect UTF-16
//	input from its byte-order mark.
//
// Canonical form:
//
//	FormatUnweighted and FormatHeuristic render a parsed problem back into
//	grammar text; parsing that text again yields an equal model.
package parser
