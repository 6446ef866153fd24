package report

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/katalvlaran/graphsearch/hc"
	"github.com/katalvlaran/graphsearch/parser"
)

// supported lists the catalog languages; the first one is the fallback.
var supported = []language.Tag{language.English, language.Vietnamese}

var matcher = language.NewMatcher(supported)

// messages maps a key to its English and Vietnamese text.
var messages = map[string][2]string{
	"title.dfs": {"DFS trace", "Bảng duyệt DFS"},
	"title.bnb": {"Branch and Bound trace", "Bảng nhánh và cận"},
	"title.hc":  {"Hill Climbing trace", "Bảng leo đồi"},

	"col.step":      {"Step", "Bước"},
	"col.current":   {"Current", "Đỉnh đang xét"},
	"col.stack":     {"Stack", "Ngăn xếp"},
	"col.visited":   {"Visited", "Đã thăm"},
	"col.node":      {"Node", "Đỉnh"},
	"col.g":         {"g", "g"},
	"col.h":         {"h", "h"},
	"col.neighbors": {"Neighbors", "Đỉnh kề"},
	"col.children":  {"L1", "L1"},
	"col.open":      {"L", "L"},
	"col.bound":     {"Bound", "Cận"},
	"col.status":    {"Status", "Trạng thái"},
	"col.chosen":    {"Chosen", "Chọn"},
	"col.note":      {"Note", "Ghi chú"},

	"empty":          {"(empty)", "(rỗng)"},
	"status.reached": {"goal reached", "đến đích"},
	"path.found":     {"Path from %s to %s: %s", "Đường đi từ %s đến %s: %s"},
	"path.length":    {"Length: %s nodes, %s edges", "Độ dài: %s đỉnh, %s cạnh"},
	"path.none":      {"No path found from %s to %s", "Không tìm thấy đường đi từ %s đến %s"},
	"cost.best":      {"Best cost: %s", "Chi phí tốt nhất: %s"},
	"valid":          {"%s: valid, %s nodes", "%s: hợp lệ, %s đỉnh"},

	"note.goal":     {"goal", "đích"},
	"note.dead_end": {"dead end", "ngõ cụt"},
	"note.progress": {"progress", "tiến lên"},
	"note.stuck":    {"stuck at a local optimum", "kẹt tại cực trị địa phương"},

	"code.MISSING_START":       {"Start node not specified", "Chưa khai báo đỉnh bắt đầu"},
	"code.MISSING_GOAL":        {"Goal node not specified", "Chưa khai báo đỉnh kết thúc"},
	"code.NO_NODES":            {"No node declarations found", "Không có khai báo đỉnh nào"},
	"code.START_UNDECLARED":    {"Start node %s is not declared", "Đỉnh bắt đầu %s chưa được khai báo"},
	"code.START_NOT_IN_GRAPH":  {"Start node %s is not in the graph", "Đỉnh bắt đầu %s không có trong đồ thị"},
	"code.MISSING_H_NODE":      {"Node %s has no heuristic value", "Đỉnh %s thiếu giá trị heuristic"},
	"code.NEIGHBOR_UNDECLARED": {"Neighbor %s of %s is not declared", "Đỉnh kề %s của %s chưa được khai báo"},
	"code.BAD_EDGE_TOKEN":      {"Bad edge token %s in line %q, expected NAME(WEIGHT)", "Cạnh %s sai cú pháp ở dòng %q, cần TÊN(TRỌNG_SỐ)"},
}

// codeArgs lists, per code, the context keys fed to its message in order.
var codeArgs = map[parser.Code][]string{
	parser.CodeStartUndeclared:    {parser.CtxStart},
	parser.CodeStartNotInGraph:    {parser.CtxStart},
	parser.CodeMissingHNode:       {parser.CtxNode},
	parser.CodeNeighborUndeclared: {parser.CtxNode, parser.CtxFrom},
	parser.CodeBadEdgeToken:       {parser.CtxToken, parser.CtxLine},
}

var cat = mustCatalog()

func mustCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, texts := range messages {
		for i, tag := range supported {
			if err := b.SetString(tag, key, texts[i]); err != nil {
				panic(fmt.Sprintf("report: catalog entry %q: %v", key, err))
			}
		}
	}

	return b
}

// Localizer renders catalog messages in one language.
type Localizer struct {
	tag language.Tag
	p   *message.Printer
}

// NewLocalizer matches lang (a BCP 47 tag such as "vi" or "en-US") against
// the supported languages; anything unknown falls back to English.
func NewLocalizer(lang string) *Localizer {
	tag := supported[0]
	if t, err := language.Parse(lang); err == nil {
		_, idx, _ := matcher.Match(t)
		tag = supported[idx]
	}

	return &Localizer{tag: tag, p: message.NewPrinter(tag, message.Catalog(cat))}
}

// Tag reports the matched language.
func (l *Localizer) Tag() language.Tag { return l.tag }

// T formats the message stored under key.
func (l *Localizer) T(key string, args ...any) string {
	return l.p.Sprintf(key, args...)
}

// Note renders an HC note tag; NoteNone renders as "".
func (l *Localizer) Note(n hc.Note) string {
	if n == hc.NoteNone {
		return ""
	}

	return l.T("note." + string(n))
}

// Error renders err for the end user. Weighted-dialect parse errors are
// translated from their code and context; anything else is returned as is.
func (l *Localizer) Error(err error) string {
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		return err.Error()
	}

	keys := codeArgs[pe.Code]
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = pe.Context[k]
	}

	return l.T("code."+string(pe.Code), args...)
}
