package service

import (
	"strings"
	"time"

	"github.com/kentcanonigo/slack-search-generator/internal/modules/query/domain"
	"github.com/samber/lo"
)

// fileTypeTags maps file type filters to Slack's has: operator values
var fileTypeTags = map[domain.FileType]string{
	domain.FileTypePdf:         "pdf",
	domain.FileTypeImage:       "image",
	domain.FileTypeSnippet:     "snippet",
	domain.FileTypeGoogleDocs:  "gdoc",
	domain.FileTypeSpreadsheet: "spreadsheet",
}

// Build renders a Slack search query from the selection. Clauses appear in
// a fixed order (channel, user, file type, date, keywords) and anything
// unset or unrecognised is left out.
func Build(sel domain.Selection) string {
	clauses := []string{
		channelClause(sel.Channel),
		userClause(sel.User),
		fileTypeClause(sel.FileType),
	}
	clauses = append(clauses, dateClauses(sel)...)
	clauses = append(clauses, keywordClause(sel.Keywords, sel.ExactPhrase))

	return strings.Join(lo.Compact(clauses), " ")
}

// StripPrefix trims whitespace and a single leading marker such as # or @.
func StripPrefix(s string, marker string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, marker)
	return strings.TrimSpace(s)
}

func channelClause(channel string) string {
	channel = StripPrefix(channel, "#")
	if channel == "" {
		return ""
	}
	return "in:#" + channel
}

func userClause(user string) string {
	user = StripPrefix(user, "@")
	if user == "" {
		return ""
	}
	return "from:@" + user
}

func fileTypeClause(fileType domain.FileType) string {
	tag, ok := fileTypeTags[fileType]
	if !ok {
		return ""
	}
	return "has:" + tag
}

func dateClauses(sel domain.Selection) []string {
	switch sel.DateMode {
	case domain.DateModeDuring:
		if sel.SingleDate.IsZero() {
			return nil
		}
		// during: has day granularity at best
		format := sel.DateFormat
		if format == domain.DateFormatDateTime {
			format = domain.DateFormatFullDate
		}
		return []string{"during:" + formatDate(sel.SingleDate, format)}
	case domain.DateModeRange:
		var clauses []string
		if !sel.AfterDate.IsZero() {
			clauses = append(clauses, "after:"+formatDate(sel.AfterDate, sel.DateFormat))
		}
		if !sel.BeforeDate.IsZero() {
			clauses = append(clauses, "before:"+formatDate(sel.BeforeDate, sel.DateFormat))
		}
		return clauses
	default:
		return nil
	}
}

func formatDate(t time.Time, format domain.DateFormat) string {
	layout, ok := domain.Layout(format)
	if !ok {
		layout, _ = domain.Layout(domain.DateFormatFullDate)
	}
	return t.Format(layout)
}

func keywordClause(keywords string, exact bool) string {
	keywords = strings.TrimSpace(keywords)
	if !exact || !strings.ContainsAny(keywords, " \t") || strings.HasPrefix(keywords, `"`) {
		return keywords
	}
	return `"` + keywords + `"`
}
