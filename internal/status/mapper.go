package status

import (
	"regexp"
	"strings"
)

// keyword pairs a normalized column-name fragment with its status.
// Order matters: the first matching entry wins in both the word and substring passes.
type keyword struct {
	text   string
	status Status
	word   *regexp.Regexp
}

var keywords = compileKeywords([]struct {
	text   string
	status Status
}{
	{"to do", ToDo},
	{"todo", ToDo},
	{"to-do", ToDo},
	{"backlog", ToDo},
	{"open", ToDo},
	{"new", ToDo},
	{"pending", ToDo},
	{"planned", ToDo},

	{"in progress", InProgress},
	{"in-progress", InProgress},
	{"inprogress", InProgress},
	{"doing", InProgress},
	{"wip", InProgress},
	{"active", InProgress},
	{"started", InProgress},
	{"working", InProgress},
	{"development", InProgress},

	{"in review", InReview},
	{"review", InReview},
	{"reviewing", InReview},
	{"testing", InReview},
	{"test", InReview},
	{"qa", InReview},
	{"verification", InReview},
	{"approval", InReview},

	{"blocked", Blocked},
	{"on hold", Blocked},
	{"hold", Blocked},
	{"waiting", Blocked},
	{"stuck", Blocked},
	{"paused", Blocked},

	{"done", Done},
	{"complete", Done},
	{"completed", Done},
	{"finished", Done},
	{"closed", Done},
	{"deployed", Done},
	{"released", Done},
	{"shipped", Done},
	{"resolved", Done},
})

// fallbackRules run last, in this fixed priority order
var fallbackRules = []struct {
	fragments []string
	status    Status
}{
	{[]string{"do", "start", "plan"}, ToDo},
	{[]string{"progress", "work", "dev"}, InProgress},
	{[]string{"done", "complete", "finish"}, Done},
	{[]string{"review", "test", "qa"}, InReview},
	{[]string{"block", "hold", "wait"}, Blocked},
}

func compileKeywords(pairs []struct {
	text   string
	status Status
},
) []keyword {
	out := make([]keyword, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, keyword{
			text:   p.text,
			status: p.status,
			word:   regexp.MustCompile(`\b` + regexp.QuoteMeta(p.text) + `\b`),
		})
	}
	return out
}

// FromColumnName maps a user-entered column label to a Status.
//
// Matching runs in passes: exact keyword, whole-word keyword, keyword substring,
// then a coarse fragment heuristic. Anything unmatched, including the empty
// string, is ToDo. The word pass always runs before the substring pass.
func FromColumnName(name string) Status {
	n := normalize(name)
	if n == "" {
		return ToDo
	}

	for _, kw := range keywords {
		if n == kw.text {
			return kw.status
		}
	}

	for _, kw := range keywords {
		if kw.word.MatchString(n) {
			return kw.status
		}
	}

	for _, kw := range keywords {
		if strings.Contains(n, kw.text) {
			return kw.status
		}
	}

	for _, rule := range fallbackRules {
		for _, fragment := range rule.fragments {
			if strings.Contains(n, fragment) {
				return rule.status
			}
		}
	}

	return ToDo
}
