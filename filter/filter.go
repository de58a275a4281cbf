// Package filter compiles namespace whitelist/blacklist glob patterns
// into a cached predicate used by the dispatcher's enablement check.
package filter

import (
	"regexp"
	"strings"
	"sync"
)

// Filter is a compiled namespace predicate. A Filter is immutable
// after Compile; when the configured patterns change, the owner builds
// a new Filter, which also discards the per-namespace memo.
type Filter struct {
	whitelist []*regexp.Regexp
	blacklist []*regexp.Regexp
	memo      sync.Map // namespace -> bool
}

// Compile builds a Filter from dotted-segment glob patterns. Within a
// pattern, dots match literally and `*` matches any substring.
// Patterns that fail to compile are skipped; globs of this shape
// always compile, so this only guards pathological input.
func Compile(whitelist, blacklist []string) *Filter {
	return &Filter{
		whitelist: compileAll(whitelist),
		blacklist: compileAll(blacklist),
	}
}

func compileAll(patterns []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		if re, err := compilePattern(p); err == nil {
			res = append(res, re)
		}
	}
	return res
}

// compilePattern escapes literal dots, turns `*` into `(.*)`, and
// anchors the result. The wildcard goes between split segments, so a
// leading or trailing `*` produces an empty segment on that side and
// the wildcard still lands.
func compilePattern(p string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteByte('^')
	for i, seg := range strings.Split(p, "*") {
		if i > 0 {
			sb.WriteString("(.*)")
		}
		sb.WriteString(regexp.QuoteMeta(seg))
	}
	sb.WriteByte('$')
	return regexp.Compile(sb.String())
}

// Relevant reports whether a namespace passes the filter: it must
// match the whitelist (or the whitelist must be empty) and must not
// match the blacklist. The result is memoized per distinct namespace
// for the lifetime of this Filter.
func (f *Filter) Relevant(ns string) bool {
	if v, ok := f.memo.Load(ns); ok {
		return v.(bool)
	}
	res := f.relevant(ns)
	f.memo.Store(ns, res)
	return res
}

func (f *Filter) relevant(ns string) bool {
	if len(f.whitelist) > 0 && !matchAny(f.whitelist, ns) {
		return false
	}
	if len(f.blacklist) > 0 && matchAny(f.blacklist, ns) {
		return false
	}
	return true
}

func matchAny(res []*regexp.Regexp, ns string) bool {
	for _, re := range res {
		if re.MatchString(ns) {
			return true
		}
	}
	return false
}
