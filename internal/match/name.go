package match

import (
	"idmatch/pkg/domain"
	"slices"
	"strings"
	"unicode/utf8"
)

// nameRule pairs a rule tag with its predicate over normalized token
// sequences.
type nameRule struct {
	tag   domain.NameRule
	match func(ref, ext []string) bool
}

// nameRules is the ordered comparison ladder applied by MatchNameRule,
// strictest rule first. The first rule to accept wins, so the reported tag
// is always the strongest applicable one.
var nameRules = []nameRule{ //nolint: gochecknoglobals
	{domain.NameRuleExact, func(ref, ext []string) bool { return slices.Equal(ref, ext) }},
	{domain.NameRuleAbbreviation, matchAbbreviated},
	{domain.NameRuleMiddleElision, matchWithoutMiddle},
	{domain.NameRuleSingleToken, matchSingleToken},
	{domain.NameRuleReordered, matchReordered},
	{domain.NameRuleSubset, matchSubset},
}

// MatchNameRule reports whether two personal names denote the same person
// and, when they do, which rule accepted them. Both names are normalized and
// split into whitespace-separated tokens before the rules run in order.
// An empty input never matches.
func MatchNameRule(refName, extName string) (domain.NameRule, bool) {
	if refName == "" || extName == "" {
		return "", false
	}

	ref := strings.Fields(Normalize(refName))
	ext := strings.Fields(Normalize(extName))
	for _, rule := range nameRules {
		if rule.match(ref, ext) {
			return rule.tag, true
		}
	}

	return "", false
}

// MatchName reports whether two personal names denote the same person under
// any of the name rules.
func MatchName(refName, extName string) bool {
	_, ok := MatchNameRule(refName, extName)

	return ok
}

// matchAbbreviated accepts sequences of equal length where every position
// either matches exactly or one side is a one-letter initial of the other,
// so "r kumar" matches "ravi kumar".
func matchAbbreviated(ref, ext []string) bool {
	if len(ref) != len(ext) {
		return false
	}
	for i := range ref {
		if ref[i] == ext[i] {
			continue
		}
		if !abbreviates(ref[i], ext[i]) && !abbreviates(ext[i], ref[i]) {
			return false
		}
	}

	return true
}

// abbreviates reports whether short is a single rune and a prefix of long.
func abbreviates(short, long string) bool {
	return utf8.RuneCountInString(short) == 1 && strings.HasPrefix(long, short)
}

// matchWithoutMiddle accepts a name of more than two tokens against a
// shorter form that kept the first and last ones, so "ravi kumar sharma"
// matches "ravi sharma".
func matchWithoutMiddle(ref, ext []string) bool {
	elides := func(long, short []string) bool {
		return len(long) > 2 && len(short) >= 2 &&
			long[0] == short[0] && long[len(long)-1] == short[len(short)-1]
	}

	return elides(ref, ext) || elides(ext, ref)
}

// matchSingleToken accepts a one-token name that appears anywhere among the
// other name's tokens, so "kumar" matches "ravi kumar sharma".
func matchSingleToken(ref, ext []string) bool {
	if len(ref) == 1 && slices.Contains(ext, ref[0]) {
		return true
	}

	return len(ext) == 1 && slices.Contains(ref, ext[0])
}

// matchReordered accepts the same tokens in any order, so "kumar ravi"
// matches "ravi kumar". Duplicate tokens must appear the same number of
// times on both sides.
func matchReordered(ref, ext []string) bool {
	if len(ref) != len(ext) {
		return false
	}
	a := slices.Clone(ref)
	b := slices.Clone(ext)
	slices.Sort(a)
	slices.Sort(b)

	return slices.Equal(a, b)
}

// matchSubset accepts a name whose every token appears somewhere in the
// other name, in either direction, so "ravi kumar" matches
// "shri ravi kumar sharma".
func matchSubset(ref, ext []string) bool {
	within := func(sub, super []string) bool {
		for _, tok := range sub {
			if !slices.Contains(super, tok) {
				return false
			}
		}

		return true
	}

	return within(ref, ext) || within(ext, ref)
}
