// Package classify maps numeric readings to qualitative labels through
// ordered threshold tables.
package classify

import "cmp"

// Rule maps a matching input to a label.
type Rule[In, Out any] struct {
	Match func(In) bool
	Label Out
}

// Table evaluates its rules in order. The first matching rule wins;
// Fallback is returned when nothing matches.
type Table[In, Out any] struct {
	Rules    []Rule[In, Out]
	Fallback Out
}

// New builds a table from a fallback label and ordered rules.
func New[In, Out any](fallback Out, rules ...Rule[In, Out]) Table[In, Out] {
	return Table[In, Out]{Rules: rules, Fallback: fallback}
}

// Classify returns the label of the first rule matching v.
func (t Table[In, Out]) Classify(v In) Out {
	for _, r := range t.Rules {
		if r.Match(v) {
			return r.Label
		}
	}
	return t.Fallback
}

// Above matches v > threshold.
func Above[In cmp.Ordered, Out any](threshold In, label Out) Rule[In, Out] {
	return Rule[In, Out]{Match: func(v In) bool { return v > threshold }, Label: label}
}

// Below matches v < threshold.
func Below[In cmp.Ordered, Out any](threshold In, label Out) Rule[In, Out] {
	return Rule[In, Out]{Match: func(v In) bool { return v < threshold }, Label: label}
}

// AtMost matches v <= threshold.
func AtMost[In cmp.Ordered, Out any](threshold In, label Out) Rule[In, Out] {
	return Rule[In, Out]{Match: func(v In) bool { return v <= threshold }, Label: label}
}

// When wraps an arbitrary predicate.
func When[In, Out any](match func(In) bool, label Out) Rule[In, Out] {
	return Rule[In, Out]{Match: match, Label: label}
}
