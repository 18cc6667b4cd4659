// Package classify assigns exactly one transport mode (train, tram, bus) to the free
// text of a transit alert.
//
// Classification is an ordered list of rules evaluated against the folded text;
// the first rule that matches wins and text no rule matches falls into the bus
// bucket, so every alert receives a label:
//
//	c := classify.ForCity("SYD")
//	mode := c.Classify("Rail replacement bus service between Central and Strathfield")
//	// mode == classify.Train
//
// City variants are the base rules plus an optional extra ruleset appended after
// them, never a separate copy of the patterns.
package classify

import (
	"strings"

	"github.com/theoremus-urban-solutions/alert-runs/utils"
)

// ResidualRule names the fallback bucket reported by Explain.
const ResidualRule = "residual"

// Classifier evaluates an ordered rule list with a residual bus bucket.
type Classifier struct {
	rules []Rule
}

// NewClassifier returns a classifier running the base rules followed by extra.
func NewClassifier(extra ...Rule) *Classifier {
	rules := BaseRules()
	rules = append(rules, extra...)
	return &Classifier{rules: rules}
}

// ForCity returns the classifier for a city tag. Unknown tags get the base rules.
func ForCity(tag string) *Classifier {
	return NewClassifier(cityRules[strings.ToUpper(strings.TrimSpace(tag))]...)
}

// Classify returns the mode for text. It never fails; empty text is a bus alert.
func (c *Classifier) Classify(text string) Mode {
	m, _ := c.Explain(text)
	return m
}

// Explain returns the mode for text together with the name of the rule that
// assigned it (ResidualRule when nothing matched).
func (c *Classifier) Explain(text string) (Mode, string) {
	s := utils.FoldText(text)
	for _, r := range c.rules {
		if r.Match(s) {
			return r.Mode, r.Name
		}
	}
	return Bus, ResidualRule
}

// Rules returns a copy of the classifier's ordered rules.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// ClassifyAll tallies the mode of every text.
func (c *Classifier) ClassifyAll(texts []string) Counts {
	var counts Counts
	for _, t := range texts {
		counts.Add(c.Classify(t))
	}
	return counts
}

var defaultClassifier = NewClassifier()

// Classify runs the base rules against text.
func Classify(text string) Mode {
	return defaultClassifier.Classify(text)
}
