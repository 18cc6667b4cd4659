package classify

import (
	"regexp"
	"strings"
)

// Rule assigns Mode to any text Match accepts. Match always receives text folded by
// utils.FoldText: lower case with ASCII spaces only.
type Rule struct {
	Name  string
	Mode  Mode
	Match func(text string) bool
}

// PatternRule builds a Rule that fires when re matches anywhere in the text.
func PatternRule(name string, mode Mode, re *regexp.Regexp) Rule {
	return Rule{Name: name, Mode: mode, Match: re.MatchString}
}

var (
	replacementTrainRe = regexp.MustCompile(`(?i)\btrains?\b|\bt[1-9]\b`)
	replacementTramRe  = regexp.MustCompile(`(?i)\btram\b|\blight\s*rail\b|\bl[1-3]\b`)

	trainRe = regexp.MustCompile(`(?i)\btrains?\b|\bt[1-9]\b|\b(?:line|rail line)\b`)
	tramRe  = regexp.MustCompile(`(?i)\b(?:tram|light\s*rail)\b|\bl[1-3]\b`)
	busRe   = regexp.MustCompile(`(?i)\bbus(?:es)?\b|\broute\s*[a-z]?\d{1,4}\b`)
)

// "replacement" contains "replace", so one substring test covers both keywords.
func mentionsReplacement(s string) bool {
	return strings.Contains(s, "replace")
}

// Replacement services count against the rail mode they stand in for. The train
// side accepts a bare "rail" substring, so "rail replacement bus" is a train alert.
func replacementTrain(s string) bool {
	return mentionsReplacement(s) && (replacementTrainRe.MatchString(s) || strings.Contains(s, "rail"))
}

func replacementTram(s string) bool {
	return mentionsReplacement(s) && replacementTramRe.MatchString(s)
}

// BaseRules returns the shared ordered rule list: replacement rail, replacement tram,
// train, tram, bus. The residual bus bucket is applied by the Classifier.
func BaseRules() []Rule {
	return []Rule{
		{Name: "replacement_train", Mode: Train, Match: replacementTrain},
		{Name: "replacement_tram", Mode: Tram, Match: replacementTram},
		PatternRule("train", Train, trainRe),
		PatternRule("tram", Tram, tramRe),
		PatternRule("bus", Bus, busRe),
	}
}

// cityRules holds the extra rules per city tag. SYD shares the base rules
// unchanged; the entry exists so the city is recognised explicitly.
var cityRules = map[string][]Rule{
	"MEL": nil,
	"SYD": nil,
	"SEQ": nil,
}
