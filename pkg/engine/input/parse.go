package input

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"starship/pkg/engine/errs"
)

// ParseContext lists the names a typed command may refer to.
type ParseContext struct {
	Systems []string
	Doors   []string
}

type targetKind int

const (
	targetNone targetKind = iota
	targetSystem
	targetDoor
)

type commandDef struct {
	canonical string
	aliases   []string
	action    Action
	target    targetKind
}

var commands = []commandDef{
	{canonical: "door", aliases: []string{"toggle", "open", "close"}, action: ActionToggleDoor, target: targetDoor},
	{canonical: "power", aliases: []string{"add", "up"}, action: ActionAddPower, target: targetSystem},
	{canonical: "depower", aliases: []string{"remove", "down", "cut"}, action: ActionRemovePower, target: targetSystem},
	{canonical: "pause", aliases: []string{"resume"}, action: ActionPause},
	{canonical: "help", action: ActionHelp},
	{canonical: "quit", aliases: []string{"exit"}, action: ActionQuit},
}

// Parse turns a typed console line such as "power shields" or "door 1_3_2_3"
// into an intent. Verbs and system names tolerate small typos; door keys must
// match exactly. An empty line yields ActionNone.
func Parse(ctx ParseContext, line string) (Intent, error) {
	tokens := strings.Fields(strings.ToLower(line))
	if len(tokens) == 0 {
		return Intent{Action: ActionNone}, nil
	}

	def, err := matchCommand(tokens[0])
	if err != nil {
		return Intent{}, err
	}
	intent := Intent{Action: def.action}
	args := tokens[1:]

	switch def.target {
	case targetDoor:
		if len(args) == 0 {
			return Intent{}, errs.InvalidOperationf("%s needs a door", def.canonical)
		}
		for _, key := range ctx.Doors {
			if strings.EqualFold(key, args[0]) {
				intent.Target = key
				return intent, nil
			}
		}
		return Intent{}, errs.InvalidOperationf("no door %q", args[0])
	case targetSystem:
		if len(args) == 0 {
			return intent, nil
		}
		name, err := matchName(strings.Join(args, ""), ctx.Systems)
		if err != nil {
			return Intent{}, err
		}
		intent.Target = name
	}
	return intent, nil
}

func matchCommand(token string) (commandDef, error) {
	var phrases []string
	byPhrase := make(map[string]commandDef)
	for _, c := range commands {
		for _, p := range append([]string{c.canonical}, c.aliases...) {
			phrases = append(phrases, p)
			byPhrase[p] = c
		}
	}
	best, err := bestMatch(token, phrases)
	if err != nil {
		return commandDef{}, err
	}
	return byPhrase[best], nil
}

// matchName resolves a system name case-insensitively and returns it as listed.
func matchName(token string, names []string) (string, error) {
	lower := make([]string, len(names))
	byLower := make(map[string]string, len(names))
	for i, n := range names {
		lower[i] = strings.ToLower(n)
		byLower[lower[i]] = n
	}
	best, err := bestMatch(token, lower)
	if err != nil {
		return "", err
	}
	return byLower[best], nil
}

type scored struct {
	val   string
	score float64
}

// bestMatch scores candidates the same way for verbs and names: exact 1.0,
// prefix 0.9, otherwise a levenshtein distance within a length dependent limit.
// Two candidates scoring within 0.05 of each other are ambiguous.
func bestMatch(token string, candidates []string) (string, error) {
	var results []scored
	for _, cand := range candidates {
		var score float64
		switch {
		case token == cand:
			score = 1.0
		case len(token) >= 2 && strings.HasPrefix(cand, token):
			score = 0.9
		default:
			if len(token) < 3 {
				continue
			}
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			score = 0.72 - 0.08*float64(dist)
		}
		results = append(results, scored{val: cand, score: score})
	}
	if len(results) == 0 {
		return "", errs.InvalidOperationf("unknown word %q", token)
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	if len(results) > 1 && best.score < 1 && best.score-results[1].score < 0.05 {
		return "", errs.InvalidOperationf("%q is ambiguous: %s or %s", token, best.val, results[1].val)
	}
	return best.val, nil
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
