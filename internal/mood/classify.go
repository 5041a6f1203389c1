package mood

import (
	"math"

	"github.com/absurdtty/ttymood/internal/signal"
)

// activationThreshold is the minimum raw score a rule must reach before
// its mood can win; below it the classification is Unknown.
const activationThreshold = 0.3

// minEvidence marks a rule input as contributing when its signal scores
// at least this much. Used only for tie-breaking.
const minEvidence = 0.3

// rule couples a mood with its scoring function. inputs lists every
// signal id the function reads so ties can be broken by evidence count.
type rule struct {
	id     ID
	inputs []string
	score  func(signal.Set) float64
}

// rules holds one entry per classifiable mood, in enumeration order.
// The order matters: it is the final tie-break.
var rules = []rule{
	{
		id: FeralProductivity,
		inputs: []string{
			"cadence_high", "command_diversity_high", "late_night_orbit",
			"burst_pattern", "typo_rate_high",
		},
		score: func(s signal.Set) float64 {
			base := s.Score("cadence_high")*0.35 +
				s.Score("command_diversity_high")*0.25 +
				s.Score("late_night_orbit")*0.2 +
				s.Score("burst_pattern")*0.2
			// Feral but not sloppy.
			return max0(base - s.Score("typo_rate_high")*0.3)
		},
	},
	{
		id: Exhausted,
		inputs: []string{
			"cadence_low", "typo_rate_high", "typo_rate_medium",
			"repeat_commands", "late_night_orbit",
		},
		score: func(s signal.Set) float64 {
			typo := s.Score("typo_rate_high")*0.8 + s.Score("typo_rate_medium")*0.4
			return s.Score("cadence_low")*0.3 +
				typo*0.3 +
				s.Score("repeat_commands")*0.2 +
				s.Score("late_night_orbit")*0.2
		},
	},
	{
		id: Methodical,
		inputs: []string{
			"steady_rhythm", "typo_rate_low", "build_cycle", "git_heavy",
			"burst_pattern", "context_switching",
		},
		score: func(s signal.Set) float64 {
			workflow := (s.Score("build_cycle") + s.Score("git_heavy")) * 0.5
			chaos := s.Score("burst_pattern")*0.2 + s.Score("context_switching")*0.2
			return max0(s.Score("steady_rhythm")*0.4 +
				s.Score("typo_rate_low")*0.2 +
				workflow*0.2 - chaos)
		},
	},
	{
		id: ChaoticNeutral,
		inputs: []string{
			"command_diversity_high", "burst_pattern", "context_switching",
			"time_spread", "steady_rhythm",
		},
		score: func(s signal.Set) float64 {
			base := s.Score("command_diversity_high")*0.3 +
				s.Score("burst_pattern")*0.25 +
				s.Score("context_switching")*0.25 +
				s.Score("time_spread")*0.2
			return max0(base - s.Score("steady_rhythm")*0.3)
		},
	},
	{
		id: BureaucraticZen,
		inputs: []string{
			"steady_rhythm", "git_heavy", "typo_rate_low", "weekday_bound",
			"late_night_orbit",
		},
		score: func(s signal.Set) float64 {
			base := s.Score("steady_rhythm")*0.3 +
				s.Score("git_heavy")*0.3 +
				s.Score("typo_rate_low")*0.2 +
				s.Score("weekday_bound")*0.2
			return max0(base - s.Score("late_night_orbit")*0.2)
		},
	},
	{
		id: AmbientDrift,
		inputs: []string{
			"command_diversity_low", "cadence_low", "status_check_loop",
		},
		score: func(s signal.Set) float64 {
			return s.Score("command_diversity_low")*0.35 +
				s.Score("cadence_low")*0.35 +
				s.Score("status_check_loop")*0.3
		},
	},
	{
		id: RecursiveDoubt,
		inputs: []string{
			"status_check_loop", "repeat_commands", "correction_pattern",
			"git_heavy",
		},
		score: func(s signal.Set) float64 {
			statusLoop := s.Score("status_check_loop")
			gitHeavy := s.Score("git_heavy")
			base := statusLoop*0.35 +
				s.Score("repeat_commands")*0.25 +
				s.Score("correction_pattern")*0.2
			// git status spam is the canonical doubt loop.
			if statusLoop > 0.5 && gitHeavy > 0.5 {
				base += 0.2
			}
			return math.Min(base+gitHeavy*0.1, 1)
		},
	},
	{
		id: EmergencyMode,
		inputs: []string{
			"burst_pattern", "typo_rate_high", "correction_pattern",
			"cadence_high",
		},
		score: func(s signal.Set) float64 {
			burst := s.Score("burst_pattern")
			typo := s.Score("typo_rate_high")
			corrections := s.Score("correction_pattern")
			cadence := s.Score("cadence_high")

			indicators := 0
			if burst > 0.3 {
				indicators++
			}
			if typo > 0.3 {
				indicators++
			}
			if corrections > 0.2 {
				indicators++
			}
			if cadence > 0.5 {
				indicators++
			}
			// One frantic signal alone is not an emergency.
			if indicators < 2 {
				return 0
			}
			return burst*0.3 + typo*0.3 + corrections*0.2 + cadence*0.2
		},
	},
}

// Classify maps a signal set to exactly one mood. Always total: when no
// rule reaches the activation threshold the result is Unknown carrying
// the best raw score seen, so a near-miss stays distinguishable from
// true silence.
func Classify(signals signal.Set) Result {
	best := rules[0]
	bestScore := -1.0
	bestWeak := 0

	for _, r := range rules {
		score := r.score(signals)
		weak := weakInputs(r, signals)

		better := score > bestScore ||
			(score == bestScore && weak < bestWeak)
		if better {
			best, bestScore, bestWeak = r, score, weak
		}
	}

	if bestScore < activationThreshold {
		raw := math.Max(bestScore, 0)
		return Result{
			ID:         Unknown,
			Confidence: raw,
			Notes:      []string{"Insufficient signal strength for classification"},
		}
	}

	result := Result{ID: best.id, Confidence: saturate(bestScore)}
	for _, sig := range signals.Strong() {
		if sig.Note != "" {
			result.Notes = append(result.Notes, sig.Note)
		}
	}
	return result
}

// weakInputs counts the rule's inputs that score below the evidence
// threshold. Fewer weak inputs means the rule's score rests on more
// actual observations.
func weakInputs(r rule, signals signal.Set) int {
	weak := 0
	for _, id := range r.inputs {
		if signals.Score(id) < minEvidence {
			weak++
		}
	}
	return weak
}

// saturate maps a raw rule score onto [0, 1). Raw scores can exceed 1
// when bonuses stack; the curve compresses them instead of clipping.
func saturate(raw float64) float64 {
	return 1 - math.Exp(-2*raw)
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
