package mahjong

import "fmt"

type Outcome int

const (
	OutcomeInvalid Outcome = iota // 张数不对，未进入判定
	OutcomeNoWin                  // 14 张但无法拆解
	OutcomeWin                    // 和牌（包括鸡胡）
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeNoWin:
		return "no_win"
	case OutcomeWin:
		return "win"
	default:
		return "unknown"
	}
}

const (
	ReasonWrongTileCount = "please select 14 tiles"
	ReasonNoWin          = "not a winning hand"
)

// EvaluationResult 一次评估的结果，构造后不再修改
type EvaluationResult struct {
	Outcome       Outcome
	Reason        string
	HandType      HandType
	Decomposition Decomposition
	Score         ScoreBreakdown
}

func (r EvaluationResult) Total() int { return r.Score.Total() }

func (r EvaluationResult) IsWin() bool { return r.Outcome == OutcomeWin }

// Message 结算界面上的提示语
func (r EvaluationResult) Message() string {
	switch r.Outcome {
	case OutcomeInvalid:
		return "Please select 14 tiles"
	case OutcomeNoWin:
		return "Oh no! You don't have a winning combination"
	}
	pts := r.HandType.Points()
	unit := "Points"
	if pts == 1 {
		unit = "Point"
	}
	return fmt.Sprintf("You get %d %s for %s", pts, unit, r.HandType)
}

// Evaluate 判定牌型并计分，纯函数，可并发调用
func Evaluate(hand Hand, ctx EvaluationContext) EvaluationResult {
	if hand.Len() != HandSize {
		return EvaluationResult{Outcome: OutcomeInvalid, Reason: ReasonWrongTileCount}
	}

	counts := hand.Counts()
	ht, d := Classify(counts, ctx.Concealed)
	if !ht.IsWin() {
		return EvaluationResult{Outcome: OutcomeNoWin, Reason: ReasonNoWin}
	}

	return EvaluationResult{
		Outcome:       OutcomeWin,
		HandType:      ht,
		Decomposition: d,
		Score:         CalculateScore(ht, counts, ctx),
	}
}

// Scorer 香港麻将计分引擎，无状态
type Scorer struct{}

func NewScorer() Scorer { return Scorer{} }

func (Scorer) Name() string { return "hongkong" }

func (Scorer) Evaluate(hand Hand, ctx EvaluationContext) EvaluationResult {
	return Evaluate(hand, ctx)
}
