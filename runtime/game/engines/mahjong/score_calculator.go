package mahjong

import "fmt"

// ScoreBreakdown 各项得分，每次评估重新构造
type ScoreBreakdown struct {
	Base               int // 牌型分
	DragonMelds        int // 箭刻
	SeatWindMeld       int // 门风刻
	PrevailingWindMeld int // 场风刻
	BonusTiles         int // 花牌
	SelfDraw           int // 自摸
	Concealed          int // 门清
}

func (b ScoreBreakdown) Total() int {
	return b.Base + b.DragonMelds + b.SeatWindMeld + b.PrevailingWindMeld +
		b.BonusTiles + b.SelfDraw + b.Concealed
}

type ScoreLine struct {
	Label  string
	Points int
}

// Lines 结算界面逐行展示的分项，最后一行为合计
func (b ScoreBreakdown) Lines() []ScoreLine {
	return []ScoreLine{
		{Label: "Hand points", Points: b.Base},
		{Label: "Flower points", Points: b.BonusTiles},
		{Label: "Dragon points", Points: b.DragonMelds},
		{Label: "Seat wind points", Points: b.SeatWindMeld},
		{Label: "Prevailing wind points", Points: b.PrevailingWindMeld},
		{Label: "Self drawn points", Points: b.SelfDraw},
		{Label: "Concealed points", Points: b.Concealed},
		{Label: "Total", Points: b.Total()},
	}
}

func (b ScoreBreakdown) String() string {
	return fmt.Sprintf("base=%d dragons=%d seat=%d prevailing=%d bonus=%d self=%d concealed=%d total=%d",
		b.Base, b.DragonMelds, b.SeatWindMeld, b.PrevailingWindMeld, b.BonusTiles, b.SelfDraw, b.Concealed, b.Total())
}

// CalculateScore 牌型分加上各项附加分；未和牌时全部为 0
func CalculateScore(ht HandType, h Hand34, ctx EvaluationContext) ScoreBreakdown {
	if !ht.IsWin() {
		return ScoreBreakdown{}
	}

	b := ScoreBreakdown{Base: ht.Points()}

	// 大三元/小三元的牌型分已包含箭刻
	if !ht.PricesDragons() {
		for _, tt := range dragonTiles {
			if hasMeldOf(h, tt) {
				b.DragonMelds++
			}
		}
	}

	// 门风与场风相互独立，同一副风刻可以同时计分
	if ctx.SeatWind.Valid() && hasMeldOf(h, ctx.SeatWind.Tile().Type) {
		b.SeatWindMeld = 1
	}
	if ctx.PrevailingWind.Valid() && hasMeldOf(h, ctx.PrevailingWind.Tile().Type) {
		b.PrevailingWindMeld = 1
	}

	b.BonusTiles = ctx.BonusCount()

	if ctx.SelfDrawn {
		b.SelfDraw = 1
	}
	if ctx.Concealed && !ht.RequiresConcealed() {
		b.Concealed = 1
	}
	return b
}
