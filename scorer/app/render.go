package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gomahjong/runtime/game/engines/mahjong"
)

// ResultView JSON 输出的结构
type ResultView struct {
	ID            string     `json:"id"`
	Tiles         []string   `json:"tiles"`
	Outcome       string     `json:"outcome"`
	Reason        string     `json:"reason,omitempty"`
	HandType      string     `json:"handType,omitempty"`
	Message       string     `json:"message"`
	Decomposition string     `json:"decomposition,omitempty"`
	Score         *ScoreView `json:"score,omitempty"`
	Cached        bool       `json:"cached,omitempty"`
}

type ScoreView struct {
	Base               int `json:"base"`
	DragonMelds        int `json:"dragonMelds"`
	SeatWindMeld       int `json:"seatWindMeld"`
	PrevailingWindMeld int `json:"prevailingWindMeld"`
	BonusTiles         int `json:"bonusTiles"`
	SelfDraw           int `json:"selfDraw"`
	Concealed          int `json:"concealed"`
	Total              int `json:"total"`
}

func NewResultView(r Result) ResultView {
	v := ResultView{
		ID:      r.ID,
		Tiles:   tileNames(r.Hand.Tiles()),
		Outcome: r.Result.Outcome.String(),
		Reason:  r.Result.Reason,
		Message: r.Result.Message(),
		Cached:  r.Cached,
	}
	if r.Result.IsWin() {
		b := r.Result.Score
		v.HandType = r.Result.HandType.String()
		v.Decomposition = describe(r.Result.Decomposition)
		v.Score = &ScoreView{
			Base:               b.Base,
			DragonMelds:        b.DragonMelds,
			SeatWindMeld:       b.SeatWindMeld,
			PrevailingWindMeld: b.PrevailingWindMeld,
			BonusTiles:         b.BonusTiles,
			SelfDraw:           b.SelfDraw,
			Concealed:          b.Concealed,
			Total:              b.Total(),
		}
	}
	return v
}

func RenderJSON(w io.Writer, results []Result) error {
	views := make([]ResultView, 0, len(results))
	for _, r := range results {
		views = append(views, NewResultView(r))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(views)
}

// RenderText 结算界面的逐行分项
func RenderText(w io.Writer, results []Result) error {
	re := lipgloss.NewRenderer(w)
	header := re.NewStyle().Bold(true)
	label := re.NewStyle().Width(24).PaddingLeft(2)
	points := re.NewStyle().Width(4).Align(lipgloss.Right)
	faint := re.NewStyle().Faint(true).PaddingLeft(2)

	var sb strings.Builder
	for i, r := range results {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(header.Render(fmt.Sprintf("[%s] %s", r.ID, r.Result.Message())))
		sb.WriteByte('\n')
		if !r.Result.IsWin() {
			continue
		}
		for _, line := range r.Result.Score.Lines() {
			sb.WriteString(label.Render(line.Label))
			sb.WriteString(points.Render(fmt.Sprint(line.Points)))
			sb.WriteByte('\n')
		}
		if d := describe(r.Result.Decomposition); d != "" {
			sb.WriteString(faint.Render(d))
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func describe(d mahjong.Decomposition) string {
	switch d.Kind {
	case mahjong.DecompositionSpecial:
		return "special shape"
	case mahjong.DecompositionNone:
		return ""
	default:
		return d.String()
	}
}

func tileNames(ts []mahjong.Tile) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Name())
	}
	return out
}
