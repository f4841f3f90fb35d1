package app

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"gomahjong/common/config"
	"gomahjong/runtime/dto"
	"gomahjong/runtime/game/engines/mahjong"
)

// Request 一次评估请求
type Request struct {
	ID   string
	Hand mahjong.Hand
	Ctx  mahjong.EvaluationContext
}

// DecodeRequests 支持三种输入：单个对象、对象数组、每行一个对象（JSON lines）
//
//	{"id": "r1", "tiles": ["dot_1", ...], "seatWind": "east", "prevailingWind": "south",
//	 "bonusTiles": ["plum_flower"], "selfDrawn": true, "concealed": false}
//
// 缺省的门风/场风取 defaults，缺省的 id 生成 uuid
func DecodeRequests(data []byte, defaults config.DefaultsConf) ([]Request, error) {
	raw := string(bytes.TrimSpace(data))
	if raw == "" {
		return nil, dto.ErrEmptyInput
	}

	var items []gjson.Result
	switch {
	case raw[0] == '[':
		if !gjson.Valid(raw) {
			return nil, fmt.Errorf("%w: malformed json array", dto.ErrInvalidRequest)
		}
		gjson.Parse(raw).ForEach(func(_, v gjson.Result) bool {
			items = append(items, v)
			return true
		})
	case gjson.Valid(raw):
		items = append(items, gjson.Parse(raw))
	default:
		for n, line := range strings.Split(raw, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if !gjson.Valid(line) {
				return nil, fmt.Errorf("%w: line %d is not valid json", dto.ErrInvalidRequest, n+1)
			}
			items = append(items, gjson.Parse(line))
		}
	}
	if len(items) == 0 {
		return nil, dto.ErrEmptyInput
	}

	out := make([]Request, 0, len(items))
	for i, item := range items {
		req, err := decodeRequest(item, defaults)
		if err != nil {
			return nil, fmt.Errorf("request %d: %w", i, err)
		}
		out = append(out, req)
	}
	return out, nil
}

func decodeRequest(v gjson.Result, defaults config.DefaultsConf) (Request, error) {
	if !v.IsObject() {
		return Request{}, fmt.Errorf("%w: expected an object", dto.ErrInvalidRequest)
	}

	tilesField := v.Get("tiles")
	if !tilesField.Exists() || !tilesField.IsArray() {
		return Request{}, dto.ErrMissingTiles
	}
	hand, err := mahjong.ParseHand(readStrings(tilesField)...)
	if err != nil {
		return Request{}, fmt.Errorf("%w: %w", dto.ErrInvalidRequest, err)
	}

	bonus, err := parseTiles(readStrings(v.Get("bonusTiles")))
	if err != nil {
		return Request{}, fmt.Errorf("%w: %w", dto.ErrInvalidRequest, err)
	}
	ctx, err := NewContext(
		stringOr(v.Get("seatWind"), defaults.SeatWind),
		stringOr(v.Get("prevailingWind"), defaults.PrevailingWind),
		bonus,
		v.Get("selfDrawn").Bool(),
		v.Get("concealed").Bool(),
	)
	if err != nil {
		return Request{}, err
	}

	id := v.Get("id").String()
	if id == "" {
		id = uuid.NewString()
	}
	return Request{ID: id, Hand: hand, Ctx: ctx}, nil
}

// NewContext 由字符串参数构造场况，命令行和 JSON 输入共用
func NewContext(seat, prevailing string, bonus []mahjong.Tile, selfDrawn, concealed bool) (mahjong.EvaluationContext, error) {
	sw, err := mahjong.ParseWind(seat)
	if err != nil {
		return mahjong.EvaluationContext{}, fmt.Errorf("%w: seat wind: %w", dto.ErrInvalidRequest, err)
	}
	pw, err := mahjong.ParseWind(prevailing)
	if err != nil {
		return mahjong.EvaluationContext{}, fmt.Errorf("%w: prevailing wind: %w", dto.ErrInvalidRequest, err)
	}
	ctx, err := mahjong.NewEvaluationContext(sw, pw, bonus, selfDrawn, concealed)
	if err != nil {
		return mahjong.EvaluationContext{}, fmt.Errorf("%w: %w", dto.ErrInvalidRequest, err)
	}
	return ctx, nil
}

// SplitNames 逗号或空白分隔的牌名列表
func SplitNames(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func parseTiles(names []string) ([]mahjong.Tile, error) {
	out := make([]mahjong.Tile, 0, len(names))
	for _, n := range names {
		t, err := mahjong.ParseTile(n)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func readStrings(v gjson.Result) []string {
	var out []string
	v.ForEach(func(_, s gjson.Result) bool {
		out = append(out, s.String())
		return true
	})
	return out
}

func stringOr(v gjson.Result, def string) string {
	if s := v.String(); s != "" {
		return s
	}
	return def
}
