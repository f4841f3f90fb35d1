package mahjong

import (
	"errors"
	"fmt"
)

const (
	HandSize       = 14
	MaxBonusTiles  = 8
	MaxCopies      = 4 // 每种牌只有 4 张
	meldsPerHand   = 4
	pairsPerSeven  = 7
	tilesPerTriple = 3
)

var (
	ErrBonusTileInHand    = errors.New("bonus tile cannot be part of the hand")
	ErrTooManyCopies      = errors.New("more than 4 copies of a tile")
	ErrInvalidTile        = errors.New("invalid tile")
	ErrNotBonusTile       = errors.New("only flower and season tiles score as bonus tiles")
	ErrTooManyBonusTiles  = errors.New("too many bonus tiles")
	ErrDuplicateBonusTile = errors.New("duplicate bonus tile")
)

// Hand34 每个可用牌种的张数
type Hand34 [PlayableTypes]uint8

func Hand34FromTiles(tiles []Tile) Hand34 {
	var h Hand34
	for _, t := range tiles {
		if int(t.Type) < PlayableTypes && t.Type >= 0 {
			h[t.Type]++
		}
	}
	return h
}

func (h Hand34) Total() int {
	n := 0
	for _, c := range h {
		n += int(c)
	}
	return n
}

// Key 计数签名，用于搜索记忆化和结果缓存
func (h Hand34) Key() string {
	var b [PlayableTypes]byte
	for i := 0; i < PlayableTypes; i++ {
		b[i] = h[i]
	}
	return string(b[:])
}

// Tiles 按牌种顺序展开
func (h Hand34) Tiles() []Tile {
	out := make([]Tile, 0, h.Total())
	for i, c := range h {
		for k := 0; k < int(c); k++ {
			out = append(out, Tile{Type: TileType(i)})
		}
	}
	return out
}

// Hand 手牌，构造后不可变
type Hand struct {
	tiles  []Tile
	counts Hand34
}

func NewHand(tiles ...Tile) (Hand, error) {
	for _, t := range tiles {
		if !t.Type.Valid() {
			return Hand{}, fmt.Errorf("%w: %d", ErrInvalidTile, t.Type)
		}
		if t.IsBonus() {
			return Hand{}, fmt.Errorf("%w: %s", ErrBonusTileInHand, t)
		}
	}
	cp := make([]Tile, len(tiles))
	copy(cp, tiles)
	counts := Hand34FromTiles(cp)
	for i, c := range counts {
		if c > MaxCopies {
			return Hand{}, fmt.Errorf("%w: %d x %s", ErrTooManyCopies, c, TileType(i))
		}
	}
	return Hand{tiles: cp, counts: counts}, nil
}

// ParseHand 由牌名构造手牌
func ParseHand(names ...string) (Hand, error) {
	tiles := make([]Tile, 0, len(names))
	for _, n := range names {
		t, err := ParseTile(n)
		if err != nil {
			return Hand{}, err
		}
		tiles = append(tiles, t)
	}
	return NewHand(tiles...)
}

func (h Hand) Len() int { return len(h.tiles) }

func (h Hand) Tiles() []Tile {
	out := make([]Tile, len(h.tiles))
	copy(out, h.tiles)
	return out
}

func (h Hand) Counts() Hand34 { return h.counts }

func (h Hand) Count(t Tile) int {
	if int(t.Type) >= PlayableTypes || t.Type < 0 {
		return 0
	}
	return int(h.counts[t.Type])
}

// EvaluationContext 和牌时的场况，评估过程不会修改它
type EvaluationContext struct {
	SeatWind       Wind
	PrevailingWind Wind
	BonusTiles     []Tile
	SelfDrawn      bool
	Concealed      bool
}

func NewEvaluationContext(seat, prevailing Wind, bonus []Tile, selfDrawn, concealed bool) (EvaluationContext, error) {
	if !seat.Valid() {
		return EvaluationContext{}, fmt.Errorf("%w: seat %d", ErrUnknownWind, seat)
	}
	if !prevailing.Valid() {
		return EvaluationContext{}, fmt.Errorf("%w: prevailing %d", ErrUnknownWind, prevailing)
	}
	if len(bonus) > MaxBonusTiles {
		return EvaluationContext{}, fmt.Errorf("%w: %d", ErrTooManyBonusTiles, len(bonus))
	}
	seen := make(map[TileType]bool, len(bonus))
	for _, t := range bonus {
		if !t.IsBonus() || !t.Type.Valid() {
			return EvaluationContext{}, fmt.Errorf("%w: %s", ErrNotBonusTile, t)
		}
		if seen[t.Type] {
			return EvaluationContext{}, fmt.Errorf("%w: %s", ErrDuplicateBonusTile, t)
		}
		seen[t.Type] = true
	}
	cp := make([]Tile, len(bonus))
	copy(cp, bonus)
	return EvaluationContext{
		SeatWind:       seat,
		PrevailingWind: prevailing,
		BonusTiles:     cp,
		SelfDrawn:      selfDrawn,
		Concealed:      concealed,
	}, nil
}

// BonusCount 只统计花牌，其他牌不计分
func (c EvaluationContext) BonusCount() int {
	n := 0
	for _, t := range c.BonusTiles {
		if t.IsBonus() && t.Type.Valid() {
			n++
		}
	}
	return n
}
