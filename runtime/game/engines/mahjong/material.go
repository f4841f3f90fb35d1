package mahjong

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidRank     = errors.New("rank must be 1-9 for a numbered suit")
	ErrNotNumberSuit   = errors.New("suit has no ranks")
	ErrUnknownTileName = errors.New("unknown tile name")
	ErrUnknownWind     = errors.New("unknown wind")
)

type Suit int

const (
	SuitDots       Suit = iota // 筒子
	SuitBamboo                 // 索子
	SuitCharacters             // 万子
	SuitWind                   // 风牌
	SuitDragon                 // 箭牌
	SuitFlower                 // 花牌，不进入 14 张手牌
)

func (s Suit) IsNumber() bool { return s <= SuitCharacters }

func (s Suit) String() string {
	switch s {
	case SuitDots:
		return "dots"
	case SuitBamboo:
		return "bamboo"
	case SuitCharacters:
		return "characters"
	case SuitWind:
		return "wind"
	case SuitDragon:
		return "dragon"
	case SuitFlower:
		return "flower"
	default:
		return "unknown"
	}
}

type Wind int

const (
	WindEast  Wind = iota // 东风
	WindSouth             // 南风
	WindWest              // 西风
	WindNorth             // 北风
)

var windNames = [4]string{"east", "south", "west", "north"}

func (w Wind) Valid() bool { return w >= WindEast && w <= WindNorth }

func (w Wind) String() string {
	if !w.Valid() {
		return "unknown"
	}
	return windNames[w]
}

// Tile 门风/场风对应的风牌
func (w Wind) Tile() Tile { return Tile{Type: East + TileType(w)} }

func ParseWind(s string) (Wind, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "_wind")
	for i, n := range windNames {
		if n == name {
			return Wind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWind, s)
}

type Dragon int

const (
	DragonRed   Dragon = iota // 红中
	DragonGreen               // 发财
	DragonWhite               // 白板
)

type TileType int

const (
	// 筒子 (0-8)
	Dot1 TileType = iota
	Dot2
	Dot3
	Dot4
	Dot5
	Dot6
	Dot7
	Dot8
	Dot9

	// 索子 (9-17)
	Bamboo1
	Bamboo2
	Bamboo3
	Bamboo4
	Bamboo5
	Bamboo6
	Bamboo7
	Bamboo8
	Bamboo9

	// 万子 (18-26)
	Character1
	Character2
	Character3
	Character4
	Character5
	Character6
	Character7
	Character8
	Character9

	// 字牌 (27-33)
	East
	South
	West
	North
	Red
	Green
	White

	// 花牌 (34-41)
	Plum
	Orchid
	Chrysanthemum
	BambooFlower
	Spring
	Summer
	Autumn
	Winter
)

const (
	PlayableTypes = 34 // 可组成手牌的牌种数
	AllTypes      = 42
)

var honorNames = [...]string{
	"east_wind", "south_wind", "west_wind", "north_wind",
	"red_dragon", "green_dragon", "white_dragon",
	"plum_flower", "orchid_flower", "chrysanthemum_flower", "bamboo_flower",
	"spring_season", "summer_season", "autumn_season", "winter_season",
}

var suitPrefixes = [3]string{"dot", "bamboo", "character"}

func (tt TileType) Valid() bool { return tt >= Dot1 && tt <= Winter }

func (tt TileType) Suit() Suit {
	switch {
	case tt <= Dot9:
		return SuitDots
	case tt <= Bamboo9:
		return SuitBamboo
	case tt <= Character9:
		return SuitCharacters
	case tt <= North:
		return SuitWind
	case tt <= White:
		return SuitDragon
	default:
		return SuitFlower
	}
}

// Rank 数牌 1-9，其余为 0
func (tt TileType) Rank() int {
	if tt < East {
		return int(tt)%9 + 1
	}
	return 0
}

func (tt TileType) String() string {
	if !tt.Valid() {
		return "unknown_" + strconv.Itoa(int(tt))
	}
	if tt < East {
		return suitPrefixes[tt/9] + "_" + strconv.Itoa(tt.Rank())
	}
	return honorNames[tt-East]
}

// Tile 牌按牌种比较，没有实例身份
type Tile struct {
	Type TileType
}

func NewNumberTile(s Suit, rank int) (Tile, error) {
	if !s.IsNumber() {
		return Tile{}, fmt.Errorf("%w: %s", ErrNotNumberSuit, s)
	}
	if rank < 1 || rank > 9 {
		return Tile{}, fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}
	return Tile{Type: TileType(int(s)*9 + rank - 1)}, nil
}

func NewWindTile(w Wind) Tile { return w.Tile() }

func NewDragonTile(d Dragon) Tile { return Tile{Type: Red + TileType(d)} }

func (t Tile) Suit() Suit       { return t.Type.Suit() }
func (t Tile) Rank() int        { return t.Type.Rank() }
func (t Tile) Name() string     { return t.Type.String() }
func (t Tile) String() string   { return t.Type.String() }
func (t Tile) IsBonus() bool    { return t.Type >= Plum }
func (t Tile) IsHonor() bool    { return isHonor(t.Type) }
func (t Tile) IsTerminal() bool { return isTerminal(t.Type) }

// ParseTile 解析 dot_5 / bamboo_1 / character_9 / east_wind / red_dragon / plum_flower 这类名称
func ParseTile(name string) (Tile, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if i := strings.LastIndexByte(n, '_'); i > 0 {
		prefix := strings.TrimSuffix(n[:i], "s")
		if rank, err := strconv.Atoi(n[i+1:]); err == nil {
			for s, p := range suitPrefixes {
				if p == prefix {
					return NewNumberTile(Suit(s), rank)
				}
			}
			return Tile{}, fmt.Errorf("%w: %q", ErrUnknownTileName, name)
		}
	}
	for i, hn := range honorNames {
		if hn == n {
			return Tile{Type: East + TileType(i)}, nil
		}
	}
	return Tile{}, fmt.Errorf("%w: %q", ErrUnknownTileName, name)
}

// AllTiles 返回每个牌种各一张，按牌种顺序
func AllTiles() []Tile {
	out := make([]Tile, 0, AllTypes)
	for tt := Dot1; tt <= Winter; tt++ {
		out = append(out, Tile{Type: tt})
	}
	return out
}

func isHonor(tt TileType) bool { return tt >= East && tt <= White }

func isWind(tt TileType) bool { return tt >= East && tt <= North }

func isDragon(tt TileType) bool { return tt >= Red && tt <= White }

func isTerminal(tt TileType) bool {
	r := tt.Rank()
	return r == 1 || r == 9
}

func suitOf(i int) int {
	if i >= int(Dot1) && i <= int(Character9) {
		return i / 9
	}
	return -1
}

var orphanTiles = [13]TileType{
	Dot1, Dot9,
	Bamboo1, Bamboo9,
	Character1, Character9,
	East, South, West, North,
	Red, Green, White,
}

var dragonTiles = [3]TileType{Red, Green, White}

var windTiles = [4]TileType{East, South, West, North}
