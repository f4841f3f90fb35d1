package mahjong

import (
	"reflect"
	"testing"
)

func thirteenOrphans(extra TileType) Hand34 {
	return hand34(
		Dot1, Dot9, Bamboo1, Bamboo9, Character1, Character9,
		East, South, West, North, Red, Green, White,
		extra,
	)
}

func nineGates() Hand34 {
	return hand34(concat(
		repeat(Dot1, 3), []TileType{Dot2, Dot3, Dot4, Dot5, Dot6, Dot7, Dot8}, repeat(Dot9, 3), []TileType{Dot5},
	)...)
}

func TestYaku_ClassifyEveryHandType(t *testing.T) {
	cases := []struct {
		name      string
		hand      Hand34
		concealed bool
		want      HandType
	}{
		{"thirteen orphans", thirteenOrphans(Dot1), false, HandThirteenOrphans},
		{"great winds", hand34(concat(repeat(East, 3), repeat(South, 3), repeat(West, 3), repeat(North, 3), repeat(Dot5, 2))...), false, HandGreatWinds},
		{"orphans", hand34(concat(repeat(Dot1, 3), repeat(Dot9, 3), repeat(Bamboo1, 3), repeat(Character9, 3), repeat(Bamboo9, 2))...), false, HandOrphans},
		{"nine gates", nineGates(), true, HandNineGates},
		{"all honors", hand34(concat(repeat(East, 3), repeat(South, 3), repeat(Red, 3), repeat(Green, 3), repeat(White, 2))...), false, HandAllHonors},
		{"great dragons", hand34(concat(repeat(Red, 3), repeat(Green, 3), repeat(White, 3), []TileType{Dot1, Dot2, Dot3}, repeat(Dot9, 2))...), false, HandGreatDragons},
		{"pure", hand34(Dot1, Dot2, Dot3, Dot4, Dot5, Dot6, Dot7, Dot8, Dot9, Dot1, Dot2, Dot3, Dot4, Dot4), false, HandPure},
		{"small winds", hand34(concat(repeat(East, 3), repeat(South, 3), repeat(West, 3), repeat(North, 2), []TileType{Dot2, Dot3, Dot4})...), false, HandSmallWinds},
		{"small dragons", hand34(concat(repeat(Red, 3), repeat(Green, 3), repeat(White, 2), []TileType{Dot1, Dot2, Dot3}, repeat(Bamboo5, 3))...), false, HandSmallDragons},
		{"seven pairs", hand34(Dot1, Dot1, Dot2, Dot2, Bamboo3, Bamboo3, Character4, Character4, Dot5, Dot5, Bamboo6, Bamboo6, Character7, Character7), false, HandSevenPairs},
		{"all triplets", hand34(concat(repeat(Dot2, 3), repeat(Bamboo4, 3), repeat(Character6, 3), repeat(East, 3), repeat(Dot8, 2))...), false, HandAllTriplets},
		{"mixed one suit", hand34(Dot1, Dot2, Dot3, Dot4, Dot5, Dot6, Dot7, Dot8, Dot9, Red, Red, Red, Dot1, Dot1), false, HandMixedOneSuit},
		{"all chows", hand34(Dot1, Dot2, Dot3, Bamboo1, Bamboo2, Bamboo3, Character7, Character8, Character9, Dot5, Dot6, Dot7, Dot9, Dot9), false, HandAllChows},
		{"chicken", hand34(concat(repeat(Bamboo1, 3), []TileType{Dot1, Dot2, Dot3, Dot4, Dot5, Dot6, Dot7, Dot8, Dot9}, repeat(Dot5, 2))...), false, HandChicken},
	}

	for _, c := range cases {
		got, d := Classify(c.hand, c.concealed)
		if got != c.want {
			t.Fatalf("%s: expected %s, got %s", c.name, c.want, got)
		}
		if d.Kind == DecompositionNone {
			t.Fatalf("%s: expected a decomposition for a winning hand", c.name)
		}
		if d.Kind == DecompositionStandard || d.Kind == DecompositionSevenPairs {
			if d.Counts() != c.hand {
				t.Fatalf("%s: decomposition %s does not cover the hand", c.name, d)
			}
		}
	}
}

func TestYaku_NoWin(t *testing.T) {
	cases := map[string]Hand34{
		"broken chows":     hand34(Dot1, Dot2, Dot3, Bamboo1, Bamboo2, Bamboo4, Character7, Character8, Character9, Dot5, Dot6, Dot7, Dot9, Dot9),
		"broken orphans":   thirteenOrphans(Dot2),
		"six pairs + pair": hand34(Dot1, Dot1, Dot2, Dot2, Bamboo3, Bamboo3, Character4, Character4, Dot5, Dot5, Bamboo6, Bamboo6, Character7, Character8),
	}
	for name, h := range cases {
		if got, _ := Classify(h, false); got != HandNone {
			t.Fatalf("%s: expected no win, got %s", name, got)
		}
	}
}

func TestYaku_WrongSizeIsNeverAWin(t *testing.T) {
	h := hand34(Dot1, Dot2, Dot3)
	if got, _ := Classify(h, true); got != HandNone {
		t.Fatalf("expected no win for 3 tiles, got %s", got)
	}
	if got := MatchingHandTypes(h, true); got != nil {
		t.Fatalf("expected nil matches, got %v", got)
	}
}

func TestYaku_ThirteenOrphansIgnoresConcealedFlag(t *testing.T) {
	for _, concealed := range []bool{true, false} {
		if got, _ := Classify(thirteenOrphans(White), concealed); got != HandThirteenOrphans {
			t.Fatalf("concealed=%v: expected thirteen orphans, got %s", concealed, got)
		}
	}
}

func TestYaku_NineGatesRequiresConcealed(t *testing.T) {
	if got, _ := Classify(nineGates(), false); got != HandPure {
		t.Fatalf("exposed nine gates expected pure hand, got %s", got)
	}
	if got, _ := Classify(nineGates(), true); got != HandNineGates {
		t.Fatalf("concealed nine gates expected nine gates, got %s", got)
	}
}

func TestYaku_NineGatesExtraTileAnyRank(t *testing.T) {
	base := concat(repeat(Bamboo1, 3), []TileType{Bamboo2, Bamboo3, Bamboo4, Bamboo5, Bamboo6, Bamboo7, Bamboo8}, repeat(Bamboo9, 3))
	for extra := Bamboo1; extra <= Bamboo9; extra++ {
		h := hand34(append(append([]TileType{}, base...), extra)...)
		if got, _ := Classify(h, true); got != HandNineGates {
			t.Fatalf("extra %s: expected nine gates, got %s", extra, got)
		}
	}
}

func TestYaku_FourIdenticalRunsIsAllChows(t *testing.T) {
	h := hand34(concat(repeat(Dot1, 4), repeat(Dot2, 4), repeat(Dot3, 4), repeat(Bamboo5, 2))...)
	got, d := Classify(h, false)
	if got != HandAllChows {
		t.Fatalf("expected all chows, got %s", got)
	}
	if d.Runs() != 4 {
		t.Fatalf("expected the four-run decomposition, got %s", d)
	}
}

func TestYaku_PureHandFromSevenPairs(t *testing.T) {
	h := hand34(Dot1, Dot1, Dot2, Dot2, Dot4, Dot4, Dot5, Dot5, Dot7, Dot7, Dot8, Dot8, Dot9, Dot9)
	got, d := Classify(h, false)
	if got != HandPure {
		t.Fatalf("expected pure hand, got %s", got)
	}
	if d.Kind != DecompositionSevenPairs {
		t.Fatalf("expected seven pairs shape, got %d", d.Kind)
	}
}

func TestYaku_MixedOneSuitAllowsOneDragonIdentity(t *testing.T) {
	// 两种箭牌不算混一色
	h := hand34(concat([]TileType{Dot1, Dot2, Dot3, Dot4, Dot5, Dot6}, repeat(Red, 3), repeat(Green, 3), repeat(Dot9, 2))...)
	if got, _ := Classify(h, false); got != HandChicken {
		t.Fatalf("expected chicken hand, got %s", got)
	}
}

func TestYaku_PrecedencePicksHighest(t *testing.T) {
	cases := []struct {
		name string
		hand Hand34
		want []HandType
	}{
		{
			"all honors over small dragons",
			hand34(concat(repeat(East, 3), repeat(South, 3), repeat(Red, 3), repeat(Green, 3), repeat(White, 2))...),
			[]HandType{HandAllHonors, HandSmallDragons, HandAllTriplets, HandChicken},
		},
		{
			"great winds over all honors",
			hand34(concat(repeat(East, 3), repeat(South, 3), repeat(West, 3), repeat(North, 3), repeat(Red, 2))...),
			[]HandType{HandGreatWinds, HandAllHonors, HandAllTriplets, HandChicken},
		},
		{
			"all triplets over mixed one suit",
			hand34(concat(repeat(Dot1, 3), repeat(Dot5, 3), repeat(Dot9, 3), repeat(Red, 3), repeat(East, 2))...),
			[]HandType{HandAllTriplets, HandMixedOneSuit, HandChicken},
		},
		{
			"four identical runs",
			hand34(concat(repeat(Dot1, 4), repeat(Dot2, 4), repeat(Dot3, 4), repeat(Bamboo5, 2))...),
			[]HandType{HandAllChows, HandChicken},
		},
	}

	for _, c := range cases {
		got := MatchingHandTypes(c.hand, false)
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("%s: expected matches %v, got %v", c.name, c.want, got)
		}
		if first, _ := Classify(c.hand, false); first != c.want[0] {
			t.Fatalf("%s: expected %s, got %s", c.name, c.want[0], first)
		}
	}
}

func TestYaku_PointsNonIncreasingWithPrecedence(t *testing.T) {
	prev := HandThirteenOrphans.Points()
	for ht := HandThirteenOrphans; ht <= HandChicken; ht++ {
		if ht.Points() > prev {
			t.Fatalf("%s (%d) outranks its predecessor (%d)", ht, ht.Points(), prev)
		}
		prev = ht.Points()
	}
	if len(hongKongRegistry) != int(HandChicken) {
		t.Fatalf("expected %d checkers, got %d", HandChicken, len(hongKongRegistry))
	}
	for i, c := range hongKongRegistry {
		if c.ID() != HandType(i+1) {
			t.Fatalf("checker %d expected %s, got %s", i, HandType(i+1), c.ID())
		}
	}
}

func TestYaku_ClassifyWithCustomRegistry(t *testing.T) {
	// 只保留鸡胡，任何可拆的牌都落到鸡胡
	registry := []handTypeChecker{hongKongRegistry[len(hongKongRegistry)-1]}
	if got, _ := classifyWith(registry, thirteenOrphans(Dot1), false); got != HandNone {
		t.Fatalf("thirteen orphans has no standard shape, expected none, got %s", got)
	}
	if got, _ := classifyWith(registry, nineGates(), true); got != HandChicken {
		t.Fatalf("expected chicken, got %s", got)
	}
}
