package mahjong

// HandType 牌型，按优先级从高到低排列
type HandType int

const (
	HandNone HandType = iota // 未和牌
	HandThirteenOrphans
	HandGreatWinds
	HandOrphans
	HandNineGates
	HandAllHonors
	HandGreatDragons
	HandPure
	HandSmallWinds
	HandSmallDragons
	HandSevenPairs
	HandAllTriplets
	HandMixedOneSuit
	HandAllChows
	HandChicken
)

type handTypeInfo struct {
	label  string
	points int
}

var handTypeTable = map[HandType]handTypeInfo{
	HandNone:            {label: "Not a winning hand", points: 0},
	HandThirteenOrphans: {label: "Thirteen Orphans Hand", points: 13},
	HandGreatWinds:      {label: "Great Winds", points: 13},
	HandOrphans:         {label: "Orphans Hand", points: 10},
	HandNineGates:       {label: "Nine Gates", points: 10},
	HandAllHonors:       {label: "All Honors", points: 10},
	HandGreatDragons:    {label: "Great Dragons", points: 8},
	HandPure:            {label: "Pure Hand", points: 7},
	HandSmallWinds:      {label: "Small Winds", points: 6},
	HandSmallDragons:    {label: "Small Dragons", points: 5},
	HandSevenPairs:      {label: "Seven Pairs", points: 4},
	HandAllTriplets:     {label: "All Triplets", points: 3},
	HandMixedOneSuit:    {label: "Mixed One Suit", points: 3},
	HandAllChows:        {label: "All Chow Hand", points: 1},
	HandChicken:         {label: "Chicken Hand", points: 0},
}

func (ht HandType) String() string { return handTypeTable[ht].label }

// Points 牌型基础分
func (ht HandType) Points() int { return handTypeTable[ht].points }

func (ht HandType) IsWin() bool { return ht != HandNone }

// RequiresConcealed 牌型本身以门清为前提，门清加分不再重复计算
func (ht HandType) RequiresConcealed() bool {
	return ht == HandThirteenOrphans || ht == HandNineGates
}

// PricesDragons 牌型分已包含箭牌刻子
func (ht HandType) PricesDragons() bool {
	return ht == HandGreatDragons || ht == HandSmallDragons
}

// analysis 一次分类过程共享的数据，拆解结果按需计算
type analysis struct {
	counts    Hand34
	concealed bool

	decomposed bool
	standard   []Decomposition
	seven      Decomposition
	hasSeven   bool
}

func newAnalysis(h Hand34, concealed bool) *analysis {
	a := &analysis{counts: h, concealed: concealed}
	a.seven, a.hasSeven = SevenPairs(h)
	return a
}

func (a *analysis) decompositions() []Decomposition {
	if !a.decomposed {
		a.standard = Decompose(a.counts)
		a.decomposed = true
	}
	return a.standard
}

// anyDecomposition 满足条件的第一个标准拆法
func (a *analysis) anyDecomposition(pred func(d Decomposition) bool) (Decomposition, bool) {
	for _, d := range a.decompositions() {
		if pred(d) {
			return d, true
		}
	}
	return Decomposition{}, false
}

// shape 固定牌型命中后，尽量给出一个标准拆法用于展示
func (a *analysis) shape() Decomposition {
	if ds := a.decompositions(); len(ds) > 0 {
		return ds[0]
	}
	return Decomposition{Kind: DecompositionSpecial}
}

// valid 任意合法拆法：标准型优先，其次七对
func (a *analysis) valid() (Decomposition, bool) {
	if ds := a.decompositions(); len(ds) > 0 {
		return ds[0], true
	}
	if a.hasSeven {
		return a.seven, true
	}
	return Decomposition{}, false
}

type handTypeChecker interface {
	ID() HandType
	Check(a *analysis) (Decomposition, bool)
}

type handTypeCheckerFunc struct {
	id    HandType
	check func(a *analysis) (Decomposition, bool)
}

func (f handTypeCheckerFunc) ID() HandType { return f.id }

func (f handTypeCheckerFunc) Check(a *analysis) (Decomposition, bool) { return f.check(a) }

// special 只看计数的固定牌型
func special(id HandType, match func(a *analysis) bool) handTypeCheckerFunc {
	return handTypeCheckerFunc{id: id, check: func(a *analysis) (Decomposition, bool) {
		if !match(a) {
			return Decomposition{}, false
		}
		return a.shape(), true
	}}
}

// hongKongRegistry 顺序即优先级，命中即停止
var hongKongRegistry = []handTypeChecker{
	handTypeCheckerFunc{id: HandThirteenOrphans, check: func(a *analysis) (Decomposition, bool) {
		if checkThirteenOrphans(a.counts) {
			return Decomposition{Kind: DecompositionSpecial}, true
		}
		return Decomposition{}, false
	}},
	special(HandGreatWinds, func(a *analysis) bool { return checkGreatWinds(a.counts) }),
	special(HandOrphans, func(a *analysis) bool { return checkOrphans(a.counts) }),
	special(HandNineGates, func(a *analysis) bool { return a.concealed && checkNineGates(a.counts) }),
	special(HandAllHonors, func(a *analysis) bool { return checkAllHonors(a.counts) }),
	special(HandGreatDragons, func(a *analysis) bool { return checkGreatDragons(a.counts) }),

	handTypeCheckerFunc{id: HandPure, check: func(a *analysis) (Decomposition, bool) {
		if !checkPureSuit(a.counts) {
			return Decomposition{}, false
		}
		return a.valid()
	}},

	special(HandSmallWinds, func(a *analysis) bool { return checkSmallWinds(a.counts) }),
	special(HandSmallDragons, func(a *analysis) bool { return checkSmallDragons(a.counts) }),

	handTypeCheckerFunc{id: HandSevenPairs, check: func(a *analysis) (Decomposition, bool) {
		return a.seven, a.hasSeven
	}},
	handTypeCheckerFunc{id: HandAllTriplets, check: func(a *analysis) (Decomposition, bool) {
		return a.anyDecomposition(func(d Decomposition) bool { return d.Runs() == 0 })
	}},
	handTypeCheckerFunc{id: HandMixedOneSuit, check: func(a *analysis) (Decomposition, bool) {
		if !checkMixedOneSuit(a.counts) {
			return Decomposition{}, false
		}
		return a.valid()
	}},
	handTypeCheckerFunc{id: HandAllChows, check: func(a *analysis) (Decomposition, bool) {
		return a.anyDecomposition(func(d Decomposition) bool { return d.Triplets() == 0 })
	}},
	handTypeCheckerFunc{id: HandChicken, check: func(a *analysis) (Decomposition, bool) {
		return a.valid()
	}},
}

// Classify 按优先级匹配，返回第一个命中的牌型及其拆法
func Classify(h Hand34, concealed bool) (HandType, Decomposition) {
	return classifyWith(hongKongRegistry, h, concealed)
}

func classifyWith(registry []handTypeChecker, h Hand34, concealed bool) (HandType, Decomposition) {
	if h.Total() != HandSize {
		return HandNone, Decomposition{}
	}
	a := newAnalysis(h, concealed)
	for _, checker := range registry {
		if d, ok := checker.Check(a); ok {
			return checker.ID(), d
		}
	}
	return HandNone, Decomposition{}
}

// MatchingHandTypes 所有能命中的牌型（按优先级），用于核对优先级
func MatchingHandTypes(h Hand34, concealed bool) []HandType {
	if h.Total() != HandSize {
		return nil
	}
	a := newAnalysis(h, concealed)
	var out []HandType
	for _, checker := range hongKongRegistry {
		if _, ok := checker.Check(a); ok {
			out = append(out, checker.ID())
		}
	}
	return out
}

// -------------- 固定牌型 --------------

// checkThirteenOrphans 十三种幺九牌各至少一张，且其中恰好一种成对
func checkThirteenOrphans(h Hand34) bool {
	sum := 0
	for _, tt := range orphanTiles {
		if h[tt] == 0 {
			return false
		}
		sum += int(h[tt])
	}
	return sum == HandSize && h.Total() == HandSize
}

// checkGreatWinds 四副风刻 + 雀头
func checkGreatWinds(h Hand34) bool {
	work := h
	for _, tt := range windTiles {
		if !takeTriplet(&work, int(tt)) {
			return false
		}
	}
	return formsMelds(work, 0, true)
}

// checkOrphans 全部由数牌 1、9 组成的四刻一对
func checkOrphans(h Hand34) bool {
	triplets, pairs := 0, 0
	for i, c := range h {
		if c == 0 {
			continue
		}
		tt := TileType(i)
		if isHonor(tt) || !isTerminal(tt) {
			return false
		}
		switch c {
		case 3:
			triplets++
		case 2:
			pairs++
		default:
			return false
		}
	}
	return triplets == meldsPerHand && pairs == 1
}

var nineGatesTemplate = [9]int{3, 1, 1, 1, 1, 1, 1, 1, 3}

// checkNineGates 同一花色 1112345678999 再多一张同花色的牌，逐个点数累计偏差
func checkNineGates(h Hand34) bool {
	suit := -1
	for i, c := range h {
		if c == 0 {
			continue
		}
		s := suitOf(i)
		if s < 0 {
			return false
		}
		if suit == -1 {
			suit = s
		} else if suit != s {
			return false
		}
	}
	if suit == -1 {
		return false
	}

	extra := 0
	for r := 0; r < 9; r++ {
		delta := int(h[suit*9+r]) - nineGatesTemplate[r]
		if delta < 0 {
			return false
		}
		extra += delta
	}
	return extra == 1
}

// checkAllHonors 全字牌的四刻一对
func checkAllHonors(h Hand34) bool {
	triplets, pairs := 0, 0
	for i, c := range h {
		if c == 0 {
			continue
		}
		if !isHonor(TileType(i)) {
			return false
		}
		switch c {
		case 3:
			triplets++
		case 2:
			pairs++
		default:
			return false
		}
	}
	return triplets == meldsPerHand && pairs == 1
}

// checkGreatDragons 三副箭刻，余下一面子一雀头
func checkGreatDragons(h Hand34) bool {
	work := h
	for _, tt := range dragonTiles {
		if !takeTriplet(&work, int(tt)) {
			return false
		}
	}
	return formsMelds(work, 1, true)
}

// checkSmallWinds 三副风刻 + 风牌雀头 + 一副非风面子
func checkSmallWinds(h Hand34) bool {
	return smallHonors(h, windTiles[:], 1)
}

// checkSmallDragons 两副箭刻 + 箭牌雀头 + 两副非箭面子
func checkSmallDragons(h Hand34) bool {
	return smallHonors(h, dragonTiles[:], 2)
}

// smallHonors 同组字牌中恰好一种成对、其余成刻，剩下的牌恰好组成 rest 个面子
func smallHonors(h Hand34, group []TileType, rest int) bool {
	work := h
	pairs := 0
	for _, tt := range group {
		switch h[tt] {
		case 3:
			takeTriplet(&work, int(tt))
		case 2:
			takePair(&work, int(tt))
			pairs++
		default:
			return false
		}
	}
	return pairs == 1 && formsMelds(work, rest, false)
}

// checkPureSuit 只有一种数牌，没有字牌
func checkPureSuit(h Hand34) bool {
	suits, honors := suitsAndHonors(h)
	return len(suits) == 1 && len(honors) == 0
}

// checkMixedOneSuit 一种数牌 + 字牌，风牌与箭牌各最多一种
func checkMixedOneSuit(h Hand34) bool {
	suits, honors := suitsAndHonors(h)
	if len(suits) != 1 || len(honors) == 0 {
		return false
	}
	winds, dragons := 0, 0
	for _, tt := range honors {
		if isWind(tt) {
			winds++
		} else if isDragon(tt) {
			dragons++
		}
	}
	return winds <= 1 && dragons <= 1
}

func suitsAndHonors(h Hand34) (map[int]bool, []TileType) {
	suits := make(map[int]bool, 3)
	var honors []TileType
	for i, c := range h {
		if c == 0 {
			continue
		}
		if s := suitOf(i); s >= 0 {
			suits[s] = true
		} else {
			honors = append(honors, TileType(i))
		}
	}
	return suits, honors
}
