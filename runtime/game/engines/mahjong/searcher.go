package mahjong

import "strings"

type MeldKind int

const (
	MeldRun     MeldKind = iota // 顺子
	MeldTriplet                 // 刻子
	MeldQuad                    // 杠子
)

func (k MeldKind) String() string {
	switch k {
	case MeldRun:
		return "run"
	case MeldTriplet:
		return "triplet"
	case MeldQuad:
		return "quad"
	default:
		return "unknown"
	}
}

// Meld 顺子时 Type 为最小的那张
type Meld struct {
	Kind MeldKind
	Type TileType
}

func (m Meld) Size() int {
	if m.Kind == MeldQuad {
		return 4
	}
	return 3
}

func (m Meld) Tiles() []Tile {
	out := make([]Tile, 0, m.Size())
	for k := 0; k < m.Size(); k++ {
		if m.Kind == MeldRun {
			out = append(out, Tile{Type: m.Type + TileType(k)})
		} else {
			out = append(out, Tile{Type: m.Type})
		}
	}
	return out
}

func (m Meld) String() string {
	names := make([]string, 0, m.Size())
	for _, t := range m.Tiles() {
		names = append(names, t.Name())
	}
	return m.Kind.String() + "(" + strings.Join(names, " ") + ")"
}

type Pair struct {
	Type TileType
}

func (p Pair) String() string { return "pair(" + p.Type.String() + ")" }

type DecompositionKind int

const (
	DecompositionNone       DecompositionKind = iota
	DecompositionStandard                     // 4 面子 + 1 雀头
	DecompositionSevenPairs                   // 七对
	DecompositionSpecial                      // 十三幺等固定牌型
)

type Decomposition struct {
	Kind  DecompositionKind
	Melds []Meld
	Pairs []Pair
}

// Counts 拆解所用到的全部牌，拆解合法时应与手牌计数完全一致
func (d Decomposition) Counts() Hand34 {
	var h Hand34
	for _, m := range d.Melds {
		for _, t := range m.Tiles() {
			h[t.Type]++
		}
	}
	for _, p := range d.Pairs {
		h[p.Type] += 2
	}
	return h
}

func (d Decomposition) Runs() int {
	n := 0
	for _, m := range d.Melds {
		if m.Kind == MeldRun {
			n++
		}
	}
	return n
}

// Triplets 刻子与杠子
func (d Decomposition) Triplets() int {
	return len(d.Melds) - d.Runs()
}

func (d Decomposition) String() string {
	parts := make([]string, 0, len(d.Melds)+len(d.Pairs))
	for _, m := range d.Melds {
		parts = append(parts, m.String())
	}
	for _, p := range d.Pairs {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, " ")
}

// -------------- 计数运算：取出/放回 --------------

func canRun(i int) bool {
	return suitOf(i) >= 0 && suitOf(i) == suitOf(i+1) && suitOf(i) == suitOf(i+2)
}

func takeRun(h *Hand34, i int) bool {
	if !canRun(i) || h[i] == 0 || h[i+1] == 0 || h[i+2] == 0 {
		return false
	}
	h[i]--
	h[i+1]--
	h[i+2]--
	return true
}

func putRun(h *Hand34, i int) {
	h[i]++
	h[i+1]++
	h[i+2]++
}

func takeTriplet(h *Hand34, i int) bool {
	if h[i] < tilesPerTriple {
		return false
	}
	h[i] -= tilesPerTriple
	return true
}

func putTriplet(h *Hand34, i int) { h[i] += tilesPerTriple }

func takePair(h *Hand34, i int) bool {
	if h[i] < 2 {
		return false
	}
	h[i] -= 2
	return true
}

func putPair(h *Hand34, i int) { h[i] += 2 }

func firstNonZero(h *Hand34) int {
	for k := 0; k < PlayableTypes; k++ {
		if h[k] > 0 {
			return k
		}
	}
	return -1
}

// -------------- 穷举拆解 --------------

type partial struct {
	melds   []Meld
	pair    TileType
	hasPair bool
}

func (p partial) withMeld(m Meld) partial {
	melds := make([]Meld, 0, len(p.melds)+1)
	melds = append(melds, m)
	melds = append(melds, p.melds...)
	return partial{melds: melds, pair: p.pair, hasPair: p.hasPair}
}

func (p partial) withPair(tt TileType) partial {
	return partial{melds: p.melds, pair: tt, hasPair: true}
}

// 同一起点上的组按 雀头 < 刻子 < 顺子 的顺序取，避免同一拆法以不同顺序重复出现
const (
	groupPair = iota
	groupTriplet
	groupRun
)

// search 单次拆解的记忆化状态，调用结束即丢弃
type search struct {
	memo map[string][]partial
}

// Decompose 枚举所有 4 面子 + 1 雀头 的拆法
// 最小的非零牌种必须作为某个组（雀头/刻子/顺子）的起点；
// 同一起点上的组再按固定顺序取，因此每种拆法只会出现一次
func Decompose(h Hand34) []Decomposition {
	if h.Total() != meldsPerHand*tilesPerTriple+2 {
		return nil
	}
	s := &search{memo: make(map[string][]partial, 64)}
	work := h
	parts := s.run(&work, meldsPerHand, true, -1, groupPair)

	out := make([]Decomposition, 0, len(parts))
	for _, p := range parts {
		out = append(out, Decomposition{
			Kind:  DecompositionStandard,
			Melds: p.melds,
			Pairs: []Pair{{Type: p.pair}},
		})
	}
	return out
}

// last/lastKind 上一个组的起点与种类，起点相同时只能取不小于 lastKind 的组
func (s *search) run(h *Hand34, sets int, needPair bool, last, lastKind int) []partial {
	need := sets * tilesPerTriple
	if needPair {
		need += 2
	}
	if h.Total() != need {
		return nil
	}

	i := firstNonZero(h)
	floor := groupPair
	if i == last {
		floor = lastKind
	}

	key := searchKey(h, sets, needPair, floor)
	if v, ok := s.memo[key]; ok {
		return v
	}

	if i == -1 {
		// 总数已校验，这里必然 sets == 0 && !needPair
		out := []partial{{}}
		s.memo[key] = out
		return out
	}

	var out []partial
	if needPair && floor <= groupPair && takePair(h, i) {
		for _, p := range s.run(h, sets, false, i, groupPair) {
			out = append(out, p.withPair(TileType(i)))
		}
		putPair(h, i)
	}
	if sets > 0 && floor <= groupTriplet && takeTriplet(h, i) {
		for _, p := range s.run(h, sets-1, needPair, i, groupTriplet) {
			out = append(out, p.withMeld(Meld{Kind: MeldTriplet, Type: TileType(i)}))
		}
		putTriplet(h, i)
	}
	if sets > 0 && takeRun(h, i) {
		for _, p := range s.run(h, sets-1, needPair, i, groupRun) {
			out = append(out, p.withMeld(Meld{Kind: MeldRun, Type: TileType(i)}))
		}
		putRun(h, i)
	}

	s.memo[key] = out
	return out
}

func searchKey(h *Hand34, sets int, needPair bool, floor int) string {
	var b [PlayableTypes + 3]byte
	for i := 0; i < PlayableTypes; i++ {
		b[i] = h[i]
	}
	b[PlayableTypes] = byte(sets)
	if needPair {
		b[PlayableTypes+1] = 1
	}
	b[PlayableTypes+2] = byte(floor)
	return string(b[:])
}

// formsMelds 剩余的牌能否恰好组成 sets 个面子（needPair 时再加一个雀头）
func formsMelds(h Hand34, sets int, needPair bool) bool {
	need := sets * tilesPerTriple
	if needPair {
		need += 2
	}
	if h.Total() != need {
		return false
	}
	return canFormMelds(&h, sets, needPair)
}

func canFormMelds(h *Hand34, sets int, needPair bool) bool {
	i := firstNonZero(h)
	if i == -1 {
		return sets == 0 && !needPair
	}
	if needPair && takePair(h, i) {
		ok := canFormMelds(h, sets, false)
		putPair(h, i)
		if ok {
			return true
		}
	}
	if sets == 0 {
		return false
	}
	if takeTriplet(h, i) {
		ok := canFormMelds(h, sets-1, needPair)
		putTriplet(h, i)
		if ok {
			return true
		}
	}
	if takeRun(h, i) {
		ok := canFormMelds(h, sets-1, needPair)
		putRun(h, i)
		if ok {
			return true
		}
	}
	return false
}

// SevenPairs 七个不同的对子，每种牌恰好两张
func SevenPairs(h Hand34) (Decomposition, bool) {
	pairs := make([]Pair, 0, pairsPerSeven)
	for i, c := range h {
		switch c {
		case 0:
		case 2:
			pairs = append(pairs, Pair{Type: TileType(i)})
		default:
			return Decomposition{}, false
		}
	}
	if len(pairs) != pairsPerSeven {
		return Decomposition{}, false
	}
	return Decomposition{Kind: DecompositionSevenPairs, Pairs: pairs}, true
}

// hasMeldOf 该牌种在手牌中是否成刻（或杠）
func hasMeldOf(h Hand34, tt TileType) bool {
	if tt < 0 || int(tt) >= PlayableTypes {
		return false
	}
	return takeTriplet(&h, int(tt))
}
