package engines

import (
	"fmt"
	"strings"

	"gomahjong/runtime/dto"
	"gomahjong/runtime/game/engines/mahjong"
)

type engineType int32

const (
	HONG_KONG_SCORER_ENGINE engineType = iota // 港式麻将计分
)

var engineNames = map[string]engineType{
	"hongkong":  HONG_KONG_SCORER_ENGINE,
	"hong_kong": HONG_KONG_SCORER_ENGINE,
	"hk":        HONG_KONG_SCORER_ENGINE,
}

// Engine 计分引擎，实现必须是无状态的纯函数，允许多个 goroutine 同时调用
type Engine interface {
	// Name 规则名称
	Name() string

	// Evaluate 判定 14 张手牌的牌型并计分
	Evaluate(hand mahjong.Hand, ctx mahjong.EvaluationContext) mahjong.EvaluationResult
}

// NewEngine 按配置中的规则名创建引擎，空字符串使用默认规则
func NewEngine(name string) (Engine, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = "hongkong"
	}
	et, ok := engineNames[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", dto.ErrUnknownEngine, name)
	}
	switch et {
	case HONG_KONG_SCORER_ENGINE:
		return mahjong.NewScorer(), nil
	default:
		return nil, fmt.Errorf("%w: %s", dto.ErrUnknownEngine, name)
	}
}
