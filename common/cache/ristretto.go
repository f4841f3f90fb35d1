package cache

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto"

	"gomahjong/runtime/game/engines/mahjong"
)

// ResultCache 评估结果的本地缓存，支持 TTL
// 评估是纯函数，同一手牌 + 同一场况的结果永远相同，缓存只为批量输入里的重复请求省去搜索
type ResultCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewResultCache 创建结果缓存
// maxCost: 最多缓存的结果条数，每条成本为 1
// ttl: 默认过期时间，0 表示不过期
func NewResultCache(maxCost int64, ttl time.Duration) (*ResultCache, error) {
	if maxCost <= 0 {
		return nil, fmt.Errorf("创建 ristretto 缓存失败: maxCost must be positive, got %d", maxCost)
	}
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        maxCost * 10, // 官方建议为条目数的 10 倍
		MaxCost:            maxCost,
		BufferItems:        64,
		IgnoreInternalCost: true, // 成本按条数计
	})
	if err != nil {
		return nil, fmt.Errorf("创建 ristretto 缓存失败: %w", err)
	}

	return &ResultCache{
		cache: cache,
		ttl:   ttl,
	}, nil
}

// Key 手牌计数签名 + 影响计分的场况
// 花牌只按张数计分，所以只取张数
func Key(hand mahjong.Hand, ctx mahjong.EvaluationContext) string {
	var b strings.Builder
	b.WriteString(hand.Counts().Key())
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(hand.Len()))
	b.WriteByte('|')
	b.WriteString(ctx.SeatWind.String())
	b.WriteByte('|')
	b.WriteString(ctx.PrevailingWind.String())
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(ctx.BonusCount()))
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(ctx.SelfDrawn))
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(ctx.Concealed))
	return b.String()
}

// Set 设置缓存，使用默认 TTL
func (c *ResultCache) Set(key string, value mahjong.EvaluationResult) bool {
	return c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL 设置缓存，指定 TTL
func (c *ResultCache) SetWithTTL(key string, value mahjong.EvaluationResult, ttl time.Duration) bool {
	return c.cache.SetWithTTL(key, value, 1, ttl)
}

// Get 获取缓存
func (c *ResultCache) Get(key string) (mahjong.EvaluationResult, bool) {
	value, ok := c.cache.Get(key)
	if !ok {
		return mahjong.EvaluationResult{}, false
	}
	r, ok := value.(mahjong.EvaluationResult)
	return r, ok
}

// Wait 等待写缓冲落地，写入后立刻读取时使用
func (c *ResultCache) Wait() {
	c.cache.Wait()
}

// Delete 删除缓存
func (c *ResultCache) Delete(key string) {
	c.cache.Del(key)
}

// Close 关闭缓存
func (c *ResultCache) Close() {
	c.cache.Close()
}
