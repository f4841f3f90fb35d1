package app

import (
	"context"
	"fmt"
	"io"
	"sync"

	"gomahjong/common/cache"
	"gomahjong/common/config"
	"gomahjong/common/log"
	"gomahjong/runtime/game/engines"
	"gomahjong/runtime/game/engines/mahjong"
)

// Result 一个请求的评估结果
type Result struct {
	ID     string
	Hand   mahjong.Hand
	Result mahjong.EvaluationResult
	Cached bool
}

// Service 批量评估：按配置选引擎，多个 worker 并发，重复请求走缓存
type Service struct {
	engine  engines.Engine
	cache   *cache.ResultCache
	workers int
}

func NewService(cfg config.ScorerConfiguration) (*Service, error) {
	engine, err := engines.NewEngine(cfg.Engine)
	if err != nil {
		return nil, err
	}

	s := &Service{engine: engine, workers: cfg.Workers}
	if s.workers < 1 {
		s.workers = 1
	}
	if cfg.Cache.Enabled {
		c, err := cache.NewResultCache(cfg.Cache.MaxCost, cfg.Cache.TTLDuration())
		if err != nil {
			return nil, err
		}
		s.cache = c
	}
	return s, nil
}

func (s *Service) Close() {
	if s.cache != nil {
		s.cache.Close()
	}
}

// Evaluate 结果顺序与请求顺序一致
func (s *Service) Evaluate(ctx context.Context, reqs []Request) ([]Result, error) {
	out := make([]Result, len(reqs))
	jobs := make(chan int)

	workers := s.workers
	if workers > len(reqs) {
		workers = len(reqs)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = s.evaluateOne(reqs[i])
			}
		}()
	}

	var err error
feed:
	for i := range reqs {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) evaluateOne(req Request) Result {
	var key string
	if s.cache != nil {
		key = cache.Key(req.Hand, req.Ctx)
		if r, ok := s.cache.Get(key); ok {
			log.Debug("trace=%s 命中缓存 %s", req.ID, r.HandType)
			return Result{ID: req.ID, Hand: req.Hand, Result: r, Cached: true}
		}
	}

	r := s.engine.Evaluate(req.Hand, req.Ctx)
	log.Debug("trace=%s engine=%s outcome=%s type=%s total=%d", req.ID, s.engine.Name(), r.Outcome, r.HandType, r.Total())

	if s.cache != nil {
		s.cache.Set(key, r)
	}
	return Result{ID: req.ID, Hand: req.Hand, Result: r}
}

// Run 读入请求、评估、输出
func Run(ctx context.Context, cfg config.ScorerConfiguration, reqs []Request, w io.Writer, asJSON bool) error {
	svc, err := NewService(cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	log.Info("评估 %d 个请求，engine=%s workers=%d cache=%v", len(reqs), cfg.Engine, svc.workers, cfg.Cache.Enabled)
	results, err := svc.Evaluate(ctx, reqs)
	if err != nil {
		return fmt.Errorf("评估被中断: %w", err)
	}

	if asJSON {
		return RenderJSON(w, results)
	}
	return RenderText(w, results)
}
