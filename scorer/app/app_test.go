package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gomahjong/common/config"
	"gomahjong/runtime/dto"
	"gomahjong/runtime/game/engines/mahjong"
)

const batchJSON = `[
{"id": "orphans", "tiles": ["dot_1","dot_9","bamboo_1","bamboo_9","character_1","character_9","east_wind","south_wind","west_wind","north_wind","red_dragon","green_dragon","white_dragon","dot_1"], "concealed": true},
{"id": "short", "tiles": ["dot_1","dot_2","dot_3"]},
{"id": "nowin", "tiles": ["dot_1","dot_2","dot_3","bamboo_1","bamboo_2","bamboo_4","character_7","character_8","character_9","dot_5","dot_6","dot_7","dot_9","dot_9"]},
{"id": "winds", "tiles": ["east_wind","east_wind","east_wind","dot_1","dot_2","dot_3","bamboo_4","bamboo_5","bamboo_6","character_7","character_8","character_9","dot_9","dot_9"]}
]`

func testConfig(cacheEnabled bool) config.ScorerConfiguration {
	cfg := config.Default()
	cfg.Workers = 3
	cfg.Cache.Enabled = cacheEnabled
	return cfg
}

func decodeBatch(t *testing.T) []Request {
	t.Helper()
	reqs, err := DecodeRequests([]byte(batchJSON), eastDefaults)
	if err != nil {
		t.Fatalf("DecodeRequests failed: %v", err)
	}
	return reqs
}

func TestService_EvaluateKeepsOrder(t *testing.T) {
	svc, err := NewService(testConfig(false))
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	defer svc.Close()

	results, err := svc.Evaluate(context.Background(), decodeBatch(t))
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	want := []struct {
		id      string
		outcome mahjong.Outcome
		total   int
	}{
		{"orphans", mahjong.OutcomeWin, 13},
		{"short", mahjong.OutcomeInvalid, 0},
		{"nowin", mahjong.OutcomeNoWin, 0},
		{"winds", mahjong.OutcomeWin, 2},
	}
	for i, w := range want {
		got := results[i]
		if got.ID != w.id || got.Result.Outcome != w.outcome || got.Result.Total() != w.total {
			t.Fatalf("result %d expected %s/%s/%d, got %s/%s/%d", i, w.id, w.outcome, w.total, got.ID, got.Result.Outcome, got.Result.Total())
		}
	}
}

func TestService_CacheHitsOnRepeat(t *testing.T) {
	svc, err := NewService(testConfig(true))
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	defer svc.Close()

	reqs := decodeBatch(t)
	first, err := svc.Evaluate(context.Background(), reqs)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	svc.cache.Wait()

	second, err := svc.Evaluate(context.Background(), reqs)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	for i := range second {
		if !second[i].Cached {
			t.Fatalf("result %d expected a cache hit", i)
		}
		if second[i].Result.HandType != first[i].Result.HandType || second[i].Result.Total() != first[i].Result.Total() {
			t.Fatalf("result %d differs between cached and fresh evaluation", i)
		}
	}
}

func TestService_Cancelled(t *testing.T) {
	svc, err := NewService(testConfig(false))
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	defer svc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Evaluate(ctx, decodeBatch(t)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewService_UnknownEngine(t *testing.T) {
	cfg := testConfig(false)
	cfg.Engine = "riichi"
	if _, err := NewService(cfg); !errors.Is(err, dto.ErrUnknownEngine) {
		t.Fatalf("expected ErrUnknownEngine, got %v", err)
	}
}

func TestRun_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := Run(context.Background(), testConfig(true), decodeBatch(t), &buf, false); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"[orphans] You get 13 Points for Thirteen Orphans Hand",
		"[short] Please select 14 tiles",
		"[nowin] Oh no! You don't have a winning combination",
		"[winds] You get 0 Points for Chicken Hand",
		"Seat wind points",
		"Total",
		"special shape",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRun_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Run(context.Background(), testConfig(false), decodeBatch(t), &buf, true); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var views []ResultView
	if err := json.Unmarshal(buf.Bytes(), &views); err != nil {
		t.Fatalf("output is not json: %v\n%s", err, buf.String())
	}
	if len(views) != 4 {
		t.Fatalf("expected 4 results, got %d", len(views))
	}
	if views[0].HandType != "Thirteen Orphans Hand" || views[0].Score == nil || views[0].Score.Concealed != 0 || views[0].Score.Total != 13 {
		t.Fatalf("unexpected orphans view %+v", views[0])
	}
	if views[1].Outcome != "invalid" || views[1].Score != nil || views[1].Reason != mahjong.ReasonWrongTileCount {
		t.Fatalf("unexpected invalid view %+v", views[1])
	}
	if views[3].Score.SeatWindMeld != 1 || views[3].Score.PrevailingWindMeld != 1 {
		t.Fatalf("expected both wind points, got %+v", views[3].Score)
	}
}
