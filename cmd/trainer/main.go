// Package main provides the trainer binary: a newline-delimited JSON loop
// that reads battle snapshots on stdin and writes chosen actions on stdout.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TheoKim/llm-pokemon-trainer/internal/advisor"
	"github.com/TheoKim/llm-pokemon-trainer/internal/battle"
	"github.com/TheoKim/llm-pokemon-trainer/internal/config"
	"github.com/TheoKim/llm-pokemon-trainer/internal/dex"
	"github.com/TheoKim/llm-pokemon-trainer/internal/engine"
	"github.com/TheoKim/llm-pokemon-trainer/internal/observability"
)

// request is one stdin line: a turn to decide, or a battle-end notice.
type request struct {
	BattleID uuid.UUID `json:"battle_id"`
	// Event is "turn" (default) or "end".
	Event    string           `json:"event,omitempty"`
	Snapshot *battle.Snapshot `json:"snapshot,omitempty"`
}

// response is one stdout line.
type response struct {
	BattleID uuid.UUID `json:"battle_id"`
	Action   string    `json:"action,omitempty"`
	Pass     bool      `json:"pass,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// Snapshot lines can carry full teams with move lists.
const maxLineBytes = 4 << 20

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	catalog := dex.DefaultCatalog()
	if cfg.Engine.CatalogPath != "" {
		catalog, err = dex.LoadCatalogFile(cfg.Engine.CatalogPath)
		if err != nil {
			logger.Fatal("loading move catalogue", zap.Error(err))
		}
	}

	factory := func() engine.Advisor {
		return advisor.NewAnthropic(advisor.AnthropicOptions{
			Model:     cfg.Advisor.Model,
			MaxTokens: cfg.Advisor.MaxTokens,
		})
	}
	manager := engine.NewManager(logger, factory, catalog, engine.DeciderOptions{
		AdvisorTimeout: cfg.Advisor.Timeout,
		MaxRetries:     cfg.Advisor.MaxRetries,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("trainer started", zap.String("model", cfg.Advisor.Model))
	if err := run(ctx, logger, manager, cfg.Engine); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("trainer loop", zap.Error(err))
	}
	logger.Info("trainer stopped", zap.Int("live_battles", manager.Count()))
}

func run(ctx context.Context, logger *zap.Logger, manager *engine.Manager, engCfg config.EngineConfig) error {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	out := json.NewEncoder(os.Stdout)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			logger.Warn("malformed request line", zap.Error(err))
			if err := out.Encode(response{Error: fmt.Sprintf("malformed request: %v", err)}); err != nil {
				return fmt.Errorf("writing response: %w", err)
			}
			continue
		}

		resp := handle(ctx, logger, manager, engCfg, req)
		if err := out.Encode(resp); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return ctx.Err()
}

func handle(ctx context.Context, logger *zap.Logger, manager *engine.Manager, engCfg config.EngineConfig, req request) response {
	if req.BattleID == uuid.Nil {
		return response{Error: "missing battle_id"}
	}

	if req.Event == "end" {
		manager.Remove(req.BattleID)
		return response{BattleID: req.BattleID, Pass: true}
	}

	if req.Snapshot == nil {
		return response{BattleID: req.BattleID, Error: "missing snapshot"}
	}

	snap, err := engine.AwaitActions(ctx, func() *battle.Snapshot { return req.Snapshot },
		engCfg.ActionWaitInterval, engCfg.ActionWaitMax)
	if err != nil {
		logger.Warn("snapshot never offered a legal action",
			zap.String("battle", req.BattleID.String()), zap.Error(err))
		return response{BattleID: req.BattleID, Pass: true}
	}

	decider := manager.Ensure(req.BattleID)

	start := time.Now()
	decision, err := decider.Decide(ctx, snap)
	if err != nil {
		return response{BattleID: req.BattleID, Error: err.Error()}
	}
	logger.Debug("turn decided",
		zap.String("battle", req.BattleID.String()),
		zap.Int("turn", snap.Turn),
		zap.Bool("pass", decision.Pass),
		zap.Duration("elapsed", time.Since(start)))

	if decision.Pass {
		return response{BattleID: req.BattleID, Pass: true}
	}
	return response{BattleID: req.BattleID, Action: decision.Action.String()}
}
