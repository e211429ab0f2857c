// crewcall — job-board decision core exposed as an MCP tool server.
//
// Exposes four tools: candidate_rank, campaign_estimate, application_draft,
// job_match_score. All page rendering, persistence, and SMS delivery live in
// other services; this process only computes.
package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/craftly/crewcall/internal/boardserver"
	"github.com/craftly/crewcall/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8895")
)

func main() {
	initEngine()

	slog.Info("starting crewcall",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "crewcall",
		Version: version,
	}, nil)

	boardserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 4))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "crewcall",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		LLMAPIKey:      env.Str("LLM_API_KEY", ""),
		LLMAPIBase:     env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:       env.Str("LLM_MODEL", "gemini-2.5-flash"),
		LLMTemperature: env.Float("LLM_TEMPERATURE", 0.4),
		LLMMaxTokens:   env.Int("LLM_MAX_TOKENS", 2048),
	}

	if c.LLMAPIKey != "" {
		c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
			llm.WithMaxTokens(c.LLMMaxTokens),
			llm.WithTemperature(c.LLMTemperature),
			llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
		)
		slog.Info("LLM answer synthesis enabled", slog.String("model", c.LLMModel))
	} else {
		slog.Info("no LLM_API_KEY set, using rule-based answer synthesis")
	}

	engine.Init(c)
}
