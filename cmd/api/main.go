package main

import (
	"log"

	"careercompass-backend/internal/llm/gemini"
	"careercompass-backend/internal/shared/config"
	"careercompass-backend/internal/shared/server"
	"careercompass-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.SetDebug(cfg.DebugText)

	client, err := gemini.NewClient(cfg.GeminiAPIKey, cfg.LLMModel)
	if err != nil {
		log.Fatalf("llm client: %v", err)
	}

	r := server.NewRouter(cfg, client)
	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
