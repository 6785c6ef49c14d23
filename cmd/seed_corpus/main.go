package main

import (
	"log"
	"os"
	"path/filepath"

	"ai-research-be/internal/config"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Sample knowledge files so the local retrieval source has something to
// rank during development. Real deployments drop their own .txt files
// into the corpus directory.
var corpusFiles = map[string]string{
	"langgraph_basics.txt": `LangGraph-style pipelines model an agent as a small directed graph of nodes.
Each node consumes the shared state, performs one task such as retrieval or
summarization, and writes its result back. Keeping nodes small makes the
pipeline easy to test and to reorder.`,

	"retrieval_tips.txt": `Retrieval quality depends more on corpus hygiene than on scoring tricks.
Keep documents short and focused, dedupe aggressively, and always cap the
number of documents fed to the model. Bag-of-words overlap is a workable
baseline ranking for small corpora.`,

	"session_memory.txt": `A cheap alternative to full conversation logs is a one-step memory window:
store only the last summary and feed it as context into the next call.
Sessions stay small and the model still keeps short-term continuity.`,
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	cfg := config.Load()
	dir := cfg.Retrieval.CorpusDir

	color.Cyan("Seeding knowledge corpus into %s", dir)

	if err := os.MkdirAll(dir, 0755); err != nil {
		color.Red("Failed to create corpus directory: %v", err)
		os.Exit(1)
	}

	for name, content := range corpusFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			color.Yellow("Skip %s (already exists)", name)
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			color.Red("Failed to write %s: %v", name, err)
			os.Exit(1)
		}
		color.Green("Wrote %s", name)
	}

	color.Cyan("Done.")
}
