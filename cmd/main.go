package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ocean-rag/internal/chunker"
	"ocean-rag/internal/config"
	"ocean-rag/internal/embedding"
	"ocean-rag/internal/helper"
	"ocean-rag/internal/index"
	"ocean-rag/internal/llmservice"
	"ocean-rag/internal/models"
	"ocean-rag/internal/parser"
	"ocean-rag/internal/rag"
)

const configFilePath = "./configs/config.yaml"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()

	_ = godotenv.Load()

	filePath := flag.String("file", "", "Path to the PDF document to ingest")
	query := flag.String("query", "", "Question to be answered")
	lang := flag.String("lang", "en", "Answer language: en, hi, ar, ml")
	cfgPath := flag.String("config", configFilePath, "Path to the config file")
	dryRun := flag.Bool("dry-run", false, "Chunk the document and print the chunks, no network calls")
	flag.Parse()

	if *filePath == "" && *query == "" {
		log.Fatal().Msg("Please provide a document using the -file flag, a question using the -query flag, or both")
	}

	cfg, err := config.LoadConfig(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}

	ctx := context.Background()

	if *dryRun {
		if *filePath == "" {
			log.Fatal().Msg("Dry run requires a document file")
		}
		dryRunChunks(*filePath, cfg)
		return
	}

	embedder, err := embedding.NewGoogleAIEmbedder(ctx, &cfg.EmbedLLM)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing embedder")
	}
	generator, err := llmservice.NewGoogleAIClient(ctx, &cfg.InferenceLLM)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing generation client")
	}

	pipeline := rag.NewRAG(parser.NewPDFExtractor(), embedder, generator, cfg)
	store := index.NewStore()

	if *filePath != "" {
		data, err := os.ReadFile(*filePath)
		if err != nil {
			log.Fatal().Err(err).Msg("Error reading document file")
		}
		idx, err := pipeline.Ingest(ctx, data, models.MimeTypePDF)
		if err != nil {
			log.Fatal().Err(err).Msg("Error ingesting document")
		}
		store.Publish(idx)
	}

	if *query == "" {
		return
	}

	mode := rag.Unrestricted()
	if idx := store.Current(); idx != nil {
		mode = rag.Grounded(idx)
	}

	answer, err := pipeline.Query(ctx, *query, mode, models.ParseLanguage(*lang))
	if err != nil {
		log.Fatal().Err(err).Msg("Error querying")
	}

	log.Info().Msg("Query: ~~~~~~~~~~~~~~~~~~~~~~~~~>>>>>")
	fmt.Printf("%s\n\n", answer.Query)

	if len(answer.Sources) > 0 {
		log.Info().Msg("Sources: ~~~~~~~~~~~~~~~~~~~~~~~~~>>>>>")
		for _, src := range answer.Sources {
			fmt.Printf("[chunk %d] %s\n\n", src.Seq, src.Text)
		}
	}

	log.Info().Msg("Assistant: ~~~~~~~~~~~~~~~~~~~~~~~~~>>>>>")
	fmt.Printf("%s\n\n", answer.Content)
}

// dryRunChunks extracts and chunks the document locally so the chunk
// boundaries can be inspected before spending embedding calls.
func dryRunChunks(filePath string, cfg *config.Config) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error reading document file")
	}

	text, err := parser.NewPDFExtractor().ExtractText(data, models.MimeTypePDF)
	if err != nil {
		log.Fatal().Err(err).Msg("Error extracting document text")
	}

	texts, err := chunker.Chunk(text, cfg.RAG.ChunkSize, cfg.RAG.ChunkOverlap)
	if err != nil {
		log.Fatal().Err(err).Msg("Error chunking document")
	}

	log.Info().Int("chunks", len(texts)).Msg("Chunked document")
	helper.PrettyPrint(chunker.ToChunks(texts))
}
