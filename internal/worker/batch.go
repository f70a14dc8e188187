package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/veritaslabs/veritas/internal/model"
)

// Verifier defines the interface for verifying a single text
type Verifier interface {
	Verify(ctx context.Context, text string) *model.VerificationResult
}

// BatchResult pairs one input text with its verification outcome. A text
// the batch never got to verify (cancelled or timed-out batch) carries a
// nil Result and a non-empty Error instead of a fabricated zero score.
type BatchResult struct {
	Index  int                       `json:"index"`
	Text   string                    `json:"text"`
	Result *model.VerificationResult `json:"result,omitempty"`
	Error  string                    `json:"error,omitempty"`
}

// BatchProcessor verifies multiple texts concurrently
type BatchProcessor struct {
	verifier    Verifier
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(verifier Verifier, concurrency int) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &BatchProcessor{
		verifier:    verifier,
		concurrency: concurrency,
	}
}

// ProcessTexts verifies multiple texts concurrently. Results hold the input
// order: each text's result lands at its own index.
func (b *BatchProcessor) ProcessTexts(ctx context.Context, texts []string) []BatchResult {
	if len(texts) == 0 {
		return []BatchResult{}
	}

	results := make([]BatchResult, len(texts))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, b.concurrency)

	for i, text := range texts {
		wg.Add(1)
		go func(idx int, text string) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results[idx] = cancelledResult(idx, text, ctx.Err())
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			// The semaphore may win the race against an already-done
			// context; re-check before burning a verification.
			if err := ctx.Err(); err != nil {
				results[idx] = cancelledResult(idx, text, err)
				return
			}

			results[idx] = BatchResult{
				Index:  idx,
				Text:   text,
				Result: b.verifier.Verify(ctx, text),
			}
		}(i, text)
	}

	wg.Wait()

	return results
}

func cancelledResult(idx int, text string, err error) BatchResult {
	return BatchResult{
		Index: idx,
		Text:  text,
		Error: fmt.Sprintf("batch cancelled before verification: %v", err),
	}
}

// ProcessFile reads texts from a file and verifies them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]BatchResult, error) {
	texts, err := ReadTextsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read texts: %w", err)
	}

	return b.ProcessTexts(ctx, texts), nil
}

// ReadTextsFromFile reads texts from a file (one per line). Blank lines and
// lines starting with # are skipped.
func ReadTextsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var texts []string

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		texts = append(texts, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return texts, nil
}
