package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	GenerateRequests   atomic.Int64
	GenerateErrors     atomic.Int64
	TranscriptRequests atomic.Int64
	TranscriptErrors   atomic.Int64
	MetadataRequests   atomic.Int64
	MetadataErrors     atomic.Int64
	HookRequests       atomic.Int64
	EnhanceRequests    atomic.Int64
	PulseRequests      atomic.Int64
	PersistErrors      atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"generate_requests":   metrics.GenerateRequests.Load(),
		"generate_errors":     metrics.GenerateErrors.Load(),
		"transcript_requests": metrics.TranscriptRequests.Load(),
		"transcript_errors":   metrics.TranscriptErrors.Load(),
		"metadata_requests":   metrics.MetadataRequests.Load(),
		"metadata_errors":     metrics.MetadataErrors.Load(),
		"hook_requests":       metrics.HookRequests.Load(),
		"enhance_requests":    metrics.EnhanceRequests.Load(),
		"pulse_requests":      metrics.PulseRequests.Load(),
		"persist_errors":      metrics.PersistErrors.Load(),
		"cache_hits":          hits,
		"cache_misses":        misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"generate_requests", "generate_errors",
		"transcript_requests", "transcript_errors",
		"metadata_requests", "metadata_errors",
		"hook_requests", "enhance_requests", "pulse_requests",
		"persist_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for content/ sub-package.
func IncrGenerateRequests() { metrics.GenerateRequests.Add(1) }
func IncrGenerateErrors()   { metrics.GenerateErrors.Add(1) }
func IncrHookRequests()     { metrics.HookRequests.Add(1) }
func IncrEnhanceRequests()  { metrics.EnhanceRequests.Add(1) }
func IncrPulseRequests()    { metrics.PulseRequests.Add(1) }
func IncrPersistErrors()    { metrics.PersistErrors.Add(1) }

// Incrementors for sources/ sub-package.
func IncrTranscriptRequests() { metrics.TranscriptRequests.Add(1) }
func IncrTranscriptErrors()   { metrics.TranscriptErrors.Add(1) }
func IncrMetadataRequests()   { metrics.MetadataRequests.Add(1) }
func IncrMetadataErrors()     { metrics.MetadataErrors.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
