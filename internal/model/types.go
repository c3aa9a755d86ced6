// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	MaxLength int
	Theme     string
	ASCIIOnly bool
}

// ChunkResult captures a completed chunk.
type ChunkResult struct {
	Book       string
	ChunkIndex int
	StartedAt  time.Time
	EndedAt    time.Time
	Words      int
	Correct    int
	Incorrect  int
	DurationMs int64
}

// CharStats stores per-character stats for a chunk.
type CharStats struct {
	Char         string
	Correct      int
	Incorrect    int
	LatencySumMs int64
	LatencyCount int64
}

// CharAggregate aggregates character stats across chunks.
type CharAggregate struct {
	Char         string
	Correct      int
	Incorrect    int
	LatencySumMs int64
	LatencyCount int64
}

// ChunkAggregate summarizes a stored chunk result for reporting.
type ChunkAggregate struct {
	ResultID   int64
	ChunkIndex int
	EndedAt    time.Time
	Words      int
	Correct    int
	Incorrect  int
	DurationMs int64
}
