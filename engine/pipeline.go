package engine

import (
	"reflect"
	"time"
)

// PipelineStats provides statistics about pipeline execution.
type PipelineStats struct {
	StageCount      int
	TotalExecutions int64
	Stages          []StageStats
}

// StageStats provides execution statistics for a single stage.
type StageStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type stageStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Pipeline executes stages in order and records how long each one takes.
// Timings are diagnostics only and never feed back into the simulation.
type Pipeline struct {
	stages     []Stage
	stageStats []*stageStatsInternal
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{
		stages: make([]Stage, 0),
	}
}

// Register appends a stage.
func (p *Pipeline) Register(stage Stage) {
	if stage == nil {
		panic("engine: nil stage")
	}
	p.stages = append(p.stages, stage)

	stageType := reflect.TypeOf(stage)
	if stageType.Kind() == reflect.Ptr {
		stageType = stageType.Elem()
	}

	p.stageStats = append(p.stageStats, &stageStatsInternal{
		name:        stageType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Execute runs every stage once against frame.
func (p *Pipeline) Execute(frame *Frame) {
	for i, stage := range p.stages {
		start := time.Now()
		stage.Execute(frame)
		duration := time.Since(start)

		stats := p.stageStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
}

// Stats returns statistics about stage execution.
func (p *Pipeline) Stats() *PipelineStats {
	stats := &PipelineStats{
		StageCount: len(p.stages),
		Stages:     make([]StageStats, len(p.stageStats)),
	}

	var totalExecs int64
	for i, internal := range p.stageStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Stages[i] = StageStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
