package profiler

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfiler_RecordsInOrder(t *testing.T) {
	p := New()

	p.recordOperationTime("load", 3*time.Millisecond)
	p.recordOperationTime("fit", 1*time.Millisecond)
	p.recordOperationTime("fit", 5*time.Millisecond)

	stats := p.Stats()
	require.Len(t, stats, 2)

	assert.Equal(t, "load", stats[0].Name)
	assert.Equal(t, int64(1), stats[0].Count)

	assert.Equal(t, "fit", stats[1].Name)
	assert.Equal(t, int64(2), stats[1].Count)
	assert.Equal(t, 6*time.Millisecond, stats[1].Total)
	assert.Equal(t, 1*time.Millisecond, stats[1].Min)
	assert.Equal(t, 5*time.Millisecond, stats[1].Max)
	assert.Equal(t, 3*time.Millisecond, stats[1].Avg())
}

func TestProfiler_StartOperation(t *testing.T) {
	p := New()
	stop := p.StartOperation("encode")
	stop()

	stats := p.Stats()
	require.Len(t, stats, 1)
	assert.Equal(t, "encode", stats[0].Name)
	assert.GreaterOrEqual(t, stats[0].Total, time.Duration(0))
}

func TestProfiler_Slowest(t *testing.T) {
	p := New()
	p.recordOperationTime("a", 1*time.Millisecond)
	p.recordOperationTime("b", 9*time.Millisecond)
	p.recordOperationTime("c", 4*time.Millisecond)

	slowest := p.Slowest(2)
	require.Len(t, slowest, 2)
	assert.Equal(t, "b", slowest[0].Name)
	assert.Equal(t, "c", slowest[1].Name)
}

func TestProfiler_NilIsNoop(t *testing.T) {
	var p *Profiler
	assert.NotPanics(t, func() {
		p.StartOperation("x")()
		p.Report(&bytes.Buffer{})
	})
	assert.Nil(t, p.Stats())
}

func TestProfiler_Report(t *testing.T) {
	p := New()
	p.recordOperationTime("load", time.Millisecond)
	p.recordOperationTime("fit", time.Millisecond)
	p.recordOperationTime("fit", time.Millisecond)

	var buf bytes.Buffer
	p.Report(&buf)

	out := buf.String()
	assert.Contains(t, out, "Timings")
	assert.Contains(t, out, "load")
	assert.Contains(t, out, "count=2")
	assert.Contains(t, out, "heap")
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.0 KB", formatBytes(1024))
	assert.Equal(t, "1.5 MB", formatBytes(1536*1024))
}
