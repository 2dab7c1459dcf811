package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveConversion(t *testing.T) {
	r := NewRecorder()

	r.ObserveConversion(ResultOK, 12, 3*time.Millisecond)
	r.ObserveConversion(ResultOK, 3, time.Millisecond)
	r.ObserveConversion(ResultSyntaxError, 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.conversions.WithLabelValues(ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.conversions.WithLabelValues(ResultSyntaxError)))
	assert.Equal(t, 15.0, testutil.ToFloat64(r.lines))

	count, err := testutil.GatherAndCount(r.Registry(), "stepc_conversion_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.ObserveConversion(ResultIOError, 0, time.Millisecond)

	path := filepath.Join(t.TempDir(), "stepc.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `stepc_conversions_total{result="io_error"} 1`)
	assert.Contains(t, string(data), "stepc_emitted_lines_total 0")
}
