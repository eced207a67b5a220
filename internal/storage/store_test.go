package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pingline/internal/latency"
	"pingline/internal/probe"
	"pingline/internal/stats"
)

func sampleRecord(t *testing.T) SessionRecord {
	t.Helper()
	outcomes := []probe.Outcome{
		{
			RequestNumber: 1,
			Latency:       120,
			Timestamp:     time.Now(),
			StatusCode:    200,
			Success:       true,
			Category:      latency.TierFast,
		},
		{
			RequestNumber: 2,
			Latency:       45,
			Timestamp:     time.Now(),
			ErrorMessage:  "request timed out after 45ms",
		},
	}
	return NewRecord("http://example.com/health", time.Now(), RunConfig{
		RequestCount: 2,
		Timeout:      5000,
		DelayMs:      100,
	}, outcomes, stats.Aggregate(outcomes))
}

func TestAppendToMissingStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	s := NewStore(path)

	rec := sampleRecord(t)
	require.NoError(t, s.Append(rec))

	got := s.List()
	require.Len(t, got, 1)
	assert.Equal(t, rec.SessionID, got[0].SessionID)
	assert.Equal(t, "http://example.com/health", got[0].APIURL)
	require.Len(t, got[0].Results, 2)
}

func TestAppendPreservesExistingRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	s := NewStore(path)

	first := sampleRecord(t)
	second := sampleRecord(t)
	require.NoError(t, s.Append(first))
	require.NoError(t, s.Append(second))

	got := s.List()
	require.Len(t, got, 2)
	assert.Equal(t, first.SessionID, got[0].SessionID)
	assert.Equal(t, second.SessionID, got[1].SessionID)
	assert.Equal(t, first.Summary, got[0].Summary)
}

func TestAppendHealsMalformedStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{this is not json"), 0644))

	s := NewStore(path)
	rec := sampleRecord(t)
	require.NoError(t, s.Append(rec))

	got := s.List()
	require.Len(t, got, 1)
	assert.Equal(t, rec.SessionID, got[0].SessionID)
}

func TestAppendHealsNonArrayStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"sessions": []}`), 0644))

	s := NewStore(path)
	require.NoError(t, s.Append(sampleRecord(t)))

	got := s.List()
	require.Len(t, got, 1)
}

func TestAppendHealsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	s := NewStore(path)
	require.NoError(t, s.Append(sampleRecord(t)))
	require.Len(t, s.List(), 1)
}

func TestAppendCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.json")
	s := NewStore(path)

	require.NoError(t, s.Append(sampleRecord(t)))
	require.Len(t, s.List(), 1)
}

func TestPersistedKeyNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	s := NewStore(path)
	require.NoError(t, s.Append(sampleRecord(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)

	for _, key := range []string{"sessionId", "timestamp", "apiUrl", "configuration", "evaluationCriteria", "results", "summary"} {
		assert.Contains(t, raw[0], key)
	}

	var cfg map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw[0]["configuration"], &cfg))
	for _, key := range []string{"requestCount", "timeout", "delayMs"} {
		assert.Contains(t, cfg, key)
	}

	var results []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw[0]["results"], &results))
	require.Len(t, results, 2)
	for _, key := range []string{"requestNumber", "latency", "timestamp", "statusCode", "success"} {
		assert.Contains(t, results[0], key)
	}
	assert.Contains(t, results[0], "category")      // success carries a tier
	assert.Contains(t, results[1], "errorMessage")  // failure carries a message
	assert.NotContains(t, results[1], "category")   // but no tier
	assert.NotContains(t, results[0], "errorMessage")

	var summary map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw[0]["summary"], &summary))
	for _, key := range []string{"totalRequests", "successfulRequests", "failedRequests", "averageLatency", "minLatency", "maxLatency", "successRate", "averageCategory"} {
		assert.Contains(t, summary, key)
	}
}

func TestNewRecordGeneratesUniqueIDs(t *testing.T) {
	a := sampleRecord(t)
	b := sampleRecord(t)
	assert.NotEmpty(t, a.SessionID)
	assert.NotEqual(t, a.SessionID, b.SessionID)
	assert.Len(t, a.SessionID, 36) // uuid-v4 shape
}
