//go:build !integration

package artifact

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"testing"

	"vpnAdvisor/business/recommender"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModel(t *testing.T, dir string, model recommender.LogisticModel) string {
	t.Helper()
	path := filepath.Join(dir, "model.gob")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, gob.NewEncoder(f).Encode(model))
	return path
}

func writeCodecs(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "codecs.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func validModel() recommender.LogisticModel {
	return recommender.LogisticModel{
		Coef:      []float64{0.1, -0.02, 0.5, 0.3, 0.2, 0.4, 0.05},
		Intercept: -0.7,
	}
}

const validCodecs = `{
	"encryption": ["AES-128", "AES-256", "ChaCha20"],
	"handshake_encryption": ["ECDHE-RSA", "RSA-4096"],
	"logging_policy": ["full_logs", "no_logs", "partial_logs"]
}`

func TestStoreLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(
		writeModel(t, dir, validModel()),
		writeCodecs(t, dir, validCodecs),
	)

	require.NoError(t, store.Load())

	est := store.Estimator()
	require.NotNil(t, est)
	prob, err := est.Estimate([recommender.FeatureDim]float64{})
	require.NoError(t, err)
	assert.Greater(t, prob, 0.0)
	assert.Less(t, prob, 1.0)

	codecs := store.Codecs()
	require.NotNil(t, codecs)
	assert.True(t, codecs.Complete())
	assert.Equal(t, 1, codecs.Encryption.Encode("AES-256"))
	assert.Equal(t, recommender.UnknownCode, codecs.Encryption.Encode("Quantum-XL"))
}

func TestStoreLoadMissingModel(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(
		filepath.Join(dir, "missing.gob"),
		writeCodecs(t, dir, validCodecs),
	)

	err := store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open model artifact")
	assert.Nil(t, store.Estimator(), "failed load must not publish artifacts")
}

func TestStoreLoadWrongCoefficientCount(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(
		writeModel(t, dir, recommender.LogisticModel{Coef: []float64{1, 2, 3}}),
		writeCodecs(t, dir, validCodecs),
	)

	err := store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coefficients")
}

func TestStoreLoadEmptyCodecClasses(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(
		writeModel(t, dir, validModel()),
		writeCodecs(t, dir, `{"encryption": [], "handshake_encryption": ["RSA-4096"], "logging_policy": ["no_logs"]}`),
	)

	err := store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing trained classes")
}

func TestStoreReloadReplacesArtifacts(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeModel(t, dir, validModel())
	codecsPath := writeCodecs(t, dir, validCodecs)

	store := NewStore(modelPath, codecsPath)
	require.NoError(t, store.Load())
	first := store.Estimator()

	writeModel(t, dir, recommender.LogisticModel{
		Coef:      []float64{1, 1, 1, 1, 1, 1, 1},
		Intercept: 0,
	})
	require.NoError(t, store.Load())

	assert.NotSame(t, first, store.Estimator())
}
