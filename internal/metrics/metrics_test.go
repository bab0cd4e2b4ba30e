package metrics_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cognasim/internal/metrics"
	"github.com/katalvlaran/cognasim/simulate"
)

func TestRecorder_CountsFeaturesAndReplicates(t *testing.T) {
	r := metrics.New()

	d, err := simulate.NewDollo(6, 7,
		simulate.WithSeed(1),
		simulate.WithOnFeature(r.ObserveFeature),
	)
	require.NoError(t, err)
	_, err = d.Generate()
	r.ObserveReplicate(simulate.ModelDollo, err)
	r.ObserveReplicate(simulate.ModelDollo, errors.New("boom"))

	require.Equal(t, 7.0, testutil.ToFloat64(r.Features(simulate.ModelDollo)))
	require.Equal(t, 1.0, testutil.ToFloat64(r.Replicates(simulate.ModelDollo, true)))
	require.Equal(t, 1.0, testutil.ToFloat64(r.Replicates(simulate.ModelDollo, false)))
	require.Equal(t, 0.0, testutil.ToFloat64(r.Features(simulate.ModelSwamp)))
}

func TestRecorder_WriteFile(t *testing.T) {
	r := metrics.New()
	r.ObserveFeature(simulate.FeatureStats{Model: simulate.ModelSwamp, Classes: 3})

	path := filepath.Join(t.TempDir(), "cognasim.prom")
	require.NoError(t, r.WriteFile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), `cognasim_features_generated_total{model="swamp"} 1`)
	require.Contains(t, string(raw), `cognasim_classes_per_feature_count{model="swamp"} 1`)
}
