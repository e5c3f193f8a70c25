package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/notargets/dgeuler1d/DG1D"
	"github.com/notargets/dgeuler1d/InputParameters"
)

func withObservedLogger(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	saved := logger
	logger = zap.New(core)
	t.Cleanup(func() { logger = saved })
	return logs
}

func TestRun1DLimiterHint(t *testing.T) {
	{ // Sod with the default settings has no limiter
		logs := withObservedLogger(t)
		ip := InputParameters.NewInputParameters1D()
		err := Run1D(context.Background(), &Model1D{}, ip)
		require.Error(t, err)
		assert.True(t, errors.Is(err, DG1D.ErrNumericalInstability))
		assert.Equal(t, 1, logs.FilterMessageSnippet("--limit tvb").Len())
	}
	{
		logs := withObservedLogger(t)
		ip := InputParameters.NewInputParameters1D()
		ip.Limiter = "tvb"
		ip.FinalTime = 0.02
		require.NoError(t, Run1D(context.Background(), &Model1D{}, ip))
		assert.Equal(t, 0, logs.FilterMessageSnippet("--limit tvb").Len())
		assert.Equal(t, 1, logs.FilterMessage("Finished").Len())
	}
	assert.Contains(t, OneDCmd.Long, "--limit tvb")
}

func TestRun1DProfileType(t *testing.T) {
	withObservedLogger(t)
	err := Run1D(context.Background(), &Model1D{Profile: "block"}, InputParameters.NewInputParameters1D())
	assert.True(t, errors.Is(err, DG1D.ErrConfiguration))
}
