package sweeper_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchos/curve-engine/internal/logger"
	"github.com/launchos/curve-engine/internal/mocks"
	"github.com/launchos/curve-engine/internal/store/schema"
	"github.com/launchos/curve-engine/internal/sweeper"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func testConfig() *sweeper.RollupConfig {
	return &sweeper.RollupConfig{
		Interval:        time.Hour, // long enough that tests see exactly one cycle
		BatchSize:       100,
		WorkerPoolSize:  2,
		WorkerQueueSize: 8,
	}
}

func newTestClock(ctrl *gomock.Controller) (*mocks.MockClock, time.Time) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()
	clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()
	return clock, now
}

func TestRollupSweeperRefreshesActiveCurves(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	clock, now := newTestClock(ctrl)

	curves := []*schema.Curve{
		{ID: "curve-a", State: schema.CurveStateActive},
		{ID: "curve-b", State: schema.CurveStateActive},
	}

	active := schema.CurveStateActive
	st.EXPECT().ListCurves(gomock.Any(), &active, 100, 0).Return(curves, nil)

	since := now.Add(-24 * time.Hour)
	st.EXPECT().SumTradeVolumeSince(gomock.Any(), "curve-a", since).Return(uint64(500_000_000), nil)
	st.EXPECT().CountDistinctHolders(gomock.Any(), "curve-a").Return(uint64(7), nil)
	st.EXPECT().SumTradeVolumeSince(gomock.Any(), "curve-b", since).Return(uint64(0), nil)
	st.EXPECT().CountDistinctHolders(gomock.Any(), "curve-b").Return(uint64(2), nil)

	updated := make(chan string, 2)
	st.EXPECT().UpdateCurveRollups(gomock.Any(), "curve-a", uint64(500_000_000), uint64(7)).
		DoAndReturn(func(_ context.Context, curveID string, _, _ uint64) error {
			updated <- curveID
			return nil
		})
	st.EXPECT().UpdateCurveRollups(gomock.Any(), "curve-b", uint64(0), uint64(2)).
		DoAndReturn(func(_ context.Context, curveID string, _, _ uint64) error {
			updated <- curveID
			return nil
		})

	cursors := mocks.NewMockCursorStore(ctrl)
	cursors.EXPECT().SetSweepWatermark(gomock.Any(), "volume24h", now).Return(nil)

	s := sweeper.NewRollupSweeper(testConfig(), st, cursors, clock)
	assert.Equal(t, "rollup-sweeper", s.Name())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startDone := make(chan error, 1)
	go func() { startDone <- s.Start(ctx) }()

	for range 2 {
		select {
		case <-updated:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for rollup updates")
		}
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()
	require.NoError(t, s.Stop(stopCtx))
	require.NoError(t, <-startDone)
}

func TestRollupSweeperContinuesAfterRefreshFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	clock, now := newTestClock(ctrl)

	curves := []*schema.Curve{
		{ID: "curve-bad", State: schema.CurveStateActive},
		{ID: "curve-good", State: schema.CurveStateActive},
	}

	active := schema.CurveStateActive
	st.EXPECT().ListCurves(gomock.Any(), &active, 100, 0).Return(curves, nil)

	since := now.Add(-24 * time.Hour)
	st.EXPECT().SumTradeVolumeSince(gomock.Any(), "curve-bad", since).
		Return(uint64(0), assert.AnError)
	st.EXPECT().SumTradeVolumeSince(gomock.Any(), "curve-good", since).Return(uint64(42), nil)
	st.EXPECT().CountDistinctHolders(gomock.Any(), "curve-good").Return(uint64(1), nil)

	updated := make(chan struct{}, 1)
	st.EXPECT().UpdateCurveRollups(gomock.Any(), "curve-good", uint64(42), uint64(1)).
		DoAndReturn(func(_ context.Context, _ string, _, _ uint64) error {
			updated <- struct{}{}
			return nil
		})

	cursors := mocks.NewMockCursorStore(ctrl)
	cursors.EXPECT().SetSweepWatermark(gomock.Any(), "volume24h", now).Return(nil)

	s := sweeper.NewRollupSweeper(testConfig(), st, cursors, clock)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startDone := make(chan error, 1)
	go func() { startDone <- s.Start(ctx) }()

	select {
	case <-updated:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for rollup update")
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()
	require.NoError(t, s.Stop(stopCtx))
	require.NoError(t, <-startDone)
}

func TestRollupSweeperRejectsDoubleStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	clock, _ := newTestClock(ctrl)

	started := make(chan struct{})
	st.EXPECT().ListCurves(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *schema.CurveState, _, _ int) ([]*schema.Curve, error) {
			close(started)
			return nil, nil
		})

	cursors := mocks.NewMockCursorStore(ctrl)
	cursors.EXPECT().SetSweepWatermark(gomock.Any(), "volume24h", gomock.Any()).Return(nil).AnyTimes()

	s := sweeper.NewRollupSweeper(testConfig(), st, cursors, clock)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startDone := make(chan error, 1)
	go func() { startDone <- s.Start(ctx) }()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for sweeper to start")
	}

	assert.Error(t, s.Start(ctx))

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()
	require.NoError(t, s.Stop(stopCtx))
	require.NoError(t, <-startDone)
}

func TestRollupSweeperStopWithoutStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	clock, _ := newTestClock(ctrl)

	s := sweeper.NewRollupSweeper(testConfig(), st, mocks.NewMockCursorStore(ctrl), clock)
	assert.NoError(t, s.Stop(context.Background()))
}
