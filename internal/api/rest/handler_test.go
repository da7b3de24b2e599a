package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"
	"gorm.io/datatypes"

	"github.com/launchos/curve-engine/internal/api/middleware"
	"github.com/launchos/curve-engine/internal/api/rest"
	"github.com/launchos/curve-engine/internal/domain"
	"github.com/launchos/curve-engine/internal/ledger"
	"github.com/launchos/curve-engine/internal/logger"
	"github.com/launchos/curve-engine/internal/mocks"
	"github.com/launchos/curve-engine/internal/store"
	"github.com/launchos/curve-engine/internal/store/schema"
	"github.com/launchos/curve-engine/internal/transfer"
)

const (
	testAPIKey  = "test-api-key"
	testCurveID = "7b1e9d7c-4f2a-4f60-9e2b-58a4f0b0c9a1"
	testWallet  = "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"
	testOwner   = "4Nd1mYvHGJyYtLkRordnHLQAl2fuXsMdtBkDqIb1uCCJ"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testServer struct {
	router       *gin.Engine
	store        *mocks.MockStore
	publisher    *mocks.MockPublisher
	orchestrator *mocks.MockTemporalOrchestrator
	now          time.Time
}

func newTestServer(t *testing.T) *testServer {
	ctrl := gomock.NewController(t)

	st := mocks.NewMockStore(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)
	orchestrator := mocks.NewMockTemporalOrchestrator(ctrl)
	clock := mocks.NewMockClock(ctrl)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now).AnyTimes()
	clock.EXPECT().Since(gomock.Any()).
		DoAndReturn(func(t time.Time) time.Duration { return now.Sub(t) }).
		AnyTimes()

	builder := transfer.NewBuilder(transfer.Destinations{
		CommunityWallet: "community-wallet",
		BuybackWallet:   "buyback-wallet",
	})
	ldg := ledger.New(st, publisher, clock, builder)

	handler := rest.NewHandler(true, ldg, st, orchestrator, "curve-launch")

	router := gin.New()
	rest.SetupRoutes(router, handler, middleware.AuthConfig{APIKeys: []string{testAPIKey}})

	return &testServer{
		router:       router,
		store:        st,
		publisher:    publisher,
		orchestrator: orchestrator,
		now:          now,
	}
}

func (s *testServer) request(t *testing.T, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "APIKey "+testAPIKey)
	}

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func activeCurve(supply, reserve, holders, version uint64) *schema.Curve {
	return &schema.Curve{
		ID:              testCurveID,
		OwnerWallet:     testOwner,
		Name:            "Test Room",
		Symbol:          "TEST",
		State:           schema.CurveStateActive,
		SupplyKeys:      supply,
		ReserveLamports: reserve,
		HolderCount:     holders,
		FeeTableVersion: string(domain.FeeTableVersionV6),
		CapGrowthBps:    domain.DEFAULT_CAP_GROWTH_BPS,
		Version:         version,
	}
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	recorder := ts.request(t, http.MethodGet, "/health", nil, false)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "ok", body["status"])
}

func TestCreateCurveEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var created store.CreateCurveInput
	ts.store.EXPECT().CreateCurve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreateCurveInput) (*schema.Curve, error) {
			created = input
			return activeCurve(0, 0, 0, 0), nil
		})

	recorder := ts.request(t, http.MethodPost, "/api/v1/curves", map[string]any{
		"owner_wallet": testOwner,
		"name":         "Test Room",
		"symbol":       "TEST",
	}, true)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, testOwner, created.OwnerWallet)
	assert.Equal(t, domain.FeeTableVersionV6, created.FeeTableVersion)
	assert.Equal(t, uint64(domain.DEFAULT_CAP_GROWTH_BPS), created.CapGrowthBps)

	body := decodeBody(t, recorder)
	assert.Equal(t, testCurveID, body["id"])
	assert.Equal(t, "active", body["state"])
}

func TestCreateCurveValidation(t *testing.T) {
	ts := newTestServer(t)

	recorder := ts.request(t, http.MethodPost, "/api/v1/curves", map[string]any{
		"owner_wallet": testOwner,
		"name":         "Test Room",
	}, true)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody(t, recorder)
	errDetail := body["error"].(map[string]any)
	assert.Equal(t, "validation_failed", errDetail["code"])
}

func TestCreateCurveRequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	recorder := ts.request(t, http.MethodPost, "/api/v1/curves", map[string]any{
		"owner_wallet": testOwner,
		"name":         "Test Room",
		"symbol":       "TEST",
	}, false)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetCurveEndpoint(t *testing.T) {
	ts := newTestServer(t)

	ts.store.EXPECT().GetCurveByID(gomock.Any(), testCurveID).
		Return(activeCurve(100, 12_000_000_000, 5, 9), nil)

	recorder := ts.request(t, http.MethodGet, "/api/v1/curves/"+testCurveID, nil, false)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, float64(100), body["supply_keys"])
	assert.Equal(t, "12", body["reserve_sol"])
}

func TestGetCurveNotFound(t *testing.T) {
	ts := newTestServer(t)

	ts.store.EXPECT().GetCurveByID(gomock.Any(), testCurveID).Return(nil, nil)

	recorder := ts.request(t, http.MethodGet, "/api/v1/curves/"+testCurveID, nil, false)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	body := decodeBody(t, recorder)
	errDetail := body["error"].(map[string]any)
	assert.Equal(t, "not_found", errDetail["code"])
}

func TestListCurvesEndpoint(t *testing.T) {
	ts := newTestServer(t)

	active := schema.CurveStateActive
	ts.store.EXPECT().ListCurves(gomock.Any(), &active, 20, 0).
		Return([]*schema.Curve{activeCurve(10, 1_000_000_000, 3, 2)}, nil)

	recorder := ts.request(t, http.MethodGet, "/api/v1/curves?state=active", nil, false)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	items := body["items"].([]any)
	assert.Len(t, items, 1)
}

func TestListCurvesRejectsUnknownState(t *testing.T) {
	ts := newTestServer(t)

	recorder := ts.request(t, http.MethodGet, "/api/v1/curves?state=melted", nil, false)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestBuyEndpoint(t *testing.T) {
	ts := newTestServer(t)

	ts.store.EXPECT().GetCurveByID(gomock.Any(), testCurveID).Return(activeCurve(0, 0, 0, 3), nil)
	ts.store.EXPECT().GetHolder(gomock.Any(), testCurveID, testWallet).Return(nil, nil)
	ts.store.EXPECT().CountAcceptedInteractions(gomock.Any(), testWallet, gomock.Any()).
		Return(uint64(0), nil, nil)
	ts.store.EXPECT().ApplyTrade(gomock.Any(), gomock.Any()).Return(nil)
	ts.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil)

	recorder := ts.request(t, http.MethodPost, "/api/v1/curves/"+testCurveID+"/buy", map[string]any{
		"wallet": testWallet,
		"keys":   2,
	}, true)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "buy", body["side"])
	assert.Equal(t, float64(100_300_000), body["amount_lamports"])
	assert.Equal(t, "0.1003", body["amount_sol"])
	assert.Equal(t, float64(2), body["supply_after"])
}

func TestBuyEndpointCapExceeded(t *testing.T) {
	ts := newTestServer(t)

	// 10 holders at the default growth rate keeps the cap at 2 keys
	ts.store.EXPECT().GetCurveByID(gomock.Any(), testCurveID).
		Return(activeCurve(50, 4_000_000_000, 10, 8), nil)
	ts.store.EXPECT().GetHolder(gomock.Any(), testCurveID, testWallet).
		Return(&schema.CurveHolder{CurveID: testCurveID, Wallet: testWallet, Keys: 2}, nil)

	recorder := ts.request(t, http.MethodPost, "/api/v1/curves/"+testCurveID+"/buy", map[string]any{
		"wallet": testWallet,
		"keys":   1,
	}, true)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	body := decodeBody(t, recorder)
	errDetail := body["error"].(map[string]any)
	assert.Equal(t, "conflict", errDetail["code"])
}

func TestSellEndpointInsufficientKeys(t *testing.T) {
	ts := newTestServer(t)

	ts.store.EXPECT().GetCurveByID(gomock.Any(), testCurveID).
		Return(activeCurve(100, 12_000_000_000, 5, 9), nil)
	ts.store.EXPECT().GetHolder(gomock.Any(), testCurveID, testWallet).Return(nil, nil)

	recorder := ts.request(t, http.MethodPost, "/api/v1/curves/"+testCurveID+"/sell", map[string]any{
		"wallet": testWallet,
		"keys":   2,
	}, true)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestQuoteEndpoint(t *testing.T) {
	ts := newTestServer(t)

	ts.store.EXPECT().GetCurveByID(gomock.Any(), testCurveID).Return(activeCurve(0, 0, 0, 3), nil)

	recorder := ts.request(t, http.MethodPost, "/api/v1/curves/"+testCurveID+"/quote", map[string]any{
		"side": "buy",
		"keys": 2,
	}, false)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, float64(100_300_000), body["amount_lamports"])
	assert.Equal(t, "0.05", body["spot_sol"])
}

func TestQuoteEndpointRejectsBadSide(t *testing.T) {
	ts := newTestServer(t)

	recorder := ts.request(t, http.MethodPost, "/api/v1/curves/"+testCurveID+"/quote", map[string]any{
		"side": "hold",
		"keys": 2,
	}, false)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCanLaunchEndpoint(t *testing.T) {
	ts := newTestServer(t)

	ts.store.EXPECT().GetCurveByID(gomock.Any(), testCurveID).
		Return(activeCurve(99, 12_000_000_000, 5, 9), nil)

	recorder := ts.request(t, http.MethodGet, "/api/v1/curves/"+testCurveID+"/can-launch", nil, false)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["eligible"])
	failures := body["failures"].([]any)
	require.Len(t, failures, 1)
	failure := failures[0].(map[string]any)
	assert.Equal(t, "supply_keys", failure["criterion"])
}

type fakeWorkflowRun struct {
	client.WorkflowRun
	id    string
	runID string
}

func (f fakeWorkflowRun) GetID() string    { return f.id }
func (f fakeWorkflowRun) GetRunID() string { return f.runID }

func TestTriggerLaunchEndpoint(t *testing.T) {
	ts := newTestServer(t)

	ts.store.EXPECT().GetCurveByID(gomock.Any(), testCurveID).
		Return(activeCurve(100, 12_000_000_000, 5, 9), nil)

	var options client.StartWorkflowOptions
	ts.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), testCurveID).
		DoAndReturn(func(_ context.Context, opts client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
			options = opts
			return fakeWorkflowRun{id: opts.ID, runID: "run-1"}, nil
		})

	recorder := ts.request(t, http.MethodPost, "/api/v1/curves/"+testCurveID+"/launch", nil, true)

	assert.Equal(t, http.StatusAccepted, recorder.Code)
	assert.Equal(t, "launch-curve-"+testCurveID, options.ID)
	assert.Equal(t, "curve-launch", options.TaskQueue)

	body := decodeBody(t, recorder)
	assert.Equal(t, "launch-curve-"+testCurveID, body["workflow_id"])
	assert.Equal(t, "run-1", body["run_id"])
}

func TestTriggerLaunchNotEligible(t *testing.T) {
	ts := newTestServer(t)

	ts.store.EXPECT().GetCurveByID(gomock.Any(), testCurveID).
		Return(activeCurve(10, 0, 1, 2), nil)

	recorder := ts.request(t, http.MethodPost, "/api/v1/curves/"+testCurveID+"/launch", nil, true)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestGetLaunchAttemptEndpoint(t *testing.T) {
	ts := newTestServer(t)

	ts.store.EXPECT().GetRunningLaunchAttempt(gomock.Any(), testCurveID).
		Return(&schema.LaunchAttempt{
			ID:         "att-1",
			CurveID:    testCurveID,
			WorkflowID: "launch-curve-" + testCurveID,
			Status:     schema.LaunchAttemptRunning,
			StepCursor: "mint",
		}, nil)

	recorder := ts.request(t, http.MethodGet, "/api/v1/curves/"+testCurveID+"/launch", nil, false)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "running", body["status"])
	assert.Equal(t, "mint", body["step_cursor"])
}

func TestGetLaunchAttemptNone(t *testing.T) {
	ts := newTestServer(t)

	ts.store.EXPECT().GetRunningLaunchAttempt(gomock.Any(), testCurveID).Return(nil, nil)

	recorder := ts.request(t, http.MethodGet, "/api/v1/curves/"+testCurveID+"/launch", nil, false)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetSnapshotEndpoint(t *testing.T) {
	ts := newTestServer(t)

	holders, err := json.Marshal([]schema.SnapshotHolder{
		{Wallet: testWallet, Keys: 60, PctBps: 6000},
		{Wallet: testOwner, Keys: 40, PctBps: 4000},
	})
	require.NoError(t, err)

	ts.store.EXPECT().GetLatestSnapshot(gomock.Any(), testCurveID).
		Return(&schema.CurveSnapshot{
			ID:              "snap-1",
			CurveID:         testCurveID,
			AttemptID:       "att-1",
			SupplyKeys:      100,
			ReserveLamports: 12_000_000_000,
			Holders:         datatypes.JSON(holders),
			Checksum:        "abc123",
		}, nil)

	recorder := ts.request(t, http.MethodGet, "/api/v1/curves/"+testCurveID+"/snapshot", nil, false)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, float64(100), body["supply_keys"])
	assert.Equal(t, "12", body["reserve_sol"])
	assert.Equal(t, "abc123", body["checksum"])
	snapHolders, ok := body["holders"].([]any)
	require.True(t, ok)
	assert.Len(t, snapHolders, 2)
}

func TestGetSnapshotNone(t *testing.T) {
	ts := newTestServer(t)

	ts.store.EXPECT().GetLatestSnapshot(gomock.Any(), testCurveID).Return(nil, nil)

	recorder := ts.request(t, http.MethodGet, "/api/v1/curves/"+testCurveID+"/snapshot", nil, false)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestListHoldersEndpoint(t *testing.T) {
	ts := newTestServer(t)

	ts.store.EXPECT().ListHolders(gomock.Any(), testCurveID).
		Return([]*schema.CurveHolder{
			{CurveID: testCurveID, Wallet: testWallet, Keys: 3, AvgPriceLamports: 51_000_000},
		}, nil)

	recorder := ts.request(t, http.MethodGet, "/api/v1/curves/"+testCurveID+"/holders", nil, false)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	holder := items[0].(map[string]any)
	assert.Equal(t, testWallet, holder["wallet"])
	assert.Equal(t, float64(3), holder["keys"])
}

func TestGetStatsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	ts.store.EXPECT().GetCurveByID(gomock.Any(), testCurveID).
		Return(activeCurve(100, 12_000_000_000, 5, 9), nil)
	ts.store.EXPECT().SumTradeVolumeSince(gomock.Any(), testCurveID, gomock.Any()).
		Return(uint64(500_000_000), nil)
	ts.store.EXPECT().GetLastEventBefore(gomock.Any(), testCurveID, gomock.Any()).
		Return(nil, nil)

	recorder := ts.request(t, http.MethodGet, "/api/v1/curves/"+testCurveID+"/stats", nil, false)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, float64(500_000_000), body["volume_lamports"])
	assert.Equal(t, "0.08", body["spot_sol"])
	assert.Equal(t, float64(8_000_000_000), body["market_cap_lamports"])
	assert.Equal(t, float64(6000), body["price_change_bps"])
}

func TestRecordInteractionEndpoint(t *testing.T) {
	ts := newTestServer(t)

	lastAccepted := ts.now.Add(-time.Hour)
	ts.store.EXPECT().CreateAcceptedInteraction(gomock.Any(), testWallet, "peer-wallet").Return(nil)
	ts.store.EXPECT().CountAcceptedInteractions(gomock.Any(), testWallet, gomock.Any()).
		Return(uint64(10), &lastAccepted, nil)

	recorder := ts.request(t, http.MethodPost, "/api/v1/wallets/"+testWallet+"/interactions", map[string]any{
		"peer_wallet": "peer-wallet",
	}, true)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["active"])
}

func TestGetHallPassEndpoint(t *testing.T) {
	ts := newTestServer(t)

	ts.store.EXPECT().CountAcceptedInteractions(gomock.Any(), testWallet, gomock.Any()).
		Return(uint64(3), nil, nil)

	recorder := ts.request(t, http.MethodGet, "/api/v1/wallets/"+testWallet+"/hall-pass", nil, false)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["active"])
}

func TestGetStreakEndpoint(t *testing.T) {
	ts := newTestServer(t)

	ts.store.EXPECT().GetWalletTradeTimes(gomock.Any(), testWallet, gomock.Any()).
		Return([]time.Time{ts.now.Add(-2 * time.Hour)}, nil)

	recorder := ts.request(t, http.MethodGet, "/api/v1/wallets/"+testWallet+"/streak", nil, false)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["active"])
	assert.Equal(t, float64(1), body["length"])
}

func TestTriggerFlashRewardEndpoint(t *testing.T) {
	ts := newTestServer(t)

	ts.store.EXPECT().GetCurveByID(gomock.Any(), testCurveID).
		Return(activeCurve(100, 12_000_000_000, 5, 9), nil)
	ts.store.EXPECT().CreateFlashReward(gomock.Any(), gomock.Any()).Return(true, nil)
	ts.store.EXPECT().CreateTransfers(gomock.Any(), gomock.Any()).Return(nil)

	recorder := ts.request(t, http.MethodPost, "/api/v1/curves/"+testCurveID+"/flash-reward", map[string]any{
		"motion_score": 97,
		"entrants":     []string{"wallet-a", "wallet-b"},
	}, true)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["triggered"])
	assert.Equal(t, float64(2), body["entrants"])
}
