package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/launchos/curve-engine/internal/api/rest/dto"
	"github.com/launchos/curve-engine/internal/domain"
	"github.com/launchos/curve-engine/internal/ledger"
	"github.com/launchos/curve-engine/internal/providers/temporal"
	"github.com/launchos/curve-engine/internal/store"
	"github.com/launchos/curve-engine/internal/store/schema"
	"github.com/launchos/curve-engine/internal/workflows"
)

// Handler defines the REST API handler interface
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// HealthCheck handles GET /health
	HealthCheck(c *gin.Context)

	// CreateCurve handles POST /curves
	CreateCurve(c *gin.Context)

	// GetCurve handles GET /curves/:id
	GetCurve(c *gin.Context)

	// ListCurves handles GET /curves
	ListCurves(c *gin.Context)

	// Buy handles POST /curves/:id/buy
	Buy(c *gin.Context)

	// Sell handles POST /curves/:id/sell
	Sell(c *gin.Context)

	// Quote handles POST /curves/:id/quote
	Quote(c *gin.Context)

	// Freeze handles POST /curves/:id/freeze
	Freeze(c *gin.Context)

	// Unfreeze handles POST /curves/:id/unfreeze
	Unfreeze(c *gin.Context)

	// MarkUtility handles POST /curves/:id/utility
	MarkUtility(c *gin.Context)

	// CanLaunch handles GET /curves/:id/can-launch
	CanLaunch(c *gin.Context)

	// TriggerLaunch handles POST /curves/:id/launch
	TriggerLaunch(c *gin.Context)

	// GetLaunchAttempt handles GET /curves/:id/launch
	GetLaunchAttempt(c *gin.Context)

	// ListHolders handles GET /curves/:id/holders
	ListHolders(c *gin.Context)

	// ListEvents handles GET /curves/:id/events
	ListEvents(c *gin.Context)

	// GetSnapshot handles GET /curves/:id/snapshot
	GetSnapshot(c *gin.Context)

	// GetStats handles GET /curves/:id/stats
	GetStats(c *gin.Context)

	// TriggerFlashReward handles POST /curves/:id/flash-reward
	TriggerFlashReward(c *gin.Context)

	// RecordInteraction handles POST /wallets/:wallet/interactions
	RecordInteraction(c *gin.Context)

	// GetHallPass handles GET /wallets/:wallet/hall-pass
	GetHallPass(c *gin.Context)

	// GetStreak handles GET /wallets/:wallet/streak
	GetStreak(c *gin.Context)
}

type handler struct {
	debug           bool
	ledger          *ledger.Ledger
	store           store.Store
	orchestrator    temporal.TemporalOrchestrator
	launchTaskQueue string
}

// NewHandler creates a new REST handler
func NewHandler(debug bool, ldg *ledger.Ledger, st store.Store, orchestrator temporal.TemporalOrchestrator, launchTaskQueue string) Handler {
	return &handler{
		debug:           debug,
		ledger:          ldg,
		store:           st,
		orchestrator:    orchestrator,
		launchTaskQueue: launchTaskQueue,
	}
}

// HealthCheck returns service health status
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "curve-engine-api",
	})
}

// CreateCurve creates a new bonding curve
func (h *handler) CreateCurve(c *gin.Context) {
	var req dto.CreateCurveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	input := store.CreateCurveInput{
		OwnerWallet: req.OwnerWallet,
		Name:        req.Name,
		Symbol:      req.Symbol,
	}
	if req.FeeTableVersion != nil {
		input.FeeTableVersion = domain.FeeTableVersion(*req.FeeTableVersion)
	}
	if req.CapGrowthBps != nil {
		input.CapGrowthBps = *req.CapGrowthBps
	}

	curve, err := h.ledger.CreateCurve(c.Request.Context(), input)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MapCurveToDTO(curve))
}

// GetCurve returns a single curve by ID
func (h *handler) GetCurve(c *gin.Context) {
	curveID := c.Param("id")

	curve, err := h.ledger.GetCurve(c.Request.Context(), curveID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapCurveToDTO(curve))
}

// ListCurves returns curves filtered by state with pagination
func (h *handler) ListCurves(c *gin.Context) {
	params, err := ParseListCurvesQuery(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	var state *schema.CurveState
	if params.State != "" {
		s := schema.CurveState(params.State)
		switch s {
		case schema.CurveStateActive, schema.CurveStateFrozen, schema.CurveStateLaunched, schema.CurveStateUtility:
			state = &s
		default:
			respondValidationError(c, "unknown state: "+params.State)
			return
		}
	}

	curves, err := h.store.ListCurves(c.Request.Context(), state, params.Limit, params.Offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list curves")
		return
	}

	response := dto.CurveListResponse{
		Curves: make([]dto.CurveResponse, 0, len(curves)),
		Offset: &params.Offset,
	}
	for _, curve := range curves {
		response.Curves = append(response.Curves, *dto.MapCurveToDTO(curve))
	}

	c.JSON(http.StatusOK, response)
}

// Buy executes a key purchase
func (h *handler) Buy(c *gin.Context) {
	h.trade(c, h.ledger.Buy)
}

// Sell executes a key sale
func (h *handler) Sell(c *gin.Context) {
	h.trade(c, h.ledger.Sell)
}

func (h *handler) trade(c *gin.Context, execute func(ctx context.Context, input ledger.TradeInput) (*ledger.TradeResult, error)) {
	curveID := c.Param("id")

	var req dto.TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := execute(c.Request.Context(), ledger.TradeInput{
		CurveID:        curveID,
		Wallet:         req.Wallet,
		Keys:           req.Keys,
		ReferrerWallet: req.ReferrerWallet,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapTradeToDTO(result))
}

// Quote prices a hypothetical trade without executing it
func (h *handler) Quote(c *gin.Context) {
	curveID := c.Param("id")

	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	quote, err := h.ledger.QuoteTrade(c.Request.Context(), curveID, domain.TradeSide(req.Side), req.Keys, req.ReferrerWallet)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapQuoteToDTO(quote))
}

// Freeze suspends trading on a curve ahead of a launch
func (h *handler) Freeze(c *gin.Context) {
	h.transition(c, h.ledger.Freeze)
}

// Unfreeze rolls a frozen curve back to active
func (h *handler) Unfreeze(c *gin.Context) {
	h.transition(c, h.ledger.Unfreeze)
}

// MarkUtility opts a curve out of launching permanently
func (h *handler) MarkUtility(c *gin.Context) {
	h.transition(c, h.ledger.MarkUtility)
}

func (h *handler) transition(c *gin.Context, execute func(ctx context.Context, curveID string) (*schema.Curve, error)) {
	curve, err := execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapCurveToDTO(curve))
}

// CanLaunch reports whether a curve meets the launch thresholds
func (h *handler) CanLaunch(c *gin.Context) {
	curveID := c.Param("id")

	err := h.ledger.CheckLaunchEligibility(c.Request.Context(), curveID)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"eligible": true})
		return
	}

	var thresholdErr *domain.ThresholdError
	if errors.As(err, &thresholdErr) {
		c.JSON(http.StatusOK, gin.H{
			"eligible": false,
			"failures": thresholdErr.Failures,
		})
		return
	}

	respondDomainError(c, err)
}

// TriggerLaunch starts the launch workflow for a curve
func (h *handler) TriggerLaunch(c *gin.Context) {
	curveID := c.Param("id")
	ctx := c.Request.Context()

	// Fail fast before spinning up a workflow
	if err := h.ledger.CheckLaunchEligibility(ctx, curveID); err != nil {
		respondDomainError(c, err)
		return
	}

	w := workflows.NewWorkerCore(nil)
	options := client.StartWorkflowOptions{
		ID:                    workflows.LaunchWorkflowID(curveID),
		TaskQueue:             h.launchTaskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
	}

	wfRun, err := h.orchestrator.ExecuteWorkflow(ctx, options, w.LaunchCurve, curveID)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			respondConflict(c, "Launch already in progress")
			return
		}
		respondInternalError(c, err, "Failed to trigger launch", zap.String("curve_id", curveID))
		return
	}

	c.JSON(http.StatusAccepted, dto.TriggerLaunchResponse{
		WorkflowID: wfRun.GetID(),
		RunID:      wfRun.GetRunID(),
	})
}

// GetLaunchAttempt returns the running launch attempt for a curve
func (h *handler) GetLaunchAttempt(c *gin.Context) {
	curveID := c.Param("id")

	attempt, err := h.store.GetRunningLaunchAttempt(c.Request.Context(), curveID)
	if err != nil {
		respondInternalError(c, err, "Failed to get launch attempt")
		return
	}
	if attempt == nil {
		respondNotFound(c, "No running launch attempt")
		return
	}

	c.JSON(http.StatusOK, dto.MapAttemptToDTO(attempt))
}

// ListHolders returns the holders of a curve
func (h *handler) ListHolders(c *gin.Context) {
	curveID := c.Param("id")

	holders, err := h.store.ListHolders(c.Request.Context(), curveID)
	if err != nil {
		respondInternalError(c, err, "Failed to list holders")
		return
	}

	response := dto.HolderListResponse{Holders: make([]dto.HolderResponse, 0, len(holders))}
	for _, holder := range holders {
		response.Holders = append(response.Holders, *dto.MapHolderToDTO(holder))
	}

	c.JSON(http.StatusOK, response)
}

// ListEvents returns the event log of a curve with pagination
func (h *handler) ListEvents(c *gin.Context) {
	curveID := c.Param("id")

	params, err := ParseListEventsQuery(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	events, err := h.store.ListCurveEvents(c.Request.Context(), curveID, params.Limit, params.Offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list events")
		return
	}

	response := dto.EventListResponse{
		Events: make([]dto.EventResponse, 0, len(events)),
		Offset: &params.Offset,
	}
	for _, event := range events {
		response.Events = append(response.Events, *dto.MapEventToDTO(event))
	}

	c.JSON(http.StatusOK, response)
}

// GetSnapshot returns the latest launch snapshot taken for a curve
func (h *handler) GetSnapshot(c *gin.Context) {
	curveID := c.Param("id")

	snapshot, err := h.store.GetLatestSnapshot(c.Request.Context(), curveID)
	if err != nil {
		respondInternalError(c, err, "Failed to get snapshot")
		return
	}
	if snapshot == nil {
		respondNotFound(c, "No snapshot taken")
		return
	}

	c.JSON(http.StatusOK, dto.MapSnapshotToDTO(snapshot))
}

// GetStats returns live 24h stats for a curve
func (h *handler) GetStats(c *gin.Context) {
	stats, err := h.ledger.Stats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapStatsToDTO(stats))
}

// TriggerFlashReward fires the one-shot flash reward for a hot room
func (h *handler) TriggerFlashReward(c *gin.Context) {
	curveID := c.Param("id")

	var req dto.FlashTriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.ledger.TriggerFlashReward(c.Request.Context(), curveID, req.MotionScore, req.Entrants)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RecordInteraction records an accepted DM for hall pass progress
func (h *handler) RecordInteraction(c *gin.Context) {
	wallet := c.Param("wallet")

	var req dto.InteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	status, err := h.ledger.RecordInteraction(c.Request.Context(), wallet, req.PeerWallet)
	if err != nil {
		respondInternalError(c, err, "Failed to record interaction")
		return
	}

	c.JSON(http.StatusCreated, status)
}

// GetHallPass returns a wallet's hall pass status
func (h *handler) GetHallPass(c *gin.Context) {
	status, err := h.ledger.HallPassStatus(c.Request.Context(), c.Param("wallet"))
	if err != nil {
		respondInternalError(c, err, "Failed to get hall pass status")
		return
	}

	c.JSON(http.StatusOK, status)
}

// GetStreak returns a wallet's trading streak status
func (h *handler) GetStreak(c *gin.Context) {
	status, err := h.ledger.StreakStatus(c.Request.Context(), c.Param("wallet"))
	if err != nil {
		respondInternalError(c, err, "Failed to get streak status")
		return
	}

	c.JSON(http.StatusOK, status)
}
