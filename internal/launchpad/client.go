// Package launchpad wraps the external token launchpad service. The engine
// only produces requests here; signing and broadcast happen on the launchpad
// side. Every mutating call carries an idempotency key so Temporal activity
// retries never double-execute.
package launchpad

import (
	"context"
	"fmt"

	"github.com/launchos/curve-engine/internal/adapter"
)

// MintRequest asks the launchpad to mint the SPL token for a launched curve
type MintRequest struct {
	CurveID        string `json:"curve_id"`
	Name           string `json:"name"`
	Symbol         string `json:"symbol"`
	Decimals       uint8  `json:"decimals"`
	TotalSupply    uint64 `json:"total_supply"`
	IdempotencyKey string `json:"-"`
}

// MintResponse carries the minted token reference
type MintResponse struct {
	TokenMint string `json:"token_mint"`
}

// SeedLiquidityRequest asks the launchpad to open a pool with the curve reserve
type SeedLiquidityRequest struct {
	CurveID              string `json:"curve_id"`
	TokenMint            string `json:"token_mint"`
	ReserveLamports      uint64 `json:"reserve_lamports"`
	InitialPriceLamports uint64 `json:"initial_price_lamports"`
	IdempotencyKey       string `json:"-"`
}

// SeedLiquidityResponse carries the pool reference
type SeedLiquidityResponse struct {
	LiquidityRef string `json:"liquidity_ref"`
}

// AirdropAllocation is one wallet's share of the token distribution
type AirdropAllocation struct {
	Wallet string `json:"wallet"`
	Amount uint64 `json:"amount"`
}

// AirdropRequest asks the launchpad to distribute tokens to snapshot holders
type AirdropRequest struct {
	CurveID        string              `json:"curve_id"`
	TokenMint      string              `json:"token_mint"`
	Allocations    []AirdropAllocation `json:"allocations"`
	IdempotencyKey string              `json:"-"`
}

// AirdropResponse carries the distribution reference
type AirdropResponse struct {
	DistributionRef string `json:"distribution_ref"`
}

// Client defines the interface for launchpad operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../mocks/launchpad_client.go -package=mocks -mock_names=Client=MockLaunchpadClient
type Client interface {
	// Mint mints the token for a launching curve
	Mint(ctx context.Context, req MintRequest) (*MintResponse, error)
	// SeedLiquidity opens a liquidity pool funded by the curve reserve
	SeedLiquidity(ctx context.Context, req SeedLiquidityRequest) (*SeedLiquidityResponse, error)
	// Airdrop distributes minted tokens to snapshot holders
	Airdrop(ctx context.Context, req AirdropRequest) (*AirdropResponse, error)
}

// LaunchpadClient implements the launchpad client over HTTP
type LaunchpadClient struct {
	httpClient adapter.HTTPClient
	baseURL    string
	apiKey     string
}

// NewClient creates a new launchpad client
func NewClient(httpClient adapter.HTTPClient, baseURL, apiKey string) Client {
	return &LaunchpadClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

func (c *LaunchpadClient) headers(idempotencyKey string) map[string]string {
	h := map[string]string{
		"Idempotency-Key": idempotencyKey,
	}
	if c.apiKey != "" {
		h["Authorization"] = "Bearer " + c.apiKey
	}
	return h
}

// Mint mints the token for a launching curve
func (c *LaunchpadClient) Mint(ctx context.Context, req MintRequest) (*MintResponse, error) {
	url := fmt.Sprintf("%s/v1/tokens/mint", c.baseURL)

	var resp MintResponse
	if err := c.httpClient.PostJSON(ctx, url, c.headers(req.IdempotencyKey), req, &resp); err != nil {
		return nil, fmt.Errorf("failed to call launchpad mint: %w", err)
	}
	if resp.TokenMint == "" {
		return nil, fmt.Errorf("launchpad mint returned empty token mint")
	}

	return &resp, nil
}

// SeedLiquidity opens a liquidity pool funded by the curve reserve
func (c *LaunchpadClient) SeedLiquidity(ctx context.Context, req SeedLiquidityRequest) (*SeedLiquidityResponse, error) {
	url := fmt.Sprintf("%s/v1/pools/seed", c.baseURL)

	var resp SeedLiquidityResponse
	if err := c.httpClient.PostJSON(ctx, url, c.headers(req.IdempotencyKey), req, &resp); err != nil {
		return nil, fmt.Errorf("failed to call launchpad seed liquidity: %w", err)
	}
	if resp.LiquidityRef == "" {
		return nil, fmt.Errorf("launchpad seed liquidity returned empty reference")
	}

	return &resp, nil
}

// Airdrop distributes minted tokens to snapshot holders
func (c *LaunchpadClient) Airdrop(ctx context.Context, req AirdropRequest) (*AirdropResponse, error) {
	url := fmt.Sprintf("%s/v1/airdrops", c.baseURL)

	var resp AirdropResponse
	if err := c.httpClient.PostJSON(ctx, url, c.headers(req.IdempotencyKey), req, &resp); err != nil {
		return nil, fmt.Errorf("failed to call launchpad airdrop: %w", err)
	}
	if resp.DistributionRef == "" {
		return nil, fmt.Errorf("launchpad airdrop returned empty reference")
	}

	return &resp, nil
}
