package domain

const (
	// Denomination constants
	LAMPORTS_PER_SOL = uint64(1_000_000_000)
	BPS_DENOMINATOR  = uint64(10_000)

	// Wallet cap constants
	BASE_WALLET_CAP          = uint64(2)
	DEFAULT_CAP_GROWTH_BPS   = uint64(40) // one extra key per 250 holders
	DEFAULT_MAX_KEYS_PER_BUY = uint64(100)

	// Launch threshold constants
	MIN_LAUNCH_SUPPLY_KEYS      = uint64(100)
	MIN_LAUNCH_HOLDERS          = uint64(4)
	MIN_LAUNCH_RESERVE_LAMPORTS = 10 * LAMPORTS_PER_SOL

	// Token graduation constants
	TOKENS_PER_KEY = uint64(1_000_000)
	TOKEN_DECIMALS = uint8(9)
)
