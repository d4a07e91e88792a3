package domain

const (
	// WeiPerEther is the fixed normalization divisor applied to every balance,
	// including tokens that do not use 18 decimals
	WeiPerEther = 1e18
)
