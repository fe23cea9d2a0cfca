package securebank

import "time"

type Config struct {
	Listen string `yaml:"listen"`
	Store  struct {
		Path string `yaml:"path"`
	} `yaml:"store"`
	Ledger struct {
		OpeningBalance  float64 `yaml:"opening_balance"`
		RequireReceiver bool    `yaml:"require_receiver"`
	} `yaml:"ledger"`
	KYC struct {
		VerifyDelayMS int64 `yaml:"verify_delay_ms"`
	} `yaml:"kyc"`
	Limits struct {
		Auth     int64 `yaml:"auth"`
		Ledger   int64 `yaml:"ledger"`
		Registry int64 `yaml:"registry"`
		Loan     int64 `yaml:"loan"`
		KYC      int64 `yaml:"kyc"`
	} `yaml:"limits"`
}

// VerifyDelay returns the configured KYC verification delay, falling
// back to 3.5s when the config leaves it unset.
func (c Config) VerifyDelay() time.Duration {
	if c.KYC.VerifyDelayMS <= 0 {
		return 3500 * time.Millisecond
	}
	return time.Duration(c.KYC.VerifyDelayMS) * time.Millisecond
}
