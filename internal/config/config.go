package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the optional layout.yaml file.
type Config struct {
	Ledger   LedgerConfig   `yaml:"ledger"`
	Widths   Widths         `yaml:"widths"`
	Balance  BalanceConfig  `yaml:"balance"`
	Register RegisterConfig `yaml:"register"`
}

// LedgerConfig locates the external report generator.
type LedgerConfig struct {
	Binary string `yaml:"binary"`
}

// Widths are the register column widths in characters. The same values are
// passed to ledger and used to slice its output.
type Widths struct {
	Date    int `yaml:"date"`
	Payee   int `yaml:"payee"`
	Account int `yaml:"account"`
	Amount  int `yaml:"amount"`
	Total   int `yaml:"total"`
	Code    int `yaml:"code"`
}

// BalanceConfig describes the fixed layout of `ledger bal` output.
type BalanceConfig struct {
	AmountEnd    int    `yaml:"amount_end"`    // amount occupies [0, AmountEnd)
	AccountStart int    `yaml:"account_start"` // account occupies [AccountStart, EOL)
	Rule         string `yaml:"rule"`          // totals separator printed by ledger
	Indent       string `yaml:"indent"`        // LaTeX emitted once per nesting level
}

// RegisterConfig controls register rendering.
type RegisterConfig struct {
	ColorNegative bool `yaml:"color_negative"`
}

// Load reads a layout file from disk. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate rejects layouts that cannot be sliced.
func (c *Config) Validate() error {
	w := c.Widths
	widths := []struct {
		name  string
		value int
	}{
		{"date", w.Date},
		{"payee", w.Payee},
		{"account", w.Account},
		{"amount", w.Amount},
		{"total", w.Total},
		{"code", w.Code},
	}
	for _, width := range widths {
		if width.value <= 0 {
			return fmt.Errorf("width %s must be positive, got %d", width.name, width.value)
		}
	}
	if c.Balance.AmountEnd <= 0 || c.Balance.AccountStart < c.Balance.AmountEnd {
		return fmt.Errorf("balance columns overlap: amount_end %d, account_start %d",
			c.Balance.AmountEnd, c.Balance.AccountStart)
	}
	if c.Balance.Rule == "" {
		return fmt.Errorf("balance rule must not be empty")
	}
	if c.Ledger.Binary == "" {
		return fmt.Errorf("ledger binary must not be empty")
	}
	return nil
}

// DefaultWidths returns the register widths ledger2latex has always used.
func DefaultWidths() Widths {
	return Widths{
		Date:    10,
		Payee:   60,
		Account: 70,
		Amount:  40,
		Total:   40,
		Code:    7,
	}
}

// DefaultRule is the separator ledger prints above the balance total.
const DefaultRule = "--------------------"

// Default returns the built-in layout.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			Binary: "ledger",
		},
		Widths: DefaultWidths(),
		Balance: BalanceConfig{
			AmountEnd:    20,
			AccountStart: 22,
			Rule:         DefaultRule,
			Indent:       `\quad `,
		},
	}
}
