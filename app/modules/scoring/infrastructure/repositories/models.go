package scoringdb

import "github.com/uptrace/bun"

// ConfigEntry is one row of scoring_config.
type ConfigEntry struct {
	bun.BaseModel `bun:"table:scoring_config,alias:sc"`

	Key   string  `bun:"key,pk"`
	Value float64 `bun:"value,notnull"`
}
