package executor

import (
	"fmt"

	"github.com/nibzard/tasktracker-go/internal/utils"
)

// IDStrategy selects how the id of a new task is derived.
type IDStrategy string

const (
	// IDStrategyCount assigns live task count + 1. After a delete this can
	// pick an id that is still in use; storage then rejects the create with
	// task.ErrDuplicateID.
	IDStrategyCount IDStrategy = "count"
	// IDStrategyMax assigns one past the highest id the store has ever
	// held, so ids of deleted tasks are never handed out again.
	IDStrategyMax IDStrategy = "max"
)

// DefaultIDStrategy is used when none is configured.
const DefaultIDStrategy = IDStrategyMax

// ParseIDStrategy parses a configured strategy name.
func ParseIDStrategy(s string) (IDStrategy, error) {
	v, ok := utils.NormalizeChoice(s, string(IDStrategyCount), string(IDStrategyMax))
	if !ok {
		return "", fmt.Errorf("invalid id strategy %q, must be one of: count, max", s)
	}
	return IDStrategy(v), nil
}
