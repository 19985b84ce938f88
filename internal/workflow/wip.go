package workflow

import (
	"fmt"

	"teamboard/internal/model"
)

// CheckCapacity enforces the target column's WIP limit. Only cross-column
// moves are checked: a same-column reorder never changes the count.
func CheckCapacity(target *model.Column, occupancy int, crossColumn bool) Decision {
	if !crossColumn || target.WIPLimit == nil {
		return allow()
	}

	if occupancy >= *target.WIPLimit {
		return deny(fmt.Sprintf("WIP limit of %d reached for column %q", *target.WIPLimit, target.Name))
	}
	return allow()
}
