package model

// MasteryLevel summarizes a user's recent performance on one question.
// Computed on demand from the most recent answer events, never persisted.
type MasteryLevel string

const (
	MasteryGold   MasteryLevel = "gold"
	MasterySilver MasteryLevel = "silver"
	MasteryBronze MasteryLevel = "bronze"
)

func (m MasteryLevel) Valid() bool {
	switch m {
	case MasteryGold, MasterySilver, MasteryBronze:
		return true
	}
	return false
}
