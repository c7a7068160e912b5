package entities

const (
	// ReputationCeiling and ReputationNeutral bound the accuracy score.
	// Registration always starts a verifier at neutral.
	ReputationCeiling uint32 = 1000
	ReputationNeutral uint32 = 500

	reputationStep uint32 = 10

	// DefaultMinStake applies when no stake bound is configured.
	DefaultMinStake uint64 = 1000
)

// Verifier is a staked, reputation-tracked participant who scores subjects.
// Records are overwritten wholesale on re-registration and never deleted;
// a verifier whose stake falls below the minimum keeps its record but loses
// authorization.
type Verifier struct {
	VerifierID   string
	Trusted      bool
	Stake        uint64
	Reputation   uint32
	TotalVotes   uint64
	CorrectVotes uint64
	RegisteredAt uint64
	UpdatedAt    uint64
}

// ApplyOutcome records one settled vote against the verifier's tallies and
// moves reputation one clamped step toward the outcome. Reputation never
// leaves [0, ReputationCeiling].
func (v *Verifier) ApplyOutcome(correct bool) {
	v.TotalVotes++
	if correct {
		v.CorrectVotes++
		if v.Reputation+reputationStep > ReputationCeiling {
			v.Reputation = ReputationCeiling
		} else {
			v.Reputation += reputationStep
		}
		return
	}
	if v.Reputation > reputationStep {
		v.Reputation -= reputationStep
	} else {
		v.Reputation = 0
	}
}

// Authorized reports whether the verifier may vote under the given minimum
// stake: the record exists (caller's concern), is trusted, and is staked at
// or above the bound.
func (v Verifier) Authorized(minStake uint64) bool {
	return v.Trusted && v.Stake >= minStake
}
