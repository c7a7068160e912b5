package entities

// RequestStatus is the subject's lifecycle state. StatusExpired is never
// stored: no operation writes it, it only appears as a derived effective
// status once a verification outlives its expiry height.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusVerified RequestStatus = "verified"
	StatusRejected RequestStatus = "rejected"
	StatusReview   RequestStatus = "review"
	StatusExpired  RequestStatus = "expired"
)

// Terminal reports whether a fresh finalize call must refuse the request.
// Review is deliberately non-terminal: late votes may still move it.
func (s RequestStatus) Terminal() bool {
	return s == StatusVerified || s == StatusRejected
}

// MaxScore bounds an individual ballot.
const MaxScore uint32 = 100

// VerificationRequest tracks one subject's active verification cycle.
// VoteCount and ScoreSum always equal the count and sum of ballots recorded
// since the cycle started; renewal resets them without purging old ballots.
type VerificationRequest struct {
	SubjectID   string
	DataHash    string
	Status      RequestStatus
	VoteCount   uint32
	ScoreSum    uint64
	ExpiryBlock uint64
	SubmittedAt uint64
	LastUpdated uint64
}

// EffectiveStatus applies the lazy expiry rule: a verified request whose
// expiry height has passed reads as expired without its stored status ever
// changing.
func (r VerificationRequest) EffectiveStatus(now uint64) RequestStatus {
	if r.Status == StatusVerified && r.ExpiryBlock > 0 && now > r.ExpiryBlock {
		return StatusExpired
	}
	return r.Status
}

// Average is the floor of the ballot mean; zero when no votes exist.
func (r VerificationRequest) Average() uint32 {
	if r.VoteCount == 0 {
		return 0
	}
	return uint32(r.ScoreSum / uint64(r.VoteCount))
}

// Vote is one verifier's ballot for one subject. Ballots are written once
// and never deleted, not even across renewals: the (subject, verifier) pair
// stays spent forever. RewardClaimed flips once when the voter settles the
// ballot against a terminal outcome.
type Vote struct {
	SubjectID     string
	VerifierID    string
	Score         uint32
	VotedAt       uint64
	RewardClaimed bool
	ClaimedAt     uint64
}
