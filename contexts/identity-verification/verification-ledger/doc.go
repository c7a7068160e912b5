// Package verificationledger implements the per-subject verification
// request ledger, the vote ledger, and the consensus finalizer inside the
// identity-verification context.
//
// The module owns request lifecycle (submit/renew), score ballots keyed by
// (subject, verifier), the finalization algorithm that folds accumulated
// votes into a status transition, and outcome event production through an
// outbox-backed relay. The three concerns share one module because a
// finalization must commit its status write and its event atomically with
// the ledger rows it read.
package verificationledger
