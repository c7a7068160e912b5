// Package verifierregistry implements the staked verifier registry inside
// the identity-verification context.
//
// The module owns verifier records (stake, trust flag, bounded reputation,
// vote tallies) and the operations over them: registration, unstaking,
// authorization checks, reputation adjustment, and the per-voter outcome
// claim that voters invoke after observing a finalization event. Business
// rules live in application/domain layers; infrastructure sits behind ports
// and adapters.
package verifierregistry
