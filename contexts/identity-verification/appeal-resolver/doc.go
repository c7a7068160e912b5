// Package appealresolver implements single-shot appeals against rejected
// verification requests inside the identity-verification context.
//
// A rejected subject may file exactly one appeal, ever. The configured
// administrator either approves it, which overrides the request to verified
// with a fresh expiry, or dismisses it, which leaves the request untouched.
// Both resolution paths close the appeal permanently.
package appealresolver
