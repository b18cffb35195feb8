// Ambient diagnostics. Mirrors jyane-jnes's use of github.com/golang/glog:
// glog.Warningf for "this call failed, the caller already has a way to see
// that (a nil/false return)" diagnostics, glog.Fatalf reserved for
// genuinely illegal configuration that no return value can express — the
// same split jyane-jnes draws between an unimplemented-but-survivable bus
// access (glog.Infof) and an unknown bus address (glog.Fatalf).
package bigint

import "github.com/golang/glog"

// warnDomainError logs a domain-error return (division by zero, mod_pow
// with modulus zero, negative isqrt input, ...) at high verbosity so an
// embedding program can opt into tracing these without any of them ever
// becoming a panic.
func warnDomainError(op string, detail string) {
	if glog.V(2) {
		glog.Warningf("bigint: %s: %s", op, detail)
	}
}

// warnSamplingExhausted logs rejection-sampling retry-budget exhaustion in
// RandomRange (spec.md §7, "Sampling exhaustion").
func warnSamplingExhausted(retries int) {
	glog.Warningf("bigint: random_range: rejection sampling exhausted after %d attempts", retries)
}
