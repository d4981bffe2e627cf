// Package param provides lock-free parameter slots for handing values from a
// control context (UI, automation) to a consuming context (audio block,
// redraw) without blocking either side.
//
// Each parameter lives in its own atomic slot. A single [Flag] marks the
// published set as dirty; the consumer claims it with [Flag.Claim] once per
// block and, only when the claim succeeds, rebuilds whatever model depends on
// the parameters. Bursts of writes between two claims collapse into one
// rebuild, and claims without intervening writes do no work.
//
// Parameters written while a rebuild is running may be picked up by that
// rebuild or by the next one. Nothing is lost: the writer raises the flag
// again after its store, so the next claim observes it.
package param
