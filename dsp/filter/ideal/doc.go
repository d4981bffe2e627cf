// Package ideal evaluates the frequency response of a parametric filter
// band without running it on audio.
//
// A [Filter] holds the band parameters (type, frequency, gain, Q, order,
// sample rate) in atomic slots that any goroutine may write. The consuming
// goroutine (a redraw loop or the audio block callback) calls one of the
// update methods: when a parameter changed since the last call, the
// cascade is re-designed through the injected [Designer] and the cached
// response is rebuilt exactly once; otherwise nothing is recomputed.
//
// Buffers are sized explicitly with [Filter.ResizeResponse],
// [Filter.ResizeMagnitude] or [Filter.Prepare]. The update methods never
// allocate and panic when the query length does not match the buffer.
package ideal
