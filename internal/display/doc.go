// Package display models the controllable outputs of the panel.
//
// A Registry is the ordered, positionally indexed list of Devices found by
// one enumeration pass over a Backend. Every mutation of a device funnels
// through Registry.Apply, which clamps the requested value to [1,100],
// asks the backend to apply the full brightness/gamma setting for that
// one output, and commits the value in memory only when the backend call
// succeeded.
//
// # Snapshots
//
// Registries are not safe for concurrent mutation. The dispatch worker owns
// the working registry and publishes Clone() copies to readers; a published
// clone is never modified again.
//
// # Values
//
// Values are integer percentages. The backend receives them as ratios with
// two decimals:
//
//	brightness 80, gamma 100/90/100  ->  "0.80", "1.00:0.90:1.00"
package display
