// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package wheel resolves spins of the decision wheel.

# States

A Wheel is either idle or spinning:

	idle ──Spin──▶ spinning ──(duration + 0.5s)──▶ idle, onEnd(result)

Spin is rejected without side effects when there are no options
(ErrNoOptions), while a spin is in flight (ErrSpinning), or after Close
(ErrClosed). Rejected spins are never queued.

# Rotation

Each spin adds 2 to 5 full turns plus a random offset in [0, 360) to the
cumulative rotation. Rotation only grows; it is never reset to zero.

# Resolution

The pointer is fixed at the top of the wheel, which is 270° in the wheel's
frame, and the wheel turns clockwise:

	final   = rotation mod 360
	pointer = (630 - final) mod 360
	slice   = 360 / n
	index   = floor(pointer / slice) mod n

With options A, B, C, D and final = 45: pointer = 225, slice = 90, index 2,
so C is selected. A single option always resolves to index 0.

# Cancellation

Close stops the pending timer. A completion that already started firing
when Close ran is dropped rather than delivered.
*/
package wheel
