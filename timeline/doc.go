// SPDX-License-Identifier: EPL-2.0

// Package timeline implements drag-to-reorder for slices laid end to end.
//
// A Coordinator turns pointer events on an Item into notifications:
// OrderPosIsChanging while the dragged group's leading edge crosses the
// midpoint of a neighbour, then OrderPosHasChanged and FinishedMoving on
// release. The coordinator never moves anything but the dragged items.
//
// Sequence is an in-memory Scene that listens to those notifications,
// keeps the order and slides displaced slices into their new slots:
//
//	seq := timeline.NewSequence(800, logger)
//	seq.Append(a, b, c)
//	seq.Press(a, press)
//	seq.Move(move)
//	seq.Release(release)
package timeline
