// SPDX-License-Identifier: MIT

// Package visual draws the best partition of a Max-Cut run as a PNG.
//
// Layout: SpringLayout is a seeded Fruchterman–Reingold force simulation
// (optimal distance k = 1/sqrt(n), 50 iterations, linear cooling from
// 0.1 of the initial spread) rescaled to [-1,1] on both axes. The same
// seed always gives the same picture.
//
// Rendering follows one fixed style on a white canvas:
//
//	Set 0 nodes  red filled circles
//	Set 1 nodes  cyan filled circles
//	cut edges    dash-dot, 50% alpha, width 3
//	uncut edges  solid, width 3
//	labels       vertex IDs centred on their node
//
// The PNG is written (or overwritten) at the requested path; write
// failures are returned wrapped in ErrWrite together with the os error.
package visual
