// SPDX-License-Identifier: MIT

// Package cut interprets a sample as a graph partition.
//
// A sample assigns every vertex the Low or High value of its vartype
// (0/1 for Binary, -1/+1 for Spin). Low vertices form Set 0, High vertices
// form Set 1, so S0 ∩ S1 = ∅ and S0 ∪ S1 = V hold for every valid sample.
//
// An edge is cut when its endpoints land in different sets. The cut size
// is the total effective weight of cut edges (their count on unweighted
// graphs) and can be recovered from a model energy:
//
//	Binary: cut = −E
//	Spin:   cut = (W − E)/2, W = total edge weight
package cut
