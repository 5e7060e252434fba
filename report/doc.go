// SPDX-License-Identifier: MIT

// Package report renders a SampleSet as the console table
//
//	------------------------------------------------------------
//	          Set 0          Set 1    Energy        Cut Size
//	------------------------------------------------------------
//	      [2, 3, 5]         [1, 4]     -5.0            5
//
// with one row per record in SampleSet order. The first two columns are
// right-aligned and the last two centred, each 15 characters wide; longer
// cells are never truncated. Energies print like Python floats ("-5.0").
package report
