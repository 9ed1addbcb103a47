// Copyright 2025 Wavestate Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides in-memory n-dimensional arrays with NumPy-style
// broadcasting.
//
// # Overview
//
// This package provides:
//   - Strided arrays over a single buffer (Array)
//   - A data type lattice with NumPy-like promotion (PromoteTypes, ResultType)
//   - Broadcast shape resolution over any number of shapes (BroadcastShapes)
//   - Zero-copy, read-only broadcast views (BroadcastTo, BroadcastAll)
//
// # Basic Usage
//
//	import "github.com/IanAMacMillan/wavestate-utilities/tensor"
//
//	func main() {
//	    x, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3})
//	    y := tensor.Scalar(int64(2))
//
//	    views, _ := tensor.BroadcastAll(x, y)
//	    // views[1].Shape() == (3), every element 2
//	}
//
// # Supported Data Types
//
//   - bool
//   - uint8
//   - int32, int64
//   - float32, float64
//   - complex64, complex128
//
// # Broadcasting
//
// Shapes are aligned on their last axis; at each position the sizes must
// agree or one of them must be 1:
//
//	(3, 1) with (4,)   → (3, 4)
//	(10,)  with ()     → (10,)
//	(3,)   with (4,)   → ErrShapeMismatch
//
// # Memory Management
//
// Creation functions always copy their input. Broadcast views share the
// source buffer and are read-only; Clone or Cast them to get a writable copy.
package tensor
