// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chainhash provides abstracted hash functionality.

This package provides a generic hash type and associated functions that allows
the specific hash algorithm to be abstracted.
*/
package chainhash
