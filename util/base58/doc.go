// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package base58 provides an API for working with modified base58 and
Base58Check encodings.

Modified Base58 Encoding

Standard base64 encoding would introduce visually identical characters such as
0O and Il as well as characters such as +/ that are unfriendly when embedded in
URLs. The modified base58 alphabet omits them, which makes the encoding
suitable for identifiers that humans copy by hand.

Base58Check Encoding

The Base58Check encoding scheme appends a four byte double sha256 checksum to
the payload before base58-encoding it, so that a mistyped identifier is
detected with overwhelming probability when it is decoded.
*/
package base58
