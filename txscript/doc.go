// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Crux developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package txscript recognizes the standard payment script templates and
extracts the payment addresses they commit to.

Scripts arrive as sequences of already-parsed opcodes. The package
classifies a sequence as pay-to-pubkey-hash, pay-to-script-hash or
pay-to-pubkey, and converts a match into a util.Address. Anything that
does not match a template is reported as nonstandard rather than
guessed at.
*/
package txscript
