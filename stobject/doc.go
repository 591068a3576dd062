/*
Package stobject implements the self describing binary records used by the
ledger: transactions, ledger entries and the objects nested inside them.

A Record is a list of (field, value) entries. Fields come from a
sfield.Registry and carry a wire type and a code; values are one of the
variants of Value. A Record is either free, accepting any field, or typed,
bound to a Template that lists the allowed fields and which of them are
required.

# Encoding

Fields are written in ascending sort key order, that is by type ordinal
and then field code, regardless of insertion order. Each field is a header
followed by its body:

	UInt8..UInt64		big endian, 1 to 8 bytes
	Hash128..Hash256	raw, 16, 20 or 32 bytes
	Blob, AccountID, Vector256	length prefix then bytes
	Amount			8 bytes, plus 40 for issued currencies
	PathSet			typed steps, 0xFF between paths, 0x00 at the end
	Object			fields then EndOfObject
	Array			objects, each closed by EndOfObject, then EndOfArray

Absent optional fields are skipped. Two records with the same field set
therefore encode, and hash, identically.

# Hashing

Hashes are SHA-512-Half over a four byte HashPrefix and the encoding. The
signing hash leaves out either a chosen field or every field the registry
marks as not signing.
*/
package stobject
