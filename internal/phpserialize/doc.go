// Package phpserialize renders the PHP-serialized values Forminator stores
// in the meta_value column. It is not a general serializer: only the four
// shapes the plugin actually writes are supported (plain string, the
// two-field name array, the two-field calculation array and the nine-field
// Stripe payment array).
//
// # Format
//
// The format is the stock PHP serialize() text encoding, restricted to the
// tags the plugin uses:
//
//	s:6:"€ 20"                      string, prefixed with its UTF-8 BYTE length
//	d:350.0                          decimal number, written verbatim
//	a:2:{k;v;k;v;}                   array with an explicit element count
//
// Byte lengths matter: "€ 20" is four characters but six bytes, and PHP's
// unserialize() reads exactly the declared number of bytes. All encoders here
// count bytes, never runes.
//
// String content is embedded between literal quotes without any escaping;
// that is how PHP writes it. A value containing the `";` pattern would
// desynchronize a naive parser, but unserialize() relies on the length prefix
// and does not care. Validate provides the matching strict reader used by the
// staging checks and the tests.
package phpserialize
