/*
Package wire implements the token encoding used on every line exchanged with
the ckb-next daemon.

Each line is a sequence of tokens separated by a single ASCII space. Tokens are
percent-encoded independently, so free text such as labels, descriptions or
gradient defaults travel as one token:

	param gradient GRADIENT pre post 0%3A000000%20100%3Afacade

Decoding is lenient: a '%' that is not followed by two hex digits is passed
through unchanged and never produces an error.
*/
package wire
