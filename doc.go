// Package huffcode implements classic Huffman codes over arbitrary comparable
// symbols.  A tree is built greedily from symbol frequencies, each leaf's
// root path becomes its code, and sequences are encoded to and decoded from
// strings of '0' and '1' characters.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffcode
