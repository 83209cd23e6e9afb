// Package huffman implements frequency-table Huffman codes.  A code is built
// from the symbol counts of an input, the input is packed into that code, and
// the same counts are later used to rebuild the identical tree for decoding.
//
// The frequency table is the only side-channel between the two ends: the
// encoded stream never carries the tree itself.  Tree construction is fully
// deterministic (weight ascending, then creation order ascending), so any
// party holding the table rebuilds bit-identical codes.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
