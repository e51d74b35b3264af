// Package invdist implements the Hannenhalli–Pevzner inversion (reversal)
// distance between two single-chromosome gene orders with identical content.
//
// The computation runs in four stages over an extended permutation of length
// 2n+2 that encodes both genomes' gene order and strand orientation:
//
//  1. Build the extended permutation from the two gene orders and an
//     alignment offset (nonzero offsets realign rotated circular genomes).
//  2. Count breakpoints: adjacencies present in one genome but not the other.
//  3. Decompose the breakpoint graph into alternating black/grey edge cycles.
//  4. Group grey edges into connected components and classify the unoriented
//     ones as hurdles, great hurdles, and superhurdles, detecting a fortress.
//
// The distance is then breakpoints − cycles + hurdles + fortress.
//
// All scratch state lives in a per-call arena, so concurrent calls never
// share mutable memory. Gene identifiers must form a signed permutation of
// 1..n; callers with arbitrary marker identifiers normalize first (see the
// distance package).
package invdist
