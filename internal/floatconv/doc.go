// Package floatconv converts decimal text to IEEE-754 binary floating point
// with guaranteed correct rounding (round to nearest, ties to even).
//
// The pipeline has three tiers. Short literals resolve with one native
// float multiplication. Everything else goes through the Eisel-Lemire 128-bit
// approximation against a precomputed power-of-five table; when that cannot
// commit to an answer (a truncated 19-digit window, or a product within one
// bit of an exact half) an arbitrary-precision decimal buffer shifts the
// value into the target binade and rounds exactly. The slow tier is complete,
// so every lexable literal produces a value.
//
// Парсер — чистая функция своего аргумента: без аллокаций в горячем пути, без
// глобального состояния, его можно звать из любого числа горутин.
package floatconv
