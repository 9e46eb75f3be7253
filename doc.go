/*
Package isaw enumerates letter arrangements drawn from an alphabet: permutations,
combinations, dictionary words and fixed-length sequences with repetition.

Results are produced lazily. Nothing is materialized up front, filters are applied to
each candidate as it is generated, and a result cap halts the whole enumeration as
soon as enough arrangements have been accepted. Totals are computed in closed form
with arbitrary precision, so counting never requires generating.

# Concept

An Engine receives an alphabet, a LengthRange and a FilterConfig, validates them, and
returns a domain.ResultStream. Every validation error (empty alphabet, bad range,
malformed regular expression, missing dictionary) is reported before the stream
exists; a stream that was returned cannot fail.

Duplicate letters count as distinct positions, so "aab" yields "ab" twice unless
FilterConfig.Unique is set.

# Usage

	eng := isaw.New()

	stream, err := eng.GeneratePermutations("abc", domain.LengthRange{}, 0, domain.FilterConfig{})
	if err != nil {
		log.Fatal(err)
	}

	for word := range stream.All() {
		fmt.Println(word) // a, b, c, ab, ac, ba, ... cba
	}

	table, _ := eng.Count(6, domain.LengthRange{})
	fmt.Println(table.Total(domain.ModePermutation)) // 1956

Words mode needs a ports.Dictionary, for example one loaded with the file adapter:

	dict, err := file.Load("/usr/share/dict/words", file.Options{Fold: true})
	...
	stream, err := eng.GenerateWords("tesa", domain.LengthRange{Min: 3}, dict, 10,
		domain.FilterConfig{IgnoreCase: true, Unique: true})
*/
package isaw
