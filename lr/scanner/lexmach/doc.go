/*
Package lexmach provides an adapter to use the lexmachine scanner generator with
the parsers of pgen.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing keywords and regular expressions.
Please refer to the lexmachine documentation on how to instruct lexmachine.
Package lexmach is opinionated on how to do the setup of lexmachine.
Clients who need more liberty in how to create the scanner should use their
own wrapper code to fit lexmachine into the scanner.Tokenizer interface.

	var literals []string       // The tokens representing literal strings
	var keywords []string       // The keyword tokens
	var tokenIds map[string]int // A map from the token names to their int IDs

	init := func(lexer *lexmachine.Lexer) {
		// lexmach.Skip      ignores the scanned match
		// lexmach.MakeToken wraps a scanned match into a token
		lexer.Add([]byte(`[0-9]+`), lexmach.MakeToken("NUM", tokenIds["NUM"]))
	}

Having that, clients use `NewLMAdapter` to wrap lexmachine into a scanner.Tokenizer.
NewLMAdapter will return an error if compiling the DFA failed. Literals and
keywords are added before the patterns of init, thus a keyword takes precedence
over an identifier pattern matching the same text.

	LM, err := NewLMAdapter(init, literals, keywords, tokenIds)

A scanner is instantiated for each concrete input sequence.
To feed a parser, wrap the scanner into a token source. Token names are
mapped to terminal symbols, literals and keywords map to themselves:

	scan, err := LM.Scanner("1 + 2")
	src := scanner.Source(scan, LM.Classifier(map[string]string{"NUM": "n"}))

________________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lexmach
