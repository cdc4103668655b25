/*
Package terex provides types for a homogenous abstract syntax tree
in a Lisp-like fashion.

Parsing generates a derivation, which is too verbose for further processing.
Instead of long chains of grammar production symbols we usualy prefer a
much more compact AST (abstract syntax tree). One possible variant of
ASTs is a *homogenous* tree, i.e. one where the structure of all nodes
is identical. This makes tree walking easy.

The parsers of this module produce trees of exactly two kinds of nodes: leafs,
which are input tokens or literal values introduced by semantic actions, and
lists, whose first element usually is an operator tag. Trees are rendered
as s-expressions:

	(+ n (* n n))

With homogenous tree nodes there is always one caveat: type information of the
implementing programming language is compromised. Therefore the code in this
module uses "interface{}" and relies on type switches.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package terex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pgen.terex'.
func tracer() tracing.Trace {
	return tracing.Select("pgen.terex")
}
