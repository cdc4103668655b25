/*
Package pgen is a parser generator toolbox.

pgen computes FIRST and FOLLOW sets for context-free grammars, builds
LL(1) tables or LR automata (LR(0), SLR and LR(1)) and executes them against
token streams, producing homogenous abstract syntax trees. Parsers are
constructed at runtime, without a code-generation step. Package structure is
as follows:

■ lr: Package lr implements grammars, grammar analysis and the construction of
LR automata. Sub-packages contain the shift/reduce driver, scanners and
supporting data structures.

■ ll: Package ll implements LL(1) parsing tables and a predictive pushdown parser.

■ terex: Package terex implements a Lisp-like homogenous AST.

The base package contains data types which are used throughout all the other packages.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package pgen
