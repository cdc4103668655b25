/*
Package iteratable implements iteratable container data structures.

Set is a speical purpose set type, suitable mainly for implementing algorithms
around scanners, parsers, etc. These kinds of algorihms are often more straightforward
to describe as set constructions and operations. A typical use is the closure of
an LR item set, where the set serves as its own worklist:

	C := S.Copy()
	C.IterateOnce()
	for C.Next() {
	    item := C.Item()
	    …
	    C.Add(newItems...)   // will be visited by this iteration, too
	}

Unusually, all set operations are destructive!

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package iteratable
