/*
Package persistent is the home of immutable persistent collection types.

A persistent data structure never mutates nodes in place. Every
“modification” returns a new incarnation of the structure, leaving the
original intact, while both incarnations share the unchanged parts of their
memory. Making a modified copy is therefore cheap: an operation reallocates
only the path from the root to the point of change.

Persistence makes values of these types inherently safe for concurrent
reads. A tree handed to one goroutine remains valid and unaffected by any
derivation another goroutine produces from it; no locking is required.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
