// Package prefix implements pending key prefixes: a trigger key arms a
// prefix and the next key is resolved against that prefix's table.
//
// At most one prefix is armed at a time. Arming records a deadline; a
// prefix whose deadline has passed is treated as never armed. Time is
// passed in by the caller, so expiry is plain data that tests drive with
// a fake clock.
//
// Resolution tables:
//
//	Leader   1-9 switch buffer, b f w / t g arm a sub-prefix
//	Buffer   n p cycle, c create, d q close, 1-9 switch
//	Find     f find files, b buffer overview
//	Tab      o tab overview, n p c tab requests
//	Window   s v split, c close
//	Motion   w b word, 0 $ line, g G buffer
//	Search   any character, Alt searches backward
package prefix
