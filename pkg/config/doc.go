// Package config is the public entry point of confkit: it parses the
// line-oriented, indentation-structured configuration format into a
// tree of named nodes and serializes trees back to text.
//
// The format, line by line:
//
//	context
//	    iothreads = 1        # values may carry trailing comments
//	main
//	    type = zqueue
//	    frontend
//	        bind = 'inproc://addr1'
//	        bind = 'ipc://addr2'
//
// Indentation is measured in spaces, four per nesting level (any indent
// of one to four spaces is the first nested level). Blank lines and
// lines starting with '#' are ignored. A line is either a bare key or
// "key = value"; values may be bare, single-quoted, or double-quoted.
// Parsing always returns a synthetic top-level node named "root".
//
// Most callers only need this package: parse with ParseFile, ParseBytes,
// or ParseText, then navigate with Locate and Resolve on the returned
// node. Construct a Config to override input encoding or limits.
// Loader adds cached loading and fsnotify-driven re-parsing on change.
package config
