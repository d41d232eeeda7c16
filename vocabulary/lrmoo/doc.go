// Package lrmoo provides LRMoo (draft 0.9) class and property IRIs and
// registers the LRMoo properties as semstreams vocabulary predicates.
//
// Import this package to auto-register predicates:
//
//	import _ "github.com/c360studio/semcrm/vocabulary/lrmoo"
package lrmoo
