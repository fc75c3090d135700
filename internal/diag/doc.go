// Package diag defines the numeric error codes reported while assembling and
// validating an ability graph.
//
// Codes are grouped into ranges by the subsystem that raises them, so
// callers can triage without parsing messages:
//
//	1..13        component admission (add/remove)
//	5001..5101   edge admission (check/add/remove)
//	1003..1015   param processor pass
//	1103..1140   condition pass
//	1300..1352   condition consistency sweep
//	2005..2132   effect pass
//	2312..2442   effect consistency sweep
//	9001..9003   commit, plus ErrorsExist (-1000)
//
// Code implements error, so structural failures can be returned directly
// and matched with errors.Is.
package diag
