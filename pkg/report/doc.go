// Package report renders sweep partitions for people (WriteTable) and for
// other programs (WriteJSON).
//
// The table layout:
//
//	Reachable    Unreachable
//	-----------  -------------
//	192.168.0.1  192.168.0.3
//	192.168.0.2  192.168.0.4
package report
