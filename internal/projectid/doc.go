/*
Package projectid provides the opaque identifier used for projects across the
scheduler.

An ID is created once, at the boundary where a solution description is read,
either from an arbitrary non-empty token or from a GUID. Downstream packages
only compare IDs for equality and use them as map keys; they never parse them.
*/
package projectid
