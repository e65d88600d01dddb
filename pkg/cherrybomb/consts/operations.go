// Package consts provides operation name constants used in diagnostic logs.
package consts

// Operation names.
const (
	ListProjects = "ListProjects"
	TagDebt      = "TagDebt"
	Init         = "Init"
	ShowConfig   = "ShowConfig"
)
