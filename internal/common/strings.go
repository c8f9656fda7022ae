package common

// Placeholder strings shared by String methods and type formatting.
const (
	UnknownStr       = "unknown"
	InterfaceTypeStr = "any"
	EmptyStructStr   = "struct{}"
)
