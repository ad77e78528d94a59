package project

const (
	Name    = "calcpad"
	Version = "0.1.0"
)
