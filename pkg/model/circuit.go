package model

type Circuit struct {
	ID       int
	Ref      string
	Name     string
	Location string
	Country  string
}
