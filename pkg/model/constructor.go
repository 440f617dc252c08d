package model

type Constructor struct {
	ID          int
	Ref         string
	Name        string
	Nationality string
}
