package model

import (
	"fmt"
	"time"
)

type Driver struct {
	ID          int
	Ref         string
	Number      *int
	Code        *string
	Forename    string
	Surname     string
	DOB         *time.Time
	Nationality string
}

func (d *Driver) Name() string {
	return fmt.Sprintf("%s %s", d.Forename, d.Surname)
}
