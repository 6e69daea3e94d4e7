package entity

import "time"

// Equipment status values as stored in the fleet table.
const (
	StatusOperational   = "OPERACIONAL"
	StatusInMaintenance = "MANUTENCAO"
	StatusRented        = "ALUGADO"
)

// Equipment is one piece of ground-support equipment. Prefix is the unique
// identifier the shift reports reference.
type Equipment struct {
	ID        uint
	Prefix    string
	Name      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Leader is a shift leader selectable on report submission.
type Leader struct {
	ID        uint
	Name      string
	CreatedAt time.Time
}
