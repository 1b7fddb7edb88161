package entity

import "time"

// Draft respuestas en curso del formulario de un usuario (autoguardado).
// Data es JSON opaco: el servidor no lo interpreta, solo lo guarda y limita su tamaño.
type Draft struct {
	UserID    string
	Step      string
	Data      []byte
	UpdatedAt time.Time
}

// Size tamaño en bytes que cuenta contra la cuota.
func (d *Draft) Size() int {
	return len(d.Step) + len(d.Data)
}
