package entity

import "time"

// AlertType severidad de una alerta.
type AlertType string

const (
	AlertCritical AlertType = "critical"
	AlertWarning  AlertType = "warning"
)

// AlertCategory clasifica el origen de la alerta de forma estructurada.
// El frontend decide el ícono por esta categoría, nunca por substring del título.
type AlertCategory string

const (
	CategoryOutOfStock AlertCategory = "out-of-stock"
	CategoryLowStock   AlertCategory = "low-stock"
	CategoryDeadStock  AlertCategory = "dead-stock"
)

// Alert es un dato derivado: se recalcula desde el estado actual de los
// productos en cada consulta. El ID es determinista (productID + categoría)
// para que un acknowledge sobreviva a la recomputación. Lo único persistido
// es el estado de acknowledge, delegado a un store externo por ID.
type Alert struct {
	ID           string
	Type         AlertType
	Category     AlertCategory
	Title        string
	Message      string
	Timestamp    time.Time
	ProductID    string
	Acknowledged bool
}
