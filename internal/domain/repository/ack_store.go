package repository

import "context"

// AlertAckStore guarda el único estado mutable del generador de alertas:
// qué IDs de alerta fueron reconocidos por el usuario. Las alertas en sí se
// recalculan en cada consulta.
type AlertAckStore interface {
	Acknowledge(ctx context.Context, alertID string) error
	IsAcknowledged(ctx context.Context, alertID string) (bool, error)
	// Filter devuelve el subconjunto de IDs reconocidos, en una sola consulta.
	Filter(ctx context.Context, alertIDs []string) (map[string]bool, error)
}
