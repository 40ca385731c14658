package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session identidad autenticada que se pasa explícitamente a cada operación.
type Session struct {
	ID        uuid.UUID
	UserID    int64
	Username  string
	Role      string
	StartedAt time.Time
}

// SystemSession sesión de tareas internas (barrido al arrancar). No tiene actor.
func SystemSession() Session {
	return Session{Username: "system"}
}

// ActorID usuario a registrar en la auditoría; nil para la sesión de sistema.
func (s Session) ActorID() *int64 {
	if s.UserID == 0 {
		return nil
	}
	id := s.UserID
	return &id
}

// Trail arma el descriptor de auditoría de una acción de esta sesión.
func (s Session) Trail(action, details string) *AuditTrail {
	return &AuditTrail{ActorID: s.ActorID(), Action: action, Details: details}
}
