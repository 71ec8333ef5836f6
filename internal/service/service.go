// Package service содержит прикладные сервисы витрины: они разрешают
// идентификаторы через репозитории, спрашивают Guard, вызывают операцию
// сущности, сохраняют результат и сообщают о нем наблюдателю.
package service

import "github.com/avc/storefront-demo/internal/domain"

// Runtime - общие для всех сервисов зависимости
type Runtime struct {
	Guard    domain.Guard
	Sink     domain.Sink
	Observer *Observer
}

func (r Runtime) guard() domain.Guard {
	if r.Guard == nil {
		return domain.PermissiveGuard{}
	}
	return r.Guard
}

func (r Runtime) sink() domain.Sink {
	if r.Sink == nil {
		return domain.Discard
	}
	return r.Sink
}
